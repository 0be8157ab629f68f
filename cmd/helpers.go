/*
Copyright © 2023 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lbError "github.com/rancher-sandbox/legacyboot/pkg/error"
	"github.com/rancher-sandbox/legacyboot/pkg/types"
)

// newLogger builds the command logger honoring the persistent flags. Debug
// and quiet contradict each other and are rejected.
func newLogger() (types.Logger, error) {
	if viper.GetBool("debug") && viper.GetBool("quiet") {
		return nil, lbError.New("--debug and --quiet are mutually exclusive", lbError.LoggerOptions)
	}

	logger := types.NewLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}
	if viper.GetBool("quiet") {
		logger.SetOutput(io.Discard)
	}
	return logger, nil
}

// exactArgs mirrors cobra.ExactArgs with the CLI's typed exit code
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return lbError.NewFromError(err, lbError.WrongArgs)
		}
		return nil
	}
}
