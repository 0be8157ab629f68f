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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/legacyboot/internal/version"
)

func NewVersionCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Args:  exactArgs(0),
		Short: "Show the legacyboot version",
		Run: func(cmd *cobra.Command, _ []string) {
			v := version.Get()
			if full, _ := cmd.Flags().GetBool("full"); full {
				fmt.Printf("version:    %s\n", v.Version)
				fmt.Printf("commit:     %s\n", v.GitCommit)
				fmt.Printf("go version: %s\n", v.GoVersion)
				return
			}
			fmt.Println(v.Short())
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("full", false, "Show the full build information")
	return c
}

// register the subcommand into rootCmd
var _ = NewVersionCmd(rootCmd)
