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
	"path/filepath"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/block"
	"github.com/spf13/cobra"
	vfs "github.com/twpayne/go-vfs/v4"

	lbError "github.com/rancher-sandbox/legacyboot/pkg/error"
)

func NewDisksCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "disks",
		Short: "Classify the legacy OS on every host disk",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			blockDevices, err := block.New(ghw.WithDisableTools(), ghw.WithDisableWarnings())
			if err != nil {
				return lbError.NewFromError(err, lbError.EnumerateDisks)
			}

			for _, d := range blockDevices.Disks {
				device := filepath.Join("/dev", d.Name)

				osType, err := classifyPath(logger, vfs.OSFS, device, uint32(d.PhysicalBlockSizeBytes), false)
				if err != nil {
					logger.Warnf("Skipping %s: %v", device, err)
					continue
				}
				fmt.Printf("%s\t%s\n", device, osType)
			}
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewDisksCmd(rootCmd)
