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
	vfs "github.com/twpayne/go-vfs/v4"

	"github.com/rancher-sandbox/legacyboot/pkg/diskio"
	lbError "github.com/rancher-sandbox/legacyboot/pkg/error"
	"github.com/rancher-sandbox/legacyboot/pkg/legacy"
	"github.com/rancher-sandbox/legacyboot/pkg/types"
	"github.com/rancher-sandbox/legacyboot/pkg/utils"
)

func NewClassifyCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "classify IMAGE|DEVICE",
		Short: "Classify the legacy OS found on a disk image or block device",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			blockSize, _ := cmd.Flags().GetUint32("block-size")
			altIo, _ := cmd.Flags().GetBool("alt-io")

			osType, err := classifyPath(logger, vfs.OSFS, args[0], blockSize, altIo)
			if err != nil {
				return err
			}

			fmt.Println(osType)
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().Uint32("block-size", 0, "Device block size in bytes, 0 assumes 512")
	c.Flags().Bool("alt-io", false, "Probe through the alternate block I/O protocol")
	return c
}

// classifyPath probes one image or device file. Open failures surface as
// errors, probe failures classify as none like the library does.
func classifyPath(logger types.Logger, fs types.FS, path string, blockSize uint32, altIo bool) (legacy.OsType, error) {
	cleanup := utils.NewCleanStack()
	defer func() { _ = cleanup.Cleanup(nil) }()

	disk, err := diskio.NewFileDisk(fs, path, blockSize)
	if err != nil {
		return legacy.OsTypeNone, lbError.NewFromError(err, lbError.OpenDisk)
	}
	cleanup.Push(disk.Close)

	return legacy.GetDiskLegacyOsType(logger, disk, altIo), nil
}

// register the subcommand into rootCmd
var _ = NewClassifyCmd(rootCmd)
