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

// Package diskio provides firmware.Disk implementations backed by regular
// files, covering disk images and /dev block nodes.
package diskio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rancher-sandbox/legacyboot/pkg/firmware"
	"github.com/rancher-sandbox/legacyboot/pkg/types"
)

// DefaultBlockSize is assumed for file backed disks unless the caller
// knows better.
const DefaultBlockSize = 512

// FileDisk exposes a disk image or device node as a firmware.Disk with a
// declared block size. It only implements the primary read protocol.
type FileDisk struct {
	file      *os.File
	blockSize uint32
}

// NewFileDisk opens path read-only on the given filesystem. A blockSize of
// zero selects DefaultBlockSize.
func NewFileDisk(fs types.FS, path string, blockSize uint32) (*FileDisk, error) {
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}

	file, err := fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}

	return &FileDisk{file: file, blockSize: blockSize}, nil
}

func (d *FileDisk) BlockSize() uint32 {
	return d.blockSize
}

func (d *FileDisk) SupportsAlternateIo() bool {
	return false
}

func (d *FileDisk) ReadBlocks(_ bool, off int64, p []byte) error {
	n, err := d.file.ReadAt(p, off)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: short read of %d/%d bytes at offset %d",
				firmware.ErrDeviceError, n, len(p), off)
		}
		return fmt.Errorf("%w: %v", firmware.ErrDeviceError, err)
	}
	return nil
}

func (d *FileDisk) Close() error {
	return d.file.Close()
}
