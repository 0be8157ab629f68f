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

package firmware

import (
	"fmt"

	efi "github.com/canonical/go-efilib"
)

// Disk gives raw block-granular access to a single whole disk. Devices may
// expose a second, asynchronous flavor of the read protocol; the probe code
// selects which one a DiskContext uses.
type Disk interface {
	// BlockSize reports the logical block size of the device in bytes.
	// Zero means the device could not report a usable geometry.
	BlockSize() uint32

	// SupportsAlternateIo reports whether the alternate read protocol is
	// available on this device.
	SupportsAlternateIo() bool

	// ReadBlocks fills p with device content starting at byte offset off
	// using the requested protocol flavor. Both off and len(p) must be
	// multiples of the block size.
	ReadBlocks(alternateIo bool, off int64, p []byte) error
}

// DiskLocator resolves partition locator paths against the platform's disk
// topology.
type DiskLocator interface {
	// WholeDiskPath returns the locator path of the whole disk holding
	// the given partition, or nil when the path does not lead to a disk.
	// A whole-disk path resolves to itself.
	WholeDiskPath(path efi.DevicePath) efi.DevicePath
}

// DiskContext bundles a disk with the I/O method selected for one probe.
// Contexts are built per call and not retained.
type DiskContext struct {
	disk        Disk
	blockSize   uint32
	alternateIo bool
}

// InitializeDiskContext validates the disk and records which read protocol
// subsequent reads will use.
func InitializeDiskContext(disk Disk, useAlternateIo bool) (*DiskContext, error) {
	if disk == nil {
		return nil, ErrInvalidParameter
	}
	if useAlternateIo && !disk.SupportsAlternateIo() {
		return nil, ErrUnsupported
	}
	blockSize := disk.BlockSize()
	if blockSize == 0 {
		return nil, ErrDeviceError
	}
	return &DiskContext{
		disk:        disk,
		blockSize:   blockSize,
		alternateIo: useAlternateIo,
	}, nil
}

// BlockSize returns the block size recorded at context initialization.
func (dc *DiskContext) BlockSize() uint32 {
	return dc.blockSize
}

// Read fills buf starting at byte offset off. Offset and length must be
// aligned to the context block size.
func (dc *DiskContext) Read(off int64, buf []byte) error {
	if off%int64(dc.blockSize) != 0 || len(buf)%int(dc.blockSize) != 0 {
		return fmt.Errorf("%w: unaligned read of %d bytes at offset %d (block size %d)",
			ErrInvalidParameter, len(buf), off, dc.blockSize)
	}
	return dc.disk.ReadBlocks(dc.alternateIo, off, buf)
}
