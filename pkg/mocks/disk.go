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

package mocks

import (
	efi "github.com/canonical/go-efilib"
)

// MockDiskRead records one ReadBlocks call issued against a MockDisk.
type MockDiskRead struct {
	Offset      int64
	Size        int
	AlternateIo bool
}

// MockDisk is an in-memory firmware.Disk. Content holds the raw device
// bytes, reads beyond it are zero filled like a blank disk.
type MockDisk struct {
	Content     []byte
	BlockSizeD  uint32
	AlternateIo bool
	ReadErr     error

	Reads []MockDiskRead
}

func NewMockDisk(content []byte, blockSize uint32) *MockDisk {
	return &MockDisk{Content: content, BlockSizeD: blockSize}
}

func (m *MockDisk) BlockSize() uint32 {
	return m.BlockSizeD
}

func (m *MockDisk) SupportsAlternateIo() bool {
	return m.AlternateIo
}

func (m *MockDisk) ReadBlocks(alternateIo bool, off int64, p []byte) error {
	m.Reads = append(m.Reads, MockDiskRead{Offset: off, Size: len(p), AlternateIo: alternateIo})
	if m.ReadErr != nil {
		return m.ReadErr
	}
	for i := range p {
		p[i] = 0
	}
	if off < int64(len(m.Content)) {
		copy(p, m.Content[off:])
	}
	return nil
}

// MockDiskLocator resolves every partition path to the scripted whole disk
// path, or to nothing when unset.
type MockDiskLocator struct {
	WholeDisk efi.DevicePath
}

func (m MockDiskLocator) WholeDiskPath(_ efi.DevicePath) efi.DevicePath {
	return m.WholeDisk
}
