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

package legacy

import (
	"bytes"

	"github.com/rancher-sandbox/legacyboot/pkg/constants"
	"github.com/rancher-sandbox/legacyboot/pkg/firmware"
	"github.com/rancher-sandbox/legacyboot/pkg/types"
)

// OsType classifies the legacy operating system found on a disk.
type OsType int

const (
	OsTypeNone OsType = iota
	OsTypeWindowsBootmgr
	OsTypeWindowsNtldr
)

func (t OsType) String() string {
	switch t {
	case OsTypeWindowsBootmgr:
		return "windows-bootmgr"
	case OsTypeWindowsNtldr:
		return "windows-ntldr"
	default:
		return "none"
	}
}

// Boot loader signatures recognized in the boot sector, checked in this
// order. BOOTMGR wins on a sector containing both.
var (
	sigBootmgr = []byte("BOOTMGR")
	sigNtldr   = []byte("NTLDR")
)

// GetDiskLegacyOsType reads the first sector of a disk and classifies the
// legacy OS it boots by signature. This is a best effort probe, any
// internal failure classifies as OsTypeNone instead of surfacing an error.
func GetDiskLegacyOsType(logger types.Logger, disk firmware.Disk, useAlternateIo bool) OsType {
	diskCtx, err := firmware.InitializeDiskContext(disk, useAlternateIo)
	if err != nil {
		logger.Debugf("Legacy probe skipped, disk context: %v", err)
		return OsTypeNone
	}

	// One legacy sector, aligned up to the device block size.
	buffer := make([]byte, alignUp(constants.MBRSectorSize, diskCtx.BlockSize()))

	if err = diskCtx.Read(0, buffer); err != nil {
		logger.Debugf("Legacy probe skipped, boot sector read: %v", err)
		return OsTypeNone
	}

	osType := OsTypeNone
	if checkLegacySignature(sigBootmgr, buffer) {
		osType = OsTypeWindowsBootmgr
	} else if checkLegacySignature(sigNtldr, buffer) {
		osType = OsTypeWindowsNtldr
	}

	logger.Debugf("Legacy probe result: %s", osType)
	return osType
}

// checkLegacySignature is a fixed pattern search over the whole sector
// buffer, signatures are not anchored to any offset.
func checkLegacySignature(signature, buffer []byte) bool {
	return bytes.Contains(buffer, signature)
}

func alignUp(value, align uint32) uint32 {
	return (value + align - 1) / align * align
}
