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

// Package devpath collects the EFI device path helpers legacyboot needs on
// top of go-efilib.
package devpath

import (
	"bytes"

	efi "github.com/canonical/go-efilib"
)

// HW_MEMMAP_DP, go-efilib has no dedicated node type for it so memory
// mapped nodes surface as *efi.GenericDevicePathNode.
const hwMemmapSubType efi.DevicePathSubType = 0x03

// Firmware file of the platform legacy boot interface,
// FvFile(2B0585EB-D8B8-49A9-8B8C-E21B01AEF2B7).
var legacyInterfaceFile = efi.MakeGUID(
	0x2B0585EB, 0xD8B8, 0x49A9, 0x8B8C,
	[6]uint8{0xE2, 0x1B, 0x01, 0xAE, 0xF2, 0xB7},
)

// LegacyInterfaceSuffix returns the firmware file node appended to a
// discovered hardware prefix to locate the legacy boot interface.
func LegacyInterfaceSuffix() efi.DevicePathNode {
	return efi.FWFileDevicePathNode(legacyInterfaceFile)
}

// FirstNode returns the root node of a path, or nil for an empty path.
func FirstNode(path efi.DevicePath) efi.DevicePathNode {
	if len(path) == 0 {
		return nil
	}
	return path[0]
}

// IsMemoryMappedHardware reports whether a node is a hardware class memory
// mapped range node. This is the structural signature of a platform legacy
// interface entry point.
func IsMemoryMappedHardware(node efi.DevicePathNode) bool {
	if node == nil {
		return false
	}
	generic, err := node.AsGenericDevicePathNode()
	if err != nil {
		return false
	}
	return generic.Type == efi.HardwareDevicePath && generic.SubType == hwMemmapSubType
}

// NodeBytes serializes a single node, length header included.
func NodeBytes(node efi.DevicePathNode) ([]byte, error) {
	var buf bytes.Buffer
	if err := node.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NodeEqual compares two nodes by exact length and byte content of their
// serialized form.
func NodeEqual(a, b efi.DevicePathNode) bool {
	aBytes, err := NodeBytes(a)
	if err != nil {
		return false
	}
	bBytes, err := NodeBytes(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aBytes, bBytes)
}

// Append builds a new path from a prefix plus extra nodes. The prefix is
// copied, never aliased, so appending cannot disturb the source path.
func Append(prefix efi.DevicePath, nodes ...efi.DevicePathNode) efi.DevicePath {
	out := make(efi.DevicePath, 0, len(prefix)+len(nodes))
	out = append(out, prefix...)
	return append(out, nodes...)
}

// Serialize returns the full wire form of a path, end-of-path terminator
// included. This is the representation persisted into firmware variables.
func Serialize(path efi.DevicePath) ([]byte, error) {
	return path.Bytes()
}
