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

package constants

const (
	// MBRSectorSize is the nominal legacy boot sector size in bytes.
	// Reads are aligned up to the device block size when it is larger.
	MBRSectorSize = 512

	// MaxLegacyDevicePaths caps the candidate list built by the legacy
	// interface scan, including the slot historically reserved for the
	// list terminator.
	MaxLegacyDevicePaths = 16

	// BootCampHDVariable is the non-volatile variable the legacy
	// interface reads after being loaded to know which disk to
	// chain-boot.
	BootCampHDVariable = "BootCampHD"
)
