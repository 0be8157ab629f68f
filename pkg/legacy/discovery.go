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

// Package legacy implements chain-loading of the platform legacy boot
// interface and boot sector based classification of legacy operating
// systems.
package legacy

import (
	efi "github.com/canonical/go-efilib"

	"github.com/rancher-sandbox/legacyboot/pkg/devpath"
	"github.com/rancher-sandbox/legacyboot/pkg/firmware"
	"github.com/rancher-sandbox/legacyboot/pkg/types"
)

// ScanLegacyInterfacePaths walks the platform's loaded images and derives
// the candidate locations of the legacy boot interface. An image qualifies
// when its origin locator starts with a hardware memory mapped range node;
// the candidate is that locator with the legacy interface firmware file
// appended. Candidates keep enumeration order and are deduplicated by their
// first node, two locators sharing it point at the same physical resource.
//
// One slot of maxPaths is reserved, the way the fixed size list this scan
// used to fill kept its last slot for the terminator, so at most maxPaths-1
// candidates are returned. Locator resolution failures on individual images
// are skipped, only the enumeration itself failing fails the scan.
func ScanLegacyInterfacePaths(logger types.Logger, images firmware.ImageServices, maxPaths int) ([]efi.DevicePath, error) {
	if maxPaths < 1 {
		return nil, firmware.ErrInvalidParameter
	}
	maxPaths--

	loaded, err := images.LoadedImages()
	if err != nil {
		return nil, err
	}

	paths := make([]efi.DevicePath, 0, maxPaths)
	for _, image := range loaded {
		if len(paths) >= maxPaths {
			break
		}

		origin, err := image.OriginLocator()
		if err != nil {
			continue
		}

		// Legacy boot interface will be behind a memory range node.
		first := devpath.FirstNode(origin)
		if !devpath.IsMemoryMappedHardware(first) {
			continue
		}

		if containsFirstNode(paths, first) {
			continue
		}

		candidate := devpath.Append(origin, devpath.LegacyInterfaceSuffix())
		logger.Debugf("Legacy interface candidate: %s", candidate)
		paths = append(paths, candidate)
	}

	return paths, nil
}

func containsFirstNode(paths []efi.DevicePath, node efi.DevicePathNode) bool {
	for _, path := range paths {
		if devpath.NodeEqual(node, devpath.FirstNode(path)) {
			return true
		}
	}
	return false
}
