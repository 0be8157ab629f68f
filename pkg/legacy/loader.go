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
	"errors"
	"fmt"

	efi "github.com/canonical/go-efilib"

	"github.com/rancher-sandbox/legacyboot/pkg/constants"
	"github.com/rancher-sandbox/legacyboot/pkg/devpath"
	"github.com/rancher-sandbox/legacyboot/pkg/firmware"
	"github.com/rancher-sandbox/legacyboot/pkg/types"
)

// Loader chain-loads the platform legacy boot interface for a selected
// disk. It holds nothing but the injected platform services, every call is
// self contained.
type Loader struct {
	logger types.Logger
	images firmware.ImageServices
	vars   firmware.Variables
	disks  firmware.DiskLocator
}

func NewLoader(logger types.Logger, images firmware.ImageServices, vars firmware.Variables, disks firmware.DiskLocator) *Loader {
	return &Loader{
		logger: logger,
		images: images,
		vars:   vars,
		disks:  disks,
	}
}

// LoadLegacyInterface loads, without starting, the legacy boot interface
// for the disk holding diskPath. The whole-disk locator is persisted into
// the BootCampHD variable first, the loaded interface reads it back after
// the handoff to know which disk to chain-boot. Candidate interface
// locations are then tried in discovery order until one yields anything
// other than firmware.ErrNotFound; that attempt's outcome, success or not,
// is the final outcome.
//
// The target partition is not marked active on pure MBR or hybrid GPT
// disks even though Macs only boot the active partition.
func (l *Loader) LoadLegacyInterface(parent firmware.ImageHandle, diskPath efi.DevicePath) (firmware.ImageHandle, error) {
	wholeDisk := l.disks.WholeDiskPath(diskPath)
	if wholeDisk == nil {
		return nil, firmware.ErrInvalidParameter
	}

	l.logger.Debugf("Legacy disk locator: %s", wholeDisk)

	serialized, err := devpath.Serialize(wholeDisk)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot serialize disk locator: %v", firmware.ErrInvalidParameter, err)
	}

	// Point BootCampHD at the target disk.
	err = l.vars.SetVariable(
		firmware.AppleBootGUID, constants.BootCampHDVariable, serialized,
		efi.AttributeNonVolatile|efi.AttributeBootserviceAccess|efi.AttributeRuntimeAccess,
	)
	if err != nil {
		return nil, err
	}

	candidates, err := ScanLegacyInterfacePaths(l.logger, l.images, constants.MaxLegacyDevicePaths)
	if err != nil {
		return nil, err
	}

	var image firmware.ImageHandle
	err = firmware.ErrNotFound
	for _, candidate := range candidates {
		image, err = l.images.LoadImage(parent, candidate)
		if !errors.Is(err, firmware.ErrNotFound) {
			l.logger.Debugf("Loaded legacy interface at %s - %v", candidate, err)
			break
		}
	}
	if err != nil {
		return nil, err
	}

	return image, nil
}
