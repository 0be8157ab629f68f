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

// Package firmware defines the platform services legacyboot runs on top of.
// The library never talks to the platform directly, callers inject an
// implementation of these interfaces so everything is testable with the
// in-memory fakes from pkg/mocks.
package firmware

import (
	"errors"

	efi "github.com/canonical/go-efilib"
)

// Sentinel errors mirroring the platform status codes this library needs to
// tell apart. ErrNotFound is the only recoverable one, the image load
// fallback loop branches on it.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrOutOfResources   = errors.New("out of resources")
	ErrDeviceError      = errors.New("device error")
	ErrUnsupported      = errors.New("unsupported")
)

// ImageHandle represents a program image registered with the platform
// loader. It is opaque to this library, it only travels from LoadImage back
// to the boot manager which decides whether to start the image.
type ImageHandle interface {
	// DeviceLocator returns the locator path the image was loaded from.
	DeviceLocator() efi.DevicePath
}

// LoadedImage is one entry of the platform's currently loaded program set.
type LoadedImage interface {
	// OriginLocator resolves the locator path of the device the image was
	// loaded from. Resolution can fail per image without affecting the
	// rest of the enumeration.
	OriginLocator() (efi.DevicePath, error)
}

// ImageServices exposes the platform program loading services.
type ImageServices interface {
	// LoadedImages enumerates every handle currently exposing the loaded
	// image capability, in platform order.
	LoadedImages() ([]LoadedImage, error)

	// LoadImage loads, without starting, a program image from the given
	// locator path with no associated data buffer. ErrNotFound reports
	// that no image exists at that location, any other error is terminal.
	LoadImage(parent ImageHandle, path efi.DevicePath) (ImageHandle, error)
}
