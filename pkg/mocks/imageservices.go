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

	"github.com/rancher-sandbox/legacyboot/pkg/firmware"
)

// MockLoadedImage scripts one entry of the loaded image enumeration.
type MockLoadedImage struct {
	Locator efi.DevicePath
	Err     error
}

func (m MockLoadedImage) OriginLocator() (efi.DevicePath, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Locator, nil
}

// MockImageHandle is the handle returned by successful mock loads.
type MockImageHandle struct {
	Locator efi.DevicePath
}

func (m *MockImageHandle) DeviceLocator() efi.DevicePath {
	return m.Locator
}

// MockImageServices is an in-memory firmware.ImageServices. Load outcomes
// are scripted per locator path, unscripted paths report ErrNotFound. Every
// load attempt is recorded in order.
type MockImageServices struct {
	Images       []firmware.LoadedImage
	EnumerateErr error

	loadOutcomes map[string]error
	Attempts     []efi.DevicePath
}

func NewMockImageServices() *MockImageServices {
	return &MockImageServices{
		loadOutcomes: map[string]error{},
	}
}

// WithImage appends a loaded image entry with the given origin locator
func (m *MockImageServices) WithImage(locator efi.DevicePath) *MockImageServices {
	m.Images = append(m.Images, MockLoadedImage{Locator: locator})
	return m
}

// WithBrokenImage appends an entry whose locator resolution fails with err
func (m *MockImageServices) WithBrokenImage(err error) *MockImageServices {
	m.Images = append(m.Images, MockLoadedImage{Err: err})
	return m
}

// WithLoadOutcome scripts the LoadImage result for a path, nil meaning a
// successful load
func (m *MockImageServices) WithLoadOutcome(path efi.DevicePath, err error) *MockImageServices {
	m.loadOutcomes[pathKey(path)] = err
	return m
}

// LoadedImages implements firmware.ImageServices
func (m *MockImageServices) LoadedImages() ([]firmware.LoadedImage, error) {
	if m.EnumerateErr != nil {
		return nil, m.EnumerateErr
	}
	return m.Images, nil
}

// LoadImage implements firmware.ImageServices
func (m *MockImageServices) LoadImage(_ firmware.ImageHandle, path efi.DevicePath) (firmware.ImageHandle, error) {
	m.Attempts = append(m.Attempts, path)

	err, scripted := m.loadOutcomes[pathKey(path)]
	if !scripted {
		return nil, firmware.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &MockImageHandle{Locator: path}, nil
}

func pathKey(path efi.DevicePath) string {
	data, err := path.Bytes()
	if err != nil {
		return path.String()
	}
	return string(data)
}
