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

package firmware_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rancher-sandbox/legacyboot/pkg/firmware"
	"github.com/rancher-sandbox/legacyboot/pkg/mocks"
)

var _ = Describe("DiskContext", Label("firmware", "disk"), func() {
	var disk *mocks.MockDisk

	BeforeEach(func() {
		disk = mocks.NewMockDisk(make([]byte, 4096), 512)
	})

	It("requires a disk", func() {
		_, err := firmware.InitializeDiskContext(nil, false)
		Expect(err).To(MatchError(firmware.ErrInvalidParameter))
	})

	It("refuses alternate I/O on devices without it", func() {
		_, err := firmware.InitializeDiskContext(disk, true)
		Expect(err).To(MatchError(firmware.ErrUnsupported))
	})

	It("refuses devices without a usable geometry", func() {
		disk.BlockSizeD = 0
		_, err := firmware.InitializeDiskContext(disk, false)
		Expect(err).To(MatchError(firmware.ErrDeviceError))
	})

	It("records the block size at initialization", func() {
		diskCtx, err := firmware.InitializeDiskContext(disk, false)
		Expect(err).To(BeNil())
		Expect(diskCtx.BlockSize()).To(Equal(uint32(512)))
	})

	It("rejects unaligned reads", func() {
		diskCtx, err := firmware.InitializeDiskContext(disk, false)
		Expect(err).To(BeNil())

		Expect(diskCtx.Read(7, make([]byte, 512))).To(MatchError(firmware.ErrInvalidParameter))
		Expect(diskCtx.Read(0, make([]byte, 100))).To(MatchError(firmware.ErrInvalidParameter))
		Expect(disk.Reads).To(BeEmpty())
	})

	It("passes aligned reads through with the selected protocol", func() {
		disk.AlternateIo = true
		diskCtx, err := firmware.InitializeDiskContext(disk, true)
		Expect(err).To(BeNil())

		Expect(diskCtx.Read(512, make([]byte, 1024))).To(Succeed())
		Expect(disk.Reads).To(HaveLen(1))
		Expect(disk.Reads[0].Offset).To(Equal(int64(512)))
		Expect(disk.Reads[0].Size).To(Equal(1024))
		Expect(disk.Reads[0].AlternateIo).To(BeTrue())
	})
})
