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

package cmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/twpayne/go-vfs/v4/vfst"

	lbError "github.com/rancher-sandbox/legacyboot/pkg/error"
	"github.com/rancher-sandbox/legacyboot/pkg/legacy"
	"github.com/rancher-sandbox/legacyboot/pkg/types"
)

var _ = Describe("Classify", Label("classify", "cmd"), func() {
	var testFS *vfst.TestFS
	var cleanup func()
	var logger types.Logger

	BeforeEach(func() {
		var err error
		logger = types.NewNullLogger()

		image := make([]byte, 1024)
		copy(image[0x60:], "NTLDR")
		testFS, cleanup, err = vfst.NewTestFS(map[string]interface{}{
			"/disk.img": &vfst.File{Contents: image, Perm: 0o644},
		})
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		cleanup()
	})

	It("classifies a disk image file", func() {
		osType, err := classifyPath(logger, testFS, "/disk.img", 0, false)
		Expect(err).To(BeNil())
		Expect(osType).To(Equal(legacy.OsTypeWindowsNtldr))
	})

	It("returns a typed error for unreadable paths", func() {
		_, err := classifyPath(logger, testFS, "/missing.img", 0, false)
		Expect(err).ToNot(BeNil())

		lbErr, ok := err.(*lbError.LegacybootError)
		Expect(ok).To(BeTrue())
		Expect(lbErr.ExitCode()).To(Equal(lbError.OpenDisk))
	})

	It("rejects a classify call without arguments", func() {
		rootCmd = NewRootCmd()
		_ = NewClassifyCmd(rootCmd)

		_, _, err := executeCommandC(rootCmd, "classify")
		Expect(err).ToNot(BeNil())

		lbErr, ok := err.(*lbError.LegacybootError)
		Expect(ok).To(BeTrue())
		Expect(lbErr.ExitCode()).To(Equal(lbError.WrongArgs))
	})

	It("rejects conflicting logger flags", Label("flags"), func() {
		rootCmd = NewRootCmd()
		_ = NewClassifyCmd(rootCmd)

		_, _, err := executeCommandC(rootCmd, "classify", "--debug", "--quiet", "/disk.img")
		Expect(err).ToNot(BeNil())

		lbErr, ok := err.(*lbError.LegacybootError)
		Expect(ok).To(BeTrue())
		Expect(lbErr.ExitCode()).To(Equal(lbError.LoggerOptions))
	})
})
