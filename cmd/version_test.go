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

	"github.com/rancher-sandbox/legacyboot/internal/version"
)

var _ = Describe("Version", Label("version", "cmd"), func() {
	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewVersionCmd(rootCmd)
	})
	It("Reports the short version", func() {
		_, output, err := executeCommandC(rootCmd, "version")
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring(version.Get().Short()))
	})
	It("Reports the full build information", Label("flags"), func() {
		_, output, err := executeCommandC(rootCmd, "version", "--full")
		Expect(err).To(BeNil())
		v := version.Get()
		Expect(output).To(ContainSubstring(v.Version))
		Expect(output).To(ContainSubstring("go version:"))
		Expect(output).To(ContainSubstring(v.GoVersion))
	})
})
