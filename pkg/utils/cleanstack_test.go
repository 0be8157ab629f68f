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

package utils_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rancher-sandbox/legacyboot/pkg/utils"
)

var _ = Describe("CleanStack", Label("utils", "cleanstack"), func() {
	var cleaner *utils.CleanStack

	BeforeEach(func() {
		cleaner = utils.NewCleanStack()
	})

	It("runs jobs in reverse order", func() {
		var order []int
		cleaner.Push(func() error { order = append(order, 1); return nil })
		cleaner.Push(func() error { order = append(order, 2); return nil })
		cleaner.Push(func() error { order = append(order, 3); return nil })

		Expect(cleaner.Cleanup(nil)).To(BeNil())
		Expect(order).To(Equal([]int{3, 2, 1}))
	})

	It("skips error-only jobs on success", func() {
		ran := false
		cleaner.PushErrorOnly(func() error { ran = true; return nil })

		Expect(cleaner.Cleanup(nil)).To(BeNil())
		Expect(ran).To(BeFalse())
	})

	It("runs error-only jobs on failure", func() {
		ran := false
		cleaner.PushErrorOnly(func() error { ran = true; return nil })

		err := cleaner.Cleanup(errors.New("boom"))
		Expect(err).ToNot(BeNil())
		Expect(ran).To(BeTrue())
	})

	It("keeps running after a failing job and aggregates errors", func() {
		ran := false
		cleaner.Push(func() error { ran = true; return nil })
		cleaner.Push(func() error { return errors.New("release failed") })

		err := cleaner.Cleanup(nil)
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("release failed"))
		Expect(ran).To(BeTrue())
	})

	It("keeps the original error first", func() {
		cleaner.Push(func() error { return errors.New("release failed") })

		err := cleaner.Cleanup(errors.New("original"))
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("original"))
		Expect(err.Error()).To(ContainSubstring("release failed"))
	})
})
