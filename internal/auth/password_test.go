package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabhq/roster/internal/auth"
)

var _ = Describe("StrongPassword", func() {
	DescribeTable("policy decisions",
		func(password string, expected bool) {
			Expect(auth.StrongPassword(password)).To(Equal(expected))
		},
		Entry("all four classes, length 8", "Abcdef1!", true),
		Entry("longer with all classes", "Sup3r-Secret-Pass", true),
		Entry("empty", "", false),
		Entry("too short with all classes", "Ab1!xyz", false),
		Entry("missing uppercase", "abcdef1!", false),
		Entry("missing lowercase", "ABCDEF1!", false),
		Entry("missing digit", "Abcdefg!", false),
		Entry("missing special", "Abcdefg1", false),
		Entry("only letters", "Abcdefgh", false),
		Entry("only digits and specials", "1234!@#$", false),
		Entry("whitespace counts as special", "Abcdef1 ", true),
		Entry("unicode letter counts as special", "Abcdef1é", true),
	)

	It("never panics on arbitrary input", func() {
		inputs := []string{"", "\x00", "\xff\xfe", "🔑🔑🔑🔑🔑🔑🔑🔑"}
		for _, in := range inputs {
			Expect(func() { auth.StrongPassword(in) }).NotTo(Panic())
		}
	})
})
