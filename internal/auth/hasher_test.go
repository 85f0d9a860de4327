package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabhq/roster/internal/auth"
)

var _ = Describe("Hasher", func() {
	var hasher *auth.Hasher

	BeforeEach(func() {
		hasher = auth.NewHasher()
	})

	It("produces different hashes for the same plaintext", func() {
		first, err := hasher.Hash("Abcdef1!")
		Expect(err).NotTo(HaveOccurred())

		second, err := hasher.Hash("Abcdef1!")
		Expect(err).NotTo(HaveOccurred())

		Expect(first).NotTo(Equal(second))
	})

	It("verifies the plaintext against both hashes", func() {
		first, err := hasher.Hash("Abcdef1!")
		Expect(err).NotTo(HaveOccurred())
		second, err := hasher.Hash("Abcdef1!")
		Expect(err).NotTo(HaveOccurred())

		Expect(hasher.Verify("Abcdef1!", first)).To(BeTrue())
		Expect(hasher.Verify("Abcdef1!", second)).To(BeTrue())
	})

	It("rejects a wrong plaintext", func() {
		hash, err := hasher.Hash("Abcdef1!")
		Expect(err).NotTo(HaveOccurred())

		Expect(hasher.Verify("Abcdef1?", hash)).To(BeFalse())
	})

	It("fails closed on a malformed stored hash", func() {
		Expect(hasher.Verify("Abcdef1!", "")).To(BeFalse())
		Expect(hasher.Verify("Abcdef1!", "not-a-bcrypt-hash")).To(BeFalse())
		Expect(hasher.Verify("Abcdef1!", "$2a$garbage")).To(BeFalse())
	})

	It("rejects plaintexts beyond the bcrypt length limit", func() {
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'a'
		}
		_, err := hasher.Hash(string(long))
		Expect(err).To(HaveOccurred())
	})
})
