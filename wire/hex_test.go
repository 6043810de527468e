package wire_test

import (
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Djinn-Inc/djinn-sub001/field"
	"github.com/Djinn-Inc/djinn-sub001/wire"
)

var _ = Describe("Field element hex encoding", func() {
	It("round-trips through encode/decode", func() {
		e := field.NewElement(big.NewInt(123456789))
		encoded := wire.EncodeFieldElement(e)
		decoded, err := wire.DecodeFieldElement(encoded)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Equal(e)).To(BeTrue())
	})

	It("accepts a 0x-prefixed value", func() {
		e := field.NewElement(big.NewInt(42))
		decoded, err := wire.DecodeFieldElement("0x" + wire.EncodeFieldElement(e))
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Equal(e)).To(BeTrue())
	})

	It("rejects an out-of-range value", func() {
		tooLarge := new(big.Int).Add(field.Prime, big.NewInt(1))
		_, err := wire.DecodeFieldElement(tooLarge.Text(16))
		Expect(err).To(HaveOccurred())
	})

	It("rejects an empty string", func() {
		_, err := wire.DecodeFieldElement("")
		Expect(err).To(HaveOccurred())
	})
})
