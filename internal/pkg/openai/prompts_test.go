package openai

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("buildPrompt", func() {
	It("embeds both labels verbatim", func() {
		prompt := buildPrompt("a coffee mug", "an olympic swimming pool")

		Expect(prompt).To(ContainSubstring("'a coffee mug'"))
		Expect(prompt).To(ContainSubstring("'an olympic swimming pool'"))
	})

	It("preserves surrounding whitespace in labels", func() {
		prompt := buildPrompt("  mug ", "\tpool")

		Expect(prompt).To(ContainSubstring("'  mug '"))
		Expect(prompt).To(ContainSubstring("'\tpool'"))
	})

	It("names the four required JSON keys", func() {
		prompt := buildPrompt("mug", "pool")

		Expect(prompt).To(ContainSubstring(`"item_A_dimension"`))
		Expect(prompt).To(ContainSubstring(`"item_B_dimension"`))
		Expect(prompt).To(ContainSubstring(`"result"`))
		Expect(prompt).To(ContainSubstring(`"explanation"`))
	})

	It("fixes the arithmetic convention as B over A", func() {
		prompt := buildPrompt("mug", "pool")

		Expect(prompt).To(ContainSubstring("R = (Dimension of B) / (Dimension of A)"))
	})

	It("anchors the convention with worked examples", func() {
		prompt := buildPrompt("mug", "pool")

		Expect(prompt).To(ContainSubstring("R = B/A = 2000/100 = 20"))
		Expect(prompt).To(ContainSubstring("Example 1"))
		Expect(prompt).To(ContainSubstring("Example 2"))
	})

	It("asks for a witty remark inside the explanation", func() {
		prompt := buildPrompt("mug", "pool")

		Expect(prompt).To(ContainSubstring("sarcastic or witty remark"))
	})
})
