package openai_test

import (
	"fitratio/internal/pkg/openai"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseEstimate", func() {
	It("accepts an integer result as a float", func() {
		estimate, err := openai.ParseEstimate(`{"result": 20, "explanation": "x"}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(estimate.ResultValue).To(HaveValue(Equal(20.0)))
		Expect(estimate.Explanation).To(Equal("x"))
	})

	It("accepts a fractional result", func() {
		estimate, err := openai.ParseEstimate(`{"result": 0.8, "explanation": "x"}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(estimate.ResultValue).To(HaveValue(Equal(0.8)))
	})

	It("rejects a string result without failing", func() {
		estimate, err := openai.ParseEstimate(`{"result": "20", "explanation": "x"}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(estimate.ResultValue).To(BeNil())
	})

	It("rejects boolean, null, array and object results", func() {
		for _, raw := range []string{
			`{"result": true}`,
			`{"result": null}`,
			`{"result": [20]}`,
			`{"result": {"value": 20}}`,
		} {
			estimate, err := openai.ParseEstimate(raw)

			Expect(err).NotTo(HaveOccurred(), raw)
			Expect(estimate.ResultValue).To(BeNil(), raw)
		}
	})

	It("fails with ErrInvalidResponse on malformed text", func() {
		_, err := openai.ParseEstimate(`{not json`)

		Expect(err).To(MatchError(openai.ErrInvalidResponse))
	})

	It("substitutes the default explanation for an empty object", func() {
		estimate, err := openai.ParseEstimate(`{}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(estimate.Explanation).To(Equal("Explanation not provided by AI."))
		Expect(estimate.ResultValue).To(BeNil())
	})

	It("substitutes the default explanation when the field is not a string", func() {
		estimate, err := openai.ParseEstimate(`{"explanation": 42}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(estimate.Explanation).To(Equal(openai.DefaultExplanation))
	})

	It("captures the dimension fields untyped", func() {
		estimate, err := openai.ParseEstimate(`{"item_A_dimension": 100, "item_B_dimension": "2000ml"}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(estimate.ItemADimension).To(Equal(100.0))
		Expect(estimate.ItemBDimension).To(Equal("2000ml"))
	})

	It("keeps the raw payload for diagnostics", func() {
		raw := `{"result": 2}`
		estimate, err := openai.ParseEstimate(raw)

		Expect(err).NotTo(HaveOccurred())
		Expect(estimate.Raw).To(Equal(raw))
	})
})
