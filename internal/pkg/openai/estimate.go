package openai

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultExplanation is stored when the model response carries no usable
// explanation string.
const DefaultExplanation = "Explanation not provided by AI."

// ErrInvalidResponse is returned when the model output is not parseable JSON.
var ErrInvalidResponse = errors.New("AI returned invalid JSON format")

// Estimate is the normalized model answer. ResultValue is nil whenever the
// response did not carry a true JSON number under "result"; the dimensions are
// kept untyped, they only feed diagnostic logs.
type Estimate struct {
	Explanation    string
	ResultValue    *float64
	ItemADimension interface{}
	ItemBDimension interface{}
	Raw            string
}

// ParseEstimate normalizes raw model output. A malformed payload fails with
// ErrInvalidResponse; a missing or mistyped field never does. In particular
// "result" is accepted only when it decodes as a JSON number: strings, bools,
// null, arrays and objects all leave ResultValue nil.
func ParseEstimate(raw string) (*Estimate, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	estimate := &Estimate{
		Explanation:    DefaultExplanation,
		ItemADimension: fields["item_A_dimension"],
		ItemBDimension: fields["item_B_dimension"],
		Raw:            raw,
	}

	if explanation, ok := fields["explanation"].(string); ok {
		estimate.Explanation = explanation
	}

	// encoding/json decodes every JSON number as float64, so a type assertion
	// is exactly the numeric-or-absent check the result field needs.
	if result, ok := fields["result"].(float64); ok {
		estimate.ResultValue = &result
	}

	return estimate, nil
}
