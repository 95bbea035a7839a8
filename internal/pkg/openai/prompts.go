package openai

import (
	"fmt"
	"strings"
)

const (
	systemPrompt = `You are an assistant that calculates ratios based on physical dimensions. ` +
		`You MUST respond ONLY with the valid JSON structure requested by the user. ` +
		`Adhere strictly to the key names and value types specified. ` +
		`The 'result' key must contain the specific calculation requested.`
)

// buildPrompt produces the user instruction for one item pair. Labels are
// embedded verbatim, whitespace included.
func buildPrompt(itemA string, itemB string) string {
	builder := strings.Builder{}
	builder.WriteString("You must respond ONLY with a valid JSON object.\n")
	builder.WriteString(fmt.Sprintf("Analyze item A: '%s' and item B: '%s'.\n", itemA, itemB))
	builder.WriteString("1. Estimate dimensions for A and B (e.g., area, volume).\n")
	builder.WriteString("2. Calculate the primary value: **How many times does item A fit inside item B?** Let this value be R = (Dimension of B) / (Dimension of A).\n")
	builder.WriteString("3. Create a brief explanation explaining the calculation method used to determine how many A fit in B. add a sarcastic or witty remark at the end. measure volume where possible.\n")
	builder.WriteString("4. Construct the JSON object with these EXACT keys and value types:\n")
	builder.WriteString("   { \n")
	builder.WriteString("     \"item_A_dimension\": number, \n")
	builder.WriteString("     \"item_B_dimension\": number, \n")
	builder.WriteString("     \"result\": number, \n")
	builder.WriteString("     \"explanation\": string \n")
	builder.WriteString("   } \n")
	builder.WriteString("CRITICAL: The value for the 'result' key MUST be the number R calculated in step 2 (How many A fit in B). Do NOT put any other number in the 'result' field.\n")
	builder.WriteString("Example 1: A='china', B='australia'. Areas are ~9.6M km² (A) and ~7.7M km² (B). R = B/A = 7.7/9.6 ≈ 0.8. The JSON 'result' key MUST contain approximately 0.8.\n")
	builder.WriteString("Example 2: A='100ml bottle', B='2 liter bottle'. Volumes are 100ml (A) and 2000ml (B). R = B/A = 2000/100 = 20. The JSON 'result' key MUST contain 20.\n")

	return builder.String()
}
