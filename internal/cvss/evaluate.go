package cvss

import (
	"math"
	"strconv"
	"strings"
)

// Evaluation is the outcome of Evaluate. Exactly one of the following holds:
// Empty is set, Result is set (the input was a vector), or only Score and
// Severity are set (the input was a bare score).
type Evaluation struct {
	Input    string   `json:"input"`
	Score    float64  `json:"score"`
	Severity Severity `json:"severity,omitempty"`
	Vector   string   `json:"vector,omitempty"`
	Result   *Result  `json:"result,omitempty"`
	Empty    bool     `json:"empty,omitempty"`
}

// Evaluate accepts either a CVSS v3.1 vector string or a bare numeric score,
// as analysts enter both into the same attribute field. Surrounding blanks
// are ignored. A vector is fully scored and its base score reported; a number
// in [0,10] is only rated.
func Evaluate(input string) (*Evaluation, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return &Evaluation{Input: input, Empty: true}, nil
	}

	if strings.HasPrefix(strings.ToUpper(in), "CVSS:") {
		res, err := CalculateFromVector(in)
		if err != nil {
			return nil, err
		}
		return &Evaluation{
			Input:    input,
			Score:    res.BaseScore(),
			Severity: res.BaseSeverity,
			Vector:   res.VectorString,
			Result:   res,
		}, nil
	}

	score, err := strconv.ParseFloat(in, 64)
	if err != nil || math.IsNaN(score) || score < 0 || score > 10 {
		return nil, newValidationError(MalformedVectorString, nil)
	}
	return &Evaluation{
		Input:    input,
		Score:    score,
		Severity: SeverityRating(score),
	}, nil
}
