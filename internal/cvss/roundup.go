package cvss

import "math"

// RoundUp1 returns the smallest number with one decimal place that is equal
// to or higher than input. The input is first scaled to an integer so that
// values such as 4.000000000000001 do not round up to 4.1.
//
// The domain is the score range [0,10]; inputs outside it are clamped.
func RoundUp1(input float64) float64 {
	input = math.Max(0, math.Min(input, 10))
	intInput := int64(math.Round(input * 100000))
	if intInput%10000 == 0 {
		return float64(intInput) / 100000
	}
	return float64(intInput/10000+1) / 10
}
