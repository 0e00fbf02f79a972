package schemas

import "cvss-scoring-service-golang/internal/cvss"

type VectorRequest struct {
	Vector  string `json:"vector" example:"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"`
	Profile string `json:"profile,omitempty"`
}

type MetricsRequest struct {
	Metrics cvss.Metrics `json:"metrics"`
	Profile string       `json:"profile,omitempty"`
}

type EvaluateRequest struct {
	Input string `json:"input" example:"7.5"`
}

// ErrorResponse is the body of a rejected calculation. ErrorMetrics lists
// the offending metric abbreviations in canonical order.
type ErrorResponse struct {
	Success      bool     `json:"success"`
	ErrorType    string   `json:"errorType"`
	ErrorMetrics []string `json:"errorMetrics"`
}

type SeverityResponse struct {
	Score    float64       `json:"score"`
	Severity cvss.Severity `json:"severity"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
