package model

// ReferenceRecord is one jurisdiction's static stamp duty data.
type ReferenceRecord struct {
	Jurisdiction    string   `json:"jurisdiction" yaml:"name"`
	RateDescription string   `json:"rateDescription" yaml:"rate_description"`
	ReferenceURL    string   `json:"referenceUrl" yaml:"reference_url"`
	MinRatePercent  *float64 `json:"minRatePercent,omitempty" yaml:"min_rate_percent,omitempty"`
	MaxRatePercent  *float64 `json:"maxRatePercent,omitempty" yaml:"max_rate_percent,omitempty"`
}
