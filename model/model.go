package model

import "fmt"

// Clip describes the truncation interval of a distribution's support.
type Clip struct {
	Lower float64
	Upper float64
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

type QuantileSummary struct {
	QuantileValues map[string]*QuantileValue `json:"quantiles,omitempty"`
}

func (s *QuantileSummary) GetQuantileValue(value float64) (*QuantileValue, bool) {
	if s == nil || s.QuantileValues == nil {
		return nil, false
	}
	valueStr := fmt.Sprintf("%v", value)
	quantile, ok := s.QuantileValues[valueStr]
	return quantile, ok
}
