package model

import "encoding/json"

// Metric is an optional scalar statistic. The zero value is "not applicable".
// Modelled as an explicit present/absent pair so callers cannot mistake a
// missing metric for a metric equal to zero.
type Metric struct {
	Value float64
	Valid bool
}

// SomeMetric returns a present Metric holding v.
func SomeMetric(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// MarshalJSON renders an absent metric as null and a present one as its value.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON accepts null for absent and a number for present.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = SomeMetric(v)
	return nil
}
