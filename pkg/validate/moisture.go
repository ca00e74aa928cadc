package validate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Upstream moisture readings arrive in several shapes: a bare number, an
// array of numbers, a JSON-encoded string of either, or garbage. They
// are normalized here, at the ingestion boundary, into a single tagged
// value so calculations never branch on runtime shape.

type MoistureKind int

const (
	MoistureScalar MoistureKind = iota
	MoistureList
	MoistureUnparseable
)

type MoistureValue struct {
	Kind   MoistureKind
	Scalar float64
	List   []float64
}

// NormalizeMoisture parses a raw JSON value into a MoistureValue. It
// never fails; anything it cannot make sense of becomes Unparseable.
func NormalizeMoisture(raw json.RawMessage) MoistureValue {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return MoistureValue{Kind: MoistureUnparseable}
	}

	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return MoistureValue{Kind: MoistureScalar, Scalar: scalar}
	}

	var list []float64
	if err := json.Unmarshal(raw, &list); err == nil {
		return MoistureValue{Kind: MoistureList, List: list}
	}

	// Some clients double-encode: the value is a JSON string holding a
	// number, or a number list, or a comma-separated list.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return normalizeString(s)
	}

	return MoistureValue{Kind: MoistureUnparseable}
}

func normalizeString(s string) MoistureValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return MoistureValue{Kind: MoistureUnparseable}
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return MoistureValue{Kind: MoistureScalar, Scalar: v}
	}

	var list []float64
	if err := json.Unmarshal([]byte(s), &list); err == nil {
		return MoistureValue{Kind: MoistureList, List: list}
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return MoistureValue{Kind: MoistureUnparseable}
		}
		values = append(values, v)
	}
	return MoistureValue{Kind: MoistureList, List: values}
}

// Average flattens a normalized reading to a single value. Unparseable
// readings and empty lists average to zero.
func (m MoistureValue) Average() float64 {
	switch m.Kind {
	case MoistureScalar:
		return m.Scalar
	case MoistureList:
		if len(m.List) == 0 {
			return 0
		}
		var sum float64
		for _, v := range m.List {
			sum += v
		}
		return sum / float64(len(m.List))
	default:
		return 0
	}
}
