// Package metadata ties calibration measurements back to the experimental
// context that produced them. One record describes one circuit or sample:
// which experiment and pulse schedule generated it, the swept x-values, the
// physical qubits involved, and how qubit indices map onto classical
// register bits. Records are immutable after construction and export to a
// deterministic, JSON-representable mapping.
package metadata

import (
	"fmt"
	"math"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Config carries the construction-time fields of a record. Every field is
// optional; the zero value of each means "absent". RegisterMap is
// string-keyed because register maps typically arrive from deserialized
// JSON or YAML, where integer keys have already been stringified.
type Config struct {
	Name              string
	PulseScheduleName string
	XValues           map[string]float64
	Series            any
	ExpID             string
	Qubits            []int
	RegisterMap       map[string]any
}

// Metadata is the experimental context of one calibration sample.
// Series distinguishes experiment variants (e.g. the measurement basis of a
// Ramsey sequence) and may be a string or a number. Fields must not be
// mutated after construction.
type Metadata struct {
	Name              string
	PulseScheduleName string
	XValues           map[string]float64
	Series            any
	ExpID             string
	Qubits            []int
	RegisterMap       map[int]int
}

// New builds a record from cfg. Register-map keys and values are normalized
// to integers; a key or value that cannot be parsed aborts construction,
// since a record with corrupted wiring must not proceed into an experiment.
func New(cfg Config) (*Metadata, error) {
	md := &Metadata{
		Name:              cfg.Name,
		PulseScheduleName: cfg.PulseScheduleName,
		XValues:           cfg.XValues,
		Series:            cfg.Series,
		ExpID:             cfg.ExpID,
		Qubits:            cfg.Qubits,
	}

	if cfg.RegisterMap != nil {
		md.RegisterMap = make(map[int]int, len(cfg.RegisterMap))
		for key, value := range cfg.RegisterMap {
			qubit, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("register map: qubit index %q is not an integer", key)
			}
			clbit, err := toInt(value)
			if err != nil {
				return nil, fmt.Errorf("register map: classical bit for qubit %d: %w", qubit, err)
			}
			md.RegisterMap[qubit] = clbit
		}
	}

	return md, nil
}

// toInt normalizes the value forms that JSON and YAML decoders produce
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

// ToMap exports the record as an ordered mapping with the fixed key order
// name, series, x_values, pulse_schedule_name, exp_id, qubits,
// register_map. Values are the stored fields, untransformed; repeated calls
// on an unmodified record yield equal mappings. The returned map marshals
// to JSON in key order.
func (m *Metadata) ToMap() *orderedmap.OrderedMap[string, any] {
	out := orderedmap.New[string, any]()
	out.Set("name", m.Name)
	out.Set("series", m.Series)
	out.Set("x_values", m.XValues)
	out.Set("pulse_schedule_name", m.PulseScheduleName)
	out.Set("exp_id", m.ExpID)
	out.Set("qubits", m.Qubits)
	out.Set("register_map", m.RegisterMap)
	return out
}
