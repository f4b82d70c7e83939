// Package launch holds the launch record model and the whole-file record
// collection store.
//
// A Record keeps every field of the source document in source order so a
// load/save cycle rewrites only what the annotators set.
package launch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Field names read or written by the annotators.
const (
	FieldMissionName = "mission_name"
	FieldVehicle     = "vehicle"
	FieldLaunchDate  = "launch_date"
	FieldCost        = "launch_cost_usd_millions"
	FieldPayloadMass = "payload_mass_kg"
)

type field struct {
	key string
	raw json.RawMessage
}

// Record is one launch entry. The zero value is an empty record.
// Records are safe for concurrent use; passes writing different fields may
// share a record.
type Record struct {
	mu     sync.Mutex
	fields []field
}

// Collection is the ordered set of launch records, loaded and saved as a unit.
type Collection []*Record

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (r *Record) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setLocked(key, raw)
	return nil
}

// Get returns the decoded value of key. Numbers decode to float64; a number
// float64 cannot hold is returned as a json.Number.
func (r *Record) Get(key string) (any, bool) {
	raw, ok := r.raw(key)
	if !ok {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return r.value(key)
	}
	return v, true
}

// MissionName returns mission_name, or "" when absent.
func (r *Record) MissionName() string { return r.str(FieldMissionName) }

// Vehicle returns vehicle, or "" when absent.
func (r *Record) Vehicle() string { return r.str(FieldVehicle) }

// LaunchDate returns launch_date (YYYY-MM-DD), or "" when absent.
func (r *Record) LaunchDate() string { return r.str(FieldLaunchDate) }

// Cost returns the numeric launch cost in USD millions.
func (r *Record) Cost() (float64, bool) { return r.number(FieldCost) }

// HasCost reports whether the cost field holds a truthy value.
func (r *Record) HasCost() bool {
	v, ok := r.value(FieldCost)
	return ok && truthy(v)
}

// SetCost stores an estimated launch cost in USD millions.
func (r *Record) SetCost(millions int) { _ = r.Set(FieldCost, millions) }

// MissingPayloadMass reports whether payload_mass_kg is absent, null or zero.
func (r *Record) MissingPayloadMass() bool {
	v, ok := r.value(FieldPayloadMass)
	if !ok || v == nil {
		return true
	}
	switch x := v.(type) {
	case json.Number:
		return zeroNumber(x)
	case bool:
		return !x
	}
	return false
}

// SetPayloadMass stores an estimated payload mass in kg.
func (r *Record) SetPayloadMass(kg int) { _ = r.Set(FieldPayloadMass, kg) }

// MarshalJSON writes the fields in document order.
func (r *Record) MarshalJSON() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping key order. A repeated key keeps
// its first position and its last value.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("launch record must be a JSON object")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields = r.fields[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in launch record", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		r.setLocked(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// value decodes key keeping numbers as json.Number, so presence checks never
// depend on float64 range.
func (r *Record) value(key string) (any, bool) {
	raw, ok := r.raw(key)
	if !ok {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return raw, true
	}
	return v, true
}

func (r *Record) raw(key string) (json.RawMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.fields {
		if f.key == key {
			return f.raw, true
		}
	}
	return nil, false
}

func (r *Record) setLocked(key string, raw json.RawMessage) {
	for i := range r.fields {
		if r.fields[i].key == key {
			r.fields[i].raw = raw
			return
		}
	}
	r.fields = append(r.fields, field{key: key, raw: raw})
}

func (r *Record) str(key string) string {
	v, _ := r.Get(key)
	s, _ := v.(string)
	return s
}

func (r *Record) number(key string) (float64, bool) {
	v, _ := r.value(key)
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// zeroNumber reports whether every mantissa digit of n is 0.
func zeroNumber(n json.Number) bool {
	for _, c := range n {
		switch {
		case c == 'e' || c == 'E':
			return true
		case c >= '1' && c <= '9':
			return false
		}
	}
	return true
}

// truthy follows the usual dynamic-language notion of an empty value.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		return !zeroNumber(x)
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}
