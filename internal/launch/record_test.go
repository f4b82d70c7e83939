package launch

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustRecord(t *testing.T, doc string) *Record {
	t.Helper()
	r := &Record{}
	if err := json.Unmarshal([]byte(doc), r); err != nil {
		t.Fatalf("unmarshal %s: %v", doc, err)
	}
	return r
}

func keysOf(r *Record) []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.key
	}
	return keys
}

func TestRecord_KeepsKeyOrder(t *testing.T) {
	r := mustRecord(t, `{"flight_number": 1, "mission_name": "FalconSat", "vehicle": "Falcon 1", "extra": {"a": [1, 2]}}`)

	want := []string{"flight_number", "mission_name", "vehicle", "extra"}
	if diff := cmp.Diff(want, keysOf(r)); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := string(out); got != `{"flight_number":1,"mission_name":"FalconSat","vehicle":"Falcon 1","extra":{"a":[1,2]}}` {
		t.Errorf("Marshal = %s", got)
	}
}

func TestRecord_SetAppendsNewKeyAndReplacesInPlace(t *testing.T) {
	r := mustRecord(t, `{"mission_name": "CRS-21", "launch_cost_usd_millions": null, "vehicle": "Falcon 9 Block 5"}`)

	r.SetCost(62)
	r.SetPayloadMass(2500)

	want := []string{"mission_name", "launch_cost_usd_millions", "vehicle", "payload_mass_kg"}
	if diff := cmp.Diff(want, keysOf(r)); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if v, ok := r.Cost(); !ok || v != 62 {
		t.Errorf("Cost() = %v, %v; want 62, true", v, ok)
	}
	if v, _ := r.Get(FieldPayloadMass); v != 2500.0 {
		t.Errorf("Get(payload_mass_kg) = %v, want 2500", v)
	}
}

func TestRecord_Accessors(t *testing.T) {
	r := mustRecord(t, `{"mission_name": "Starlink Group 6-10", "vehicle": "Falcon 9 Block 5", "launch_date": "2023-08-27"}`)
	if got := r.MissionName(); got != "Starlink Group 6-10" {
		t.Errorf("MissionName() = %q", got)
	}
	if got := r.Vehicle(); got != "Falcon 9 Block 5" {
		t.Errorf("Vehicle() = %q", got)
	}
	if got := r.LaunchDate(); got != "2023-08-27" {
		t.Errorf("LaunchDate() = %q", got)
	}

	empty := mustRecord(t, `{"mission_name": "Unknown", "vehicle": null}`)
	if got := empty.Vehicle(); got != "" {
		t.Errorf("null vehicle = %q, want empty", got)
	}
	if got := empty.LaunchDate(); got != "" {
		t.Errorf("absent launch_date = %q, want empty", got)
	}
}

func TestRecord_HasCost(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{`{}`, false},
		{`{"launch_cost_usd_millions": null}`, false},
		{`{"launch_cost_usd_millions": 0}`, false},
		{`{"launch_cost_usd_millions": 0.0}`, false},
		{`{"launch_cost_usd_millions": ""}`, false},
		{`{"launch_cost_usd_millions": false}`, false},
		{`{"launch_cost_usd_millions": 62}`, true},
		{`{"launch_cost_usd_millions": 7.5}`, true},
		{`{"launch_cost_usd_millions": "n/a"}`, true},
		{`{"launch_cost_usd_millions": 1e400}`, true},
		{`{"launch_cost_usd_millions": 1e-400}`, true},
		{`{"launch_cost_usd_millions": -0.0e5}`, false},
	}
	for _, tc := range tests {
		if got := mustRecord(t, tc.doc).HasCost(); got != tc.want {
			t.Errorf("HasCost(%s) = %v, want %v", tc.doc, got, tc.want)
		}
	}
}

func TestRecord_MissingPayloadMass(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{`{}`, true},
		{`{"payload_mass_kg": null}`, true},
		{`{"payload_mass_kg": 0}`, true},
		{`{"payload_mass_kg": 0.0}`, true},
		{`{"payload_mass_kg": false}`, true},
		{`{"payload_mass_kg": ""}`, false},
		{`{"payload_mass_kg": 1}`, false},
		{`{"payload_mass_kg": 15600}`, false},
		{`{"payload_mass_kg": 1e400}`, false},
		{`{"payload_mass_kg": 0e400}`, true},
	}
	for _, tc := range tests {
		if got := mustRecord(t, tc.doc).MissingPayloadMass(); got != tc.want {
			t.Errorf("MissingPayloadMass(%s) = %v, want %v", tc.doc, got, tc.want)
		}
	}
}

func TestRecord_DuplicateKeyKeepsLastValue(t *testing.T) {
	r := mustRecord(t, `{"vehicle": "Falcon 1", "mission_name": "x", "vehicle": "Falcon 9"}`)
	if got := r.Vehicle(); got != "Falcon 9" {
		t.Errorf("Vehicle() = %q, want Falcon 9", got)
	}
	if diff := cmp.Diff([]string{"vehicle", "mission_name"}, keysOf(r)); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord_RejectsNonObject(t *testing.T) {
	r := &Record{}
	if err := json.Unmarshal([]byte(`[1, 2]`), r); err == nil {
		t.Fatal("expected error for array record")
	}
}

func TestRecord_Set(t *testing.T) {
	r := &Record{}
	if err := r.Set(FieldMissionName, "Demo-2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := r.Set("tags", []string{"crew", "iss"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := r.Get("tags")
	if !ok {
		t.Fatal("tags not found")
	}
	if diff := cmp.Diff([]any{"crew", "iss"}, got); diff != "" {
		t.Errorf("Get(tags) mismatch (-want +got):\n%s", diff)
	}
	if err := r.Set("bad", func() {}); err == nil {
		t.Error("expected error encoding a func value")
	}
}

func TestRecord_OutOfRangeNumber(t *testing.T) {
	r := mustRecord(t, `{"vehicle": "Falcon 1", "launch_cost_usd_millions": 1e400}`)
	got, ok := r.Get(FieldCost)
	if !ok {
		t.Fatal("out-of-range cost reported as absent")
	}
	if diff := cmp.Diff(json.Number("1e400"), got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}
	if _, ok := r.Cost(); ok {
		t.Error("Cost() should not report a float for 1e400")
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := string(out); got != `{"vehicle":"Falcon 1","launch_cost_usd_millions":1e400}` {
		t.Errorf("Marshal = %s", got)
	}
}
