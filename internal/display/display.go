// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output and logs; keep raw codes for JSON
// fields, map keys and equality comparisons.
package display

import "launchnote/internal/format"

// --- Annotators ---

var annotators = map[string]string{
	"cost":         "Launch cost",
	"payload_mass": "Payload mass",
}

// Annotator returns the human-readable name for an annotator or rule set code.
// Unknown codes are returned as-is.
func Annotator(code string) string {
	if name, ok := annotators[code]; ok {
		return name
	}
	return code
}

// AnnotatorWithCode returns "Launch cost (cost)" format.
func AnnotatorWithCode(code string) string {
	if name, ok := annotators[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Fields ---

var fields = map[string]string{
	"mission_name":             "Mission",
	"vehicle":                  "Vehicle",
	"launch_date":              "Launch date",
	"launch_cost_usd_millions": "Launch cost",
	"payload_mass_kg":          "Payload mass",
}

// Field returns the human-readable name for a record field.
func Field(key string) string {
	if name, ok := fields[key]; ok {
		return name
	}
	return key
}

// --- Units ---

var unitSuffix = map[string]string{
	"USD millions": "M USD",
	"kg":           "kg",
}

// Quantity renders a value with its unit suffix: "62 M USD", "17,400 kg".
// Unknown units are appended verbatim.
func Quantity(value int, unit string) string {
	suffix, ok := unitSuffix[unit]
	if !ok {
		suffix = unit
	}
	if suffix == "" {
		return format.FmtThousands(value)
	}
	return format.FmtThousands(value) + " " + suffix
}
