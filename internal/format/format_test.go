package format_test

import (
	"strings"
	"testing"

	"launchnote/internal/format"
)

func TestASCII_RuleTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Title("cost (USD millions)")
	tb.Header("#", "Rule", "Value")
	tb.Row(1, "falcon1", 7)
	tb.Row(2, "falcon_heavy", 97)
	out := tb.String()

	for _, want := range []string{"cost (USD millions)", "Rule", "falcon_heavy", "97"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := format.NewTable(format.ModeFor(true))
	tb.Header("Rule", "Records")
	tb.Row("falcon9_starlink", 120)
	tb.Row("falcon9_reused", 80)
	tb.Footer("TOTAL", 200)
	out := tb.String()

	if !strings.Contains(out, "| Rule") {
		t.Errorf("expected markdown header with '| Rule':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
	if !strings.Contains(out, "TOTAL") || !strings.Contains(out, "200") {
		t.Errorf("expected footer in output:\n%s", out)
	}
}

func TestColumns_RightAlign(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Rule", "Value")
	tb.Row("starlink_v2_mini", 17400)
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	if out := tb.String(); !strings.Contains(out, "17400") {
		t.Errorf("expected '17400' in output:\n%s", out)
	}
}

func TestModeFor(t *testing.T) {
	if format.ModeFor(false) != format.ASCII {
		t.Error("ModeFor(false) should be ASCII")
	}
	if format.ModeFor(true) != format.Markdown {
		t.Error("ModeFor(true) should be Markdown")
	}
}

func TestFmtMillions(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.0M"},
		{7, "$7.0M"},
		{558, "$558.0M"},
		{20.5, "$20.5M"},
		{12345.67, "$12345.7M"},
	}
	for _, tc := range tests {
		if got := format.FmtMillions(tc.in); got != tc.want {
			t.Errorf("FmtMillions(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFmtRatioAndPercent(t *testing.T) {
	if got := format.FmtRatio(8, 10); got != "8/10" {
		t.Errorf("FmtRatio = %q", got)
	}
	if got := format.FmtPercent(8, 10); got != "80.0%" {
		t.Errorf("FmtPercent = %q", got)
	}
	if got := format.FmtPercent(3, 0); got != "0.0%" {
		t.Errorf("FmtPercent empty = %q", got)
	}
}

func TestFmtThousands(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{17400, "17,400"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}
	for _, tc := range tests {
		if got := format.FmtThousands(tc.in); got != tc.want {
			t.Errorf("FmtThousands(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
