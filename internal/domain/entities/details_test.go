package entities

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseExtractedDetails(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := ExtractedDetails{
			ItemRequested: StringPtr(ItemTypePowerUnit),
			Model:         StringPtr("PP650"),
			HoseLengthFt:  FloatPtr(30),
			PartsNeeded:   []PartRequest{{PartName: "HEPA_Filter", Quantity: 2}},
			Services:      []string{"New_System_Installation"},
			CustomerName:  StringPtr("Jane Doe"),
		}
		raw, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		out, err := ParseExtractedDetails(raw)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		again, _ := json.Marshal(out)
		if string(raw) != string(again) {
			t.Fatalf("round trip changed details:\n%s\n%s", raw, again)
		}
	})

	t.Run("whole-number float quantity", func(t *testing.T) {
		d, err := ParseExtractedDetails([]byte(`{"parts_needed":[{"part_name":"HEPA_Filter","quantity":2.0}]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.PartsNeeded) != 1 || d.PartsNeeded[0].Quantity != 2 {
			t.Fatalf("unexpected parts: %+v", d.PartsNeeded)
		}
		out, _ := json.Marshal(d)
		if string(out) != `{"parts_needed":[{"part_name":"HEPA_Filter","quantity":2}]}` {
			t.Fatalf("unexpected canonical form: %s", out)
		}
	})

	t.Run("empty object is valid", func(t *testing.T) {
		d, err := ParseExtractedDetails([]byte(" {} "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Model != nil || d.Services != nil {
			t.Fatalf("expected zero details, got %+v", d)
		}
	})

	cases := []struct{ name, raw string }{
		{"not an object", `"PP650"`},
		{"unknown key", `{"modle":"PP650"}`},
		{"wrong type", `{"hose_length_ft":"fifty"}`},
		{"trailing data", `{"model":"PP650"} x`},
		{"blank model", `{"model":"  "}`},
		{"zero hose", `{"hose_length_ft":0}`},
		{"part no name", `{"parts_needed":[{"quantity":1}]}`},
		{"part zero qty", `{"parts_needed":[{"part_name":"Filter","quantity":0}]}`},
		{"blank service", `{"services":[""]}`},
		{"fractional part qty", `{"parts_needed":[{"part_name":"Filter","quantity":2.5}]}`},
		{"unknown part key", `{"parts_needed":[{"part_name":"Filter","quantity":1,"colour":"red"}]}`},
		{"part qty as text", `{"parts_needed":[{"part_name":"Filter","quantity":"two"}]}`},
	}
	for _, tc := range cases {
		raw := tc.raw
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseExtractedDetails([]byte(raw))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Artifact != ArtifactDetails {
				t.Fatalf("unexpected artifact: %s", ve.Artifact)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	for in, want := range map[string]string{
		"System_Tune_Up":     "system-tune-up",
		" 50ft Retractable ": "50ft-retractable",
		"tune-up":            "tune-up",
	} {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
