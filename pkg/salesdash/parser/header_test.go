package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

func labelOf(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestForwardFill(t *testing.T) {
	groups := ForwardFill([]string{"", "", "April", "", "", "May", ""})

	expected := []string{"<nil>", "<nil>", "April", "April", "April", "May", "May"}
	if len(groups) != len(expected) {
		t.Fatalf("Expected %d groups, got %d", len(expected), len(groups))
	}
	for i, want := range expected {
		if got := labelOf(groups[i]); got != want {
			t.Errorf("groups[%d] = %q, expected %q", i, got, want)
		}
	}
}

func TestForwardFillBlankLabels(t *testing.T) {
	groups := ForwardFill([]string{"", "", " June ", "   ", "July"})

	expected := []string{"<nil>", "<nil>", "June", "June", "July"}
	for i, want := range expected {
		if got := labelOf(groups[i]); got != want {
			t.Errorf("groups[%d] = %q, expected %q", i, got, want)
		}
	}
}

func TestReconstructHeader(t *testing.T) {
	sheet := models.RawSheet{Rows: [][]string{
		{"", "", "", "", "", ""},
		{"", "", "April", "", "May", ""},
		{"S.NO.", "STATE", "SALE", " SALARY ", "SALE", "EXP"},
	}}

	h, err := ReconstructHeader(sheet)
	if err != nil {
		t.Fatalf("ReconstructHeader failed: %v", err)
	}

	expected := []string{"S.NO.", "STATE", "April_SALE", "April_SALARY", "May_SALE", "May_EXP"}
	if len(h.Columns) != len(expected) {
		t.Fatalf("Expected %d columns, got %d", len(expected), len(h.Columns))
	}
	for i, want := range expected {
		if h.Columns[i].Name != want {
			t.Errorf("Columns[%d].Name = %q, expected %q", i, h.Columns[i].Name, want)
		}
	}

	if h.SerialColumn != "S_NO" {
		t.Errorf("Expected serial column S_NO, got %q", h.SerialColumn)
	}
	if h.RegionColumn != "STATE" {
		t.Errorf("Expected region column STATE, got %q", h.RegionColumn)
	}
	if !h.Columns[0].Identity || !h.Columns[1].Identity || h.Columns[2].Identity {
		t.Errorf("Identity flags wrong: %+v", h.Columns)
	}
	if len(h.ValueColumns()) != 4 {
		t.Errorf("Expected 4 value columns, got %d", len(h.ValueColumns()))
	}
}

func TestReconstructHeaderColumnBeforeFirstGroup(t *testing.T) {
	sheet := models.RawSheet{Rows: [][]string{
		{},
		{"", "", "", "April"},
		{"S.NO.", "", "SALE", "SALE"},
	}}

	h, err := ReconstructHeader(sheet)
	if err != nil {
		t.Fatalf("ReconstructHeader failed: %v", err)
	}
	if h.Columns[2].GroupLabel != nil {
		t.Errorf("Expected nil group label, got %q", *h.Columns[2].GroupLabel)
	}
	if h.Columns[2].Name != "_SALE" {
		t.Errorf("Expected '_SALE', got %q", h.Columns[2].Name)
	}
	if h.Columns[3].Name != "April_SALE" {
		t.Errorf("Expected 'April_SALE', got %q", h.Columns[3].Name)
	}
	if h.RegionColumn != DefaultRegionColumn {
		t.Errorf("Expected default region column, got %q", h.RegionColumn)
	}
}

func TestReconstructHeaderMalformed(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{"empty", nil},
		{"padding only", [][]string{{"title"}}},
		{"no sub-header", [][]string{{}, {"", "", "April"}}},
		{"single column", [][]string{{}, {""}, {"S.NO."}, {"1"}}},
	}

	for _, tt := range tests {
		_, err := ReconstructHeader(models.RawSheet{Rows: tt.rows})
		var mhe *MalformedHeaderError
		if !errors.As(err, &mhe) {
			t.Errorf("%s: expected MalformedHeaderError, got %v", tt.name, err)
		}
	}
}

func TestNormalizeIdentityName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"S.NO.", "S_NO"},
		{"STATE", "STATE"},
		{"Sr No", "Sr_No"},
		{"", "fallback"},
		{" . ", "fallback"},
	}

	for _, tt := range tests {
		if got := normalizeIdentityName(tt.input, "fallback"); got != tt.expected {
			t.Errorf("normalizeIdentityName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
