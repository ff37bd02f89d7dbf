package card

import (
	"reflect"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
		wantNumber int
	}{
		{"simple", "LOB-001", "LOB", 1},
		{"language code", "LOB-EN001", "LOB", 1},
		{"large number", "SDK-1045", "SDK", 1045},
		{"no digits", "LOB", "LOB", 0},
		{"no digits with hyphen", "LOB-EN", "LOB", 0},
		{"digits only", "001", "", 1},
		{"empty", "", "", 0},
		{"leading zeros", "MRD-000", "MRD", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, number := ParseNumber(tt.input)
			if prefix != tt.wantPrefix {
				t.Errorf("ParseNumber(%q) prefix = %q, want %q", tt.input, prefix, tt.wantPrefix)
			}
			if number != tt.wantNumber {
				t.Errorf("ParseNumber(%q) number = %d, want %d", tt.input, number, tt.wantNumber)
			}
		})
	}
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple range",
			input: "LOB-001-003",
			want:  []string{"LOB-001", "LOB-002", "LOB-003"},
		},
		{
			name:  "single element range",
			input: "LOB-005-005",
			want:  []string{"LOB-005"},
		},
		{
			name:  "sub-prefix carried from start endpoint",
			input: "LOB-EN001-003",
			want:  []string{"LOB-EN001", "LOB-EN002", "LOB-EN003"},
		},
		{
			name:  "not a range",
			input: "LOB-001",
			want:  []string{"LOB-001"},
		},
		{
			name:  "reversed endpoints left as literal",
			input: "LOB-010-001",
			want:  []string{"LOB-010-001"},
		},
		{
			name:  "non-numeric endpoint left as literal",
			input: "LOB-abc-010",
			want:  []string{"LOB-abc-010"},
		},
		{
			name:  "too many segments left as literal",
			input: "LOB-001-002-003",
			want:  []string{"LOB-001-002-003"},
		},
		{
			name:  "bare string",
			input: "LOB",
			want:  []string{"LOB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandRange(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandRange(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandRange_Width(t *testing.T) {
	got := ExpandRange("LOB-008-012")
	want := []string{"LOB-008", "LOB-009", "LOB-010", "LOB-011", "LOB-012"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandRange() = %v, want %v", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		prefix string
		n      int
		want   string
	}{
		{"LOB", 1, "LOB-001"},
		{"LOB", 45, "LOB-045"},
		{"SDK", 1045, "SDK-1045"},
		{"", 7, "-007"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.prefix, tt.n); got != tt.want {
			t.Errorf("FormatNumber(%q, %d) = %q, want %q", tt.prefix, tt.n, got, tt.want)
		}
	}
}
