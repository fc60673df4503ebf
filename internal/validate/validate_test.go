package validate

import "testing"

func TestIsInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain digits", input: "42", want: true},
		{name: "negative", input: "-7", want: true},
		{name: "explicit positive", input: "+365", want: true},
		{name: "empty", input: "", want: false},
		{name: "sign only", input: "-", want: false},
		{name: "plus only", input: "+", want: false},
		{name: "letters", input: "12a", want: false},
		{name: "decimal point", input: "1.5", want: false},
		{name: "embedded space", input: "1 2", want: false},
		{name: "leading zeros", input: "007", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInteger(tt.input); got != tt.want {
				t.Errorf("IsInteger(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "integer form", input: "150000", want: true},
		{name: "one dot", input: "150000.50", want: true},
		{name: "negative decimal", input: "-0.01", want: true},
		{name: "signed no digits", input: "+", want: false},
		{name: "two dots", input: "1.2.3", want: false},
		{name: "empty", input: "", want: false},
		{name: "letters", input: "abc", want: false},
		{name: "trailing dot", input: "12.", want: true},
		{name: "leading dot", input: ".5", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDecimal(tt.input); got != tt.want {
				t.Errorf("IsDecimal(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "ordinary date", input: "10/03/2025", want: true},
		{name: "leap day in leap year", input: "29/02/2024", want: true},
		{name: "leap day in non-leap year", input: "29/02/2023", want: false},
		{name: "century non-leap", input: "29/02/1900", want: false},
		{name: "quadricentennial leap", input: "29/02/2000", want: true},
		{name: "april has 30 days", input: "31/04/2025", want: false},
		{name: "day zero", input: "00/01/2025", want: false},
		{name: "month zero", input: "15/00/2025", want: false},
		{name: "month 13", input: "15/13/2025", want: false},
		{name: "year below range", input: "01/01/1899", want: false},
		{name: "year above range", input: "01/01/2101", want: false},
		{name: "wrong separators", input: "10-03-2025", want: false},
		{name: "too short", input: "1/3/2025", want: false},
		{name: "letters in digits", input: "1a/03/2025", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDate(tt.input); got != tt.want {
				t.Errorf("IsDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateYear(t *testing.T) {
	year, ok := DateYear("10/03/2025")
	if !ok || year != 2025 {
		t.Errorf("DateYear(10/03/2025) = (%d, %v), want (2025, true)", year, ok)
	}

	if _, ok := DateYear("31/04/2025"); ok {
		t.Error("DateYear should reject an invalid date")
	}
}
