package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "2023-12-31", "2024-02-29"}
	invalid := []string{"2024-13-01", "2023-02-29", "01-01-2024", "2024/01/01", "", "yesterday"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestValidatePeriod(t *testing.T) {
	cases := []struct {
		month, year int
		wantErrs    int
	}{
		{1, 2024, 0},
		{12, 2024, 0},
		{0, 2024, 1},
		{13, 2024, 1},
		{6, 1999, 1},
		{0, 1800, 2},
	}
	for _, c := range cases {
		errs := ValidatePeriod(c.month, c.year)
		if len(errs) != c.wantErrs {
			t.Errorf("ValidatePeriod(%d, %d) = %d errors, want %d", c.month, c.year, len(errs), c.wantErrs)
		}
	}
}
