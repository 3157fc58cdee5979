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
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestIsValidHexColor(t *testing.T) {
	valid := []string{"#22c55e", "#EF4444", "#ffffff"}
	invalid := []string{"22c55e", "#fff", "#22c55ez", "#22c55e1", ""}
	for _, c := range valid {
		if !IsValidHexColor(c) {
			t.Errorf("IsValidHexColor(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidHexColor(c) {
			t.Errorf("IsValidHexColor(%q) = true, want false", c)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "tolerance", Message: "must be non-negative"},
		{Field: "color", Message: "invalid hex color"},
	}
	got := errs.Error()
	want := "tolerance: must be non-negative; color: invalid hex color"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "tolerance", Message: "must be non-negative"},
		{Field: "color", Message: "invalid hex color"},
	}
	got := errs.ToMap()
	want := map[string]string{"tolerance": "must be non-negative", "color": "invalid hex color"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
