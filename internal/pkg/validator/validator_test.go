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

func TestIsValidPIN(t *testing.T) {
	valid := []string{"123456", "000000", "999999"}
	invalid := []string{"12345", "1234567", "12345a", "abcdef", "", " 12345"}
	for _, pin := range valid {
		if !IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = false, want true", pin)
		}
	}
	for _, pin := range invalid {
		if IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = true, want false", pin)
		}
	}
}

func TestIsValidSHA256Hex(t *testing.T) {
	valid := []string{
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855",
	}
	invalid := []string{
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b85",   // 63 chars
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b8555", // 65 chars
		"g3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", // invalid hex
		"",
	}
	for _, s := range valid {
		if !IsValidSHA256Hex(s) {
			t.Errorf("IsValidSHA256Hex(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidSHA256Hex(s) {
			t.Errorf("IsValidSHA256Hex(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"08:00", "23:59", "00:00"}
	invalid := []string{"24:00", "8:00:00pm", "0800", "", "12:60"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}
