package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"intern@company.com", "lead.name+tag@sub.example.org"}
	invalid := []string{"", "no-at-sign", "missing@tld", "@example.com"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("short password accepted")
	}
	if ok, msg := ValidatePassword("longenough"); !ok {
		t.Errorf("valid password rejected: %s", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  name\x00  "); got != "name" {
		t.Errorf("SanitizeInput = %q, want %q", got, "name")
	}
}
