package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("nom", "  ", v)
	Required("email", "a@b.c", v)
	if v["nom"] != "required" {
		t.Fatalf("expected required violation, got %q", v["nom"])
	}
	if _, ok := v["email"]; ok {
		t.Fatalf("unexpected violation on email")
	}
}

func TestEmail(t *testing.T) {
	v := Violations{}
	Email("email", "not-an-email", v)
	if v["email"] != "invalid_email" {
		t.Fatalf("expected invalid_email, got %q", v["email"])
	}
	v = Violations{}
	Email("email", "alice@shop.sn", v)
	Email("optional", "", v)
	if !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
}

func TestPhone(t *testing.T) {
	cases := map[string]bool{
		"+221 77 123 45 67": true,
		"771234567":         true,
		"12345":             false,
		"abc12345678":       false,
		"":                  true, // optional
	}
	for in, ok := range cases {
		v := Violations{}
		Phone("telephone", in, v)
		if ok != v.Empty() {
			t.Fatalf("Phone(%q): violations %v", in, v)
		}
	}
}

func TestFieldsMatch(t *testing.T) {
	v := Violations{}
	FieldsMatch("confirmPassword", "secret12", "secret13", v)
	if v["confirmPassword"] != "fields_mismatch" {
		t.Fatalf("expected fields_mismatch, got %q", v["confirmPassword"])
	}
}

func TestMinLen(t *testing.T) {
	v := Violations{}
	MinLen("password", "abc", 8, v)
	if v["password"] != "too_short" {
		t.Fatalf("expected too_short, got %q", v["password"])
	}
	v = Violations{}
	MinLen("password", "", 8, v)
	if !v.Empty() {
		t.Fatalf("empty value should be left to Required")
	}
}
