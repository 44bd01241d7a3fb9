package i18n

import "testing"

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestTranslator_DefaultAndCustom(t *testing.T) {
	if msg := T("discriminator_unknown", nil); msg == "discriminator_unknown" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes echo back, got %q", msg)
	}

	SetTranslator(upper{})
	if msg := T("parse_error", nil); msg != "X:parse_error" {
		t.Fatalf("custom translator not used, got %q", msg)
	}

	SetTranslator(nil)
	if msg := T("parse_error", nil); msg != "parse error" {
		t.Fatalf("reset failed, got %q", msg)
	}
}
