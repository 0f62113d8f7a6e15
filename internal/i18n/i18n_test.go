package i18n

import "testing"

func TestDefaultLocaleVietnamese(t *testing.T) {
	tr := NewTranslator("vi")
	got := tr.T("vi", "error.invalid_code", nil)
	if got != "Vui lòng nhập đủ 6 chữ số." {
		t.Errorf("T(vi, error.invalid_code) = %q", got)
	}
}

func TestEnglishLocale(t *testing.T) {
	tr := NewTranslator("vi")
	got := tr.T("en", "error.invalid_code", nil)
	if got != "Please enter all 6 digits." {
		t.Errorf("T(en, error.invalid_code) = %q", got)
	}
}

func TestUnknownLocaleFallsBackToDefault(t *testing.T) {
	tr := NewTranslator("vi")
	got := tr.T("fr", "error.connection", nil)
	if got != "Lỗi kết nối máy chủ." {
		t.Errorf("T(fr, error.connection) = %q", got)
	}
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	tr := NewTranslator("vi")
	if got := tr.T("vi", "no.such.key", nil); got != "no.such.key" {
		t.Errorf("T(vi, no.such.key) = %q", got)
	}
}

func TestTemplateData(t *testing.T) {
	loc := NewTranslator("vi").Localizer("vi")
	got := loc.TData("invitation.greeting", map[string]any{"Guest": "Alice"})
	if got != "Trân trọng kính mời Alice" {
		t.Errorf("TData(invitation.greeting) = %q", got)
	}
}

func TestBadDefaultLocaleFallsBackToVietnamese(t *testing.T) {
	tr := NewTranslator("???")
	if got := tr.T("", "chat.you", nil); got != "Bạn" {
		t.Errorf("T = %q, want %q", got, "Bạn")
	}
}
