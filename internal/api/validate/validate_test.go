package validate

import "testing"

func TestFilename(t *testing.T) {
	valid := []string{"pic.png", "voice note.wav", "a", "entry-1_voice.wav"}
	for _, v := range valid {
		if err := Filename(v); err != nil {
			t.Errorf("Filename(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"", "..", "../x.png", "a/b.png", "a\\b.png", "x\x00y", string(make([]byte, 300))}
	for _, v := range invalid {
		if err := Filename(v); err == nil {
			t.Errorf("Filename(%q) = nil, want error", v)
		}
	}
}

func TestNonEmpty(t *testing.T) {
	if err := NonEmpty("query", "hello"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := NonEmpty("query", ""); err == nil {
		t.Errorf("expected error for empty value")
	}
}
