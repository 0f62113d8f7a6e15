package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValidCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"123456", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"12345a", false},
		{"12 456", false},
		{"", false},
		{"１２３４５６", false}, // full-width digits are not ASCII digits
	}
	for _, c := range cases {
		if got := ValidCode(c.code); got != c.want {
			t.Errorf("ValidCode(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestChatTargetIDPrefersTopLevel(t *testing.T) {
	v := VerifiedGuest{GraduateID: "g1", Graduate: Graduate{ID: "other"}}
	if got := v.ChatTargetID(); got != "g1" {
		t.Errorf("ChatTargetID() = %q, want %q", got, "g1")
	}
}

func TestChatTargetIDFallsBackToEmbedded(t *testing.T) {
	v := VerifiedGuest{Graduate: Graduate{ID: "g2"}}
	if got := v.ChatTargetID(); got != "g2" {
		t.Errorf("ChatTargetID() = %q, want %q", got, "g2")
	}
}

func TestGraduateUnmarshalMongoID(t *testing.T) {
	raw := `{"_id":"abc123","name":"Minh","graduation_datetime":"2026-06-20T09:00:00Z",` +
		`"venue":{"name":"Hall A","address":"1 Main St"},"contact":{"email":"m@x.vn","phone":"0901"}}`
	var g Graduate
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.ID != "abc123" {
		t.Errorf("ID = %q, want %q", g.ID, "abc123")
	}
	if g.Name != "Minh" {
		t.Errorf("Name = %q, want %q", g.Name, "Minh")
	}
}

func TestGraduateUnmarshalPrefersGraduateID(t *testing.T) {
	raw := `{"graduate_id":"g9","_id":"legacy","name":"An"}`
	var g Graduate
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.ID != "g9" {
		t.Errorf("ID = %q, want %q", g.ID, "g9")
	}
}

func TestEstimatedEnd(t *testing.T) {
	start := time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC)
	g := Graduate{GraduationAt: start}
	if got := g.EstimatedEnd(); !got.Equal(start.Add(2 * time.Hour)) {
		t.Errorf("EstimatedEnd() = %v, want %v", got, start.Add(2*time.Hour))
	}
}
