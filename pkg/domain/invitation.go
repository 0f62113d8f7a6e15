package domain

// CodeLength is the exact length of an invitation code.
const CodeLength = 6

// ValidCode reports whether s is a well-formed invitation code:
// exactly six ASCII digits. Codes failing this check must never
// be submitted to the API.
func ValidCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Invitation is one issued (graduate, guest, code) tuple.
type Invitation struct {
	Code       string `json:"invitation_code"`
	GraduateID string `json:"graduate_id"`
	GuestName  string `json:"guest_name"`
}

// VerifiedGuest is the payload of a successful code verification.
// It is the sole trigger for the gate → invitation transition and the
// source of truth for everything the invitation view renders.
type VerifiedGuest struct {
	GraduateID string   `json:"graduate_id"`
	GuestName  string   `json:"guest_name"`
	Graduate   Graduate `json:"graduate_info"`
}

// ChatTargetID resolves which graduate identifier chat requests are
// addressed to. The top-level id is authoritative; the embedded
// graduate's own id is a fallback for older payloads that omit it.
func (v VerifiedGuest) ChatTargetID() string {
	if v.GraduateID != "" {
		return v.GraduateID
	}
	return v.Graduate.ID
}
