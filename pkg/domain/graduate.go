package domain

import (
	"encoding/json"
	"time"
)

// CeremonyDuration is the assumed length of a graduation ceremony,
// used to estimate the end time shown on the invitation.
const CeremonyDuration = 2 * time.Hour

// Venue is where the ceremony takes place.
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Parking string `json:"parking,omitempty"`
}

// Contact is how guests can reach the graduate.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Graduate is the person whose ceremony the invitation concerns.
// It is fetched from the API and never mutated client-side.
type Graduate struct {
	ID                 string    `json:"graduate_id"`
	Name               string    `json:"name"`
	Degree             string    `json:"degree"`
	Department         string    `json:"department"`
	GraduationAt       time.Time `json:"graduation_datetime"`
	Venue              Venue     `json:"venue"`
	InvitationTemplate string    `json:"invitation_template,omitempty"`
	PhotoURLs          []string  `json:"photo_urls,omitempty"`
	Contact            Contact   `json:"contact"`
}

// UnmarshalJSON accepts the graduate id under either "graduate_id" or the
// raw "_id" key; the backend emits one or the other depending on which
// serialization path produced the record.
func (g *Graduate) UnmarshalJSON(data []byte) error {
	type alias Graduate
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(g)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if g.ID == "" {
		g.ID = aux.MongoID
	}
	return nil
}

// EstimatedEnd returns the assumed ceremony end time.
func (g Graduate) EstimatedEnd() time.Time {
	return g.GraduationAt.Add(CeremonyDuration)
}
