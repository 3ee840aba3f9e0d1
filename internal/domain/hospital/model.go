package hospital

import "fmt"

// Type classifies how a facility is operated.
type Type string

const (
	TypeGovernment Type = "government"
	TypePrivate    Type = "private"
	TypeSpecialty  Type = "specialty"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeGovernment, TypePrivate, TypeSpecialty:
		return Type(s), true
	}
	return "", false
}

// Hospital is one facility in the directory. Distance is relative to the
// city center reference point used by the seed data.
type Hospital struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Distance    string   `json:"distance"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Phone       string   `json:"phone"`
	Type        Type     `json:"type"`
	Specialties []string `json:"specialties"`
	Beds        int      `json:"beds"`
	Emergency   bool     `json:"emergency"`
	Ambulance   bool     `json:"ambulance"`
	OpenHours   string   `json:"open_hours"`
}

var ErrNotFound = fmt.Errorf("hospital not found")
