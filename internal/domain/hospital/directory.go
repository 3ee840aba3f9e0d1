package hospital

import (
	"fmt"
	"strings"
)

// Directory is the immutable facility listing, ordered by distance.
type Directory struct {
	entries []*Hospital
	byID    map[string]*Hospital
}

func NewDirectory(entries []*Hospital) (*Directory, error) {
	d := &Directory{byID: make(map[string]*Hospital, len(entries))}
	for _, h := range entries {
		if h.ID == "" {
			return nil, fmt.Errorf("hospital %q: missing id", h.Name)
		}
		if _, dup := d.byID[h.ID]; dup {
			return nil, fmt.Errorf("hospital %q: duplicate id", h.ID)
		}
		d.entries = append(d.entries, h)
		d.byID[h.ID] = h
	}
	return d, nil
}

func (d *Directory) All() []*Hospital {
	out := make([]*Hospital, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Directory) ByID(id string) (*Hospital, error) {
	h, ok := d.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return h, nil
}

func (d *Directory) ByType(t Type) []*Hospital {
	var out []*Hospital
	for _, h := range d.entries {
		if h.Type == t {
			out = append(out, h)
		}
	}
	return out
}

func (d *Directory) WithEmergency() []*Hospital {
	var out []*Hospital
	for _, h := range d.entries {
		if h.Emergency {
			out = append(out, h)
		}
	}
	return out
}

// BySpecialty matches substrings of a facility's specialties, case
// insensitively, so "cardio" finds both Cardiology and Cardiac Surgery.
func (d *Directory) BySpecialty(specialty string) []*Hospital {
	term := strings.ToLower(specialty)
	var out []*Hospital
	for _, h := range d.entries {
		for _, s := range h.Specialties {
			if strings.Contains(strings.ToLower(s), term) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

// Search matches against facility names and specialties.
func (d *Directory) Search(query string) []*Hospital {
	term := strings.ToLower(query)
	var out []*Hospital
	for _, h := range d.entries {
		if hospitalMatches(h, term) {
			out = append(out, h)
		}
	}
	return out
}

func hospitalMatches(h *Hospital, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(h.Name), term) {
		return true
	}
	for _, s := range h.Specialties {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
