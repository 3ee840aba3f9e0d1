package disease

import (
	"fmt"
	"strings"
)

// Catalog is the immutable disease reference set. Lookups preserve the order
// entries were registered in.
type Catalog struct {
	entries []*Info
	byID    map[string]*Info
}

func NewCatalog(entries []*Info) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Info, len(entries))}
	for _, d := range entries {
		if d.ID == "" {
			return nil, fmt.Errorf("disease %q: missing id", d.Name)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("disease %q: duplicate id", d.ID)
		}
		c.entries = append(c.entries, d)
		c.byID[d.ID] = d
	}
	return c, nil
}

func (c *Catalog) All() []*Info {
	out := make([]*Info, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) ByID(id string) (*Info, error) {
	d, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (c *Catalog) ByCategory(cat Category) []*Info {
	var out []*Info
	for _, d := range c.entries {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

func (c *Catalog) BySeverity(sev Severity) []*Info {
	var out []*Info
	for _, d := range c.entries {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Search matches the query against the English name, symptoms and category,
// and against the translated name and symptoms for lang when a translation
// exists. An empty query matches everything.
func (c *Catalog) Search(query, lang string) []*Info {
	term := strings.ToLower(query)
	var out []*Info
	for _, d := range c.entries {
		if matches(d, term, lang) {
			out = append(out, d)
		}
	}
	return out
}

func matches(d *Info, term, lang string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(string(d.Category), term) {
		return true
	}
	for _, s := range d.Symptoms {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	tr, ok := d.translation(lang)
	if !ok {
		return false
	}
	if strings.Contains(strings.ToLower(tr.Name), term) {
		return true
	}
	for _, s := range tr.Symptoms {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
