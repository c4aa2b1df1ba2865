package content

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document is the whole persisted content aggregate: section name -> section
// value. Sections are schema-less on purpose; the admin UI replaces them
// wholesale and the store never inspects their inner shape (photos excepted).
type Document map[string]json.RawMessage

// Photo describes one uploaded gallery image. ID is the generated storage
// filename and doubles as the public identifier; URL is derived from it.
type Photo struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// UnmarshalJSON tolerates junk positions: the photos section can be replaced
// wholesale through the content API, so position may arrive as a string,
// a float, or garbage. Anything non-numeric sorts as 0.
func (p *Photo) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       string          `json:"id"`
		URL      string          `json:"url"`
		Label    string          `json:"label"`
		Position json.RawMessage `json:"position"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.URL = raw.URL
	p.Label = raw.Label
	p.Position = coercePosition(raw.Position)
	return nil
}

func coercePosition(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}
