package dataset

import "fmt"

// Columns maps the logical fields onto the header names of the source
// sheets.
type Columns struct {
	Room         string `json:"room"`
	Capacity     string `json:"capacity"`
	Program      string `json:"program"`
	Period       string `json:"period"`
	Day          string `json:"day"`
	Session      string `json:"session"`
	Participants string `json:"participants"`
}

// SetDefaults fills unset names with the headers of the campus sheets.
func (c *Columns) SetDefaults() {
	if c.Room == "" {
		c.Room = "ruang"
	}
	if c.Capacity == "" {
		c.Capacity = "kapasitas"
	}
	if c.Program == "" {
		c.Program = "prodi"
	}
	if c.Period == "" {
		c.Period = "th_ajaran"
	}
	if c.Day == "" {
		c.Day = "hari"
	}
	if c.Session == "" {
		c.Session = "sesi"
	}
	if c.Participants == "" {
		c.Participants = "peserta"
	}
}

// Validate checks that every logical field has a header name.
func (c Columns) Validate() error {
	fields := map[string]string{
		"room":         c.Room,
		"capacity":     c.Capacity,
		"program":      c.Program,
		"period":       c.Period,
		"day":          c.Day,
		"session":      c.Session,
		"participants": c.Participants,
	}
	for name, v := range fields {
		if v == "" {
			return fmt.Errorf("column %s is required", name)
		}
	}
	return nil
}
