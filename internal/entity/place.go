package entity

import "github.com/gofloaters/spacefinder/api/internal/geo"

// Place is a named reference point: a catalogue entry, a device fix or the default origin.
type Place struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	SecondaryText string         `json:"secondary_text,omitempty"`
	Coordinate    geo.Coordinate `json:"coordinate"`
}
