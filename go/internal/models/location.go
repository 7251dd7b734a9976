package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Location struct {
	Street      *Street      `json:"street"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Country     string       `json:"country"`
	Postcode    Postcode     `json:"postcode"`
	Coordinates *Coordinates `json:"coordinates"`
	Timezone    *Timezone    `json:"timezone"`
}

type Street struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Coordinates are transmitted as decimal strings.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Timezone struct {
	Offset      string `json:"offset"`
	Description string `json:"description"`
}

// Postcode is sent as a JSON number for some nationalities and as a string
// for others; both decode to the same textual form.
type Postcode string

func (p *Postcode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("postcode: %w", err)
		}
		*p = Postcode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("postcode: %w", err)
	}
	*p = Postcode(n.String())
	return nil
}

func (p Postcode) String() string {
	return string(p)
}
