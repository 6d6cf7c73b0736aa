// Package location provides the read-only Australian states, suburbs
// and postcodes reference data used by the address form.  The data is
// loaded from a bundled JSON file and never mutated; when the file is
// missing or unreadable a small hardcoded table keeps the address
// picker working.
package location

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

// Data is the full reference table.
type Data struct {
	States []State `json:"states"`
}

// State is one Australian state or territory.
type State struct {
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	PostcodeRange []string `json:"postcodeRange"`
	Suburbs       []Suburb `json:"suburbs"`
}

// Suburb is one suburb with its postcodes.
type Suburb struct {
	Name      string   `json:"name"`
	Postcodes []string `json:"postcodes"`
}

// Load reads the reference data from path, falling back to the builtin
// table on any error.  Load never fails; the fallback keeps the
// address picker usable without the bundled file.
func Load(path string) Data {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("locations: using fallback table: %v", err)
		return Fallback()
	}
	var d Data
	if err := json.Unmarshal(data, &d); err != nil {
		log.Printf("locations: using fallback table: %v", err)
		return Fallback()
	}
	return d
}

// FindState returns the state with the given code, if present.
func (d Data) FindState(code string) (State, bool) {
	for _, s := range d.States {
		if strings.EqualFold(s.Code, code) {
			return s, true
		}
	}
	return State{}, false
}

// FindSuburb returns the suburb with the given name, if present.
func (s State) FindSuburb(name string) (Suburb, bool) {
	for _, sub := range s.Suburbs {
		if strings.EqualFold(sub.Name, name) {
			return sub, true
		}
	}
	return Suburb{}, false
}

// Fallback returns the hardcoded minimal table used when the bundled
// file cannot be read.
func Fallback() Data {
	return Data{States: []State{
		{
			Name: "New South Wales", Code: "NSW", PostcodeRange: []string{"2000", "2999"},
			Suburbs: []Suburb{
				{Name: "Sydney", Postcodes: []string{"2000"}},
				{Name: "Parramatta", Postcodes: []string{"2150"}},
			},
		},
		{
			Name: "Victoria", Code: "VIC", PostcodeRange: []string{"3000", "3999"},
			Suburbs: []Suburb{
				{Name: "Melbourne", Postcodes: []string{"3000"}},
				{Name: "Geelong", Postcodes: []string{"3220"}},
			},
		},
		{
			Name: "Queensland", Code: "QLD", PostcodeRange: []string{"4000", "4999"},
			Suburbs: []Suburb{
				{Name: "Brisbane", Postcodes: []string{"4000"}},
				{Name: "Cairns", Postcodes: []string{"4870"}},
			},
		},
	}}
}
