package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is one loaded run-log file: the run descriptor plus its
// ordered encounter descriptors.
type Document struct {
	Run        Descriptor
	Encounters []Descriptor
}

// Load parses a run-log document. An absent run section becomes an empty
// descriptor and an absent encounter list becomes an empty sequence, so
// callers only ever see missing fields, never missing sections.
func Load(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw struct {
		Run        Descriptor   `json:"run"`
		Encounters []Descriptor `json:"encounters"`
	}
	if err := dec.Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}

	if raw.Run == nil {
		raw.Run = Descriptor{}
	}
	return Document{Run: raw.Run, Encounters: raw.Encounters}, nil
}
