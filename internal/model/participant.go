package model

import "strconv"

// Participant sides.
const (
	SideEnemy = "enemy"
	SideAlly  = "ally"
)

// ParticipantsTable is the tall-form combatant table.
var ParticipantsTable = Table{
	Name: "encounter_participants",
	Columns: []string{
		"encounter_id",
		"run_id",
		"side",
		"slot_index",
		"species_id",
		"level",
	},
}

// ParticipantRow is one combatant within one encounter, identified by
// (encounter_id, side, slot_index). The enemy always occupies slot 0;
// allies keep their position in the team sequence even when earlier
// slots are empty.
type ParticipantRow struct {
	EncounterID string
	RunID       string
	Side        string
	SlotIndex   int
	SpeciesID   string
	Level       *int64
}

func (p ParticipantRow) Row() Row {
	row := Row{
		"encounter_id": p.EncounterID,
		"run_id":       p.RunID,
		"side":         p.Side,
		"slot_index":   strconv.Itoa(p.SlotIndex),
		"species_id":   p.SpeciesID,
	}
	setInt(row, "level", p.Level)
	return row
}
