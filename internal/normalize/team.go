package normalize

import "github.com/JebBesecker03/roguedex-Tableau/internal/model"

// allySlots folds the parallel team sequences into the fixed wide-form
// slots: positions past the sequence end stay nil, entries past the last
// slot are dropped.
func allySlots(species []*string, levels []*int64) [model.TeamSlots]model.AllySlot {
	var slots [model.TeamSlots]model.AllySlot
	for i := range slots {
		if i < len(species) {
			slots[i].SpeciesID = species[i]
		}
		if i < len(levels) {
			slots[i].Level = levels[i]
		}
	}
	return slots
}

// participantRows decomposes an encounter into tall form: one enemy row
// when an enemy species is known, then one ally row per team position
// with a species id. Null positions produce no row and do not renumber
// the positions after them.
func participantRows(enc model.EncounterRow, species []*string, levels []*int64) []model.ParticipantRow {
	var rows []model.ParticipantRow

	if enc.EnemySpecies != nil {
		rows = append(rows, model.ParticipantRow{
			EncounterID: enc.EncounterID,
			RunID:       enc.RunID,
			Side:        model.SideEnemy,
			SlotIndex:   0,
			SpeciesID:   *enc.EnemySpecies,
			Level:       enc.EnemyLevel,
		})
	}

	for i, sp := range species {
		if sp == nil {
			continue
		}
		row := model.ParticipantRow{
			EncounterID: enc.EncounterID,
			RunID:       enc.RunID,
			Side:        model.SideAlly,
			SlotIndex:   i,
			SpeciesID:   *sp,
		}
		if i < len(levels) {
			row.Level = levels[i]
		}
		rows = append(rows, row)
	}
	return rows
}
