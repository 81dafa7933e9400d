package model

import "fmt"

// TeamSlots is the fixed wide-form ally capacity per encounter.
const TeamSlots = 6

// EncountersTable is the per-battle output table.
var EncountersTable = Table{
	Name:    "encounters",
	Columns: encounterColumns(),
}

func encounterColumns() []string {
	cols := []string{
		"encounter_id",
		"run_id",
		"battle_index",
		"enemy_species",
		"enemy_type1",
		"enemy_type2",
		"enemy_level",
		"is_boss",
		"encounter_result",
		"enemy_ended_run",
		"notes",
		"team_size",
	}
	for i := 1; i <= TeamSlots; i++ {
		cols = append(cols, fmt.Sprintf("ally%d_species_id", i))
	}
	for i := 1; i <= TeamSlots; i++ {
		cols = append(cols, fmt.Sprintf("ally%d_level", i))
	}
	return cols
}

// AllySlot is one positional team member in an encounter snapshot.
type AllySlot struct {
	SpeciesID *string
	Level     *int64
}

// EncounterRow is one battle within a run, in wide form: the team
// snapshot occupies fixed positional ally columns.
type EncounterRow struct {
	EncounterID     string
	RunID           string
	BattleIndex     *int64
	EnemySpecies    *string
	EnemyType1      *string
	EnemyType2      *string
	EnemyLevel      *int64
	IsBoss          *bool
	EncounterResult *string
	EnemyEndedRun   *bool
	Notes           *string
	TeamSize        *int64
	Allies          [TeamSlots]AllySlot
}

func (e EncounterRow) Row() Row {
	row := Row{
		"encounter_id": e.EncounterID,
		"run_id":       e.RunID,
	}
	setInt(row, "battle_index", e.BattleIndex)
	setString(row, "enemy_species", e.EnemySpecies)
	setString(row, "enemy_type1", e.EnemyType1)
	setString(row, "enemy_type2", e.EnemyType2)
	setInt(row, "enemy_level", e.EnemyLevel)
	setBool(row, "is_boss", e.IsBoss)
	setString(row, "encounter_result", e.EncounterResult)
	setBool(row, "enemy_ended_run", e.EnemyEndedRun)
	setString(row, "notes", e.Notes)
	setInt(row, "team_size", e.TeamSize)
	for i, slot := range e.Allies {
		setString(row, fmt.Sprintf("ally%d_species_id", i+1), slot.SpeciesID)
		setInt(row, fmt.Sprintf("ally%d_level", i+1), slot.Level)
	}
	return row
}
