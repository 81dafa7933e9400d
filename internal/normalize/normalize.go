package normalize

import (
	"fmt"
	"time"

	"github.com/JebBesecker03/roguedex-Tableau/internal/document"
	"github.com/JebBesecker03/roguedex-Tableau/internal/model"
	"github.com/JebBesecker03/roguedex-Tableau/internal/timestamp"
)

// Result holds every row produced from a single document.
type Result struct {
	Run          model.RunRow
	Encounters   []model.EncounterRow
	Participants []model.ParticipantRow
}

// Normalize converts one loaded document into relational rows. docID is
// the stable identifier derived from the input source (the file name
// without extension) and backs the run id when the document carries none.
// The only error source is an unparsable timestamp, which is fatal for
// this document; the caller decides whether to skip or abort.
func Normalize(docID string, doc document.Document) (Result, error) {
	run := doc.Run

	runID := docID
	if v := run.String("run_id"); v != nil && *v != "" {
		runID = *v
	}

	start, err := parseTimestampField(run, "start_timestamp")
	if err != nil {
		return Result{}, err
	}
	end, err := parseTimestampField(run, "end_timestamp")
	if err != nil {
		return Result{}, err
	}

	runRow := model.RunRow{
		RunID:          runID,
		StartTimestamp: start,
		EndTimestamp:   end,
		Result:         run.String("result"),
		FinalStage:     run.String("final_stage"),
		FinalBoss:      run.String("final_boss"),
		StarterSpecies: run.String("starter_species"),
		TotalBattles:   totalBattles(run, len(doc.Encounters)),
		RunTag:         run.String("run_tag"),
	}
	if start != nil {
		date := timestamp.Date(*start)
		dayOfWeek := timestamp.ISOWeekday(*start)
		bucket := timestamp.Bucket(*start)
		runRow.SessionDate = &date
		runRow.SessionDayOfWeek = &dayOfWeek
		runRow.TimeOfDayBucket = &bucket
	}

	result := Result{Run: runRow}
	for i, enc := range doc.Encounters {
		encounterRow, participantRows := buildEncounter(runID, i, enc)
		result.Encounters = append(result.Encounters, encounterRow)
		result.Participants = append(result.Participants, participantRows...)
	}
	return result, nil
}

func parseTimestampField(d document.Descriptor, key string) (*time.Time, error) {
	raw := d.String(key)
	if raw == nil {
		return nil, nil
	}
	t, err := timestamp.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return t, nil
}

// totalBattles keeps an explicit value, even zero; only absence falls
// back to the encounter count, and an empty list yields null.
func totalBattles(run document.Descriptor, encounterCount int) *int64 {
	if v := run.Int("total_battles"); v != nil {
		return v
	}
	if encounterCount > 0 {
		n := int64(encounterCount)
		return &n
	}
	return nil
}

func buildEncounter(runID string, idx int, enc document.Descriptor) (model.EncounterRow, []model.ParticipantRow) {
	encounterID := fmt.Sprintf("%s_%03d", runID, idx)
	if v := enc.String("encounter_id"); v != nil && *v != "" {
		encounterID = *v
	}

	battleIndex := enc.Int("battle_index")
	if !enc.Has("battle_index") {
		n := int64(idx)
		battleIndex = &n
	}

	teamSpecies := enc.ScalarList("team_species_ids")
	teamLevels := enc.IntList("team_levels")

	row := model.EncounterRow{
		EncounterID:     encounterID,
		RunID:           runID,
		BattleIndex:     battleIndex,
		EnemySpecies:    enc.String("enemy_species"),
		EnemyType1:      enc.String("enemy_type1"),
		EnemyType2:      enc.String("enemy_type2"),
		EnemyLevel:      enc.Int("enemy_level"),
		IsBoss:          enc.Bool("is_boss"),
		EncounterResult: enc.String("encounter_result"),
		EnemyEndedRun:   enc.Bool("enemy_ended_run"),
		Notes:           enc.String("notes"),
		TeamSize:        enc.Int("team_size"),
		Allies:          allySlots(teamSpecies, teamLevels),
	}

	return row, participantRows(row, teamSpecies, teamLevels)
}
