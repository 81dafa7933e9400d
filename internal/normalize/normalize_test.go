package normalize

import (
	"testing"

	"github.com/JebBesecker03/roguedex-Tableau/internal/document"
	"github.com/JebBesecker03/roguedex-Tableau/internal/model"
)

func mustLoad(t *testing.T, data string) document.Document {
	t.Helper()
	doc, err := document.Load([]byte(data))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func TestRunIDFromDocument(t *testing.T) {
	doc := mustLoad(t, `{"run": {"run_id": "run_2026-01-28T21-15-03"}}`)
	result, err := Normalize("file_stem", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Run.RunID != "run_2026-01-28T21-15-03" {
		t.Fatalf("run_id: got %q", result.Run.RunID)
	}
}

func TestRunIDFallsBackToDocID(t *testing.T) {
	for _, data := range []string{`{}`, `{"run": {"run_id": ""}}`, `{"run": {"run_id": null}}`} {
		result, err := Normalize("run_X", mustLoad(t, data))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Run.RunID != "run_X" {
			t.Fatalf("run_id for %s: got %q, want run_X", data, result.Run.RunID)
		}
	}
}

func TestEncounterIDSynthesis(t *testing.T) {
	doc := mustLoad(t, `{"run": {"run_id": "r1"}, "encounters": [
		{}, {"encounter_id": "custom"}, {}
	]}`)
	result, err := Normalize("doc", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := []string{
		result.Encounters[0].EncounterID,
		result.Encounters[1].EncounterID,
		result.Encounters[2].EncounterID,
	}
	want := []string{"r1_000", "custom", "r1_002"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("encounter %d: got %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestTotalBattles(t *testing.T) {
	fiveEncounters := `"encounters": [{}, {}, {}, {}, {}]`

	result, err := Normalize("d", mustLoad(t, `{"run": {"total_battles": 0}, `+fiveEncounters+`}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Run.TotalBattles == nil || *result.Run.TotalBattles != 0 {
		t.Fatalf("explicit zero must win over fallback, got %v", result.Run.TotalBattles)
	}

	result, err = Normalize("d", mustLoad(t, `{"run": {}, `+fiveEncounters+`}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Run.TotalBattles == nil || *result.Run.TotalBattles != 5 {
		t.Fatalf("absent value should fall back to count, got %v", result.Run.TotalBattles)
	}

	result, err = Normalize("d", mustLoad(t, `{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Run.TotalBattles != nil {
		t.Fatalf("both absent should be null, got %v", result.Run.TotalBattles)
	}
}

func TestBattleIndexDefaultsToPosition(t *testing.T) {
	doc := mustLoad(t, `{"encounters": [{"battle_index": 9}, {}, {"battle_index": null}]}`)
	result, err := Normalize("d", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := result.Encounters[0].BattleIndex; got == nil || *got != 9 {
		t.Fatalf("explicit index: got %v", got)
	}
	if got := result.Encounters[1].BattleIndex; got == nil || *got != 1 {
		t.Fatalf("absent index should default to position, got %v", got)
	}
	if got := result.Encounters[2].BattleIndex; got != nil {
		t.Fatalf("present-null index stays null, got %v", got)
	}
}

func TestDerivedSessionFeatures(t *testing.T) {
	doc := mustLoad(t, `{"run": {"start_timestamp": "2026-01-28T21:15:03Z"}}`)
	result, err := Normalize("d", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run := result.Run
	if run.SessionDate == nil || *run.SessionDate != "2026-01-28" {
		t.Fatalf("session_date: got %v", run.SessionDate)
	}
	// 2026-01-28 is a Wednesday.
	if run.SessionDayOfWeek == nil || *run.SessionDayOfWeek != 3 {
		t.Fatalf("session_day_of_week: got %v", run.SessionDayOfWeek)
	}
	if run.TimeOfDayBucket == nil || *run.TimeOfDayBucket != "Evening" {
		t.Fatalf("time_of_day_bucket: got %v", run.TimeOfDayBucket)
	}
}

func TestDerivedFeaturesNullWithoutStart(t *testing.T) {
	doc := mustLoad(t, `{"run": {"end_timestamp": "2026-01-28T21:42:19Z"}}`)
	result, err := Normalize("d", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run := result.Run
	if run.SessionDate != nil || run.SessionDayOfWeek != nil || run.TimeOfDayBucket != nil {
		t.Fatalf("derived features must be null without a start timestamp: %+v", run)
	}
	if run.EndTimestamp == nil {
		t.Fatalf("end timestamp should still parse")
	}
}

func TestUnparsableTimestampIsFatal(t *testing.T) {
	doc := mustLoad(t, `{"run": {"start_timestamp": "last tuesday"}}`)
	if _, err := Normalize("d", doc); err == nil {
		t.Fatalf("expected error for unparsable timestamp")
	}
}

func TestWideToTallFidelity(t *testing.T) {
	doc := mustLoad(t, `{"encounters": [{
		"team_species_ids": [4, null, 1],
		"team_levels": [8, 7, 6]
	}]}`)
	result, err := Normalize("d", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No enemy species, so only the two non-null ally slots emit rows.
	if len(result.Participants) != 2 {
		t.Fatalf("participants: got %d, want 2", len(result.Participants))
	}

	first := result.Participants[0]
	if first.Side != model.SideAlly || first.SlotIndex != 0 || first.SpeciesID != "4" {
		t.Fatalf("first ally mismatch: %+v", first)
	}
	if first.Level == nil || *first.Level != 8 {
		t.Fatalf("first ally level: got %v", first.Level)
	}

	second := result.Participants[1]
	if second.SlotIndex != 2 || second.SpeciesID != "1" {
		t.Fatalf("null slot must not renumber later slots: %+v", second)
	}
	if second.Level == nil || *second.Level != 6 {
		t.Fatalf("second ally level: got %v", second.Level)
	}
}

func TestEnemyParticipantRequiresSpecies(t *testing.T) {
	doc := mustLoad(t, `{"encounters": [
		{"enemy_species": "Pidgey", "enemy_level": 5},
		{"enemy_level": 12}
	]}`)
	result, err := Normalize("d", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Participants) != 1 {
		t.Fatalf("participants: got %d, want 1", len(result.Participants))
	}
	enemy := result.Participants[0]
	if enemy.Side != model.SideEnemy || enemy.SlotIndex != 0 || enemy.SpeciesID != "Pidgey" {
		t.Fatalf("enemy row mismatch: %+v", enemy)
	}
	if enemy.Level == nil || *enemy.Level != 5 {
		t.Fatalf("enemy level: got %v", enemy.Level)
	}
}

func TestAllySlotsFixedArity(t *testing.T) {
	doc := mustLoad(t, `{"encounters": [{
		"team_species_ids": [1, 2, 3, 4, 5, 6, 7, 8],
		"team_levels": [10, 20]
	}]}`)
	result, err := Normalize("d", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enc := result.Encounters[0]
	if got := enc.Allies[0].SpeciesID; got == nil || *got != "1" {
		t.Fatalf("slot 1 species: got %v", got)
	}
	if got := enc.Allies[5].SpeciesID; got == nil || *got != "6" {
		t.Fatalf("slot 6 species: got %v", got)
	}
	if got := enc.Allies[0].Level; got == nil || *got != 10 {
		t.Fatalf("slot 1 level: got %v", got)
	}
	if got := enc.Allies[2].Level; got != nil {
		t.Fatalf("level past sequence end should be nil, got %v", got)
	}
}

func TestTeamSizeVerbatim(t *testing.T) {
	doc := mustLoad(t, `{"encounters": [{
		"team_size": 2,
		"team_species_ids": [4, 7, 1]
	}]}`)
	result, err := Normalize("d", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enc := result.Encounters[0]
	if enc.TeamSize == nil || *enc.TeamSize != 2 {
		t.Fatalf("team_size must not be recomputed, got %v", enc.TeamSize)
	}
}

func TestEndToEndDocument(t *testing.T) {
	doc := mustLoad(t, `{
		"run": {"start_timestamp": "2026-01-28T21:15:03Z"},
		"encounters": [{
			"enemy_species": 16,
			"enemy_level": 5,
			"team_species_ids": [4, 7, 1],
			"team_levels": [8, 7, 6]
		}]
	}`)

	result, err := Normalize("run_X", doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Run.RunID != "run_X" {
		t.Fatalf("run_id: got %q", result.Run.RunID)
	}
	if result.Run.TotalBattles == nil || *result.Run.TotalBattles != 1 {
		t.Fatalf("total_battles: got %v", result.Run.TotalBattles)
	}
	if len(result.Encounters) != 1 {
		t.Fatalf("encounters: got %d", len(result.Encounters))
	}

	enc := result.Encounters[0]
	if enc.EncounterID != "run_X_000" {
		t.Fatalf("encounter_id: got %q", enc.EncounterID)
	}
	row := enc.Row()
	for col, want := range map[string]string{
		"ally1_species_id": "4",
		"ally2_species_id": "7",
		"ally3_species_id": "1",
		"ally1_level":      "8",
	} {
		if row[col] != want {
			t.Fatalf("%s: got %q, want %q", col, row[col], want)
		}
	}
	if _, ok := row["ally4_species_id"]; ok {
		t.Fatalf("empty slot should not render a value")
	}

	if len(result.Participants) != 4 {
		t.Fatalf("participants: got %d, want 4", len(result.Participants))
	}
	if result.Participants[0].Side != model.SideEnemy {
		t.Fatalf("first participant should be the enemy: %+v", result.Participants[0])
	}
	for i, p := range result.Participants[1:] {
		if p.Side != model.SideAlly || p.SlotIndex != i {
			t.Fatalf("ally %d mismatch: %+v", i, p)
		}
	}
}
