package model

import (
	"strconv"
	"time"

	"github.com/JebBesecker03/roguedex-Tableau/internal/timestamp"
)

// RunsTable is the per-session output table.
var RunsTable = Table{
	Name: "runs",
	Columns: []string{
		"run_id",
		"start_timestamp",
		"end_timestamp",
		"result",
		"final_stage",
		"final_boss",
		"starter_species",
		"total_battles",
		"session_date",
		"session_day_of_week",
		"time_of_day_bucket",
		"run_tag",
	},
}

// RunRow is one normalized play session. Nil fields are absent in the
// source and render as empty cells.
type RunRow struct {
	RunID            string
	StartTimestamp   *time.Time
	EndTimestamp     *time.Time
	Result           *string
	FinalStage       *string
	FinalBoss        *string
	StarterSpecies   *string
	TotalBattles     *int64
	SessionDate      *string
	SessionDayOfWeek *int
	TimeOfDayBucket  *string
	RunTag           *string
}

func (r RunRow) Row() Row {
	row := Row{"run_id": r.RunID}
	setTime(row, "start_timestamp", r.StartTimestamp)
	setTime(row, "end_timestamp", r.EndTimestamp)
	setString(row, "result", r.Result)
	setString(row, "final_stage", r.FinalStage)
	setString(row, "final_boss", r.FinalBoss)
	setString(row, "starter_species", r.StarterSpecies)
	setInt(row, "total_battles", r.TotalBattles)
	setString(row, "session_date", r.SessionDate)
	if r.SessionDayOfWeek != nil {
		row["session_day_of_week"] = strconv.Itoa(*r.SessionDayOfWeek)
	}
	setString(row, "time_of_day_bucket", r.TimeOfDayBucket)
	setString(row, "run_tag", r.RunTag)
	return row
}

func setString(row Row, col string, v *string) {
	if v != nil {
		row[col] = *v
	}
}

func setInt(row Row, col string, v *int64) {
	if v != nil {
		row[col] = strconv.FormatInt(*v, 10)
	}
}

func setBool(row Row, col string, v *bool) {
	if v != nil {
		row[col] = strconv.FormatBool(*v)
	}
}

func setTime(row Row, col string, v *time.Time) {
	if v != nil {
		row[col] = timestamp.Format(*v)
	}
}
