package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/domain/settings"
)

// Column headers of the punch-clock export layout. The reader hands rows
// over keyed by these exact strings.
const (
	ColumnName       = "Nome"
	ColumnDepartment = "Departamento"
	ColumnLocation   = "Localização"
	ColumnEquipment  = "Equipamento da Última Batida"
	ColumnSchedule   = "Horário contratual"
)

// PunchColumn returns the header of the nth punch column, 1-based.
func PunchColumn(n int) string {
	return fmt.Sprintf("Data e Hora da Batida %d", n)
}

// RawRow is one spreadsheet row mapped onto the known columns. Punches
// holds the five punch fields in column order.
type RawRow struct {
	Name       string
	Department string
	Location   string
	Equipment  string
	Schedule   string
	Punches    [5]string
}

// RowFromMap picks the known columns out of a header-keyed row. Columns
// absent from the sheet come through as empty strings.
func RowFromMap(row map[string]string) RawRow {
	r := RawRow{
		Name:       row[ColumnName],
		Department: row[ColumnDepartment],
		Location:   row[ColumnLocation],
		Equipment:  row[ColumnEquipment],
		Schedule:   row[ColumnSchedule],
	}
	for i := range r.Punches {
		r.Punches[i] = row[PunchColumn(i+1)]
	}
	return r
}

// Reconciler turns raw punch-clock rows into classified time records.
// Now and NewID are injectable so imports are reproducible under test.
type Reconciler struct {
	Now   func() time.Time
	NewID func() string
}

func NewReconciler() *Reconciler {
	return &Reconciler{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// parsePunchDate reads the "DD/MM/YYYY" date prefix of the first punch
// field. The second return value reports whether a valid date was found.
func parsePunchDate(field string) (time.Time, bool) {
	parts := strings.Fields(strings.TrimSpace(field))
	if len(parts) == 0 {
		return time.Time{}, false
	}
	t, err := time.Parse("02/01/2006", parts[0])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Reconcile processes a single row: contractual schedule, entry and exit
// punches, and the status of each side under the owner's tolerances.
//
// The record date comes from the first punch field. When that date is
// missing or malformed the record falls back to the import date, and no
// exit is selected, because the exit column depends on the weekday.
func (r *Reconciler) Reconcile(row RawRow, ownerID string, tolerances settings.ToleranceConfig) record.TimeRecord {
	rec := record.TimeRecord{
		ID:         r.NewID(),
		OwnerID:    ownerID,
		Name:       row.Name,
		Department: row.Department,
		Location:   row.Location,
		Equipment:  row.Equipment,
		CreatedAt:  r.Now(),
	}

	contractualEntry, contractualExit := ParseContractualHours(row.Schedule)
	if contractualEntry != "" {
		rec.ContractualEntry = &contractualEntry
	}
	if contractualExit != "" {
		rec.ContractualExit = &contractualExit
	}

	punchDate, dateKnown := parsePunchDate(row.Punches[0])
	if !dateKnown {
		punchDate = r.Now()
	}
	rec.PunchDate = punchDate.Format("2006-01-02")

	entry := ExtractPunch(row.Punches[0])
	if !entry.IsZero() {
		rec.ActualEntry = &entry.Time
		rec.EntryAdjusted = entry.Adjusted
	}
	rec.EntryStatus = Classify(contractualEntry, entry, tolerances.ForEntry())

	var exit Punch
	var forcedEarly bool
	if dateKnown {
		exit, forcedEarly = SelectExitPunch(punchDate.Weekday(), row.Punches)
	}
	if !exit.IsZero() {
		rec.ActualExit = &exit.Time
		rec.ExitAdjusted = exit.Adjusted
	}
	if forcedEarly {
		// An exit pulled forward from the intermediate column is an early
		// departure no matter what the clock comparison would say.
		early := record.StatusEarly
		rec.ExitStatus = &early
	} else {
		rec.ExitStatus = Classify(contractualExit, exit, tolerances.ForExit())
	}

	return rec
}

// ReconcileBatch processes every row of a parsed sheet. The batch is
// rejected up front when the sheet has no data rows or its first row
// lacks the "Nome" column; individual malformed values never abort the
// batch, they degrade to absent fields on their own record.
func (r *Reconciler) ReconcileBatch(rows []map[string]string, ownerID string, tolerances settings.ToleranceConfig) ([]record.TimeRecord, error) {
	if len(rows) == 0 {
		return nil, record.ErrEmptyWorkbook
	}
	if _, ok := rows[0][ColumnName]; !ok {
		return nil, record.ErrMissingNameColumn
	}

	records := make([]record.TimeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, r.Reconcile(RowFromMap(row), ownerID, tolerances))
	}
	return records, nil
}
