package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/domain/settings"
)

func testReconciler() *Reconciler {
	counter := 0
	return &Reconciler{
		Now: func() time.Time {
			return time.Date(2025, 7, 23, 10, 0, 0, 0, time.UTC)
		},
		NewID: func() string {
			counter++
			return "test-id-" + string(rune('0'+counter))
		},
	}
}

func defaultTolerances() settings.ToleranceConfig {
	return settings.ToleranceConfig{General: 5}
}

func TestReconcile(t *testing.T) {
	schedule := "08:00 - 12:00 - 13:00 - 17:00"

	t.Run("punch within tolerance is on time", func(t *testing.T) {
		rec := testReconciler().Reconcile(RawRow{
			Name:     "Maria Souza",
			Schedule: schedule,
			Punches:  [5]string{"21/07/2025 08:02", "", "", "21/07/2025 17:00", ""},
		}, "owner-1", defaultTolerances())

		assert.Equal(t, "2025-07-21", rec.PunchDate)
		require.NotNil(t, rec.ContractualEntry)
		assert.Equal(t, "08:00", *rec.ContractualEntry)
		require.NotNil(t, rec.ContractualExit)
		assert.Equal(t, "17:00", *rec.ContractualExit)
		require.NotNil(t, rec.ActualEntry)
		assert.Equal(t, "08:02", *rec.ActualEntry)
		require.NotNil(t, rec.EntryStatus)
		assert.Equal(t, record.StatusOnTime, *rec.EntryStatus)
		require.NotNil(t, rec.ExitStatus)
		assert.Equal(t, record.StatusOnTime, *rec.ExitStatus)
	})

	t.Run("punch past tolerance is late", func(t *testing.T) {
		rec := testReconciler().Reconcile(RawRow{
			Name:     "Maria Souza",
			Schedule: schedule,
			Punches:  [5]string{"21/07/2025 08:10", "", "", "21/07/2025 17:00", ""},
		}, "owner-1", defaultTolerances())

		require.NotNil(t, rec.EntryStatus)
		assert.Equal(t, record.StatusLate, *rec.EntryStatus)
	})

	t.Run("saturday exit comes from punch 2", func(t *testing.T) {
		// 19/07/2025 is a Saturday.
		rec := testReconciler().Reconcile(RawRow{
			Name:     "João Lima",
			Schedule: "08:00 - 12:00",
			Punches:  [5]string{"19/07/2025 08:00", "19/07/2025 12:03", "", "19/07/2025 18:00", ""},
		}, "owner-1", defaultTolerances())

		require.NotNil(t, rec.ActualExit)
		assert.Equal(t, "12:03", *rec.ActualExit)
		require.NotNil(t, rec.ExitStatus)
		assert.Equal(t, record.StatusOnTime, *rec.ExitStatus)
	})

	t.Run("weekday punch 4 wins over punch 2", func(t *testing.T) {
		// 21/07/2025 is a Monday.
		rec := testReconciler().Reconcile(RawRow{
			Name:     "João Lima",
			Schedule: schedule,
			Punches:  [5]string{"21/07/2025 08:00", "21/07/2025 12:00", "", "21/07/2025 17:02", ""},
		}, "owner-1", defaultTolerances())

		require.NotNil(t, rec.ActualExit)
		assert.Equal(t, "17:02", *rec.ActualExit)
		require.NotNil(t, rec.ExitStatus)
		assert.Equal(t, record.StatusOnTime, *rec.ExitStatus)
	})

	t.Run("weekday fallback to punch 2 forces early exit", func(t *testing.T) {
		// 22/07/2025 is a Tuesday; punch 4 is empty so the exit comes
		// from punch 2 and the status is hard-set to early.
		rec := testReconciler().Reconcile(RawRow{
			Name:     "João Lima",
			Schedule: schedule,
			Punches:  [5]string{"22/07/2025 08:00", "22/07/2025 17:00*", "", "", ""},
		}, "owner-1", defaultTolerances())

		require.NotNil(t, rec.ActualExit)
		assert.Equal(t, "17:00", *rec.ActualExit)
		assert.True(t, rec.ExitAdjusted)
		require.NotNil(t, rec.ExitStatus)
		assert.Equal(t, record.StatusEarly, *rec.ExitStatus)
	})

	t.Run("sunday has no exit", func(t *testing.T) {
		// 20/07/2025 is a Sunday.
		rec := testReconciler().Reconcile(RawRow{
			Name:     "João Lima",
			Schedule: schedule,
			Punches:  [5]string{"20/07/2025 08:00", "20/07/2025 12:00", "", "20/07/2025 17:00", ""},
		}, "owner-1", defaultTolerances())

		assert.Nil(t, rec.ActualExit)
		assert.Nil(t, rec.ExitStatus)
	})

	t.Run("adjusted entry dominates the comparison", func(t *testing.T) {
		rec := testReconciler().Reconcile(RawRow{
			Name:     "Maria Souza",
			Schedule: schedule,
			Punches:  [5]string{"21/07/2025 09:30*", "", "", "21/07/2025 17:00", ""},
		}, "owner-1", defaultTolerances())

		assert.True(t, rec.EntryAdjusted)
		require.NotNil(t, rec.EntryStatus)
		assert.Equal(t, record.StatusAdjusted, *rec.EntryStatus)
	})

	t.Run("unparsable date falls back to import date and skips the exit", func(t *testing.T) {
		rec := testReconciler().Reconcile(RawRow{
			Name:     "Maria Souza",
			Schedule: schedule,
			Punches:  [5]string{"99/99/9999 08:02", "", "", "21/07/2025 17:00", ""},
		}, "owner-1", defaultTolerances())

		assert.Equal(t, "2025-07-23", rec.PunchDate)
		require.NotNil(t, rec.ActualEntry)
		assert.Equal(t, "08:02", *rec.ActualEntry)
		assert.Nil(t, rec.ActualExit)
		assert.Nil(t, rec.ExitStatus)
	})

	t.Run("empty first punch means no entry and import date", func(t *testing.T) {
		rec := testReconciler().Reconcile(RawRow{
			Name:     "Maria Souza",
			Schedule: schedule,
		}, "owner-1", defaultTolerances())

		assert.Equal(t, "2025-07-23", rec.PunchDate)
		assert.Nil(t, rec.ActualEntry)
		assert.Nil(t, rec.EntryStatus)
		assert.Nil(t, rec.ExitStatus)
	})

	t.Run("schedule without times leaves both statuses unset", func(t *testing.T) {
		rec := testReconciler().Reconcile(RawRow{
			Name:     "Maria Souza",
			Schedule: "FOLGA",
			Punches:  [5]string{"21/07/2025 08:02", "", "", "21/07/2025 17:00", ""},
		}, "owner-1", defaultTolerances())

		assert.Nil(t, rec.ContractualEntry)
		assert.Nil(t, rec.ContractualExit)
		assert.Nil(t, rec.EntryStatus)
		assert.Nil(t, rec.ExitStatus)
	})

	t.Run("per axis tolerance overrides the general one", func(t *testing.T) {
		entryTol := 0
		tolerances := settings.ToleranceConfig{General: 5, Entry: &entryTol}

		rec := testReconciler().Reconcile(RawRow{
			Name:     "Maria Souza",
			Schedule: schedule,
			Punches:  [5]string{"21/07/2025 08:02", "", "", "21/07/2025 17:02", ""},
		}, "owner-1", tolerances)

		require.NotNil(t, rec.EntryStatus)
		assert.Equal(t, record.StatusLate, *rec.EntryStatus)
		require.NotNil(t, rec.ExitStatus)
		assert.Equal(t, record.StatusOnTime, *rec.ExitStatus)
	})
}

func TestReconcileBatch(t *testing.T) {
	r := testReconciler()

	t.Run("empty sheet is rejected", func(t *testing.T) {
		_, err := r.ReconcileBatch(nil, "owner-1", defaultTolerances())
		assert.ErrorIs(t, err, record.ErrEmptyWorkbook)
	})

	t.Run("missing name column is rejected", func(t *testing.T) {
		rows := []map[string]string{
			{"Departamento": "TI"},
		}
		_, err := r.ReconcileBatch(rows, "owner-1", defaultTolerances())
		assert.ErrorIs(t, err, record.ErrMissingNameColumn)
	})

	t.Run("every row becomes a record", func(t *testing.T) {
		rows := []map[string]string{
			{
				ColumnName:       "Maria Souza",
				ColumnDepartment: "TI",
				ColumnSchedule:   "08:00 - 17:00",
				PunchColumn(1):   "21/07/2025 08:02",
				PunchColumn(4):   "21/07/2025 17:00",
			},
			{
				ColumnName:     "João Lima",
				ColumnSchedule: "08:00 - 17:00",
				PunchColumn(1): "not a date at all",
			},
		}

		records, err := r.ReconcileBatch(rows, "owner-1", defaultTolerances())
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Maria Souza", records[0].Name)
		assert.Equal(t, "owner-1", records[0].OwnerID)
		require.NotNil(t, records[0].EntryStatus)
		assert.Equal(t, record.StatusOnTime, *records[0].EntryStatus)

		// The malformed row still lands, with the import date and no punches.
		assert.Equal(t, "João Lima", records[1].Name)
		assert.Equal(t, "2025-07-23", records[1].PunchDate)
		assert.Nil(t, records[1].ActualEntry)
		assert.NotEqual(t, records[0].ID, records[1].ID)
	})
}
