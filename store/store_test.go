package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluez/tripwise"
	"github.com/bluez/tripwise/date"
)

// sampleTrips builds a small trip list with nested days, activities and a
// foreign-currency expense, to exercise the full document shape.
func sampleTrips(t *testing.T) []*tripwise.Trip {
	t.Helper()

	days, err := tripwise.DeriveSchedule(
		date.MustParse("2024-06-01"), date.MustParse("2024-06-03"), nil, "EUR")
	require.NoError(t, err)

	trip := &tripwise.Trip{
		Name:          "Rome",
		Destination:   "Rome, Italy",
		Start:         date.MustParse("2024-06-01"),
		End:           date.MustParse("2024-06-03"),
		LocalCurrency: "EUR",
		Days:          days,
	}
	trip.ID = uuid.New()

	require.NoError(t, trip.Days[0].Budget.AddExpense(
		tripwise.NewExpense(decimal.NewFromFloat(12.50), "EUR", tripwise.ExpenseFood, "espresso")))

	converted := decimal.NewFromFloat(92.00)
	e := tripwise.NewExpense(decimal.NewFromInt(100), "USD", tripwise.ExpenseShopping, "souvenirs")
	e.ConvertedAmount = &converted
	trip.Days[1].Budget.Expenses = append(trip.Days[1].Budget.Expenses, e)

	return []*tripwise.Trip{trip}
}

func assertTripsEqual(t *testing.T, want, got []*tripwise.Trip) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Start, got[i].Start)
		assert.Equal(t, want[i].End, got[i].End)
		require.Len(t, got[i].Days, len(want[i].Days))
		for j := range want[i].Days {
			assert.Equal(t, want[i].Days[j].Date, got[i].Days[j].Date)
			assert.Equal(t, want[i].Days[j].Title, got[i].Days[j].Title)
			require.Len(t, got[i].Days[j].Budget.Expenses, len(want[i].Days[j].Budget.Expenses))
			assert.True(t, want[i].Days[j].Budget.Spent().Equal(got[i].Days[j].Budget.Spent()),
				"spent mismatch on day %d", j)
		}
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())
	want := sampleTrips(t)

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assertTripsEqual(t, want, got)
}

func TestFileStore_LoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nothing-here"))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TripsFile), []byte("{nope\n"), 0o644))

	s := NewFileStore(dir)
	_, err := s.Load()
	require.Error(t, err)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "trips.db"))
	require.NoError(t, err)
	defer s.Close()

	want := sampleTrips(t)
	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assertTripsEqual(t, want, got)

	// Saving again must replace, not accumulate.
	require.NoError(t, s.Save(want))
	got, err = s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "trips.db"))
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
