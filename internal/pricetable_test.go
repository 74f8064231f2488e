package internal

import (
	"testing"
	"time"

	"portfoliodash/internal/domain"
	"portfoliodash/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// dailyCloses builds one price row per day starting at start.
func dailyCloses(symbol string, start time.Time, closes ...float64) []domain.PricePoint {
	rows := make([]domain.PricePoint, 0, len(closes))
	for i, c := range closes {
		rows = append(rows, domain.PricePoint{
			Symbol: symbol,
			Date:   start.AddDate(0, 0, i),
			Close:  c,
		})
	}
	return rows
}

func TestNewPriceTable(t *testing.T) {
	t.Run("pivots rows and unions dates", func(t *testing.T) {
		rows := append(
			dailyCloses("AAPL", util.NewDate(2025, 1, 1), 100, 101),
			domain.PricePoint{Symbol: "MSFT", Date: util.NewDate(2025, 1, 3), Close: 400},
		)

		table := NewPriceTable(rows)

		require.Equal(t, "", cmp.Diff([]string{"2025-01-01", "2025-01-02", "2025-01-03"}, table.Dates))
		require.Equal(t, "", cmp.Diff([]string{"AAPL", "MSFT"}, table.Symbols))

		price, ok := table.Close("AAPL", "2025-01-02")
		require.True(t, ok)
		require.Equal(t, 101.0, price)

		_, ok = table.Close("AAPL", "2025-01-03")
		require.False(t, ok)
		_, ok = table.Close("GOOG", "2025-01-01")
		require.False(t, ok)
	})

	t.Run("duplicate rows keep the last value", func(t *testing.T) {
		rows := []domain.PricePoint{
			{Symbol: "AAPL", Date: util.NewDate(2025, 1, 1), Close: 100},
			{Symbol: "AAPL", Date: util.NewDate(2025, 1, 1), Close: 105},
		}

		table := NewPriceTable(rows)

		price, ok := table.Close("AAPL", "2025-01-01")
		require.True(t, ok)
		require.Equal(t, 105.0, price)
	})
}

func TestPriceTable_Fill(t *testing.T) {
	t.Run("forward fills interior and trailing gaps", func(t *testing.T) {
		rows := append(
			dailyCloses("AAPL", util.NewDate(2025, 1, 1), 100, 101, 102),
			domain.PricePoint{Symbol: "MSFT", Date: util.NewDate(2025, 1, 1), Close: 400},
		)

		table := NewPriceTable(rows)
		table.Fill()

		for _, d := range []string{"2025-01-02", "2025-01-03"} {
			price, ok := table.Close("MSFT", d)
			require.True(t, ok)
			require.Equal(t, 400.0, price)
		}
	})

	t.Run("backward fills leading gaps", func(t *testing.T) {
		rows := append(
			dailyCloses("AAPL", util.NewDate(2025, 1, 1), 100, 101, 102),
			domain.PricePoint{Symbol: "MSFT", Date: util.NewDate(2025, 1, 3), Close: 400},
		)

		table := NewPriceTable(rows)
		table.Fill()

		for _, d := range []string{"2025-01-01", "2025-01-02"} {
			price, ok := table.Close("MSFT", d)
			require.True(t, ok)
			require.Equal(t, 400.0, price)
		}
	})
}

func TestPriceTable_CommonDates(t *testing.T) {
	t.Run("intersects actual observations only", func(t *testing.T) {
		rows := append(
			dailyCloses("AAPL", util.NewDate(2025, 1, 1), 100, 101, 102),
			dailyCloses("MSFT", util.NewDate(2025, 1, 2), 400, 401, 402)...,
		)

		table := NewPriceTable(rows)

		common := table.CommonDates([]string{"AAPL", "MSFT"})
		require.Equal(t, "", cmp.Diff([]string{"2025-01-02", "2025-01-03"}, common))
	})

	t.Run("filling does not leak into the intersection before Fill", func(t *testing.T) {
		rows := append(
			dailyCloses("AAPL", util.NewDate(2025, 1, 1), 100, 101, 102),
			domain.PricePoint{Symbol: "MSFT", Date: util.NewDate(2025, 1, 1), Close: 400},
		)

		table := NewPriceTable(rows)

		common := table.CommonDates([]string{"AAPL", "MSFT"})
		require.Equal(t, "", cmp.Diff([]string{"2025-01-01"}, common))
	})
}
