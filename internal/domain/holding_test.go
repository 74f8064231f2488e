package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseAllocation(t *testing.T) {
	v, err := ParseAllocation("12.5%")
	require.NoError(t, err)
	require.Equal(t, 12.5, v)

	v, err = ParseAllocation(" 7% ")
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = ParseAllocation("n/a")
	require.Error(t, err)
}

func TestPortfolioMetrics_AllocationBySymbol(t *testing.T) {
	t.Run("parses aligned slices", func(t *testing.T) {
		metrics := PortfolioMetrics{
			Symbols:     []string{"AAPL", "SHOP"},
			Allocations: []string{"60%", "40%"},
		}

		out, err := metrics.AllocationBySymbol()
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(map[string]float64{"AAPL": 60, "SHOP": 40}, out))
	})

	t.Run("length mismatch", func(t *testing.T) {
		metrics := PortfolioMetrics{
			Symbols:     []string{"AAPL", "SHOP"},
			Allocations: []string{"60%"},
		}

		_, err := metrics.AllocationBySymbol()
		require.Error(t, err)
	})

	t.Run("bad allocation string", func(t *testing.T) {
		metrics := PortfolioMetrics{
			Symbols:     []string{"AAPL"},
			Allocations: []string{"sixty"},
		}

		_, err := metrics.AllocationBySymbol()
		require.Error(t, err)
	})
}
