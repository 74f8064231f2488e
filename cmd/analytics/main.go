package main

import (
	"context"
	"fmt"
	"os"

	"portfoliodash/internal"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/service"
	"portfoliodash/internal/util"

	"github.com/spf13/cobra"
)

var (
	dataDir      string
	holdingsFile string
)

var rootCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Run portfolio analytics against local data files",
	Long: `Runs the same computations the dashboard API serves, but from a
directory of per-symbol CSV price files and a holdings JSON file,
printing the result as JSON to stdout.`,
}

func loadInputs() ([]domain.Holding, *domain.PortfolioMetrics, []domain.PricePoint, error) {
	holdings, metrics, err := repository.LoadPortfolioFile(holdingsFile)
	if err != nil {
		return nil, nil, nil, err
	}
	marketData := repository.NewCSVMarketDataRepository(dataDir)
	rows, err := marketData.GetPriceHistory(context.Background())
	if err != nil {
		return nil, nil, nil, err
	}
	return holdings, metrics, rows, nil
}

var correlationCmd = &cobra.Command{
	Use:   "correlation",
	Short: "Print the holdings correlation matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		holdings, _, rows, err := loadInputs()
		if err != nil {
			return err
		}
		result, err := internal.ComputeCorrelation(holdings, rows)
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("insufficient data to calculate correlation matrix")
		}
		util.Pprint(result)
		return nil
	},
}

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Print per-holding trailing changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		holdings, _, rows, err := loadInputs()
		if err != nil {
			return err
		}
		withChanges, prevDayChange := internal.ComputeChanges(holdings, rows)
		util.Pprint(map[string]any{
			"holdings":            withChanges,
			"prev_day_change_pct": prevDayChange,
		})
		return nil
	},
}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Print the portfolio vs benchmark series",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, metrics, rows, err := loadInputs()
		if err != nil {
			return err
		}
		series, err := internal.ComputeBenchmark(rows, metrics, service.BenchmarkSymbols)
		if err != nil {
			return err
		}
		if series == nil {
			return fmt.Errorf("no benchmark data available")
		}
		util.Pprint(series)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory of per-symbol CSV price files")
	rootCmd.PersistentFlags().StringVar(&holdingsFile, "holdings", "", "holdings JSON file")
	rootCmd.MarkPersistentFlagRequired("data")
	rootCmd.MarkPersistentFlagRequired("holdings")

	rootCmd.AddCommand(correlationCmd, changesCmd, benchmarkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
