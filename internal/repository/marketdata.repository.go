package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"portfoliodash/internal/domain"

	"github.com/gocarina/gocsv"
)

// MarketDataRepository supplies the full OHLCV price history for every
// symbol the provider tracks.
type MarketDataRepository interface {
	GetPriceHistory(ctx context.Context) ([]domain.PricePoint, error)
}

func NewMarketDataRepository(baseURL string) MarketDataRepository {
	return &marketDataRepositoryHandler{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type marketDataRepositoryHandler struct {
	BaseURL string
	Client  *http.Client
}

type priceBar struct {
	Date   string    `json:"date"`
	Open   flexFloat `json:"open"`
	High   flexFloat `json:"high"`
	Low    flexFloat `json:"low"`
	Close  flexFloat `json:"close"`
	Volume flexFloat `json:"volume"`
}

// the provider nests each symbol's bars under a "data" key; we flatten to
// one row per (symbol, date)
type symbolHistory struct {
	Symbol string     `json:"symbol"`
	Data   []priceBar `json:"data"`
}

func (h marketDataRepositoryHandler) GetPriceHistory(ctx context.Context) ([]domain.PricePoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/market/data", nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch performance data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data provider returned status %d", resp.StatusCode)
	}

	payload := []symbolHistory{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode performance data: %w", err)
	}

	rows := []domain.PricePoint{}
	for _, history := range payload {
		for _, bar := range history.Data {
			date, err := time.Parse(time.DateOnly, bar.Date)
			if err != nil {
				return nil, fmt.Errorf("bad date %q for %s: %w", bar.Date, history.Symbol, err)
			}
			rows = append(rows, domain.PricePoint{
				Symbol: history.Symbol,
				Date:   date,
				Open:   float64(bar.Open),
				High:   float64(bar.High),
				Low:    float64(bar.Low),
				Close:  float64(bar.Close),
				Volume: int64(bar.Volume),
			})
		}
	}

	return rows, nil
}

// NewCSVMarketDataRepository reads price history from one CSV file per
// symbol in dir. Rows without a symbol column fall back to the file name.
func NewCSVMarketDataRepository(dir string) MarketDataRepository {
	return &csvMarketDataRepositoryHandler{Dir: dir}
}

type csvMarketDataRepositoryHandler struct {
	Dir string
}

type csvPriceRow struct {
	Symbol string  `csv:"symbol"`
	Date   string  `csv:"date"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume int64   `csv:"volume"`
}

func (h csvMarketDataRepositoryHandler) GetPriceHistory(ctx context.Context) ([]domain.PricePoint, error) {
	paths, err := filepath.Glob(filepath.Join(h.Dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no csv files found in %s", h.Dir)
	}
	sort.Strings(paths)

	rows := []domain.PricePoint{}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		csvRows := []csvPriceRow{}
		err = gocsv.UnmarshalFile(f, &csvRows)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		fallbackSymbol := strings.ToUpper(strings.TrimSuffix(filepath.Base(path), ".csv"))
		for _, row := range csvRows {
			symbol := row.Symbol
			if symbol == "" {
				symbol = fallbackSymbol
			}
			date, err := time.Parse(time.DateOnly, row.Date)
			if err != nil {
				return nil, fmt.Errorf("bad date %q in %s: %w", row.Date, path, err)
			}
			rows = append(rows, domain.PricePoint{
				Symbol: symbol,
				Date:   date,
				Open:   row.Open,
				High:   row.High,
				Low:    row.Low,
				Close:  row.Close,
				Volume: row.Volume,
			})
		}
	}

	return rows, nil
}
