package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"portfoliodash/internal/domain"
)

// AccountRepository fetches the live portfolio snapshot from the account
// data provider.
type AccountRepository interface {
	GetPortfolio(ctx context.Context) ([]domain.Holding, *domain.PortfolioMetrics, error)
}

func NewAccountRepository(baseURL string) AccountRepository {
	return &accountRepositoryHandler{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type accountRepositoryHandler struct {
	BaseURL string
	Client  *http.Client
}

// flexFloat tolerates numbers the provider sometimes sends as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("failed to parse number %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}

type holdingRow struct {
	Symbol                string    `json:"symbol"`
	Quantity              flexFloat `json:"quantity"`
	Currency              string    `json:"currency"`
	CurrentPrice          flexFloat `json:"current_price"`
	CurrentMarketValue    flexFloat `json:"current_market_value"`
	CurrentMarketValueCAD flexFloat `json:"current_market_value_CAD"`
	Percentage            flexFloat `json:"percentage"`
}

func (r holdingRow) toDomain() domain.Holding {
	return domain.Holding{
		Symbol:                r.Symbol,
		Quantity:              float64(r.Quantity),
		Currency:              r.Currency,
		CurrentPrice:          float64(r.CurrentPrice),
		CurrentMarketValue:    float64(r.CurrentMarketValue),
		CurrentMarketValueCAD: float64(r.CurrentMarketValueCAD),
		Percentage:            float64(r.Percentage),
	}
}

type portfolioPayload struct {
	PortfolioHoldings []holdingRow             `json:"portfolio_holdings"`
	PortfolioMetrics  *domain.PortfolioMetrics `json:"portfolio_metrics"`
}

func (p portfolioPayload) toDomain() ([]domain.Holding, *domain.PortfolioMetrics, error) {
	if p.PortfolioHoldings == nil || p.PortfolioMetrics == nil {
		return nil, nil, fmt.Errorf("portfolio data is not in the expected format")
	}
	holdings := make([]domain.Holding, 0, len(p.PortfolioHoldings))
	for _, row := range p.PortfolioHoldings {
		holdings = append(holdings, row.toDomain())
	}
	return holdings, p.PortfolioMetrics, nil
}

func (h accountRepositoryHandler) GetPortfolio(ctx context.Context) ([]domain.Holding, *domain.PortfolioMetrics, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/accounts/holdings", nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch portfolio data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("account provider returned status %d", resp.StatusCode)
	}

	payload := portfolioPayload{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("failed to decode portfolio data: %w", err)
	}

	return payload.toDomain()
}

// LoadPortfolioFile reads the same payload shape from a local JSON file, for
// offline runs of the analytics CLI.
func LoadPortfolioFile(path string) ([]domain.Holding, *domain.PortfolioMetrics, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open holdings file: %w", err)
	}
	payload := portfolioPayload{}
	if err := json.Unmarshal(f, &payload); err != nil {
		return nil, nil, fmt.Errorf("failed to decode holdings file: %w", err)
	}
	return payload.toDomain()
}
