package util

import (
	"encoding/json"
	"fmt"
	"os"
)

type Secrets struct {
	// Base URL of the account/market data provider.
	ExternalAPIURL string `json:"externalApiUrl"`
	// When set, price history is read from CSV files in this directory
	// instead of the provider's /market/data endpoint.
	PerformanceDataDir string `json:"performanceDataDir"`
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("PORTFOLIO_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("PORTFOLIO_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}
