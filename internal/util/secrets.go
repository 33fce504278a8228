package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type Secrets struct {
	Db        DbSecrets     `json:"db"`
	Polygon   PolygonSecret `json:"polygon"`
	Alpaca    AlpacaSecrets `json:"alpaca"`
	Jwt       string        `json:"jwt"`
	Benchmark string        `json:"benchmark"`
	Port      int           `json:"port"`
}

type PolygonSecret struct {
	ApiKey string `json:"apiKey"`
	// requests per minute allowed by the plan
	RequestsPerMinute int `json:"requestsPerMinute"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

const EnvVar = "PORTFOLIO_ENV"

func secretsFile() string {
	switch strings.ToLower(os.Getenv(EnvVar)) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

func LoadSecrets() (*Secrets, error) {
	f, err := os.ReadFile(secretsFile())
	if err != nil {
		return nil, fmt.Errorf("could not open secrets file: %w", err)
	}

	return parseSecrets(f)
}

func parseSecrets(f []byte) (*Secrets, error) {
	secrets := Secrets{}
	err := json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse secrets: %w", err)
	}

	if secrets.Benchmark == "" {
		secrets.Benchmark = "SPY"
	}
	if secrets.Port == 0 {
		secrets.Port = 3009
	}
	if secrets.Polygon.RequestsPerMinute == 0 {
		secrets.Polygon.RequestsPerMinute = 5
	}

	return &secrets, nil
}

