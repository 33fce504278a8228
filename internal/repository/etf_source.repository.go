package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/db/models/postgres/public/table"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const (
	EtfSourceType_ProviderCsv      = "provider_csv"
	EtfSourceType_SchwabPortfolio  = "schwab_portfolio"
	EtfSourceType_YahooTopHoldings = "yahoo_top_holdings"
)

const (
	schwabEtfPortfolioUrl        = "https://www.schwab.wallst.com/Prospect/Research/etfs/portfolio.asp?symbol=%s"
	schwabMutualFundPortfolioUrl = "https://www.schwab.wallst.com/Prospect/Research/mutualfunds/portfolio.asp?symbol=%s"
)

func SchwabEtfPortfolioUrl(symbol string) string {
	return fmt.Sprintf(schwabEtfPortfolioUrl, strings.ToUpper(symbol))
}

func SchwabMutualFundPortfolioUrl(symbol string) string {
	return fmt.Sprintf(schwabMutualFundPortfolioUrl, strings.ToUpper(symbol))
}

// DefaultEtfSources are seeded when the source table is empty
func DefaultEtfSources() []model.EtfSource {
	schwab := func(symbol, url string) model.EtfSource {
		return model.EtfSource{
			Symbol:     symbol,
			SourceType: EtfSourceType_SchwabPortfolio,
			URL:        &url,
		}
	}
	return []model.EtfSource{
		schwab("VTI", SchwabEtfPortfolioUrl("VTI")),
		schwab("VTSAX", SchwabMutualFundPortfolioUrl("VTSAX")),
		schwab("VOO", SchwabEtfPortfolioUrl("VOO")),
		schwab("SCHD", SchwabEtfPortfolioUrl("SCHD")),
		schwab("FXAIX", SchwabMutualFundPortfolioUrl("FXAIX")),
		schwab("DFIEX", SchwabMutualFundPortfolioUrl("DFIEX")),
	}
}

// InferEtfSourceType guesses the source type from a holdings url. Returns
// "" when the url is not recognized.
func InferEtfSourceType(url string) string {
	lowered := strings.ToLower(url)
	switch {
	case lowered == "":
		return ""
	case strings.Contains(lowered, "schwab.wallst.com"):
		return EtfSourceType_SchwabPortfolio
	case strings.Contains(lowered, "csv"):
		return EtfSourceType_ProviderCsv
	case strings.Contains(lowered, "query2.finance.yahoo.com"):
		return EtfSourceType_YahooTopHoldings
	}
	return ""
}

type EtfSourceRepository interface {
	Get(db qrm.Queryable, symbol string) (*model.EtfSource, error)
	Upsert(db qrm.Executable, s model.EtfSource) error
	EnsureDefaults(db *sql.DB) error
}

type etfSourceRepositoryHandler struct{}

func NewEtfSourceRepository() EtfSourceRepository {
	return etfSourceRepositoryHandler{}
}

func (h etfSourceRepositoryHandler) Get(db qrm.Queryable, symbol string) (*model.EtfSource, error) {
	query := table.EtfSource.
		SELECT(table.EtfSource.AllColumns).
		WHERE(table.EtfSource.Symbol.EQ(postgres.String(symbol)))

	out := model.EtfSource{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get etf source for %s: %w", symbol, err)
	}

	return &out, nil
}

func (h etfSourceRepositoryHandler) Upsert(db qrm.Executable, s model.EtfSource) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	query := table.EtfSource.
		INSERT(table.EtfSource.AllColumns).
		MODEL(s).
		ON_CONFLICT(table.EtfSource.Symbol).
		DO_UPDATE(
			postgres.SET(
				table.EtfSource.SourceType.SET(table.EtfSource.EXCLUDED.SourceType),
				table.EtfSource.URL.SET(table.EtfSource.EXCLUDED.URL),
				table.EtfSource.SectorColumn.SET(table.EtfSource.EXCLUDED.SectorColumn),
				table.EtfSource.WeightColumn.SET(table.EtfSource.EXCLUDED.WeightColumn),
				table.EtfSource.UpdatedAt.SET(table.EtfSource.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert etf source for %s: %w", s.Symbol, err)
	}

	return nil
}

// EnsureDefaults seeds the default sources if no source has been
// registered yet
func (h etfSourceRepositoryHandler) EnsureDefaults(db *sql.DB) error {
	query := table.EtfSource.
		SELECT(table.EtfSource.Symbol).
		LIMIT(1)

	existing := []model.EtfSource{}
	err := query.Query(db, &existing)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("failed to check etf sources: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, s := range DefaultEtfSources() {
		if err := h.Upsert(db, s); err != nil {
			return fmt.Errorf("failed to seed default etf sources: %w", err)
		}
	}

	return nil
}
