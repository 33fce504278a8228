package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"portfolioengine/api"
	"portfolioengine/internal/repository"
	l1_service "portfolioengine/internal/service/l1"
	l2_service "portfolioengine/internal/service/l2"
	l3_service "portfolioengine/internal/service/l3"
	"portfolioengine/internal/util"
	"portfolioengine/pkg/etfholdings"
	"portfolioengine/pkg/polygon"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	adjPriceRepository := repository.NewAdjustedPriceRepository()
	providers := []repository.PriceProvider{
		repository.NewYahooPriceRepository(),
	}
	if secrets.Alpaca.ApiKey != "" {
		providers = append(providers, repository.NewAlpacaRepository(
			secrets.Alpaca.ApiKey,
			secrets.Alpaca.ApiSecret,
			secrets.Alpaca.Endpoint,
		))
	}
	priceService := l1_service.NewPriceService(dbConn, adjPriceRepository, providers...)

	polygonClient := polygon.NewClient(secrets.Polygon.ApiKey, secrets.Polygon.RequestsPerMinute)
	sectorService := l1_service.NewSectorService(
		dbConn,
		repository.NewStockSectorRepository(),
		polygonClient,
	)
	lookthroughService := l1_service.NewLookthroughService(
		dbConn,
		repository.NewEtfSourceRepository(),
		repository.NewEtfSectorBreakdownRepository(),
		etfholdings.NewClient(),
		polygonClient,
	)

	portfolioService := l2_service.NewPortfolioService(priceService)
	backtestService := l3_service.NewBacktestService(portfolioService)
	riskService := l3_service.NewRiskService(
		dbConn,
		repository.NewHoldingRepository(),
		repository.NewPortfolioValueRepository(),
		priceService,
		sectorService,
		lookthroughService,
		secrets.Benchmark,
	)

	apiHandler := &api.ApiHandler{
		Db:              dbConn,
		BacktestService: backtestService,
		RiskService:     riskService,
		PriceService:    priceService,
		Benchmark:       secrets.Benchmark,
		JwtDecodeToken:  secrets.Jwt,
	}

	return apiHandler, nil
}
