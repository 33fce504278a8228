package l1_service

import (
	"context"
	"errors"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/repository"
	mock_repository "portfolioengine/internal/repository/mocks"
	mock_l1_service "portfolioengine/internal/service/l1/mocks"
	"portfolioengine/pkg/etfholdings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type lookthroughMocks struct {
	sources    *mock_repository.MockEtfSourceRepository
	breakdowns *mock_repository.MockEtfSectorBreakdownRepository
	holdings   *mock_l1_service.MockHoldingsClient
	sectors    *mock_l1_service.MockSectorClient
}

func newLookthroughHandler(ctrl *gomock.Controller, now time.Time) (lookthroughServiceHandler, lookthroughMocks) {
	m := lookthroughMocks{
		sources:    mock_repository.NewMockEtfSourceRepository(ctrl),
		breakdowns: mock_repository.NewMockEtfSectorBreakdownRepository(ctrl),
		holdings:   mock_l1_service.NewMockHoldingsClient(ctrl),
		sectors:    mock_l1_service.NewMockSectorClient(ctrl),
	}
	handler := NewLookthroughService(nil, m.sources, m.breakdowns, m.holdings, m.sectors).(*lookthroughServiceHandler)
	handler.now = func() time.Time { return now }

	m.sources.EXPECT().EnsureDefaults(gomock.Any()).Return(nil).MaxTimes(1)

	return *handler, m
}

func Test_lookthroughServiceHandler_Breakdown(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	vtiUrl := repository.SchwabEtfPortfolioUrl("VTI")

	t.Run("fresh cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newLookthroughHandler(ctrl, now)

		m.breakdowns.EXPECT().List(gomock.Any(), "VTI").Return([]model.EtfSectorBreakdown{
			{Symbol: "VTI", Sector: "Technology", Weight: 0.7, UpdatedAt: now.AddDate(0, 0, -1)},
			{Symbol: "VTI", Sector: "Energy", Weight: 0.3, UpdatedAt: now.AddDate(0, 0, -1)},
		}, nil)

		weights, err := handler.Breakdown(ctx, "vti")
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(map[string]float64{"Technology": 0.7, "Energy": 0.3}, weights))
	})

	t.Run("stale cache reads the registered source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newLookthroughHandler(ctrl, now)

		m.breakdowns.EXPECT().List(gomock.Any(), "VTI").Return([]model.EtfSectorBreakdown{
			{Symbol: "VTI", Sector: "Technology", Weight: 1, UpdatedAt: now.AddDate(0, 0, -10)},
		}, nil)
		m.sources.EXPECT().Get(gomock.Any(), "VTI").Return(&model.EtfSource{
			Symbol:     "VTI",
			SourceType: repository.EtfSourceType_SchwabPortfolio,
			URL:        &vtiUrl,
		}, nil)
		m.holdings.EXPECT().
			FetchSchwabPortfolio(gomock.Any(), vtiUrl).
			Return(etfholdings.SectorWeights{"Technology": 0.6, "Financials": 0.4}, nil)
		m.breakdowns.EXPECT().
			Replace(gomock.Any(), "VTI", gomock.Len(2)).
			Return(nil)

		weights, err := handler.Breakdown(ctx, "VTI")
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(map[string]float64{"Technology": 0.6, "Financials": 0.4}, weights))
	})

	t.Run("falls back to yahoo then a single polygon sector", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newLookthroughHandler(ctrl, now)

		m.breakdowns.EXPECT().List(gomock.Any(), "VTI").Return(nil, nil)
		m.sources.EXPECT().Get(gomock.Any(), "VTI").Return(&model.EtfSource{
			Symbol:     "VTI",
			SourceType: repository.EtfSourceType_SchwabPortfolio,
			URL:        &vtiUrl,
		}, nil)
		m.holdings.EXPECT().FetchSchwabPortfolio(gomock.Any(), vtiUrl).Return(nil, errors.New("status 403"))
		m.holdings.EXPECT().FetchYahooTopHoldings(gomock.Any(), "VTI").Return(etfholdings.SectorWeights{}, nil)
		m.sectors.EXPECT().GetSector(gomock.Any(), "VTI").Return("ETF", nil)
		m.breakdowns.EXPECT().
			Replace(gomock.Any(), "VTI", []model.EtfSectorBreakdown{{
				Symbol:    "VTI",
				Sector:    "ETF",
				Weight:    1,
				Source:    "Polygon",
				UpdatedAt: now,
			}}).
			Return(nil)

		weights, err := handler.Breakdown(ctx, "VTI")
		require.NoError(t, err)
		require.Equal(t, map[string]float64{"ETF": 1}, weights)
	})

	t.Run("unregistered symbol is resolved and stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newLookthroughHandler(ctrl, now)
		mfUrl := repository.SchwabMutualFundPortfolioUrl("VFIAX")

		m.breakdowns.EXPECT().List(gomock.Any(), "VFIAX").Return(nil, nil)
		m.sources.EXPECT().Get(gomock.Any(), "VFIAX").Return(nil, nil)
		m.holdings.EXPECT().
			FetchSchwabPortfolio(gomock.Any(), repository.SchwabEtfPortfolioUrl("VFIAX")).
			Return(etfholdings.SectorWeights{}, nil)
		m.holdings.EXPECT().
			FetchSchwabPortfolio(gomock.Any(), mfUrl).
			Return(etfholdings.SectorWeights{"Technology": 1}, nil)
		m.sources.EXPECT().Upsert(gomock.Any(), model.EtfSource{
			Symbol:     "VFIAX",
			SourceType: repository.EtfSourceType_SchwabPortfolio,
			URL:        &mfUrl,
			UpdatedAt:  now,
		}).Return(nil)
		m.breakdowns.EXPECT().Replace(gomock.Any(), "VFIAX", gomock.Len(1)).Return(nil)

		weights, err := handler.Breakdown(ctx, "VFIAX")
		require.NoError(t, err)
		require.Equal(t, map[string]float64{"Technology": 1}, weights)
	})

	t.Run("everything fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newLookthroughHandler(ctrl, now)

		m.breakdowns.EXPECT().List(gomock.Any(), "QQQ").Return(nil, nil)
		m.sources.EXPECT().Get(gomock.Any(), "QQQ").Return(&model.EtfSource{
			Symbol:     "QQQ",
			SourceType: repository.EtfSourceType_YahooTopHoldings,
		}, nil)
		m.holdings.EXPECT().FetchYahooTopHoldings(gomock.Any(), "QQQ").Return(nil, errors.New("status 401"))
		m.sectors.EXPECT().GetSector(gomock.Any(), "QQQ").Return("", errors.New("missing polygon api key"))

		weights, err := handler.Breakdown(ctx, "QQQ")
		require.Empty(t, weights)
		providerErr := &domain.ProviderError{}
		require.ErrorAs(t, err, &providerErr)
	})
}

func Test_lookthroughServiceHandler_IsTracked(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	handler, m := newLookthroughHandler(ctrl, time.Now())

	m.sources.EXPECT().Get(gomock.Any(), "VTI").Return(&model.EtfSource{Symbol: "VTI"}, nil)
	m.sources.EXPECT().Get(gomock.Any(), "AAPL").Return(nil, nil)
	m.sources.EXPECT().Get(gomock.Any(), "ERR").Return(nil, errors.New("db down"))

	require.True(t, handler.IsTracked(ctx, "vti"))
	require.False(t, handler.IsTracked(ctx, "AAPL"))
	require.False(t, handler.IsTracked(ctx, "ERR"))
}

func Test_lookthroughServiceHandler_RegisterSource(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	handler, m := newLookthroughHandler(ctrl, now)

	csvUrl := "https://example.com/holdings.csv"
	m.sources.EXPECT().Upsert(gomock.Any(), model.EtfSource{
		Symbol:     "ABC",
		SourceType: repository.EtfSourceType_ProviderCsv,
		URL:        &csvUrl,
		UpdatedAt:  now,
	}).Return(nil)

	require.NoError(t, handler.RegisterSource(ctx, "abc", csvUrl, ""))
	require.Error(t, handler.RegisterSource(ctx, "abc", "https://example.com/page", ""))
}
