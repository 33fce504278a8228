package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"portfolioengine/internal/domain"
	mock_l1_service "portfolioengine/internal/service/l1/mocks"
	l3_service "portfolioengine/internal/service/l3"
	mock_l3_service "portfolioengine/internal/service/l3/mocks"
	"portfolioengine/internal/util"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHandler struct {
	handler  ApiHandler
	backtest *mock_l3_service.MockBacktestService
	risk     *mock_l3_service.MockRiskService
	prices   *mock_l1_service.MockPriceService
}

func newTestHandler(ctrl *gomock.Controller, jwtSecret string) testHandler {
	gin.SetMode(gin.TestMode)
	th := testHandler{
		backtest: mock_l3_service.NewMockBacktestService(ctrl),
		risk:     mock_l3_service.NewMockRiskService(ctrl),
		prices:   mock_l1_service.NewMockPriceService(ctrl),
	}
	th.handler = ApiHandler{
		BacktestService: th.backtest,
		RiskService:     th.risk,
		PriceService:    th.prices,
		Benchmark:       "SPY",
		JwtDecodeToken:  jwtSecret,
	}
	return th
}

func doRequest(h ApiHandler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func Test_engineErrorCode(t *testing.T) {
	require.Equal(t, 422, engineErrorCode(fmt.Errorf("failed to build portfolio series: %w", domain.ErrNoData)))
	require.Equal(t, 422, engineErrorCode(domain.ErrInsufficientData))
	require.Equal(t, 422, engineErrorCode(domain.ErrEmptyPortfolio))
	require.Equal(t, 422, engineErrorCode(domain.ErrDataUnavailable))
	require.Equal(t, 422, engineErrorCode(domain.ErrInvalidParams))
	require.Equal(t, 500, engineErrorCode(errors.New("connection refused")))
}

func TestApiHandler_backtest(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, "")

		exitDate := util.NewDate(2024, 1, 3)
		th.backtest.EXPECT().
			RunBacktest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in l3_service.BacktestInput) (*l3_service.BacktestOutput, error) {
				require.Equal(t, domain.StrategyKind_SmaCross, in.Strategy.Kind)
				require.Equal(t, 5, in.Strategy.Params.FastWindow)
				require.Equal(t, 200, in.Strategy.Params.SlowWindow)
				require.Equal(t, []string{"SPY"}, in.Spec.Symbols)
				require.True(t, in.RebalanceMonthly)
				return &l3_service.BacktestOutput{
					Stats: domain.Stats{TotalReturnPct: util.FloatPointer(12.5), TradeCount: 1},
					EquityCurve: domain.EquityCurve{
						{Date: util.NewDate(2024, 1, 2), Equity: 100},
						{Date: exitDate, Equity: 90},
					},
					Drawdown: []domain.DrawdownPoint{
						{Date: util.NewDate(2024, 1, 2), Drawdown: 0},
						{Date: exitDate, Drawdown: -0.1},
					},
					Trades: []domain.Trade{{
						EntryDate:  util.NewDate(2024, 1, 2),
						EntryPrice: 10,
						ExitDate:   &exitDate,
						ExitPrice:  util.FloatPointer(9),
						PnL:        util.FloatPointer(-10),
						Status:     domain.TradeStatus_Closed,
					}},
				}, nil
			})

		w := doRequest(th.handler, http.MethodPost, "/backtest", map[string]any{
			"tickers":          []string{"SPY"},
			"start":            "2024-01-02",
			"end":              "2024-01-31",
			"strategy":         "sma",
			"fastWindow":       5,
			"rebalanceMonthly": true,
		}, nil)
		require.Equal(t, 200, w.Code)

		response := BacktestResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 12.5, *response.Stats.TotalReturnPct)
		require.Len(t, response.EquityCurve, 2)
		require.Equal(t, -0.1, response.EquityCurve[1].Drawdown)
		require.Equal(t, "2024-01-03", *response.Trades[0].ExitDate)
		require.Equal(t, "closed", response.Trades[0].Status)
	})

	t.Run("engine input errors are 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, "")

		th.backtest.EXPECT().
			RunBacktest(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("failed to run sma strategy: %w", domain.ErrInsufficientData))

		w := doRequest(th.handler, http.MethodPost, "/backtest", map[string]any{
			"tickers": []string{"SPY"},
			"start":   "2024-01-02",
			"end":     "2024-01-31",
		}, nil)
		require.Equal(t, 422, w.Code)
		require.Contains(t, w.Body.String(), "insufficient data")
	})

	t.Run("unexpected errors are 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, "")

		th.backtest.EXPECT().RunBacktest(gomock.Any(), gomock.Any()).Return(nil, errors.New("db is down"))

		w := doRequest(th.handler, http.MethodPost, "/backtest", map[string]any{
			"tickers": []string{"SPY"},
			"start":   "2024-01-02",
			"end":     "2024-01-31",
		}, nil)
		require.Equal(t, 500, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, "")

		w := doRequest(th.handler, http.MethodPost, "/backtest", map[string]any{
			"tickers": []string{"SPY"},
			"start":   "01/02/2024",
			"end":     "2024-01-31",
		}, nil)
		require.Equal(t, 400, w.Code)
	})
}

func TestApiHandler_riskSummary(t *testing.T) {
	secret := "test-secret"
	summary := domain.RiskSummary{
		TopSector:     util.StringPointer("Tech"),
		TopSectorPct:  util.FloatPointer(100),
		HHI:           util.FloatPointer(1),
		IsFresh:       true,
		LastUpdated:   util.TimePointer(util.NewDate(2024, 3, 8)),
		SectorWeights: domain.SectorWeights{"Tech": 1},
	}

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, secret)

		w := doRequest(th.handler, http.MethodGet, "/risk-summary", nil, nil)
		require.Equal(t, 401, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, secret)

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("other"))
		require.NoError(t, err)

		w := doRequest(th.handler, http.MethodGet, "/risk-summary", nil, map[string]string{
			"Authorization": "Bearer " + token,
		})
		require.Equal(t, 401, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, secret)

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(secret))
		require.NoError(t, err)
		th.risk.EXPECT().ComputeRiskSummary(gomock.Any()).Return(summary)

		w := doRequest(th.handler, http.MethodGet, "/risk-summary", nil, map[string]string{
			"Authorization": "Bearer " + token,
		})
		require.Equal(t, 200, w.Code)

		response := riskSummaryResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, "Tech", *response.TopSector)
		require.Equal(t, "2024-03-08", *response.LastUpdated)
		require.Nil(t, response.Beta)
		require.Equal(t, []sectorWeightResponse{{Sector: "Tech", Pct: 100}}, response.Sectors)
	})

	t.Run("no secret configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		th := newTestHandler(ctrl, "")
		th.risk.EXPECT().ComputeRiskSummary(gomock.Any()).Return(domain.RiskSummary{})

		w := doRequest(th.handler, http.MethodGet, "/risk-summary", nil, nil)
		require.Equal(t, 200, w.Code)
		require.Contains(t, w.Body.String(), `"isFresh":false`)
	})
}

func TestApiHandler_benchmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	th := newTestHandler(ctrl, "")

	start := util.NewDate(2024, 1, 1)
	end := util.NewDate(2024, 1, 3)
	series := domain.NewPriceSeries("SPY", []domain.PricePoint{
		{Date: start, Price: 100},
		{Date: start.AddDate(0, 0, 1), Price: 110},
		{Date: end, Price: 90},
	})
	th.prices.EXPECT().FetchBenchmark(gomock.Any(), "SPY", start, end).Return(&series, nil)

	w := doRequest(th.handler, http.MethodPost, "/benchmark", map[string]string{
		"start": "2024-01-01",
		"end":   "2024-01-03",
	}, nil)
	require.Equal(t, 200, w.Code)

	response := benchmarkResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, benchmarkResponse{
		"2024-01-01": 0,
		"2024-01-02": 10,
		"2024-01-03": -10,
	}, response)
}

func TestApiHandler_refreshPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	th := newTestHandler(ctrl, "")

	th.prices.EXPECT().
		RefreshPrices(gomock.Any(), []string{"AAPL", "BAD"}, util.NewDate(2024, 1, 1), util.NewDate(2024, 2, 1)).
		Return(map[string]error{"BAD": domain.ErrNoData}, nil)

	w := doRequest(th.handler, http.MethodPost, "/refreshPrices", map[string]any{
		"symbols": []string{"AAPL", "BAD"},
		"start":   "2024-01-01",
		"end":     "2024-02-01",
	}, nil)
	require.Equal(t, 200, w.Code)

	response := refreshPricesResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, map[string]string{"BAD": domain.ErrNoData.Error()}, response.Failed)
}
