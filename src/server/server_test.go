package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/history"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/news"
	"stock-dashboard/src/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

var _ interfaces.IDataExchanger = (*DashboardServer)(nil)

// -----------------------------------------------------------------------------

func testServer(t *testing.T) (*DashboardServer, *history.HistoryStore) {
	t.Helper()

	cfg := &models.MConfig{
		Name:     "test",
		Host:     "127.0.0.1",
		Port:     8000,
		LogLevel: "ERROR",
		Simulator: models.MSimulatorConfig{
			Symbols:             []string{"AAPL", "MSFT"},
			TickIntervalSeconds: 5,
			PriceMin:            170,
			PriceMax:            190,
			BaseVolume:          5e6,
			HistorySize:         100,
		},
		News: models.MNewsConfig{DefaultCount: 8},
	}

	store := history.NewHistoryStore(100)
	srv := NewDashboardServer(
		cfg,
		logger.NewLogger("ERROR", "test"),
		store,
		analysis.NewAnalysisFacade("ERROR"),
		session.NewAnalyzer("America/New_York", "ERROR"),
		news.NewGenerator(42),
	)
	return srv, store
}

// -----------------------------------------------------------------------------

func doRequest(srv *DashboardServer, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	return w
}

// -----------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	w := doRequest(srv, http.MethodGet, "/api/health")
	require.Equal(t, 200, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "connections")
	assert.Contains(t, body, "heap_alloc_mb")
}

// -----------------------------------------------------------------------------

func TestConfigEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	w := doRequest(srv, http.MethodGet, "/api/config")
	require.Equal(t, 200, w.Code)

	var body struct {
		Symbols             []string `json:"symbols"`
		TickIntervalSeconds int      `json:"tick_interval_seconds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"AAPL", "MSFT"}, body.Symbols)
	assert.Equal(t, 5, body.TickIntervalSeconds)
}

// -----------------------------------------------------------------------------

func TestLatestEndpoint(t *testing.T) {
	srv, store := testServer(t)

	// Unseen symbol yields the nil-priced placeholder
	w := doRequest(srv, http.MethodGet, "/api/latest?symbol=AAPL")
	require.Equal(t, 200, w.Code)

	var placeholder models.MSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placeholder))
	assert.Equal(t, "AAPL", placeholder.Symbol)
	assert.Nil(t, placeholder.Price)

	// After a tick lands the snapshot is populated
	store.RecordTick(models.MPricePoint{Symbol: "AAPL", Price: 182.5, Volume: 5e6, Timestamp: 1700000000})

	w = doRequest(srv, http.MethodGet, "/api/latest?symbol=AAPL")
	require.Equal(t, 200, w.Code)

	var snapshot models.MSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	require.NotNil(t, snapshot.Price)
	assert.Equal(t, 182.5, *snapshot.Price)
}

// -----------------------------------------------------------------------------

func TestLatestEndpointRequiresSymbol(t *testing.T) {
	srv, _ := testServer(t)

	w := doRequest(srv, http.MethodGet, "/api/latest")
	assert.Equal(t, 400, w.Code)
}

// -----------------------------------------------------------------------------

func TestSignalsEndpoint(t *testing.T) {
	srv, store := testServer(t)

	prices := []float64{100, 102, 104, 103, 105}
	for i, p := range prices {
		store.RecordTick(models.MPricePoint{
			Symbol:    "AAPL",
			Price:     p,
			Volume:    1e6,
			Timestamp: int64(1700000000 + i),
		})
	}

	w := doRequest(srv, http.MethodGet, "/api/signals/AAPL")
	require.Equal(t, 200, w.Code)

	var body struct {
		Symbol         string                 `json:"symbol"`
		SignalAnalysis models.MCombinedSignal `json:"signal_analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AAPL", body.Symbol)
	assert.Equal(t, "BUY", body.SignalAnalysis.Signal)
	assert.Equal(t, 0.75, body.SignalAnalysis.CombinedScore)
}

// -----------------------------------------------------------------------------

func TestSessionEndpoint(t *testing.T) {
	srv, store := testServer(t)

	prices := []float64{100, 101, 99, 102, 98, 103, 104}
	for i, p := range prices {
		store.RecordTick(models.MPricePoint{
			Symbol:    "AAPL",
			Price:     p,
			Volume:    1e6,
			Timestamp: int64(1700000000 + i),
		})
	}

	w := doRequest(srv, http.MethodGet, "/api/session/AAPL")
	require.Equal(t, 200, w.Code)

	var metrics models.MSessionMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))

	assert.NotEmpty(t, metrics.Session.Session)
	// Previous close proxied by the oldest observation (100), current 104
	assert.Equal(t, "up", metrics.GapAnalysis.GapDirection)
	require.NotNil(t, metrics.ORBLevels.ORBHigh)
	assert.Equal(t, 103.0, *metrics.ORBLevels.ORBHigh)
}

// -----------------------------------------------------------------------------

func TestNewsEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	w := doRequest(srv, http.MethodGet, "/api/news?count=3")
	require.Equal(t, 200, w.Code)

	var body struct {
		News []models.MNewsItem `json:"news"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.News, 3)

	// Default count from config
	w = doRequest(srv, http.MethodGet, "/api/news")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.News, 8)

	// Invalid count rejected
	w = doRequest(srv, http.MethodGet, "/api/news?count=abc")
	assert.Equal(t, 400, w.Code)
	w = doRequest(srv, http.MethodGet, "/api/news?count=-2")
	assert.Equal(t, 400, w.Code)
}

// -----------------------------------------------------------------------------

func TestBroadcastUpdatesState(t *testing.T) {
	srv, _ := testServer(t)
	go srv.handleWebsockets()

	price := 182.5
	state := &models.MLatestData{
		Symbols: map[string]models.MSymbolState{
			"AAPL": {Snapshot: models.MSnapshot{Symbol: "AAPL", Price: &price}},
		},
		Timestamp: 1700000000,
	}
	srv.Broadcast(state)

	// Hub loop consumes the broadcast asynchronously
	assert.Eventually(t, func() bool {
		srv.stateMutex.RLock()
		defer srv.stateMutex.RUnlock()
		return srv.latestState.Timestamp == 1700000000
	}, 2*time.Second, 10*time.Millisecond)

	srv.stateMutex.RLock()
	defer srv.stateMutex.RUnlock()
	assert.Equal(t, "UPDATE", srv.latestState.Type)
	assert.Contains(t, srv.latestState.Symbols, "AAPL")
}

// -----------------------------------------------------------------------------

func TestHealthTracksConnections(t *testing.T) {
	srv, _ := testServer(t)
	go srv.handleWebsockets()

	connections := func() float64 {
		w := doRequest(srv, http.MethodGet, "/api/health")
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			return -1
		}
		count, ok := body["connections"].(float64)
		if !ok {
			return -1
		}
		return count
	}

	client := &Client{hub: srv, send: make(chan interface{}, 256)}
	srv.register <- client
	assert.Eventually(t, func() bool { return connections() == 1 }, 2*time.Second, 10*time.Millisecond)

	srv.unregister <- client
	assert.Eventually(t, func() bool { return connections() == 0 }, 2*time.Second, 10*time.Millisecond)
}

// -----------------------------------------------------------------------------

func TestFilteredResponse(t *testing.T) {
	srv, _ := testServer(t)

	srv.latestState = &models.MLatestData{
		Symbols: map[string]models.MSymbolState{
			"AAPL": {},
			"MSFT": {},
		},
		Timestamp: 1700000000,
	}

	all := srv.filteredResponse(nil)
	assert.Len(t, all.Symbols, 2)
	assert.Equal(t, "INITIAL", all.Type)

	one := srv.filteredResponse([]string{"AAPL"})
	assert.Len(t, one.Symbols, 1)
	assert.Contains(t, one.Symbols, "AAPL")

	unknown := srv.filteredResponse([]string{"TSLA"})
	assert.Empty(t, unknown.Symbols)
}
