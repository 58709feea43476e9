package server

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/history"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/news"
	"stock-dashboard/src/session"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// DashboardServer
// -----------------------------------------------------------------------------

const maxNewsCount = 50

type DashboardServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	Store    *history.HistoryStore
	Facade   *analysis.AnalysisFacade
	Sessions *session.Analyzer
	News     *news.Generator
	engine   *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MLatestData // Strongly typed and Buffered Queue
	register   chan *Client
	unregister chan *Client

	// Local cache. The Hub goroutine owns clients; connections mirrors its
	// size under stateMutex so handlers never touch the map.
	latestState *models.MLatestData
	connections int
	stateMutex  sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewDashboardServer(
	cfg *models.MConfig,
	log *logger.Logger,
	store *history.HistoryStore,
	facade *analysis.AnalysisFacade,
	sessions *session.Analyzer,
	newsGen *news.Generator,
) *DashboardServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &DashboardServer{
		Config:   cfg,
		Logger:   log,
		Store:    store,
		Facade:   facade,
		Sessions: sessions,
		News:     newsGen,
		engine:   gin.Default(),
		clients:  make(map[*Client]struct{}),
		// Buffered channel to prevent lock/blocking
		// Queue size of 256 ensures we can handle bursts of updates
		broadcast:  make(chan *models.MLatestData, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		latestState: &models.MLatestData{
			Type:      "INITIAL",
			Symbols:   make(map[string]models.MSymbolState),
			Timestamp: 0,
			Metrics:   models.MProcessingMetrics{},
		},
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *DashboardServer) setupRoutes() {
	// REST API endpoints
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/latest", s.getLatest)
	s.engine.GET("/api/signals/:symbol", s.getSignals)
	s.engine.GET("/api/session/:symbol", s.getSession)
	s.engine.GET("/api/news", s.getNews)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)

	// Optional static dashboard assets
	if s.Config.StaticDir != "" {
		s.engine.Static("/static", s.Config.StaticDir)
		s.engine.StaticFile("/", filepath.Join(s.Config.StaticDir, "index.html"))
	}
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *DashboardServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) Stop() error {
	// Clean shutdown
	close(s.broadcast)
	close(s.register)
	close(s.unregister)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *DashboardServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := s.connections
	timestamp := s.latestState.Timestamp
	s.stateMutex.RUnlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(200, gin.H{
		"status":        "ok",
		"connections":   connections,
		"latest_update": timestamp,
		"heap_alloc_mb": core.Round2(float64(mem.HeapAlloc) / 1024 / 1024),
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getConfig(c *gin.Context) {
	c.JSON(200, gin.H{
		"symbols":               s.Config.Simulator.Symbols,
		"tick_interval_seconds": s.Config.Simulator.TickIntervalSeconds,
		"history_size":          s.Config.Simulator.HistorySize,
	})
}

// -----------------------------------------------------------------------------

// getLatest returns the latest snapshot for one symbol. Symbols with no
// recorded ticks yield the nil-priced placeholder rather than a 404: the
// dashboard polls before the first tick lands.
func (s *DashboardServer) getLatest(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(400, gin.H{"error": "symbol query parameter required"})
		return
	}

	snapshot, _ := s.Store.Read(symbol)
	c.JSON(200, snapshot)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getSignals(c *gin.Context) {
	symbol := c.Param("symbol")

	snapshot, _ := s.Store.Read(symbol)
	prices, volumes := s.Store.Series(symbol)

	state := s.Facade.AnalyzeSymbol(snapshot, prices, volumes)
	c.JSON(200, gin.H{
		"symbol":          symbol,
		"indicators":      state.Indicators,
		"signal_analysis": state.SignalAnalysis,
	})
}

// -----------------------------------------------------------------------------

// getSession compiles session metrics for one symbol. Previous close is
// proxied by the oldest observation in the rolling window.
func (s *DashboardServer) getSession(c *gin.Context) {
	symbol := c.Param("symbol")
	prices, volumes := s.Store.Series(symbol)

	currentPrice := 0.0
	previousClose := 0.0
	if len(prices) > 0 {
		currentPrice = prices[len(prices)-1]
		previousClose = prices[0]
	}

	vwapPrice := currentPrice
	if vwap := core.VWAP(prices, volumes); vwap != nil {
		vwapPrice = *vwap
	}
	flowRatio := core.OrderFlow(prices, volumes).Ratio

	metrics := s.Sessions.SessionMetrics(prices, volumes, currentPrice, previousClose, vwapPrice, flowRatio)
	c.JSON(200, metrics)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getNews(c *gin.Context) {
	count := s.Config.News.DefaultCount
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(400, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = parsed
	}
	if count > maxNewsCount {
		count = maxNewsCount
	}

	c.JSON(200, gin.H{"news": s.News.Generate(count)})
}
