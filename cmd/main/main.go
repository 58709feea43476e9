package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/config"
	"stock-dashboard/src/helpers"
	"stock-dashboard/src/history"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/news"
	"stock-dashboard/src/server"
	"stock-dashboard/src/session"
	"stock-dashboard/src/storage"
	"stock-dashboard/src/ticks"
)

// -----------------------------------------------------------------------------

const saveRetries = 3

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)

	// 2. Setup Storage
	var db interfaces.IDatabase

	switch cfg.Storage.DBType {
	case "postgres":
		db, err = storage.NewPostgresDB(cfg.MConfig, appLogger)
	default:
		// Default to SQLite
		db, err = storage.NewSQLiteDB(cfg.MConfig, appLogger)
	}

	if err != nil {
		appLogger.Critical("Failed to init db: %v", err)
	}
	if err := db.Initialize(); err != nil {
		appLogger.Critical("Failed to migrate db: %v", err)
	}
	errorHandler := helpers.NewErrorHandler(cfg.LogLevel)

	// 3. Setup Pipeline Components
	store := history.NewHistoryStore(cfg.Simulator.HistorySize)
	generator := ticks.NewSyntheticTickSource(cfg.Simulator, cfg.LogLevel, time.Now().UnixNano())
	var source interfaces.ITickSource = generator
	facade := analysis.NewAnalysisFacade(cfg.LogLevel)
	sessions := session.NewAnalyzer(cfg.Session.Timezone, cfg.LogLevel)
	newsGen := news.NewGenerator(time.Now().UnixNano())

	var srv interfaces.IDataExchanger = server.NewDashboardServer(cfg.MConfig, appLogger, store, facade, sessions, newsGen)

	readSeries := func(symbol string) (models.MSnapshot, []float64, []float64) {
		snapshot, _ := store.Read(symbol)
		prices, volumes := store.Series(symbol)
		return snapshot, prices, volumes
	}

	// 4. Prime histories so the first dashboard paint has data
	appLogger.Info("Priming initial tick batch...")
	initialBatch := generator.GenerateBatch(time.Now())
	for _, point := range initialBatch {
		store.RecordTick(point)
	}
	if err := errorHandler.ExecuteWithRetry("save ticks to database", func() error {
		return db.SaveTicksBulk(initialBatch)
	}, saveRetries); err != nil {
		appLogger.Warning("Initial tick archive failed: %v", err)
	}

	initialState := &models.MLatestData{
		Type:      "INITIAL",
		Symbols:   facade.AnalyzeAll(store.Symbols(), readSeries),
		Timestamp: time.Now().Unix(),
		Metrics:   models.MProcessingMetrics{ValidSymbols: store.SymbolCount(), TicksProcessed: len(initialBatch)},
	}
	srv.UpdateAllDatas(initialState)

	appLogger.Info("Initialization complete.")

	// 5. Start Server
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	// 6. Main Loop (Push Model)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wrapWg := &sync.WaitGroup{}
	updatesChan := make(chan []models.MPricePoint, 100)

	// Start Source
	if err := source.Start(ctx, updatesChan, wrapWg); err != nil {
		appLogger.Critical("Failed to start source: %v", err)
		return
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	appLogger.Info("Starting tick loop (Push Model)...")

	for {
		select {
		case batch, ok := <-updatesChan:
			if !ok {
				appLogger.Info("Tick source closed channel.")
				return
			}

			startProcess := time.Now()
			appLogger.Debug("Received batch of %d ticks", len(batch))

			// Record into rolling history
			for _, point := range batch {
				store.RecordTick(point)
			}

			// Archive raw ticks
			if err := errorHandler.ExecuteWithRetry("save ticks to database", func() error {
				return db.SaveTicksBulk(batch)
			}, saveRetries); err != nil {
				appLogger.Warning("Tick archive failed, continuing: %v", err)
			}

			// Analyze every symbol with history
			states := facade.AnalyzeAll(store.Symbols(), readSeries)

			// Archive emitted signals
			now := time.Now().Unix()
			signalRecords := make([]models.MSignalRecord, 0, len(states))
			for sym, state := range states {
				signalRecords = append(signalRecords, models.MSignalRecord{
					Symbol:        sym,
					Signal:        state.SignalAnalysis.Signal,
					Confidence:    state.SignalAnalysis.Confidence,
					CombinedScore: state.SignalAnalysis.CombinedScore,
					Timestamp:     now,
				})
			}
			if err := errorHandler.ExecuteWithRetry("save signals to database", func() error {
				return db.SaveSignals(signalRecords)
			}, saveRetries); err != nil {
				appLogger.Warning("Signal archive failed, continuing: %v", err)
			}

			elapsed := time.Since(startProcess).Seconds()

			// Broadcast the new dashboard state
			srv.Broadcast(&models.MLatestData{
				Type:      "UPDATE",
				Symbols:   states,
				Timestamp: now,
				Metrics: models.MProcessingMetrics{
					AnalysisTimeSeconds: elapsed,
					ValidSymbols:        len(states),
					TicksProcessed:      len(batch),
				},
			})

			// Cleanup
			db.CleanupOldData()

		case <-quit:
			appLogger.Info("Shutting down...")
			cancel()      // Signal source to stop
			wrapWg.Wait() // Wait for source to close
			srv.Stop()
			db.Close()
			return
		}
	}
}
