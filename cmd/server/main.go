package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"runeclicker/internal/balance"
	"runeclicker/internal/engine"
	"runeclicker/internal/identity"
	"runeclicker/internal/leaderboard"
	"runeclicker/internal/save"
	"runeclicker/internal/serverapp"
)

func main() {
	logger := log.Default()

	bal, err := balance.Load("runeclicker.yml")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatalf("load balance config: %v", err)
		}
		bal = balance.FromEnv()
	}

	dataDir := os.Getenv("RUNECLICKER_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	saves, err := save.NewFileRepo(dataDir)
	if err != nil {
		logger.Fatalf("open save repo: %v", err)
	}

	stream := serverapp.NewStream(logger)

	eng, err := engine.New(engine.Options{
		Saves:    saves,
		Balance:  bal,
		Logger:   logger,
		OnCommit: stream.Broadcast,
	})
	if err != nil {
		logger.Fatalf("build engine: %v", err)
	}

	if off := eng.ReconcileOffline(); off.CreditedSeconds > 0 {
		logger.Printf("offline catch-up: %ds credited, %.0f money, %d auto-clicks",
			off.CreditedSeconds, off.MoneyGained, off.AutoClicksGained)
	}

	boards, cleanup := openLeaderboard(logger)
	defer cleanup()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Engine:      eng,
		Identity:    identity.NewFileIdentity(dataDir),
		Leaderboard: boards,
		Stream:      stream,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatalf("build server: %v", err)
	}

	go runTicker(eng)

	addr := os.Getenv("RUNECLICKER_ADDR")
	if addr == "" {
		addr = ":8484"
	}
	logger.Printf("listening on http://localhost%s", addr)
	logger.Fatal(http.ListenAndServe(addr, handler))
}

// runTicker drives the passive loop. The interval is re-read each
// round so auto-speed prestige and time warps take effect live.
func runTicker(eng *engine.Engine) {
	for {
		time.Sleep(eng.TickInterval())
		eng.Tick()
	}
}

// openLeaderboard picks Postgres when a DSN is configured, falling
// back to the in-process repo otherwise.
func openLeaderboard(logger *log.Logger) (leaderboard.Repository, func()) {
	dsn := os.Getenv("RUNECLICKER_POSTGRES_DSN")
	if dsn == "" {
		return leaderboard.NewMemoryRepo(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := leaderboard.OpenPostgres(ctx, dsn)
	if err != nil {
		logger.Printf("postgres leaderboard unavailable, using memory: %v", err)
		return leaderboard.NewMemoryRepo(), func() {}
	}
	return repo, func() { repo.Close() }
}
