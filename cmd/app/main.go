package main

import (
	"flag"
	"log"

	"github.com/shopspring/decimal"

	"BinPulse/internal/di"
	"BinPulse/internal/domain/models"
	"BinPulse/pkg/config"
	"BinPulse/pkg/server"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "config file path (defaults used when empty)")
	historyPath := flag.String("history", "", "history JSON file in the export/import format")
	minBin := flag.Int("min-bin", 0, "position range lower bin id")
	maxBin := flag.Int("max-bin", 0, "position range upper bin id")
	activeBin := flag.Int("active-bin", 0, "active bin id")
	activePrice := flag.String("active-price", "0", "active bin price")
	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadWithEnv(*configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		cfg = loaded
	}

	price, err := decimal.NewFromString(*activePrice)
	if err != nil {
		log.Fatalf("invalid active price %q: %v", *activePrice, err)
	}

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	params := server.RunParams{
		HistoryPath: *historyPath,
		Range:       models.PositionRange{MinBinID: *minBin, MaxBinID: *maxBin},
		ActiveBin:   models.ActiveBinInfo{BinID: *activeBin, Price: price},
	}
	if err := app.Run(params); err != nil {
		log.Fatalf("analysis failed: %v", err)
	}
}
