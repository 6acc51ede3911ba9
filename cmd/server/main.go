package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/salesbot/backend/config"
	"github.com/salesbot/backend/internal/corpus"
	httpDelivery "github.com/salesbot/backend/internal/delivery/http"
	"github.com/salesbot/backend/internal/infrastructure/cache"
	"github.com/salesbot/backend/internal/lexicon"
	"github.com/salesbot/backend/internal/shops"
	"github.com/salesbot/backend/internal/spell"
	"github.com/salesbot/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SalesBot Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s (TTL %s)", cfg.Cache.Type, cfg.Cache.TTL)

	// Build the lexicon and the spelling model before the listener starts;
	// requests must never wait on trie construction.
	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		log.Fatalf("Failed to load lexicon from %s: %v", cfg.Lexicon.Path, err)
	}
	log.Printf("Lexicon: %d words, %d trie entries", len(lex.Words()), lex.Trie().Size())

	checker := spell.NewChecker(lex.Words())

	corpora, err := buildCorpora(cfg.Corpus)
	if err != nil {
		log.Fatalf("Failed to build corpora: %v", err)
	}
	log.Printf("Corpora: %d prices, %d measures, %d percents, %d+%d per-unit",
		len(corpora.Prices), len(corpora.Measures), len(corpora.Percents),
		len(corpora.PerUnitQuantities), len(corpora.PerUnitPrices))

	registry := shops.NewRegistry()
	log.Printf("Shops: %d parsers registered", len(registry.Shops()))

	memoryCache := cache.NewMemoryCache()

	// Initialize usecase layer
	correctionService := usecase.NewCorrectionService(
		memoryCache,
		lex,
		checker,
		registry,
		corpora,
		usecase.CorrectionServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			QueryTimeout:       cfg.Matching.QueryTimeout,
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: timeout=%s, debug=%v",
		cfg.Matching.QueryTimeout, cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(correctionService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildCorpora loads corpus snapshots when a directory is configured and
// falls back to generating them in memory.
func buildCorpora(cfg config.CorpusConfig) (usecase.Corpora, error) {
	if cfg.Dir != "" {
		return loadCorpora(cfg.Dir)
	}

	priceCfg := corpus.DefaultPriceConfig()
	priceCfg.MaxCents = int64(cfg.MaxPriceCents)
	perUnitCfg := corpus.DefaultPerUnitConfig()
	perUnitCfg.MaxPriceCents = int64(cfg.MaxPriceCents)

	return usecase.Corpora{
		Prices:            corpus.GeneratePrices(priceCfg).Entries,
		Measures:          corpus.GenerateMeasures().Entries,
		Percents:          corpus.GeneratePercents(corpus.DefaultPercentConfig()).Entries,
		PerUnitQuantities: corpus.GeneratePerUnitQuantities().Entries,
		PerUnitPrices:     corpus.GeneratePerUnitPrices(perUnitCfg).Entries,
	}, nil
}

// loadCorpora reads the snapshot files written by cmd/gencorpus.
func loadCorpora(dir string) (usecase.Corpora, error) {
	var corpora usecase.Corpora
	for _, target := range []struct {
		file    string
		entries *[]string
	}{
		{"prices.txt", &corpora.Prices},
		{"measures.txt", &corpora.Measures},
		{"percents.txt", &corpora.Percents},
		{"perunit_quantities.txt", &corpora.PerUnitQuantities},
		{"perunit_prices.txt", &corpora.PerUnitPrices},
	} {
		c, err := corpus.Load(target.file, filepath.Join(dir, target.file))
		if err != nil {
			return usecase.Corpora{}, err
		}
		*target.entries = c.Entries
	}
	return corpora, nil
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
