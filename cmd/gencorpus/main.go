// Command gencorpus writes the variation corpus snapshots the server loads
// at startup. The combined per-unit corpus is a cross product of quantities
// and prices, so it is streamed straight to disk instead of being held in
// memory.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/salesbot/backend/internal/corpus"
)

func main() {
	var (
		outDir        = flag.String("out", "data/corpora", "output directory for corpus snapshots")
		maxPriceCents = flag.Int64("max-price-cents", 100000, "price ceiling in cents")
		withCombined  = flag.Bool("combined", false, "also write the full quantity=price cross product")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	priceCfg := corpus.DefaultPriceConfig()
	priceCfg.MaxCents = *maxPriceCents
	perUnitCfg := corpus.DefaultPerUnitConfig()
	perUnitCfg.MaxPriceCents = *maxPriceCents

	snapshots := []struct {
		file string
		c    *corpus.Corpus
	}{
		{"prices.txt", corpus.GeneratePrices(priceCfg)},
		{"measures.txt", corpus.GenerateMeasures()},
		{"percents.txt", corpus.GeneratePercents(corpus.DefaultPercentConfig())},
		{"perunit_quantities.txt", corpus.GeneratePerUnitQuantities()},
		{"perunit_prices.txt", corpus.GeneratePerUnitPrices(perUnitCfg)},
	}

	for _, s := range snapshots {
		path := filepath.Join(*outDir, s.file)
		if err := s.c.Save(path); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s (%d entries)", path, s.c.Len())
	}

	if *withCombined {
		path := filepath.Join(*outDir, "perunit_combined.txt")
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", path, err)
		}
		n, err := corpus.WritePerUnitVariations(f, perUnitCfg)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s (%d entries)", path, n)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stdout)
}
