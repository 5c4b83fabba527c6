// Package main - entry point for the service-quote API server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"service-quote/api"
	"service-quote/core/pricing"
	"service-quote/core/recalc"
	"service-quote/core/refdata"
	"service-quote/internal/config"
	"service-quote/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgFile := flag.String("config", "", "Config file path")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}
	defer logging.Sync()

	tables, err := refdata.Load(cfg.Pricing.ReferenceFile)
	if err != nil {
		log.Fatalf("failed to load reference tables: %v", err)
	}

	policy := pricing.DefaultPolicy()
	if max := cfg.Pricing.MaxMarginTarget; max > 0 && max < 1 {
		policy.MaxMarginTarget = decimal.NewFromFloat(max)
	}
	transformer := recalc.NewTransformer(cfg.Recalc.ExemptLocations, cfg.Recalc.Workers)

	apiServer := api.NewServer(version, tables, policy, transformer)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("service-quote server v%s\n", version)
	fmt.Printf("  API: http://localhost%s/api\n", *addr)

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
