package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/rickgao/tinvest-instruments/internal/api"
	"github.com/rickgao/tinvest-instruments/internal/config"
	"github.com/rickgao/tinvest-instruments/internal/model"
)

func main() {
	// Token and environment come from T_INVEST_API / T_IS_SANDBOX, optionally via .env
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := api.NewClientFromConfig(cfg.API, api.WithLogger(logger), api.WithTimeout(30*time.Second))
	if err != nil {
		log.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("Environment: %s (%s)\n", cfg.API.Env(), cfg.API.BaseURL)

	// Test 1: Shares
	fmt.Println("\n=== Testing Shares ===")
	shares, err := client.Shares(ctx, model.StatusBase)
	if err != nil {
		log.Fatalf("Shares failed: %v", err)
	}
	fmt.Printf("Fetched %d shares\n", len(shares.Instruments))
	for i, s := range shares.Instruments {
		if i >= 5 {
			break
		}
		fmt.Printf("  %d. %s.%s - %s (lot %d, step %s)\n", i+1, s.Ticker, s.ClassCode, s.Name, s.Lot, s.MinPriceIncrement.Decimal())
	}

	// Test 2: ShareBy ticker
	fmt.Println("\n=== Testing ShareBy (SBER.TQBR) ===")
	sber, err := client.ShareBy(ctx, model.Ticker("SBER", "TQBR"))
	if err != nil {
		log.Fatalf("ShareBy failed: %v", err)
	}
	fmt.Printf("FIGI: %s\n", sber.Instrument.FIGI)
	fmt.Printf("UID: %s\n", sber.Instrument.UID)
	fmt.Printf("Nominal: %s %s\n", sber.Instrument.Nominal.Decimal(), sber.Instrument.Nominal.Currency)

	// Test 3: Dividends for the last year
	fmt.Println("\n=== Testing GetDividends ===")
	now := time.Now()
	divs, err := client.GetDividends(ctx, sber.Instrument.UID, model.Period(now.AddDate(-1, 0, 0), now))
	if err != nil {
		log.Fatalf("GetDividends failed: %v", err)
	}
	fmt.Printf("Fetched %d dividends\n", len(divs.Dividends))
	for _, d := range divs.Dividends {
		fmt.Printf("  %s: %s %s\n", d.RecordDate.Format(time.DateOnly), d.DividendNet.Decimal(), d.DividendNet.Currency)
	}

	// Test 4: Concurrent batch
	fmt.Println("\n=== Testing CallMany ===")
	results := client.CallMany(ctx, []api.Request{
		{Operation: "BondBy", Args: api.Args{"id": model.Ticker("SU26238RMFS4", "TQOB")}},
		{Operation: "EtfBy", Args: api.Args{"id": model.Ticker("TMOS", "TQTF")}},
		{Operation: "GetCountries"},
		{Operation: "FindInstrument", Args: api.Args{"query": "Газпром", "instrumentKind": "share"}},
	})
	for _, r := range results {
		if r.OK() {
			fmt.Printf("  %-16s ok (%T)\n", r.Operation, r.Value)
		} else {
			fmt.Printf("  %-16s %s\n", r.Operation, r.Err)
		}
	}

	// Test 5: Error classification
	fmt.Println("\n=== Testing rejected lookup ===")
	_, err = client.BondBy(ctx, model.FIGI("BBG000000000"))
	if err == nil {
		log.Fatalf("BondBy with an unknown FIGI succeeded")
	}
	fmt.Printf("Kind: %s, HTTP %d, retryable: %v\n", api.KindOf(err), api.StatusOf(err), isRetryable(err))

	fmt.Println("\n=== All API tests passed! ===")
}

func isRetryable(err error) bool {
	var e *api.Error
	return errors.As(err, &e) && e.IsRetryable()
}
