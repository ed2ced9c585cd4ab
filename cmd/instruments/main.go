package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rickgao/tinvest-instruments/internal/api"
	"github.com/rickgao/tinvest-instruments/internal/config"
	"github.com/rickgao/tinvest-instruments/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: read T_INVEST_API and T_IS_SANDBOX)")
	envFile := flag.String("env", "", "path to .env file (default: ./.env if present)")
	list := flag.Bool("list", false, "print the operation catalog and exit")
	op := flag.String("op", "", "operation to call")
	argsJSON := flag.String("args", "{}", "operation arguments as a JSON object")
	batchPath := flag.String("batch", "", "JSON file with [{\"operation\": ..., \"args\": {...}}] to run concurrently, - for stdin")
	failFast := flag.Bool("fail-fast", false, "with -batch, cancel remaining calls after the first failure")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *list {
		printCatalog(os.Stdout)
		return
	}

	if (*op == "") == (*batchPath == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -op or -batch is required (see -list)")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	logger.Debug("starting instruments cli",
		"version", version.Version,
		"commit", version.Commit,
		"env", cfg.API.Env(),
	)

	client, err := api.NewClientFromConfig(cfg.API, api.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create client", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	var code int
	if *op != "" {
		code = runOne(ctx, client, *op, *argsJSON, logger)
	} else {
		code = runBatch(ctx, client, *batchPath, *failFast, logger)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.API.CloseTimeout)
	defer shutdownCancel()
	if err := client.Shutdown(shutdownCtx); err != nil {
		logger.Warn("client shutdown", "error", err)
	}

	os.Exit(code)
}

func loadConfig(path, envFile string) (*config.Config, error) {
	if path != "" {
		return config.LoadAndValidate(path)
	}

	var err error
	if envFile != "" {
		err = config.LoadDotEnv(envFile)
	} else {
		err = config.LoadDotEnv()
	}
	if err != nil {
		return nil, err
	}
	return config.FromEnv()
}

func newLogger(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func runOne(ctx context.Context, client *api.Client, op, argsJSON string, logger *slog.Logger) int {
	var args api.Args
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		logger.Error("invalid -args", "error", err)
		return 2
	}

	start := time.Now()
	resp, err := client.Call(ctx, op, args)
	if err != nil {
		logFailure(logger, op, err)
		return 1
	}
	logger.Debug("call complete", "operation", op, "duration", time.Since(start))

	return writeJSON(os.Stdout, resp, logger)
}

// batchEntry is one element of a -batch file.
type batchEntry struct {
	Operation string   `json:"operation"`
	Args      api.Args `json:"args"`
}

// batchOutput is one element of the -batch output, in input order.
type batchOutput struct {
	Operation string `json:"operation"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

func runBatch(ctx context.Context, client *api.Client, path string, failFast bool, logger *slog.Logger) int {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		logger.Error("failed to read batch", "path", path, "error", err)
		return 2
	}

	var entries []batchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("invalid batch file", "path", path, "error", err)
		return 2
	}

	reqs := make([]api.Request, len(entries))
	for i, e := range entries {
		reqs[i] = api.Request{Operation: e.Operation, Args: e.Args}
	}

	var opts []api.BatchOption
	if failFast {
		opts = append(opts, api.WithFailFast())
	}
	results := client.CallMany(ctx, reqs, opts...)

	code := 0
	out := make([]batchOutput, len(results))
	for i, r := range results {
		out[i] = batchOutput{Operation: r.Operation, Result: r.Value}
		if r.Err != nil {
			code = 1
			out[i].Error = r.Err.Error()
			out[i].Kind = api.KindOf(r.Err).String()
			logFailure(logger, r.Operation, r.Err)
		}
	}

	if c := writeJSON(os.Stdout, out, logger); c != 0 {
		return c
	}
	return code
}

func logFailure(logger *slog.Logger, op string, err error) {
	attrs := []any{"operation", op, "kind", api.KindOf(err).String(), "error", err}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.TrackingID != "" {
		attrs = append(attrs, "tracking_id", apiErr.TrackingID)
	}
	logger.Error("call failed", attrs...)
}

func writeJSON(w io.Writer, v any, logger *slog.Logger) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Error("failed to write output", "error", err)
		return 1
	}
	return 0
}

func printCatalog(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATION\tPARAMETERS\tSUMMARY")
	for _, d := range api.Catalog() {
		params := make([]string, 0, len(d.Params))
		for _, p := range d.Params {
			s := p.Name + ":" + p.Kind.String()
			if p.Required {
				s += "!"
			}
			params = append(params, s)
		}
		summary := d.Summary
		if d.Deprecated {
			summary += " (deprecated)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, strings.Join(params, ", "), summary)
	}
	tw.Flush()
}
