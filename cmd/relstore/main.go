// Command relstore is a small CLI around the store client: it validates a
// connection config, runs SQL script files, executes ad-hoc statements, and
// dumps tables.
//
// Connection settings come from a JSON config file and/or flags; unset
// credentials fall back to DB_HOST / DB_USER / DB_PASSWORD (a .env file is
// loaded first when present).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"relstore/internal/config"
	"relstore/internal/metrics"
	"relstore/internal/metrics/datadog"
	"relstore/internal/metrics/prompush"
	"relstore/internal/store"
	"relstore/internal/tabular"

	// register all engines with the store factory.
	_ "relstore/internal/store/all"
)

func main() {
	var (
		cfgPath  string
		cfg      config.Config
		validate bool

		execFile string
		query    string
		table    string
		createDB string

		metricsBackendFlg string
		pushGatewayURLFlg string
		dogstatsdAddrFlg  string
	)

	flag.StringVar(&cfgPath, "config", "", "connection config JSON path")
	flag.StringVar(&cfg.Engine, "engine", "", "engine override (mysql, postgres, sqlite, mssql)")
	flag.StringVar(&cfg.Database, "database", "", "database name override")
	flag.StringVar(&cfg.Host, "host", "", "host override (default from DB_HOST)")
	flag.StringVar(&cfg.User, "user", "", "user override (default from DB_USER, then root)")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")

	flag.StringVar(&execFile, "exec-file", "", "execute the SQL script at this path")
	flag.StringVar(&query, "query", "", "execute a read statement and print the result")
	flag.StringVar(&table, "table", "", "dump the named table (SELECT *)")
	flag.StringVar(&createDB, "create-db", "", "create the named database (drops it first)")

	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend (pushgateway, datadog, none)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.StringVar(&dogstatsdAddrFlg, "dogstatsd-addr", "", "DogStatsD address (overrides env DOGSTATSD_ADDR)")
	verbose := flag.Bool("v", false, "enable verbose logs")

	flag.Parse()

	// .env support, then environment fallback for unset credentials.
	_ = godotenv.Load()

	if cfgPath != "" {
		f, err := os.Open(cfgPath)
		if err != nil {
			fatalf("open config: %v", err)
		}
		var fileCfg config.Config
		if err := json.NewDecoder(f).Decode(&fileCfg); err != nil {
			f.Close()
			fatalf("decode config: %v", err)
		}
		f.Close()
		cfg = merge(fileCfg, cfg)
	}
	if cfg.Engine == "" {
		cfg.Engine = "mysql"
	}
	cfg = config.FromEnv(cfg)

	issues := config.Validate(cfg)
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
	}
	if config.HasErrors(issues) {
		log.Printf("configuration is invalid")
		os.Exit(1)
	}
	if validate {
		log.Printf("configuration is valid")
		os.Exit(0)
	}

	setupMetrics(metricsBackendFlg, pushGatewayURLFlg, dogstatsdAddrFlg, *verbose)
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	ctx := context.Background()
	start := time.Now()

	client, err := store.Open(ctx, cfg)
	if err != nil {
		fatalf("%v", err)
	}
	defer client.Close()

	switch {
	case createDB != "":
		if err := client.CreateDatabase(ctx, createDB, true); err != nil {
			fatalf("%v", err)
		}
		log.Printf("created database %s", createDB)

	case execFile != "":
		if err := client.ExecScript(ctx, execFile); err != nil {
			fatalf("%v", err)
		}

	case query != "":
		f, err := client.Query(ctx, query)
		if err != nil {
			fatalf("%v", err)
		}
		printFrame(f)

	case table != "":
		f, err := client.QueryTable(ctx, table)
		if err != nil {
			fatalf("%v", err)
		}
		printFrame(f)

	default:
		fmt.Fprintln(os.Stderr, "nothing to do: pass -exec-file, -query, -table, or -create-db")
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
}

// merge overlays non-empty override fields on top of base.
func merge(base, override config.Config) config.Config {
	if override.Engine != "" {
		base.Engine = override.Engine
	}
	if override.Database != "" {
		base.Database = override.Database
	}
	if override.Host != "" {
		base.Host = override.Host
	}
	if override.User != "" {
		base.User = override.User
	}
	return base
}

// setupMetrics decides the metrics backend: flag, then env, then none.
func setupMetrics(backendName, gwURL, ddAddr string, verbose bool) {
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	switch backendName {
	case "pushgateway":
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}
		b, err := prompush.NewBackend("relstore", gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
			return
		}
		log.Printf("metrics: backend=pushgateway url=%v", gwURL)
		metrics.SetBackend(b)

	case "datadog":
		if ddAddr == "" {
			ddAddr = os.Getenv("DOGSTATSD_ADDR")
		}
		if ddAddr == "" {
			ddAddr = "127.0.0.1:8125"
		}
		b, err := datadog.NewBackend(datadog.Config{Addr: ddAddr, Namespace: "relstore."})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
			return
		}
		log.Printf("metrics: backend=datadog addr=%v", ddAddr)
		metrics.SetBackend(b)

	case "", "none":
		if verbose {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

// printFrame writes a frame as an aligned text table.
func printFrame(f *tabular.Frame) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, name := range f.Columns() {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, name)
	}
	fmt.Fprintln(w)
	for i := 0; i < f.Len(); i++ {
		for j, v := range f.Row(i) {
			if j > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, tabular.FormatValue(v))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Printf("(%d rows)\n", f.Len())
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
