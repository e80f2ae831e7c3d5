// Command loadcsv bulk-loads a CSV file into a database table.
//
// The file is parsed into a frame (headers normalized on request, duplicates
// optionally collapsed), then inserted in batches through the parameter-bound
// insert path. Parsing/batching and insertion run as two stages connected by
// a bounded channel, so a failed insert cancels the producer promptly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"relstore/internal/config"
	csvparser "relstore/internal/parser/csv"
	"relstore/internal/store"
	"relstore/internal/tabular"

	_ "relstore/internal/store/all"
)

func main() {
	var (
		cfgPath     string
		filePath    string
		table       string
		truncate    bool
		dedupKeys   string
		dedupPolicy string
		batchSize   int
		comma       string
		normalize   bool
		trimSpace   bool
	)

	flag.StringVar(&cfgPath, "config", "", "connection config JSON path")
	flag.StringVar(&filePath, "file", "", "CSV file to load")
	flag.StringVar(&table, "table", "", "destination table")
	flag.BoolVar(&truncate, "truncate", false, "truncate the table before loading")
	flag.StringVar(&dedupKeys, "dedup", "", "comma-separated key columns to de-duplicate on")
	flag.StringVar(&dedupPolicy, "dedup-policy", tabular.KeepLast, "dedup policy (keep-first, keep-last)")
	flag.IntVar(&batchSize, "batch", 1000, "rows per insert batch")
	flag.StringVar(&comma, "comma", ",", "CSV field delimiter")
	flag.BoolVar(&normalize, "normalize-headers", false, "fold and snake-case header names")
	flag.BoolVar(&trimSpace, "trim", true, "trim whitespace from cells")
	flag.Parse()

	if filePath == "" || table == "" {
		fmt.Fprintln(os.Stderr, "both -file and -table are required")
		flag.Usage()
		os.Exit(2)
	}
	if batchSize <= 0 {
		fatalf("batch size must be > 0")
	}

	if comma == "" {
		comma = ","
	}

	_ = godotenv.Load()

	var cfg config.Config
	if cfgPath != "" {
		f, err := os.Open(cfgPath)
		if err != nil {
			fatalf("open config: %v", err)
		}
		if err := json.NewDecoder(f).Decode(&cfg); err != nil {
			f.Close()
			fatalf("decode config: %v", err)
		}
		f.Close()
	}
	if cfg.Engine == "" {
		cfg.Engine = "mysql"
	}
	cfg = config.FromEnv(cfg)
	if issues := config.Validate(cfg); config.HasErrors(issues) {
		for _, iss := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		}
		os.Exit(1)
	}

	in, err := os.Open(filePath)
	if err != nil {
		fatalf("open csv: %v", err)
	}
	defer in.Close()

	reader := csvparser.NewReader(csvparser.Options{
		HasHeader:        true,
		Comma:            []rune(comma)[0],
		TrimSpace:        trimSpace,
		NormalizeHeaders: normalize,
	})
	frame, err := reader.ReadFrame(in)
	if err != nil {
		fatalf("parse csv: %v", err)
	}
	log.Printf("loadcsv: parsed rows=%d columns=%d", frame.Len(), frame.Width())

	if dedupKeys != "" {
		keys := strings.Split(dedupKeys, ",")
		for i := range keys {
			keys[i] = strings.TrimSpace(keys[i])
		}
		before := frame.Len()
		frame = tabular.Dedup(frame, keys, dedupPolicy)
		log.Printf("loadcsv: dedup keys=%v policy=%s dropped=%d", keys, dedupPolicy, before-frame.Len())
	}

	ctx := context.Background()
	client, err := store.Open(ctx, cfg)
	if err != nil {
		fatalf("%v", err)
	}
	defer client.Close()

	if truncate {
		if err := client.TruncateTable(ctx, table); err != nil {
			fatalf("%v", err)
		}
	}

	start := time.Now()
	total, err := loadBatches(ctx, client, frame, table, batchSize)
	if err != nil {
		fatalf("load: %v (inserted=%d)", err, total)
	}
	log.Printf("loadcsv: done rows=%d elapsed=%s", total, time.Since(start).Truncate(time.Millisecond))
}

// loadBatches slices the frame into batch frames on a producer goroutine and
// inserts them sequentially on a consumer goroutine. It returns the number of
// rows inserted and the first error encountered.
func loadBatches(ctx context.Context, client *store.Client, frame *tabular.Frame, table string, batchSize int) (int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan *tabular.Frame, 2)

	g.Go(func() error {
		defer close(batches)
		for off := 0; off < frame.Len(); off += batchSize {
			end := off + batchSize
			if end > frame.Len() {
				end = frame.Len()
			}
			b := tabular.New(frame.Columns()...)
			for i := off; i < end; i++ {
				if err := b.AppendRow(frame.Row(i)...); err != nil {
					return err
				}
			}
			select {
			case batches <- b:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var total int64
	g.Go(func() error {
		n := 0
		lastFlush := time.Now()
		for b := range batches {
			if err := client.InsertFrameBound(ctx, b, table, false); err != nil {
				return err
			}
			total += int64(b.Len())
			n++
			now := time.Now()
			rps := float64(b.Len()) / now.Sub(lastFlush).Seconds()
			log.Printf("batch #%d: rps=%.0f inserted=%d total_inserted=%d", n, rps, b.Len(), total)
			lastFlush = now
		}
		return nil
	})

	err := g.Wait()
	return total, err
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
