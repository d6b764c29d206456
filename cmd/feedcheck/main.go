// Command feedcheck fetches an earthquake feed (or reads a saved copy),
// normalizes it, and prints a summary. Useful for sanity-checking a feed URL
// before pointing the service at it.
//
// Usage:
//
//	go run ./cmd/feedcheck -url https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson
//	go run ./cmd/feedcheck -file testdata/all_day.geojson -top 10
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rishik-kumar/Earthquake-Visualizer/internal/adapter/usgs"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/config"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/domain"
)

func main() {
	feedURL := flag.String("url", config.DefaultFeedURL, "feed URL to fetch")
	file := flag.String("file", "", "read a saved feed file instead of fetching")
	timeout := flag.Duration("timeout", 15*time.Second, "fetch timeout")
	top := flag.Int("top", 5, "number of strongest quakes to print")
	flag.Parse()

	if code := run(*feedURL, *file, *timeout, *top); code != 0 {
		os.Exit(code)
	}
}

func run(feedURL, file string, timeout time.Duration, top int) int {
	quakes, err := loadQuakes(feedURL, file, timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "feedcheck: %v\n", err)
		return 1
	}

	unmeasured := 0
	for _, q := range quakes {
		if q.Magnitude == nil {
			unmeasured++
		}
	}

	fmt.Printf("%d quakes (%d without a measured magnitude)\n", len(quakes), unmeasured)

	sorted := domain.SortByMagnitudeDesc(quakes)
	if top > len(sorted) {
		top = len(sorted)
	}
	for _, q := range sorted[:top] {
		mag := "—"
		if q.Magnitude != nil {
			mag = fmt.Sprintf("%.1f", *q.Magnitude)
		}
		fmt.Printf("  M%-5s %s  %s\n", mag, q.OriginTime().Format(time.RFC3339), q.Place)
	}
	return 0
}

func loadQuakes(feedURL, file string, timeout time.Duration) ([]domain.Quake, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return domain.ParseFeed(data)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := usgs.NewClient(feedURL, timeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.FetchQuakes(ctx)
}
