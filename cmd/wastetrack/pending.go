package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var pendingCommand = &cli.Command{
	Name:  "pending",
	Usage: "List pending reports for a district",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "district",
			Aliases: []string{"d"},
			Usage:   "District name, or ALL",
			Value:   string(types.DistrictAll),
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty print the reports instead of emitting JSON",
		},
		&cli.DurationFlag{
			Name:  "watch",
			Usage: "Re-query on this interval until interrupted",
		},
	},
	Action: func(c *cli.Context) error {
		district, err := types.ParseDistrict(c.String("district"))
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)

		stores, err := openBackends(c.Context, cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer stores.close()

		query := reports.NewFanoutQuery(stores.residents, stores.reports, logger)
		printAll := func(views []*types.ReportView) error {
			return printViews(os.Stdout, views, c.Bool("pretty"))
		}

		interval := c.Duration("watch")
		if interval <= 0 {
			views, err := query.FetchPending(c.Context, district)
			if err != nil {
				return err
			}
			return printAll(views)
		}

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return watchPending(ctx, reports.NewReportList(query), district, interval, func(state reports.ReportListState) error {
			if state.Err != nil {
				logger.WithError(state.Err).WithField("district", state.District).Error("failed to fetch pending reports")
				return nil
			}
			return printAll(state.Views)
		})
	},
}

// watchPending loads district immediately and then on every tick. Loads may
// overlap; the list only applies the most recent one and emit always reads
// the list's current state. Returns when ctx is done.
func watchPending(ctx context.Context, list *reports.ReportList, district types.District, interval time.Duration, emit func(reports.ReportListState) error) error {
	defer list.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	updates := make(chan struct{})
	load := func() {
		applied, _ := list.Load(ctx, district)
		if !applied {
			return
		}
		select {
		case updates <- struct{}{}:
		case <-ctx.Done():
		}
	}

	go load()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			go load()
		case <-updates:
			if err := emit(list.State()); err != nil {
				return err
			}
		}
	}
}

func printViews(w io.Writer, views []*types.ReportView, pretty bool) error {
	if pretty {
		_, err := pp.Fprintln(w, views)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}
