package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmentz/FAERS-Correlation-Analysis/internal/budgets"
	"github.com/nmentz/FAERS-Correlation-Analysis/internal/chart"
	"github.com/nmentz/FAERS-Correlation-Analysis/internal/config"
	"github.com/nmentz/FAERS-Correlation-Analysis/internal/core"
	"github.com/nmentz/FAERS-Correlation-Analysis/internal/export"
	"github.com/nmentz/FAERS-Correlation-Analysis/internal/logging"
	"github.com/nmentz/FAERS-Correlation-Analysis/internal/ui"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faers [quarter-dir...]",
		Short: "Count FAERS adverse event reports for drugs with the largest TV ad budgets",
		Long: `Count FAERS adverse event reports for drugs with the largest TV ad budgets.

Each quarter directory must hold the seven extracted ASCII files
(DEMO, DRUG, INDI, OUTC, REAC, RPSR, THER). Arguments replace the
FAERS_QUARTERS setting. Results are printed per series; the chart and
Parquet export are controlled by FAERS_CHART_PATH and FAERS_PARQUET_PATH.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := ui.NewPrinter(cmd.OutOrStdout())

			// Failures are reported, not propagated: the process still
			// exits normally.
			cfg, err := config.Load()
			if err != nil {
				err = fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
				slog.Warn("failed to load configuration", "error", err)
				printer.Error(err)
				return nil
			}
			if len(args) > 0 {
				cfg.Input.Quarters = args
			}

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

			ctx := logging.ContextWithRunID(cmd.Context(), logging.NewRunID())
			if err := run(ctx, cfg, printer); err != nil {
				logRunError(ctx, err)
				printer.Error(err)
			}
			return nil
		},
	}
}

// run builds the output tables for every configured series and writes the
// report artifacts.
func run(ctx context.Context, cfg *config.Config, printer *ui.Printer) error {
	logger := logging.FromContext(ctx)
	start := time.Now()
	logger.Info("run started", "config", cfg.String())

	budgetFile, err := budgets.LoadOrDefault(cfg.Input.BudgetsFile)
	if err != nil {
		return err
	}

	builder := core.NewBuilder(cfg.Input.DelimiterRune())
	tables, err := builder.BuildTables(ctx, cfg.Input.Quarters, budgetFile.CoreSeries()...)
	if err != nil {
		return err
	}

	if err := printer.Tables(tables); err != nil {
		return fmt.Errorf("print tables: %w", err)
	}

	if cfg.Output.ChartPath != "" {
		if err := chart.WriteFile(ctx, cfg.Output.ChartPath, chartSeries(budgetFile, tables), chart.DefaultOptions()); err != nil {
			return err
		}
		logger.Info("chart written", "path", cfg.Output.ChartPath)
	}

	if cfg.Output.ParquetPath != "" {
		n, err := export.WriteTables(cfg.Output.ParquetPath, logging.RunIDFromContext(ctx), tables)
		if err != nil {
			return err
		}
		logger.Info("parquet written", "path", cfg.Output.ParquetPath, "rows", n)
	}

	logger.Info("run finished", "duration", time.Since(start))
	return nil
}

// logRunError logs coded input problems at warn level and anything
// unexpected at error level.
func logRunError(ctx context.Context, err error) {
	logger := logging.FromContext(ctx)
	if core.IsUserFacing(err) {
		logger.Warn("run failed", "error", err, "reason", core.FormatUserError(err))
		return
	}
	logger.Error("run failed", "error", err, "code", core.MapError(err).Code)
}

// chartSeries pairs each output table with the plot style of its series.
func chartSeries(f *budgets.File, tables []core.OutputTable) []chart.Series {
	out := make([]chart.Series, len(tables))
	for i, t := range tables {
		s := f.Series[i]
		out[i] = chart.Series{
			Table:      t,
			Color:      s.Color,
			Marker:     s.Marker,
			LabelColor: s.LabelColor,
		}
	}
	return out
}
