package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArowuTest/giveaway-engine/internal/csvload"
	"github.com/ArowuTest/giveaway-engine/internal/draw"
	"github.com/ArowuTest/giveaway-engine/internal/models"
	"github.com/ArowuTest/giveaway-engine/internal/report"
)

var (
	drawInput   string
	drawWinners int
	drawSeed    int64
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw giveaway winners",
	Long:  "Validates entries from a cleaned export, aggregates per-participant scores, and draws distinct winners weighted by score. Pass --seed to make the draw reproducible for audits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := csvload.ReadRaw(drawInput)
		if err != nil {
			return err
		}

		count := drawWinners
		if count <= 0 {
			count = cfg.WinnerCount
		}
		var seed *int64
		if cmd.Flags().Changed("seed") {
			seed = &drawSeed
		}

		engine := draw.NewEngine(draw.Config{
			HighEntryThreshold: cfg.HighEntryThreshold,
			HighEntrySample:    cfg.HighEntrySample,
		})
		res, err := engine.Run(rows, models.RandomDraw(count, seed))
		if err != nil {
			if errors.Is(err, draw.ErrEmptyInput) {
				fmt.Fprintln(os.Stdout, "No records found in the cleaned file; nothing to draw.")
				return nil
			}
			return err
		}

		zap.L().Info("draw: completed",
			zap.String("draw_id", res.Record.ID.String()),
			zap.Bool("seeded", res.Record.Seeded),
			zap.Int("winners", res.Record.EffectiveWinners),
			zap.Int64("total_weight", res.Record.TotalWeight),
		)

		r := report.New(os.Stdout, cfg.ChartExport)
		r.Announce(res)
		return nil
	},
}

func init() {
	drawCmd.Flags().StringVarP(&drawInput, "input", "i", "instagram_advanced_cleaned.csv", "cleaned CSV from the clean command")
	drawCmd.Flags().IntVarP(&drawWinners, "winners", "n", 0, "number of winners to draw (default from config)")
	drawCmd.Flags().Int64Var(&drawSeed, "seed", 0, "random seed for a reproducible draw")
	rootCmd.AddCommand(drawCmd)
}
