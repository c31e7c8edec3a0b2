package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ArowuTest/giveaway-engine/internal/csvload"
	"github.com/ArowuTest/giveaway-engine/internal/draw"
	"github.com/ArowuTest/giveaway-engine/internal/models"
	"github.com/ArowuTest/giveaway-engine/internal/report"
)

var (
	reportInput      string
	reportWinners    []string
	reportThreshold  int
	reportSample     int
	reportSummaryOut string
	reportDetailOut  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze results for pre-selected winners",
	Long:  "Looks up per-participant stats for an externally chosen winner list, compares winners to non-winners, and flags abnormally high-volume participants.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(reportWinners) == 0 {
			return fmt.Errorf("report: at least one --winner username is required")
		}

		rows, err := csvload.ReadRaw(reportInput)
		if err != nil {
			return err
		}

		threshold := reportThreshold
		if !cmd.Flags().Changed("threshold") {
			threshold = cfg.HighEntryThreshold
		}
		sample := reportSample
		if !cmd.Flags().Changed("sample") {
			sample = cfg.HighEntrySample
		}

		engine := draw.NewEngine(draw.Config{
			HighEntryThreshold: threshold,
			HighEntrySample:    sample,
		})
		res, err := engine.Run(rows, models.LookupDraw(reportWinners))
		if err != nil {
			if errors.Is(err, draw.ErrEmptyInput) {
				fmt.Fprintln(os.Stdout, "No records found in the cleaned file; nothing to analyze.")
				return nil
			}
			return err
		}
		if res.NoEligible {
			fmt.Fprintln(os.Stdout, "Could not find any valid entries in the file.")
			return nil
		}

		r := report.New(os.Stdout, cfg.ChartExport)
		r.WinnerDetails(res)
		r.NonWinnerSummary(draw.CompareGroups(res.Aggregates, res.Winners))
		if err := r.HighVolumeReport(res.HighVolume, threshold, reportDetailOut); err != nil {
			return err
		}
		return r.SaveWinnerSummary(reportSummaryOut, res.Winners)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "instagram_advanced_cleaned.csv", "cleaned CSV from the clean command")
	reportCmd.Flags().StringSliceVarP(&reportWinners, "winner", "w", nil, "pre-selected winner username (repeatable)")
	reportCmd.Flags().IntVar(&reportThreshold, "threshold", 0, "high-volume entry threshold (default from config)")
	reportCmd.Flags().IntVar(&reportSample, "sample", 0, "entries sampled per high-volume user (default from config)")
	reportCmd.Flags().StringVar(&reportSummaryOut, "summary-out", "winner_stats_summary.csv", "winner summary CSV path")
	reportCmd.Flags().StringVar(&reportDetailOut, "detail-out", "high_entry_user_report.txt", "high-volume detail report path")
	rootCmd.AddCommand(reportCmd)
}
