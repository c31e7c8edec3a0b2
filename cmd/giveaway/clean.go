package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArowuTest/giveaway-engine/internal/cleaner"
	"github.com/ArowuTest/giveaway-engine/internal/csvload"
	"github.com/ArowuTest/giveaway-engine/internal/report"
)

var (
	cleanInput  string
	cleanOutput string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Deduplicate a raw comment export",
	Long:  "Removes exact duplicate rows from a raw export, relabels the columns, and writes the cleaned CSV used by the draw and report commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := csvload.ReadRaw(cleanInput)
		if err != nil {
			return err
		}

		res := cleaner.Clean(rows)
		if res.SchemaWarning != "" {
			zap.L().Warn("clean: schema mismatch", zap.String("warning", res.SchemaWarning))
		}

		users := make(map[string]struct{}, len(res.Records))
		for _, rec := range res.Records {
			if rec.Username != "" {
				users[rec.Username] = struct{}{}
			}
		}

		if err := csvload.WriteCleaned(cleanOutput, res.Records); err != nil {
			return err
		}
		zap.L().Info("clean: wrote cleaned export",
			zap.String("path", cleanOutput),
			zap.Int("rows", len(res.Records)),
		)

		r := report.New(os.Stdout, cfg.ChartExport)
		r.CleanSummary(res.RowsIn, res.DuplicatesRemoved, len(users), res.SchemaWarning)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInput, "input", "i", "instagram.csv", "raw export CSV")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "instagram_advanced_cleaned.csv", "cleaned CSV to write")
	rootCmd.AddCommand(cleanCmd)
}
