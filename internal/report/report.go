// Package report renders run results as human-readable text. It owns all
// presentation; the pipeline only hands it structured results.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ArowuTest/giveaway-engine/internal/csvload"
	"github.com/ArowuTest/giveaway-engine/internal/draw"
	"github.com/ArowuTest/giveaway-engine/internal/models"
)

const rule = "=================================================="

// Reporter writes run summaries to w. Chart-data export is a capability
// decided at construction, not a process-wide flag.
type Reporter struct {
	w           io.Writer
	chartExport bool
}

func New(w io.Writer, chartExport bool) *Reporter {
	return &Reporter{w: w, chartExport: chartExport}
}

// CleanSummary reports a cleaning pass. uniqueUsers counts distinct
// usernames across all surviving rows, valid entries or not.
func (r *Reporter) CleanSummary(rowsIn, duplicatesRemoved, uniqueUsers int, schemaWarning string) {
	fmt.Fprintf(r.w, "Total rows before cleaning: %d\n", rowsIn)
	fmt.Fprintf(r.w, "Found and removed %d identical duplicate rows.\n", duplicatesRemoved)
	if schemaWarning != "" {
		fmt.Fprintf(r.w, "Warning: %s\n", schemaWarning)
	}
	fmt.Fprintf(r.w, "Final number of valid entries: %d\n", rowsIn-duplicatesRemoved)
	fmt.Fprintf(r.w, "Total unique participants: %d\n", uniqueUsers)
}

// Announce prints the drawn winners in draw order.
func (r *Reporter) Announce(res *draw.Result) {
	if res.NoEligible {
		fmt.Fprintln(r.w, "Could not find any valid entries that meet the criteria (at least 3 tags).")
		fmt.Fprintln(r.w, "Winner selection cannot proceed.")
		return
	}
	if res.Clamped {
		fmt.Fprintf(r.w, "Warning: fewer participants (%d) than requested winners (%d); selecting everyone.\n",
			res.Record.EffectiveWinners, res.Record.RequestedWinners)
	}

	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "AND THE %d WINNERS ARE...\n", len(res.Winners))
	for _, w := range res.Winners {
		fmt.Fprintf(r.w, "\n--- Winner #%d ---\n", w.Position)
		fmt.Fprintf(r.w, "Username: %s\n", w.Username)
		fmt.Fprintf(r.w, "Profile: %s\n", profileOr(w.ProfileURL))
	}
	fmt.Fprintf(r.w, "\nCongratulations to all the winners!\n")
	fmt.Fprintln(r.w, rule)
}

// WinnerDetails prints per-winner stats for a lookup run.
func (r *Reporter) WinnerDetails(res *draw.Result) {
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "--- Detailed Statistics for Winners ---")
	for _, w := range res.Winners {
		fmt.Fprintf(r.w, "\n--- Winner #%d ---\n", w.Position)
		fmt.Fprintf(r.w, "Username: %s\n", w.Username)
		fmt.Fprintf(r.w, "Profile: %s\n", profileOr(w.ProfileURL))
		fmt.Fprintf(r.w, "  - Total Valid Entries: %d\n", w.EntryCount)
		fmt.Fprintf(r.w, "  - Total Likes on Entries: %d\n", w.TotalLikes)
		fmt.Fprintf(r.w, "  - Final Winning Score: %d\n", w.TotalWeight)
	}
	if len(res.Excluded) > 0 {
		fmt.Fprintf(r.w, "\nNote: %d username(s) from the winner list had no valid entries and were excluded: %s\n",
			len(res.Excluded), strings.Join(res.Excluded, ", "))
	}
	fmt.Fprintln(r.w, rule)
}

// NonWinnerSummary prints the non-winning cohort's totals and averages.
func (r *Reporter) NonWinnerSummary(gs draw.GroupStats) {
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "--- Summary Statistics for Non-Winning Participants ---")
	if gs.NonWinnerCount == 0 {
		fmt.Fprintln(r.w, "There were no other participants with valid entries.")
		fmt.Fprintln(r.w, rule)
		return
	}
	fmt.Fprintf(r.w, "Total non-winning participants with valid entries: %d\n", gs.NonWinnerCount)
	fmt.Fprintf(r.w, "Total valid entries from non-winners: %d\n", gs.NonWinnerEntries)
	fmt.Fprintf(r.w, "Total likes on non-winners' entries: %d\n", gs.NonWinnerLikes)
	fmt.Fprintf(r.w, "Average valid entries per non-winner: %.2f\n", gs.NonWinnerAvgEntries)
	fmt.Fprintf(r.w, "Average likes per non-winner: %.2f\n", gs.NonWinnerAvgLikes)
	fmt.Fprintln(r.w, rule)
}

// HighVolumeReport prints flagged users and writes the detailed audit file
// when path is non-empty.
func (r *Reporter) HighVolumeReport(users []draw.HighVolumeUser, threshold int, path string) error {
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "--- High-Volume Entry Analysis ---")
	if len(users) == 0 {
		fmt.Fprintf(r.w, "No users found with more than %d valid entries.\n", threshold)
		fmt.Fprintln(r.w, rule)
		return nil
	}
	fmt.Fprintf(r.w, "Found %d user(s) with more than %d valid entries.\n", len(users), threshold)
	for _, u := range users {
		fmt.Fprintf(r.w, "  - %s (%d entries)\n", u.Username, u.EntryCount)
	}
	fmt.Fprintln(r.w, rule)

	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close()
	writeHighVolumeFile(f, users, threshold)
	fmt.Fprintf(r.w, "Detailed report for high-volume users saved to '%s'\n", path)
	return nil
}

func writeHighVolumeFile(w io.Writer, users []draw.HighVolumeUser, threshold int) {
	fmt.Fprintf(w, "High-Volume Entry Report (Threshold > %d entries)\n", threshold)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, u := range users {
		fmt.Fprintf(w, "User: %s\nTotal Valid Entries: %d\n\n", u.Username, u.EntryCount)
		fmt.Fprintln(w, "Sample of their entries:")
		for _, e := range u.Sample {
			comment := e.CommentText
			if comment == "" {
				comment = "[No Text]"
			}
			fmt.Fprintf(w, "  - Time: %s, Tags: %s, %s, %s, Comment: %q\n",
				e.TimeElapsed, e.Mention1, e.Mention2, e.Mention3, comment)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Repeat("-", 30))
	}
}

// SaveWinnerSummary exports the winner table. The chart-data export rides
// on the same file and is skipped when the capability is off.
func (r *Reporter) SaveWinnerSummary(path string, winners models.WinnerSet) error {
	if !r.chartExport {
		return nil
	}
	if err := csvload.WriteWinnerSummary(path, winners); err != nil {
		return err
	}
	fmt.Fprintf(r.w, "Winner summary table has been saved to '%s'\n", path)
	return nil
}

func profileOr(url string) string {
	if url == "" {
		return "Profile URL not found"
	}
	return url
}
