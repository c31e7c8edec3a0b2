// Package csvload is the file-format collaborator: it turns comment export
// CSVs into raw rows for the pipeline and writes the pipeline's CSV outputs.
// The core packages never touch files themselves.
package csvload

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/ArowuTest/giveaway-engine/internal/models"
)

// ReadRaw loads an export file and returns its rows, skipping the header.
// Rows are returned as-is; ragged rows are allowed (the cleaner truncates
// or pads the mapping and surfaces a warning).
func ReadRaw(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "csvload: open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "csvload: read %s", path)
	}

	var list []models.RawRecord
	for i, row := range rows {
		if i == 0 {
			// skip header
			continue
		}
		list = append(list, models.RawRecord(row))
	}
	return list, nil
}

// WriteCleaned writes the deduplicated rows back out with relabeled column
// headers, ready to feed the draw and report commands.
func WriteCleaned(path string, records []models.CommentRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "csvload: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := models.ColumnNames
	if len(records) > 0 && len(records[0].Raw) < len(header) {
		header = header[:len(records[0].Raw)]
	}
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "csvload: write header")
	}
	for _, rec := range records {
		if err := w.Write(rec.Raw); err != nil {
			return eris.Wrap(err, "csvload: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "csvload: flush")
}

// WriteWinnerSummary exports one row per winner with their final stats.
func WriteWinnerSummary(path string, winners models.WinnerSet) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "csvload: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"username", "profile_url", "total_valid_entries",
		"total_likes_on_entries", "final_winning_score",
	}); err != nil {
		return eris.Wrap(err, "csvload: write header")
	}
	for _, win := range winners {
		row := []string{
			win.Username,
			win.ProfileURL,
			strconv.Itoa(win.EntryCount),
			strconv.FormatInt(win.TotalLikes, 10),
			strconv.FormatInt(win.TotalWeight, 10),
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "csvload: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "csvload: flush")
}
