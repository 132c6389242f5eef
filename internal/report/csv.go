package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"fundboard/internal/core/domain"
)

// CSVFilename is the suggested download name for an export.
const CSVFilename = "filtered_campaigns.csv"

// CSVHeader lists the export columns in order.
var CSVHeader = []string{"id", "name", "category", "country", "goal_usd", "created_at", "raised_usd", "status"}

// WriteCSV writes campaigns as comma separated UTF-8 text with a header row.
func WriteCSV(w io.Writer, campaigns []domain.Campaign) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range campaigns {
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			string(c.Category),
			string(c.Country),
			strconv.FormatInt(c.GoalUSD, 10),
			c.CreatedAt.Format(domain.DateLayout),
			strconv.FormatFloat(c.RaisedUSD, 'f', -1, 64),
			string(c.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
