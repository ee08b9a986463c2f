package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/hydraflow/hydraflow/internal/models"
)

const exportDateLayout = "2006-01-02"
const exportTimeLayout = "15:04"

var ExportCSVHeaders = []string{
	"Date",
	"Time",
	"Amount (ml)",
	"Log ID",
}

type ExportSummary struct {
	TotalEntries  int     `json:"total_entries"`
	TotalAmount   int     `json:"total_amount"`
	HasData       bool    `json:"has_data"`
	DateFrom      string  `json:"date_from"`
	DateTo        string  `json:"date_to"`
	AverageDaily  float64 `json:"average_daily"`
	CompletedDays int     `json:"completed_days"`
}

// BuildExportRows renders intake history as CSV rows, oldest first.
func BuildExportRows(logs []models.WaterLog, location *time.Location) [][]string {
	sorted := make([]models.WaterLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	rows := make([][]string, 0, len(sorted))
	for _, entry := range sorted {
		at := LogTime(entry, location)
		rows = append(rows, []string{
			at.Format(exportDateLayout),
			at.Format(exportTimeLayout),
			strconv.Itoa(entry.Amount),
			entry.ID,
		})
	}
	return rows
}

// BuildExportSummary condenses a user's trailing window for the export
// confirmation screen.
func BuildExportSummary(logs []models.WaterLog, goal int, now time.Time, days int, location *time.Location) (ExportSummary, error) {
	buckets, err := BuildRollupWindow(logs, goal, now, days, location)
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{
		TotalEntries: len(logs),
		HasData:      len(logs) > 0,
		AverageDaily: AverageDaily(buckets),
		DateFrom:     buckets[0].Date.Format(exportDateLayout),
		DateTo:       buckets[len(buckets)-1].Date.Format(exportDateLayout),
	}

	for _, entry := range logs {
		if entry.Amount > 0 {
			summary.TotalAmount += entry.Amount
		}
	}

	completion, err := BuildCompletionRate(buckets, goal)
	if err != nil {
		return ExportSummary{}, err
	}
	summary.CompletedDays = completion.CompletedDays

	return summary, nil
}
