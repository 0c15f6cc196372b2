// Package report renders a human-readable summary of a pipeline run.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"shoplink/internal/models"
	"shoplink/pkg/utils"
)

const maxReasonWidth = 60

// Render formats the run result as an aligned two-column summary for
// console output.
func Render(result *models.Result) string {
	helper := utils.NewStringHelper()
	summary := result.ValidationSummary
	stats := result.Statistics

	rows := [][2]string{
		{"Orders read", fmt.Sprintf("%d", summary.TotalRows)},
		{"Valid orders", fmt.Sprintf("%d", summary.ValidRows)},
		{"Invalid orders", fmt.Sprintf("%d", summary.InvalidRows)},
	}

	// Reason keys sorted for stable output.
	reasons := make([]string, 0, len(summary.Reasons))
	for reason := range summary.Reasons {
		reasons = append(reasons, reason)
	}

	sort.Strings(reasons)

	for _, reason := range reasons {
		label := "  - " + helper.TruncateString(reason, maxReasonWidth)
		rows = append(rows, [2]string{label, fmt.Sprintf("%d", summary.Reasons[reason])})
	}

	rows = append(rows,
		[2]string{"Total revenue", fmt.Sprintf("$%.2f", stats.TotalRevenue)},
		[2]string{"Average revenue", fmt.Sprintf("$%.2f", stats.AverageRevenue)},
		[2]string{"Paid", fmt.Sprintf("%d", stats.PaymentStatusCounts.Paid)},
		[2]string{"Pending", fmt.Sprintf("%d", stats.PaymentStatusCounts.Pending)},
		[2]string{"Refunded", fmt.Sprintf("%d", stats.PaymentStatusCounts.Refunded)},
		[2]string{"Orders exported", fmt.Sprintf("%d", result.TotalProcessed)},
	)

	// Column width by display width, not byte length, so wide runes in
	// reason strings keep the value column aligned.
	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder

	b.WriteString("Pipeline run " + result.RunID + "\n")

	for _, row := range rows {
		padding := labelWidth - runewidth.StringWidth(row[0])
		b.WriteString(row[0] + strings.Repeat(" ", padding) + "  " + row[1] + "\n")
	}

	return b.String()
}
