package sheets

import (
	"context"

	"atelie/internal/analytics"
)

// Ports for outbound adapters.
type (
	// ReportAppender writes a monthly report snapshot to an external sheet.
	ReportAppender interface {
		AppendMonthlyReport(ctx context.Context, report analytics.Report) (rowRef string, err error)
	}
)
