package services

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kaietech/revenue-engine/logger"
	"github.com/kaietech/revenue-engine/types/api/responses"
	"github.com/kaietech/revenue-engine/types/business"
)

// ReportingService renders fixed-format text exports over calculator
// outputs. Field order and header text are a compatibility contract
// with the filing authority's intake formats; do not reorder them.
type ReportingService struct {
	logger *zap.Logger
}

// NewReportingService creates a new reporting service
func NewReportingService() *ReportingService {
	return &ReportingService{logger: logger.Log}
}

// WithholdingReturnCSV renders the comma-delimited per-payee summary
// of a monthly withholding return, ending with a TOTAL row.
func (s *ReportingService) WithholdingReturnCSV(ret *responses.WithholdingMonthlyReturn) string {
	var b strings.Builder
	b.WriteString("payee_id,payee_name,payments,gross_amount,tax_withheld,net_amount\n")

	for _, payee := range ret.Payees {
		b.WriteString(fmt.Sprintf("%s,%s,%d,%.2f,%.2f,%.2f\n",
			payee.PayeeID, escapeCSV(payee.PayeeName), payee.PaymentCount,
			payee.GrossAmount, payee.TaxWithheld, payee.NetAmount))
	}

	b.WriteString(fmt.Sprintf("TOTAL,,%d,%.2f,%.2f,%.2f\n",
		len(ret.Payees), ret.TotalGross, ret.TotalWithheld, ret.TotalNet))
	return b.String()
}

// ObligationSchedule renders a fixed-width schedule of obligation
// records, one line per record in due-date order.
func (s *ReportingService) ObligationSchedule(records []business.ComplianceRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-12s %-24s %-12s %14s %12s %12s %14s\n",
		"DUE DATE", "OBLIGATION", "STATUS", "AMOUNT", "PENALTY", "INTEREST", "TOTAL DUE"))

	for _, record := range records {
		b.WriteString(fmt.Sprintf("%-12s %-24s %-12s %14.2f %12.2f %12.2f %14.2f\n",
			record.DueDate.Format(time.DateOnly),
			record.RequirementID,
			string(record.Status),
			record.Amount,
			record.PenaltyAmount,
			record.InterestAmount,
			record.TotalDue))
	}
	return b.String()
}

// escapeCSV quotes a field containing delimiters or quotes.
func escapeCSV(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
