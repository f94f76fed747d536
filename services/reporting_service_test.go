package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/services"
	"github.com/kaietech/revenue-engine/testutil"
	"github.com/kaietech/revenue-engine/types/api/responses"
	"github.com/kaietech/revenue-engine/types/business"
)

func TestReportingService_WithholdingReturnCSV(t *testing.T) {
	service := services.NewReportingService()

	ret := &responses.WithholdingMonthlyReturn{
		Payees: []responses.PayeeWithholdingSummary{
			{PayeeID: "p1", PayeeName: "Alpha Ltd", PaymentCount: 2,
				GrossAmount: 150000, TaxWithheld: 30000, NetAmount: 120000},
			{PayeeID: "p2", PayeeName: "Smith, Jones & Co", PaymentCount: 1,
				GrossAmount: 100000, TaxWithheld: 20000, NetAmount: 80000},
		},
		TotalGross:    250000,
		TotalWithheld: 50000,
		TotalNet:      200000,
	}

	csv := service.WithholdingReturnCSV(ret)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "payee_id,payee_name,payments,gross_amount,tax_withheld,net_amount", lines[0])
	assert.Equal(t, "p1,Alpha Ltd,2,150000.00,30000.00,120000.00", lines[1])
	// Names containing the delimiter are quoted.
	assert.Equal(t, `p2,"Smith, Jones & Co",1,100000.00,20000.00,80000.00`, lines[2])
	assert.Equal(t, "TOTAL,,2,250000.00,50000.00,200000.00", lines[3])
}

func TestReportingService_WithholdingReturnCSV_NoPayees(t *testing.T) {
	service := services.NewReportingService()

	csv := service.WithholdingReturnCSV(&responses.WithholdingMonthlyReturn{})
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "TOTAL,,0,0.00,0.00,0.00", lines[1])
}

func TestReportingService_ObligationSchedule(t *testing.T) {
	service := services.NewReportingService()

	records := []business.ComplianceRecord{
		{RequirementID: "paye-monthly", DueDate: testutil.Date(2025, 6, 14),
			Status: constants.StatusOverdue, Amount: 10000, PenaltyAmount: 500,
			InterestAmount: 24.66, TotalDue: 10524.66},
	}

	out := service.ObligationSchedule(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "DUE DATE")
	assert.Contains(t, lines[0], "TOTAL DUE")
	assert.Contains(t, lines[1], "2025-06-14")
	assert.Contains(t, lines[1], "paye-monthly")
	assert.Contains(t, lines[1], "overdue")
	assert.Contains(t, lines[1], "10524.66")

	// Fixed-width layout: every line renders to the same width.
	assert.Equal(t, len(lines[0]), len(lines[1]))
}