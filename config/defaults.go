package config

import (
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// DefaultPolicy returns the built-in policy bundle for the current tax
// year. External callers normally load a bundle from configuration;
// the default exists so the engine is usable out of the box and so
// tests have a realistic schedule to run against.
func DefaultPolicy() *TaxYearPolicy {
	return &TaxYearPolicy{
		TaxYear:  2025,
		Currency: constants.GYDCurrency,
		PAYE: PAYEPolicy{
			MonthlyFreePay:         130000,
			DependentAllowance:     10000,
			MaxDependents:          2,
			MonthlyOvertimeCeiling: 50000,
			AnnualBrackets: []business.TaxBracket{
				{LowerBound: 0, UpperBound: 2400000, Rate: 0.25},
				{LowerBound: 2400000, UpperBound: -1, Rate: 0.35},
			},
			RemittanceDueDayOfMonth: 14,
		},
		NIS: NISPolicy{
			EmployeeRate:  0.056,
			EmployerRate:  0.084,
			WeeklyCeiling: 64615.38, // 280,000 per month
		},
		VAT: VATPolicy{
			StandardRate:          0.14,
			RegistrationThreshold: 15000000,
			ReturnDueDay:          21,
			LatePenaltyRate:       0.10,
			MonthlyDeMinimis:      10000,
		},
		Corporate: CorporatePolicy{
			Rates: map[constants.BusinessCategory]float64{
				constants.CategoryCommercial:    0.40,
				constants.CategoryNonCommercial: 0.25,
				constants.CategoryManufacturing: 0.25,
				constants.CategoryBanking:       0.40,
				constants.CategoryInsurance:     0.40,
				constants.CategoryMining:        0.40,
			},
			SmallBusinessRate:         0.20,
			SmallBusinessTurnover:     60000000,
			CapitalAllowanceCap:       0.50,
			ManufacturingAllowanceCap: 1.00,
			DonationCap:               0.10,
			LossReliefCap:             0.50,
			ReturnDueMonthsAfterEnd:   6,
			AdvancePriorYearFactor:    1.10,
			AdvanceDueMonths: map[constants.BusinessCategory][]int{
				constants.CategoryCommercial: {3, 6, 9, 12},
				constants.CategoryBanking:    {3, 6, 9, 12},
			},
			DefaultAdvanceDueMonths: []int{4, 7, 10, 12},
			CapitalGainsRate:        0.20,
			CapitalGainsExemptYears: 3,
			CapitalGainsExemptShare: 0.50,
		},
		Withholding: WithholdingPolicy{
			Rates: []WithholdingRate{
				{PaymentType: constants.PaymentTypeDividend, Rate: 0.20},
				{PaymentType: constants.PaymentTypeInterest, Rate: 0.20},
				{PaymentType: constants.PaymentTypeRoyalty, Rate: 0.15},
				{PaymentType: constants.PaymentTypeRent, Rate: 0.10},
				{PaymentType: constants.PaymentTypeProfessional, Rate: 0.10},
				{PaymentType: constants.PaymentTypeOther, Rate: 0.10},
			},
			NonResidentMultiplier: 1.25,
			MaximumRate:           0.40,
			MinimumPayment:        10000,
			ReturnDueDay:          15,
			LatePenaltyRate:       0.05,
			TreatyReductions: []TreatyReduction{
				{Country: "CA", PaymentType: constants.PaymentTypeDividend, Reduction: 0.05},
				{Country: "CA", PaymentType: constants.PaymentTypeInterest, Reduction: 0.05},
				{Country: "GB", PaymentType: constants.PaymentTypeDividend, Reduction: 0.10},
				{Country: "GB", PaymentType: constants.PaymentTypeRoyalty, Reduction: 0.05},
				{Country: "TT", PaymentType: constants.PaymentTypeDividend, Reduction: 0.20},
				{Country: "TT", PaymentType: constants.PaymentTypeInterest, Reduction: 0.20},
				{Country: "BB", PaymentType: constants.PaymentTypeDividend, Reduction: 0.20},
			},
		},
		Compliance: CompliancePolicy{
			LateFilingRate:     0.05,
			MaximumPenaltyRate: 0.25,
			AnnualInterestRate: 0.18,
			DelinquencyDays:    90,
			LookbackMonths:     12,
			Requirements: []business.ComplianceRequirement{
				{
					ID:          "paye-monthly",
					TaxType:     constants.TaxTypePAYE,
					FilingType:  constants.FilingTypeReturnAndPayment,
					Frequency:   constants.FrequencyMonthly,
					Description: "Monthly PAYE remittance for employee salary tax",
					PenaltyRate: 0.05,
					DueDay:      14,
				},
				{
					ID:          "nis-monthly",
					TaxType:     constants.TaxTypeNIS,
					FilingType:  constants.FilingTypePayment,
					Frequency:   constants.FrequencyMonthly,
					Description: "Monthly national insurance contribution remittance",
					PenaltyRate: 0.05,
					DueDay:      15,
				},
				{
					ID:          "vat-monthly",
					TaxType:     constants.TaxTypeVAT,
					FilingType:  constants.FilingTypeReturnAndPayment,
					Frequency:   constants.FrequencyMonthly,
					Description: "Monthly value-added tax return and payment",
					PenaltyRate: 0.05,
					DueDay:      21,
				},
				{
					ID:          "wht-monthly",
					TaxType:     constants.TaxTypeWithholding,
					FilingType:  constants.FilingTypePayment,
					Frequency:   constants.FrequencyMonthly,
					Description: "Monthly withholding tax remittance on contract payments",
					PenaltyRate: 0.05,
					DueDay:      15,
				},
				{
					ID:             "corp-annual",
					TaxType:        constants.TaxTypeCorporate,
					FilingType:     constants.FilingTypeReturnAndPayment,
					Frequency:      constants.FrequencyAnnual,
					Description:    "Annual corporate income tax return and payment",
					PenaltyRate:    0.05,
					DueDay:         30,
					DueMonthOffset: 4,
				},
			},
		},
	}
}
