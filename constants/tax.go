package constants

// TaxType identifies a tax regime administered by the engine.
type TaxType string

const (
	TaxTypePAYE         TaxType = "paye"
	TaxTypeNIS          TaxType = "nis"
	TaxTypeVAT          TaxType = "vat"
	TaxTypeCorporate    TaxType = "corporate"
	TaxTypeWithholding  TaxType = "withholding"
	TaxTypeCapitalGains TaxType = "capital_gains"
)

// Valid reports whether the tax type is one of the known regimes.
func (t TaxType) Valid() bool {
	switch t {
	case TaxTypePAYE, TaxTypeNIS, TaxTypeVAT, TaxTypeCorporate, TaxTypeWithholding, TaxTypeCapitalGains:
		return true
	}
	return false
}

// Frequency is a payment or filing cadence.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnual   Frequency = "annual"
)

// Valid reports whether the frequency is a supported cadence.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyAnnual:
		return true
	}
	return false
}

// Fixed calendar conventions used by every frequency conversion.
const (
	WeeksPerYear   = 52.0
	BiWeeksPerYear = 26.0
	MonthsPerYear  = 12.0
)

// VATCategory classifies a supply for value-added tax.
type VATCategory string

const (
	VATCategoryStandard  VATCategory = "standard"
	VATCategoryZeroRated VATCategory = "zero_rated"
	VATCategoryExempt    VATCategory = "exempt"
)

func (c VATCategory) Valid() bool {
	switch c {
	case VATCategoryStandard, VATCategoryZeroRated, VATCategoryExempt:
		return true
	}
	return false
}

// TransactionDirection is the side of a VAT transaction.
type TransactionDirection string

const (
	DirectionSale     TransactionDirection = "sale"
	DirectionPurchase TransactionDirection = "purchase"
	DirectionImport   TransactionDirection = "import"
	DirectionExport   TransactionDirection = "export"
)

func (d TransactionDirection) Valid() bool {
	switch d {
	case DirectionSale, DirectionPurchase, DirectionImport, DirectionExport:
		return true
	}
	return false
}

// IsOutput reports whether the direction contributes output tax on a return.
func (d TransactionDirection) IsOutput() bool {
	return d == DirectionSale || d == DirectionExport
}

// IsInput reports whether the direction contributes input tax on a return.
func (d TransactionDirection) IsInput() bool {
	return d == DirectionPurchase || d == DirectionImport
}

// BusinessCategory drives corporate rate selection and allowance caps.
type BusinessCategory string

const (
	CategoryCommercial    BusinessCategory = "commercial"
	CategoryNonCommercial BusinessCategory = "non_commercial"
	CategoryManufacturing BusinessCategory = "manufacturing"
	CategoryBanking       BusinessCategory = "banking"
	CategoryInsurance     BusinessCategory = "insurance"
	CategoryMining        BusinessCategory = "mining"
)

func (c BusinessCategory) Valid() bool {
	switch c {
	case CategoryCommercial, CategoryNonCommercial, CategoryManufacturing,
		CategoryBanking, CategoryInsurance, CategoryMining:
		return true
	}
	return false
}

// SmallBusinessEligible reports whether the category may use the
// small-business rate at all. Regulated and extractive sectors never
// qualify regardless of turnover.
func (c BusinessCategory) SmallBusinessEligible() bool {
	switch c {
	case CategoryBanking, CategoryInsurance, CategoryMining:
		return false
	}
	return true
}

// PaymentType classifies a payment subject to withholding.
type PaymentType string

const (
	PaymentTypeDividend     PaymentType = "dividend"
	PaymentTypeInterest     PaymentType = "interest"
	PaymentTypeRoyalty      PaymentType = "royalty"
	PaymentTypeRent         PaymentType = "rent"
	PaymentTypeProfessional PaymentType = "professional_services"
	PaymentTypeOther        PaymentType = "other"
)

func (p PaymentType) Valid() bool {
	switch p {
	case PaymentTypeDividend, PaymentTypeInterest, PaymentTypeRoyalty,
		PaymentTypeRent, PaymentTypeProfessional, PaymentTypeOther:
		return true
	}
	return false
}

// PayeeCategory classifies the recipient of a withholdable payment.
type PayeeCategory string

const (
	PayeeResidentIndividual    PayeeCategory = "resident_individual"
	PayeeResidentCompany       PayeeCategory = "resident_company"
	PayeeNonResidentIndividual PayeeCategory = "non_resident_individual"
	PayeeNonResidentCompany    PayeeCategory = "non_resident_company"
)

func (p PayeeCategory) Valid() bool {
	switch p {
	case PayeeResidentIndividual, PayeeResidentCompany,
		PayeeNonResidentIndividual, PayeeNonResidentCompany:
		return true
	}
	return false
}

// NonResident reports whether the rate uplift for non-residents applies.
func (p PayeeCategory) NonResident() bool {
	return p == PayeeNonResidentIndividual || p == PayeeNonResidentCompany
}

// ContributionMode selects which view of a social-insurance
// contribution a caller wants.
type ContributionMode string

const (
	ModeEmployee     ContributionMode = "employee"
	ModeEmployer     ContributionMode = "employer"
	ModeSelfEmployed ContributionMode = "self_employed"
	ModeCombined     ContributionMode = "combined"
)

func (m ContributionMode) Valid() bool {
	switch m {
	case ModeEmployee, ModeEmployer, ModeSelfEmployed, ModeCombined:
		return true
	}
	return false
}
