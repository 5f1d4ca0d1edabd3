package intent

type Category string

const (
	CategoryLoanLimits           Category = "loan_limits"
	CategoryHousingPulse         Category = "housing_pulse"
	CategoryManufacturedHousing  Category = "manufactured_housing"
	CategoryOpportunityZones     Category = "opportunity_zones"
	CategoryInvestorTools        Category = "investor_tools"
	CategoryLoanLookup           Category = "loan_lookup"
	CategoryAMIHomeReady         Category = "ami_homeready"
	CategoryPropertyData         Category = "property_data"
	CategoryAppraisalFindings    Category = "appraisal_findings"
	CategoryDUMessages           Category = "du_messages"
	CategoryLoanPricing          Category = "loan_pricing"
	CategoryMissionScore         Category = "mission_score"
	CategorySRPPricing           Category = "srp_pricing"
	CategoryMITermination        Category = "mi_termination"
	CategoryHiLoEligibility      Category = "hilo_eligibility"
	CategoryConstructionSpending Category = "construction_spending"
	CategoryGeneral              Category = "general"
)

// Params carries everything the extractors could pull out of a query.
// Missing values stay "" or 0; callers check presence per category.
type Params struct {
	State            string  `json:"state"`
	County           string  `json:"county"`
	City             string  `json:"city"`
	ZipCode          string  `json:"zip_code"`
	PropertyAddress  string  `json:"property_address"`
	BorrowerLastName string  `json:"borrower_last_name"`
	Income           int     `json:"income"`
	LoanAmount       int     `json:"loan_amount"`
	NoteRate         float64 `json:"note_rate"`
	LTV              float64 `json:"ltv"`
	CreditScore      int     `json:"credit_score"`
	Purpose          string  `json:"purpose"`
	PoolNumber       string  `json:"pool_number"`
	CUSIP            string  `json:"cusip"`
	Section          string  `json:"section"`
	Sector           string  `json:"sector"`
	Subsector        string  `json:"subsector"`
}

type Result struct {
	Category Category `json:"category"`
	Params   Params   `json:"params"`
}

type IClassifier interface {
	Classify(query string) Result
}
