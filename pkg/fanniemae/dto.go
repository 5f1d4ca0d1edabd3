package fanniemae

// Request and response shapes mirror the upstream API payloads, so the JSON
// tags stay camelCase even though the rest of the service speaks snake_case.

type LoanLimitsRequest struct {
	State  string `json:"state"`
	County string `json:"county,omitempty"`
}

type UnitLimits struct {
	OneUnit   int `json:"oneUnit"`
	TwoUnit   int `json:"twoUnit"`
	ThreeUnit int `json:"threeUnit"`
	FourUnit  int `json:"fourUnit"`
}

type LoanLimitsResponse struct {
	State         string     `json:"state"`
	County        string     `json:"county"`
	Year          int        `json:"year"`
	Limits        UnitLimits `json:"limits"`
	HighCostArea  bool       `json:"highCostArea"`
	Source        string     `json:"source"`
	EffectiveDate string     `json:"effectiveDate"`
}

type HousingPulseRequest struct {
	State string `json:"state,omitempty"`
}

type HousingMetrics struct {
	MedianHomePrice    int     `json:"medianHomePrice"`
	HomePriceYoY       float64 `json:"homePriceYoY"`
	InventoryMonths    float64 `json:"inventoryMonths"`
	DaysOnMarket       int     `json:"daysOnMarket"`
	MortgageRate30Yr   float64 `json:"mortgageRate30Yr"`
	MortgageRate15Yr   float64 `json:"mortgageRate15Yr"`
	AffordabilityIndex int     `json:"affordabilityIndex"`
	NewListings        int     `json:"newListings"`
	PendingSales       int     `json:"pendingSales"`
	ClosedSales        int     `json:"closedSales"`
}

type MarketTrends struct {
	PriceDirection     string `json:"priceDirection"`
	InventoryDirection string `json:"inventoryDirection"`
	DemandLevel        string `json:"demandLevel"`
	MarketTemperature  string `json:"marketTemperature"`
}

type HousingPulseResponse struct {
	Region   string         `json:"region"`
	DataDate string         `json:"dataDate"`
	Metrics  HousingMetrics `json:"metrics"`
	Trends   MarketTrends   `json:"trends"`
	Source   string         `json:"source"`
}

type ManufacturedHousingRequest struct {
	State string `json:"state,omitempty"`
}

type NationalTotals struct {
	TotalCommunities int `json:"totalCommunities"`
	TotalUnits       int `json:"totalUnits"`
	StatesReporting  int `json:"statesReporting"`
}

type StateHousingStats struct {
	State                string `json:"state"`
	Communities          int    `json:"communities"`
	Units                int    `json:"units"`
	AvgUnitsPerCommunity int    `json:"avgUnitsPerCommunity"`
}

type ManufacturedHousingResponse struct {
	State                string              `json:"state,omitempty"`
	CommunityCount       int                 `json:"communityCount,omitempty"`
	UnitCount            int                 `json:"unitCount,omitempty"`
	AvgUnitsPerCommunity int                 `json:"avgUnitsPerCommunity,omitempty"`
	NationalTotals       *NationalTotals     `json:"nationalTotals,omitempty"`
	StateBreakdown       []StateHousingStats `json:"stateBreakdown,omitempty"`
	Source               string              `json:"source"`
}

type OpportunityZonesRequest struct {
	State  string `json:"state,omitempty"`
	County string `json:"county,omitempty"`
}

type OpportunityZone struct {
	TractID            string  `json:"tractId"`
	Designation        string  `json:"designation"`
	Population         int     `json:"population"`
	PovertyRate        float64 `json:"povertyRate"`
	MedianFamilyIncome int     `json:"medianFamilyIncome"`
}

type OpportunityZonesResponse struct {
	State      string            `json:"state,omitempty"`
	TotalZones int               `json:"totalZones"`
	Zones      []OpportunityZone `json:"zones"`
}

type InvestorDataRequest struct {
	DataType   string `json:"dataType"`
	PoolNumber string `json:"poolNumber,omitempty"`
	CUSIP      string `json:"cusip,omitempty"`
}

type SecurityRecord struct {
	PoolNumber   string  `json:"poolNumber"`
	CUSIP        string  `json:"cusip"`
	SecurityType string  `json:"securityType"`
	CouponRate   float64 `json:"couponRate"`
	WAC          float64 `json:"wac"`
	WAM          int     `json:"wam"`
	LoanCount    int     `json:"loanCount"`
}

type InvestorDataResponse struct {
	DataType     string           `json:"dataType"`
	AsOfDate     string           `json:"asOfDate"`
	Records      []SecurityRecord `json:"records"`
	TotalRecords int              `json:"totalRecords"`
}

type LoanLookupRequest struct {
	ReferenceIdentifier   string `json:"referenceIdentifier"`
	BorrowerLastName      string `json:"borrowerLastName"`
	PropertyStreetAddress string `json:"propertyStreetAddress"`
	PropertyCity          string `json:"propertyCity"`
	PropertyState         string `json:"propertyState"`
	PropertyZipCode       string `json:"propertyZipCode"`
}

type LoanLookupResponse struct {
	OwnedByFannieMae           bool    `json:"ownedByFannieMae"`
	FannieMaeLoanNumber        string  `json:"fannieMaeLoanNumber,omitempty"`
	ServicerName               string  `json:"servicerName,omitempty"`
	CurrentUPB                 int     `json:"currentUPB,omitempty"`
	NoteRate                   float64 `json:"noteRate,omitempty"`
	EligibleForRefi            bool    `json:"eligibleForRefi"`
	EligibleForAppraisalWaiver bool    `json:"eligibleForAppraisalWaiver"`
	Message                    string  `json:"message"`
}

type AMILookupRequest struct {
	ReferenceIdentifier string `json:"referenceIdentifier"`
	PropertyState       string `json:"propertyState"`
	PropertyCounty      string `json:"propertyCounty"`
	BorrowerIncome      int    `json:"borrowerIncome"`
}

type ProgramEligibility struct {
	ProgramName string `json:"programName"`
	Eligible    bool   `json:"eligible"`
}

type AMILookupResponse struct {
	State             string               `json:"state"`
	County            string               `json:"county"`
	AreaMedianIncome  int                  `json:"areaMedianIncome"`
	BorrowerIncome    int                  `json:"borrowerIncome"`
	AMIPercentage     int                  `json:"amiPercentage"`
	IncomeLimit80AMI  int                  `json:"incomeLimit80AMI"`
	HomeReadyEligible bool                 `json:"homeReadyEligible"`
	EligiblePrograms  []ProgramEligibility `json:"eligiblePrograms"`
	Message           string               `json:"message"`
}

type LoanPricingRequest struct {
	ReferenceIdentifier string  `json:"referenceIdentifier"`
	LoanAmount          int     `json:"loanAmount"`
	NoteRate            float64 `json:"noteRate"`
	LoanTerm            int     `json:"loanTerm"`
	CreditScore         int     `json:"creditScore"`
	LTV                 float64 `json:"ltv"`
	CLTV                float64 `json:"cltv"`
	LoanPurpose         string  `json:"loanPurpose"`
	PropertyType        string  `json:"propertyType"`
	OccupancyType       string  `json:"occupancyType"`
	PropertyState       string  `json:"propertyState"`
	PropertyCounty      string  `json:"propertyCounty"`
	DeliveryType        string  `json:"deliveryType"`
}

type LLPADetail struct {
	AdjustmentName  string  `json:"adjustmentName"`
	RiskFactor      string  `json:"riskFactor"`
	AdjustmentValue float64 `json:"adjustmentValue"`
}

type LoanPricingResponse struct {
	PricingDate         string       `json:"pricingDate"`
	BasePrice           float64      `json:"basePrice"`
	AdjustedPrice       float64      `json:"adjustedPrice"`
	SRPPrice            float64      `json:"srpPrice"`
	NetPrice            float64      `json:"netPrice"`
	LLPADetails         []LLPADetail `json:"llpaDetails"`
	EligibilityStatus   string       `json:"eligibilityStatus"`
	EligibilityMessages []string     `json:"eligibilityMessages,omitempty"`
}

type MissionScoreRequest struct {
	ReferenceIdentifier string `json:"referenceIdentifier"`
	LoanAmount          int    `json:"loanAmount"`
	PropertyState       string `json:"propertyState"`
	PropertyCounty      string `json:"propertyCounty"`
	PropertyZipCode     string `json:"propertyZipCode"`
	BorrowerIncome      int    `json:"borrowerIncome"`
}

type ComponentScore struct {
	Dimension        string   `json:"dimension"`
	Score            float64  `json:"score"`
	CriteriaMetCount int      `json:"criteriaMetCount"`
	TotalCriteria    int      `json:"totalCriteria"`
	CriteriaMet      []string `json:"criteriaMet,omitempty"`
}

type IncentiveDetail struct {
	IncentiveType  string `json:"incentiveType"`
	IncentiveValue string `json:"incentiveValue"`
	Description    string `json:"description"`
}

type MissionScoreResponse struct {
	MissionScore         int               `json:"missionScore"`
	MissionCriteriaShare float64           `json:"missionCriteriaShare"`
	MissionDensityScore  float64           `json:"missionDensityScore"`
	ComponentScores      []ComponentScore  `json:"componentScores"`
	EligibleForIncentives bool             `json:"eligibleForIncentives"`
	IncentiveDetails     []IncentiveDetail `json:"incentiveDetails,omitempty"`
}

type SRPPricingRequest struct {
	ReferenceIdentifier string  `json:"referenceIdentifier"`
	LoanAmount          int     `json:"loanAmount"`
	NoteRate            float64 `json:"noteRate"`
	LoanTerm            int     `json:"loanTerm"`
	LoanPurpose         string  `json:"loanPurpose"`
	PropertyType        string  `json:"propertyType"`
	OccupancyType       string  `json:"occupancyType"`
	LTV                 float64 `json:"ltv"`
	CreditScore         int     `json:"creditScore"`
	ServicingRetained   bool    `json:"servicingRetained"`
}

type PriceComponent struct {
	Component   string  `json:"component"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

type CommitmentOption struct {
	CommitmentPeriod int     `json:"commitmentPeriod"`
	Price            float64 `json:"price"`
	ExpirationDate   string  `json:"expirationDate"`
}

type SRPPricingResponse struct {
	SRPIndicativePrice float64            `json:"srpIndicativePrice"`
	SRPPriceDate       string             `json:"srpPriceDate"`
	ServicingValue     float64            `json:"servicingValue"`
	PriceBreakdown     []PriceComponent   `json:"priceBreakdown"`
	CommitmentOptions  []CommitmentOption `json:"commitmentOptions"`
}

type ConstructionSpendingRequest struct {
	Section   string `json:"section"`
	Sector    string `json:"sector,omitempty"`
	Subsector string `json:"subsector,omitempty"`
}

type ConstructionSpendingResponse struct {
	PeriodDate     string  `json:"periodDate"`
	Section        string  `json:"section"`
	Sector         string  `json:"sector,omitempty"`
	Subsector      string  `json:"subsector,omitempty"`
	TotalSpending  int     `json:"totalSpending"`
	MonthOverMonth float64 `json:"monthOverMonth"`
	YearOverYear   float64 `json:"yearOverYear"`
	Source         string  `json:"source"`
}
