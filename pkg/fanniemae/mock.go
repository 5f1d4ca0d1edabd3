package fanniemae

import (
	"context"
	"fmt"
	"strings"
)

// mockClient serves synthetic payloads when the live API is unreachable or
// unconfigured. Every response is a pure function of the request, so repeated
// calls with the same input return identical data.
type mockClient struct{}

func NewMock() IFannieMae {
	return &mockClient{}
}

const (
	mockDataDate      = "2025-06-30"
	mockEffectiveDate = "2025-01-01"
	baselineOneUnit   = 766550
)

var mockLoanLimits = map[string]UnitLimits{
	"CA": {OneUnit: 1149825, TwoUnit: 1472250, ThreeUnit: 1779525, FourUnit: 2211600},
	"NY": {OneUnit: 1149825, TwoUnit: 1472250, ThreeUnit: 1779525, FourUnit: 2211600},
	"WA": {OneUnit: 977500, TwoUnit: 1251400, ThreeUnit: 1512650, FourUnit: 1879850},
	"TX": {OneUnit: 766550, TwoUnit: 981500, ThreeUnit: 1186350, FourUnit: 1474400},
	"FL": {OneUnit: 766550, TwoUnit: 981500, ThreeUnit: 1186350, FourUnit: 1474400},
}

var mockDefaultLimits = UnitLimits{OneUnit: 766550, TwoUnit: 981500, ThreeUnit: 1186350, FourUnit: 1474400}

var mockAMILimits = map[string]int{
	"CA": 125000,
	"NY": 115000,
	"WA": 105000,
	"TX": 85000,
	"FL": 78000,
}

const mockDefaultAMI = 90000

var mockManufacturedHousing = map[string]StateHousingStats{
	"TX": {State: "TX", Communities: 2847, Units: 312500},
	"FL": {State: "FL", Communities: 3256, Units: 445000},
	"CA": {State: "CA", Communities: 4521, Units: 523000},
	"AZ": {State: "AZ", Communities: 1523, Units: 198000},
	"NC": {State: "NC", Communities: 1876, Units: 234000},
}

// seed folds a string into a small stable number used to vary synthetic
// metrics per input without any randomness.
func seed(s string) int {
	total := 0
	for _, b := range []byte(strings.ToUpper(s)) {
		total += int(b)
	}
	return total
}

func (m *mockClient) GetLoanLimits(_ context.Context, req LoanLimitsRequest) (*LoanLimitsResponse, error) {
	state := strings.ToUpper(req.State)
	limits, ok := mockLoanLimits[state]
	if !ok {
		limits = mockDefaultLimits
	}

	county := req.County
	if county == "" {
		county = "All Counties"
	}

	return &LoanLimitsResponse{
		State:         state,
		County:        county,
		Year:          2025,
		Limits:        limits,
		HighCostArea:  limits.OneUnit > baselineOneUnit,
		Source:        "Fannie Mae 2025 Conforming Loan Limits",
		EffectiveDate: mockEffectiveDate,
	}, nil
}

func (m *mockClient) GetHousingPulse(_ context.Context, req HousingPulseRequest) (*HousingPulseResponse, error) {
	region := req.State
	if region == "" {
		region = "National"
	}
	offset := seed(region) % 50

	demand := "moderate"
	temperature := "balanced"
	if offset >= 25 {
		demand = "high"
		temperature = "warm"
	}

	return &HousingPulseResponse{
		Region:   region,
		DataDate: mockDataDate,
		Metrics: HousingMetrics{
			MedianHomePrice:    412000 + offset*1000,
			HomePriceYoY:       4.2 + float64(offset%10)/10,
			InventoryMonths:    3.2 + float64(offset%5)/10,
			DaysOnMarket:       28 + offset%15,
			MortgageRate30Yr:   6.75 + float64(offset%4)/20,
			MortgageRate15Yr:   6.0 + float64(offset%4)/20,
			AffordabilityIndex: 92 + offset%20,
			NewListings:        45000 + offset*200,
			PendingSales:       38000 + offset*160,
			ClosedSales:        35000 + offset*150,
		},
		Trends: MarketTrends{
			PriceDirection:     "increasing",
			InventoryDirection: "stable",
			DemandLevel:        demand,
			MarketTemperature:  temperature,
		},
		Source: "Fannie Mae Housing Pulse",
	}, nil
}

func (m *mockClient) GetManufacturedHousing(_ context.Context, req ManufacturedHousingRequest) (*ManufacturedHousingResponse, error) {
	state := strings.ToUpper(req.State)
	if stats, ok := mockManufacturedHousing[state]; ok {
		return &ManufacturedHousingResponse{
			State:                state,
			CommunityCount:       stats.Communities,
			UnitCount:            stats.Units,
			AvgUnitsPerCommunity: stats.Units / stats.Communities,
			Source:               "Fannie Mae Manufactured Housing Data",
		}, nil
	}

	breakdown := make([]StateHousingStats, 0, len(mockManufacturedHousing))
	for _, code := range []string{"CA", "FL", "TX", "NC", "AZ"} {
		stats := mockManufacturedHousing[code]
		stats.AvgUnitsPerCommunity = stats.Units / stats.Communities
		breakdown = append(breakdown, stats)
	}

	return &ManufacturedHousingResponse{
		NationalTotals: &NationalTotals{
			TotalCommunities: 43000,
			TotalUnits:       4200000,
			StatesReporting:  50,
		},
		StateBreakdown: breakdown,
		Source:         "Fannie Mae Manufactured Housing Data",
	}, nil
}

func (m *mockClient) GetOpportunityZones(_ context.Context, req OpportunityZonesRequest) (*OpportunityZonesResponse, error) {
	state := strings.ToUpper(req.State)
	if state == "" {
		state = "US"
	}
	base := seed(state)

	zones := make([]OpportunityZone, 0, 3)
	for i := 1; i <= 3; i++ {
		zones = append(zones, OpportunityZone{
			TractID:            fmt.Sprintf("%s-%05d", state, base*10+i),
			Designation:        "Qualified Opportunity Zone",
			Population:         3500 + base%1500 + i*400,
			PovertyRate:        22.5 + float64(base%8) + float64(i),
			MedianFamilyIncome: 41000 + (base%10)*500 + i*1200,
		})
	}

	return &OpportunityZonesResponse{
		State:      state,
		TotalZones: len(zones),
		Zones:      zones,
	}, nil
}

func (m *mockClient) GetInvestorData(_ context.Context, req InvestorDataRequest) (*InvestorDataResponse, error) {
	pool := strings.ToUpper(req.PoolNumber)
	if pool == "" {
		pool = "FN000001"
	}
	cusip := strings.ToUpper(req.CUSIP)
	if cusip == "" {
		cusip = fmt.Sprintf("3138W%04d", seed(pool)%10000)
	}

	record := SecurityRecord{
		PoolNumber:   pool,
		CUSIP:        cusip,
		SecurityType: "MBS",
		CouponRate:   5.5 + float64(seed(pool)%4)*0.25,
		WAC:          6.1 + float64(seed(pool)%4)*0.25,
		WAM:          320 + seed(pool)%40,
		LoanCount:    150 + seed(pool)%400,
	}

	return &InvestorDataResponse{
		DataType:     req.DataType,
		AsOfDate:     mockDataDate,
		Records:      []SecurityRecord{record},
		TotalRecords: 1,
	}, nil
}

func (m *mockClient) LoanLookup(_ context.Context, req LoanLookupRequest) (*LoanLookupResponse, error) {
	key := seed(req.BorrowerLastName + req.PropertyStreetAddress + req.PropertyState)

	if key%4 == 0 {
		return &LoanLookupResponse{
			OwnedByFannieMae: false,
			Message:          "No matching loan found in the Fannie Mae portfolio.",
		}, nil
	}

	return &LoanLookupResponse{
		OwnedByFannieMae:           true,
		FannieMaeLoanNumber:        fmt.Sprintf("17%08d", key*37),
		ServicerName:               "Example Servicing LLC",
		CurrentUPB:                 185000 + (key%200)*1000,
		NoteRate:                   3.875 + float64(key%8)*0.125,
		EligibleForRefi:            key%3 != 0,
		EligibleForAppraisalWaiver: key%2 == 0,
		Message:                    "Match based on borrower name and property address.",
	}, nil
}

func (m *mockClient) AMILookup(_ context.Context, req AMILookupRequest) (*AMILookupResponse, error) {
	state := strings.ToUpper(req.PropertyState)
	ami, ok := mockAMILimits[state]
	if !ok {
		ami = mockDefaultAMI
	}

	percentage := 0
	if ami > 0 {
		percentage = int(float64(req.BorrowerIncome)/float64(ami)*100 + 0.5)
	}
	eligible := percentage <= 80

	programs := []ProgramEligibility{
		{ProgramName: "HomeReady", Eligible: eligible},
		{ProgramName: "Home Possible", Eligible: eligible},
		{ProgramName: "HFA Preferred", Eligible: eligible},
		{ProgramName: "Standard Conforming", Eligible: percentage <= 100},
		{ProgramName: "FHA", Eligible: percentage <= 100},
	}

	message := fmt.Sprintf("Borrower income is %d%% of AMI.", percentage)
	if eligible {
		message = fmt.Sprintf("Borrower income is %d%% of AMI - eligible for HomeReady!", percentage)
	}

	return &AMILookupResponse{
		State:             state,
		County:            req.PropertyCounty,
		AreaMedianIncome:  ami,
		BorrowerIncome:    req.BorrowerIncome,
		AMIPercentage:     percentage,
		IncomeLimit80AMI:  ami * 80 / 100,
		HomeReadyEligible: eligible,
		EligiblePrograms:  programs,
		Message:           message,
	}, nil
}

func (m *mockClient) GetLoanPricing(_ context.Context, req LoanPricingRequest) (*LoanPricingResponse, error) {
	details := []LLPADetail{
		{
			AdjustmentName:  "Credit Score / LTV",
			RiskFactor:      fmt.Sprintf("%d / %.0f%%", req.CreditScore, req.LTV),
			AdjustmentValue: creditScoreLLPA(req.CreditScore, req.LTV),
		},
	}

	if req.LTV > 80 {
		details = append(details, LLPADetail{
			AdjustmentName:  "High LTV",
			RiskFactor:      fmt.Sprintf("LTV %.0f%%", req.LTV),
			AdjustmentValue: 0.375,
		})
	}
	if req.LoanPurpose == "CASH_OUT_REFINANCE" {
		details = append(details, LLPADetail{
			AdjustmentName:  "Cash-Out Refinance",
			RiskFactor:      req.LoanPurpose,
			AdjustmentValue: 1.0,
		})
	}
	if req.OccupancyType == "INVESTMENT_PROPERTY" {
		details = append(details, LLPADetail{
			AdjustmentName:  "Investment Property",
			RiskFactor:      req.OccupancyType,
			AdjustmentValue: 2.125,
		})
	}

	total := 0.0
	for _, d := range details {
		total += d.AdjustmentValue
	}

	base := 99.5
	adjusted := base - total
	srp := 1.25

	status := "ELIGIBLE"
	var messages []string
	if req.LTV > 97 {
		status = "INELIGIBLE"
		messages = append(messages, "LTV exceeds the 97% program maximum.")
	}
	if req.CreditScore < 620 {
		status = "INELIGIBLE"
		messages = append(messages, "Credit score below the 620 minimum.")
	}

	return &LoanPricingResponse{
		PricingDate:         mockDataDate,
		BasePrice:           base,
		AdjustedPrice:       adjusted,
		SRPPrice:            srp,
		NetPrice:            adjusted + srp,
		LLPADetails:         details,
		EligibilityStatus:   status,
		EligibilityMessages: messages,
	}, nil
}

func creditScoreLLPA(score int, ltv float64) float64 {
	switch {
	case score >= 780:
		return -0.25
	case score >= 740:
		return 0.0
	case score >= 700:
		return 0.375
	case score >= 660:
		return 0.875
	default:
		if ltv > 75 {
			return 1.75
		}
		return 1.25
	}
}

func (m *mockClient) GetMissionScore(_ context.Context, req MissionScoreRequest) (*MissionScoreResponse, error) {
	state := strings.ToUpper(req.PropertyState)
	ami, ok := mockAMILimits[state]
	if !ok {
		ami = mockDefaultAMI
	}

	var criteriaMet []string
	if req.BorrowerIncome > 0 && req.BorrowerIncome*100 <= ami*80 {
		criteriaMet = append(criteriaMet, "Income at or below 80% of AMI")
	}
	if req.LoanAmount > 0 && req.LoanAmount <= 250000 {
		criteriaMet = append(criteriaMet, "Affordable loan balance")
	}
	if seed(req.PropertyZipCode)%3 == 0 {
		criteriaMet = append(criteriaMet, "Property in underserved area")
	}

	const totalCriteria = 4
	score := len(criteriaMet)
	if score > 3 {
		score = 3
	}

	share := float64(len(criteriaMet)) / totalCriteria * 100
	component := ComponentScore{
		Dimension:        "Affordability",
		Score:            float64(len(criteriaMet)) / totalCriteria * 100,
		CriteriaMetCount: len(criteriaMet),
		TotalCriteria:    totalCriteria,
		CriteriaMet:      criteriaMet,
	}

	resp := &MissionScoreResponse{
		MissionScore:          score,
		MissionCriteriaShare:  share,
		MissionDensityScore:   float64(score) + share/200,
		ComponentScores:       []ComponentScore{component},
		EligibleForIncentives: score >= 2,
	}
	if resp.EligibleForIncentives {
		resp.IncentiveDetails = []IncentiveDetail{
			{
				IncentiveType:  "LLPA Credit",
				IncentiveValue: fmt.Sprintf("-0.%d00", score),
				Description:    "Loan-level price adjustment credit for mission lending",
			},
		}
	}

	return resp, nil
}

func (m *mockClient) GetSRPPricing(_ context.Context, req SRPPricingRequest) (*SRPPricingResponse, error) {
	base := 1.125
	rateComponent := (req.NoteRate - 6.0) * 0.1
	escrow := 0.125

	indicative := base + rateComponent + escrow

	return &SRPPricingResponse{
		SRPIndicativePrice: indicative,
		SRPPriceDate:       mockDataDate,
		ServicingValue:     indicative - 0.25,
		PriceBreakdown: []PriceComponent{
			{Component: "Base SRP", Value: base, Description: "Base servicing released premium"},
			{Component: "Note Rate", Value: rateComponent, Description: "Adjustment for note rate vs. market"},
			{Component: "Escrow", Value: escrow, Description: "Escrow servicing benefit"},
		},
		CommitmentOptions: []CommitmentOption{
			{CommitmentPeriod: 30, Price: indicative, ExpirationDate: "2025-07-30"},
			{CommitmentPeriod: 60, Price: indicative - 0.063, ExpirationDate: "2025-08-29"},
			{CommitmentPeriod: 90, Price: indicative - 0.125, ExpirationDate: "2025-09-28"},
		},
	}, nil
}

var mockConstructionSpending = map[string]int{
	"Residential":    920000,
	"Nonresidential": 1230000,
	"":               2150000,
}

func (m *mockClient) GetConstructionSpending(_ context.Context, req ConstructionSpendingRequest) (*ConstructionSpendingResponse, error) {
	total, ok := mockConstructionSpending[req.Sector]
	if !ok {
		total = mockConstructionSpending[""]
	}

	switch req.Section {
	case "Private":
		total = total * 78 / 100
	case "Public":
		total = total * 22 / 100
	}
	if req.Subsector != "" {
		total = total / (3 + seed(req.Subsector)%8)
	}

	return &ConstructionSpendingResponse{
		PeriodDate:     mockDataDate,
		Section:        req.Section,
		Sector:         req.Sector,
		Subsector:      req.Subsector,
		TotalSpending:  total,
		MonthOverMonth: float64(seed(req.Section+req.Sector)%30)/10 - 1.0,
		YearOverYear:   float64(seed(req.Sector+req.Subsector)%80) / 10,
		Source:         "U.S. Census Bureau Construction Spending",
	}, nil
}
