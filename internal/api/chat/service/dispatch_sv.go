package chatService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rtlmac/pkg/fanniemae"
	"rtlmac/pkg/intent"
)

// dispatch routes a classification result to its category handler. Content
// is always non-empty; data is nil when the handler answered with a
// clarification prompt or a static information page.
func (s *chatService) dispatch(ctx context.Context, result intent.Result) (string, interface{}, error) {
	p := result.Params

	switch result.Category {
	case intent.CategoryLoanLimits:
		return s.handleLoanLimits(ctx, p)
	case intent.CategoryHousingPulse:
		return s.handleHousingPulse(ctx, p)
	case intent.CategoryManufacturedHousing:
		return s.handleManufacturedHousing(ctx, p)
	case intent.CategoryOpportunityZones:
		return s.handleOpportunityZones(ctx, p)
	case intent.CategoryInvestorTools:
		return s.handleInvestorData(ctx, p)
	case intent.CategoryLoanLookup:
		return s.handleLoanLookup(ctx, p)
	case intent.CategoryAMIHomeReady:
		return s.handleAMIHomeReady(ctx, p)
	case intent.CategoryPropertyData:
		return propertyDataInfo, nil, nil
	case intent.CategoryAppraisalFindings:
		return appraisalFindingsInfo, nil, nil
	case intent.CategoryDUMessages:
		return duMessagesInfo, nil, nil
	case intent.CategoryLoanPricing:
		return s.handleLoanPricing(ctx, p)
	case intent.CategoryMissionScore:
		return s.handleMissionScore(ctx, p)
	case intent.CategorySRPPricing:
		return s.handleSRPPricing(ctx, p)
	case intent.CategoryMITermination:
		return miTerminationInfo, nil, nil
	case intent.CategoryHiLoEligibility:
		return hiLoEligibilityInfo, nil, nil
	case intent.CategoryConstructionSpending:
		return s.handleConstructionSpending(ctx, p)
	default:
		return helpMenu, nil, nil
	}
}

func referenceID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

func (s *chatService) handleLoanLimits(ctx context.Context, p intent.Params) (string, interface{}, error) {
	if p.State == "" {
		return loanLimitsClarification, nil, nil
	}

	data, err := s.provider.GetLoanLimits(ctx, fanniemae.LoanLimitsRequest{
		State:  p.State,
		County: p.County,
	})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %d Conforming Loan Limits for %s", data.Year, data.State)
	if data.County != "All Counties" {
		fmt.Fprintf(&b, ", %s County", data.County)
	}
	b.WriteString("\n\n")
	b.WriteString("| Property Units | Limit |\n|---|---|\n")
	fmt.Fprintf(&b, "| 1-Unit | $%s |\n", grouped(data.Limits.OneUnit))
	fmt.Fprintf(&b, "| 2-Unit | $%s |\n", grouped(data.Limits.TwoUnit))
	fmt.Fprintf(&b, "| 3-Unit | $%s |\n", grouped(data.Limits.ThreeUnit))
	fmt.Fprintf(&b, "| 4-Unit | $%s |\n\n", grouped(data.Limits.FourUnit))
	if data.HighCostArea {
		b.WriteString("🏠 **High-Cost Area** - Higher limits apply\n\n")
	}
	fmt.Fprintf(&b, "*Source: %s | Effective: %s*\n\n", data.Source, data.EffectiveDate)
	b.WriteString("Would you like me to check eligibility for a specific loan amount, or look up limits for another area?")

	return b.String(), data, nil
}

func (s *chatService) handleHousingPulse(ctx context.Context, p intent.Params) (string, interface{}, error) {
	data, err := s.provider.GetHousingPulse(ctx, fanniemae.HousingPulseRequest{State: p.State})
	if err != nil {
		return "", nil, err
	}

	region := " - National"
	if p.State != "" {
		region = " - " + p.State
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Housing Market Pulse%s\n", region)
	fmt.Fprintf(&b, "*As of %s*\n\n", data.DataDate)
	b.WriteString("### Key Metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Median Home Price | $%s |\n", grouped(data.Metrics.MedianHomePrice))
	fmt.Fprintf(&b, "| YoY Price Change | %.1f%% |\n", data.Metrics.HomePriceYoY)
	fmt.Fprintf(&b, "| Inventory (months) | %.1f |\n", data.Metrics.InventoryMonths)
	fmt.Fprintf(&b, "| Days on Market | %d |\n", data.Metrics.DaysOnMarket)
	fmt.Fprintf(&b, "| 30-Yr Mortgage Rate | %.2f%% |\n", data.Metrics.MortgageRate30Yr)
	fmt.Fprintf(&b, "| 15-Yr Mortgage Rate | %.2f%% |\n", data.Metrics.MortgageRate15Yr)
	fmt.Fprintf(&b, "| Affordability Index | %d |\n", data.Metrics.AffordabilityIndex)
	fmt.Fprintf(&b, "| New Listings | %s |\n", grouped(data.Metrics.NewListings))
	fmt.Fprintf(&b, "| Pending Sales | %s |\n", grouped(data.Metrics.PendingSales))
	fmt.Fprintf(&b, "| Closed Sales | %s |\n\n", grouped(data.Metrics.ClosedSales))
	b.WriteString("### Market Trends\n")
	fmt.Fprintf(&b, "- **Price Direction:** %s\n", data.Trends.PriceDirection)
	fmt.Fprintf(&b, "- **Inventory Direction:** %s\n", data.Trends.InventoryDirection)
	fmt.Fprintf(&b, "- **Demand Level:** %s\n", data.Trends.DemandLevel)
	fmt.Fprintf(&b, "- **Market Temperature:** %s\n\n", data.Trends.MarketTemperature)
	fmt.Fprintf(&b, "*Source: %s*", data.Source)

	return b.String(), data, nil
}

func (s *chatService) handleManufacturedHousing(ctx context.Context, p intent.Params) (string, interface{}, error) {
	data, err := s.provider.GetManufacturedHousing(ctx, fanniemae.ManufacturedHousingRequest{State: p.State})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	if p.State != "" && data.State != "" {
		fmt.Fprintf(&b, "## Manufactured Housing Data - %s\n\n", data.State)
		b.WriteString("| Metric | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Communities | %s |\n", grouped(data.CommunityCount))
		fmt.Fprintf(&b, "| Total Units | %s |\n", grouped(data.UnitCount))
		fmt.Fprintf(&b, "| Avg Units/Community | %d |\n\n", data.AvgUnitsPerCommunity)
		fmt.Fprintf(&b, "*Source: %s*", data.Source)
	} else {
		b.WriteString("## National Manufactured Housing Overview\n\n")
		if data.NationalTotals != nil {
			b.WriteString("### National Totals\n")
			fmt.Fprintf(&b, "- **Total Communities:** %s\n", grouped(data.NationalTotals.TotalCommunities))
			fmt.Fprintf(&b, "- **Total Units:** %s\n", grouped(data.NationalTotals.TotalUnits))
			fmt.Fprintf(&b, "- **States Reporting:** %d\n\n", data.NationalTotals.StatesReporting)
		}
		if len(data.StateBreakdown) > 0 {
			b.WriteString("### Top States by Community Count\n\n")
			b.WriteString("| State | Communities | Units | Avg/Community |\n|---|---|---|---|\n")
			for _, st := range data.StateBreakdown {
				fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", st.State, grouped(st.Communities), grouped(st.Units), st.AvgUnitsPerCommunity)
			}
		}
		fmt.Fprintf(&b, "\n*Source: %s*", data.Source)
	}

	return b.String(), data, nil
}

func (s *chatService) handleOpportunityZones(ctx context.Context, p intent.Params) (string, interface{}, error) {
	data, err := s.provider.GetOpportunityZones(ctx, fanniemae.OpportunityZonesRequest{
		State:  p.State,
		County: p.County,
	})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("## Opportunity Zones")
	if p.State != "" {
		fmt.Fprintf(&b, " - %s", p.State)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Found **%d** qualified opportunity zones.\n\n", data.TotalZones)
	b.WriteString("### Zone Details\n\n")
	b.WriteString("| Tract ID | Designation | Population | Poverty Rate | Median Income |\n|---|---|---|---|---|\n")
	for _, zone := range data.Zones {
		fmt.Fprintf(&b, "| %s | %s | %s | %.1f%% | $%s |\n",
			zone.TractID, zone.Designation, grouped(zone.Population), zone.PovertyRate, grouped(zone.MedianFamilyIncome))
	}
	b.WriteString("\n### Investment Benefits\n")
	b.WriteString("Opportunity Zones offer tax incentives for investments including:\n")
	b.WriteString("- Capital gains tax deferral\n")
	b.WriteString("- Step-up in basis after 5-7 years\n")
	b.WriteString("- Tax-free gains on new investments held 10+ years\n")

	return b.String(), data, nil
}

func (s *chatService) handleInvestorData(ctx context.Context, p intent.Params) (string, interface{}, error) {
	data, err := s.provider.GetInvestorData(ctx, fanniemae.InvestorDataRequest{
		DataType:   "POOL_DATA",
		PoolNumber: p.PoolNumber,
		CUSIP:      p.CUSIP,
	})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Investor Data - %s\n", strings.ToUpper(strings.ReplaceAll(data.DataType, "_", " ")))
	fmt.Fprintf(&b, "*As of %s*\n\n", data.AsOfDate)
	b.WriteString("### Security Records\n\n")
	b.WriteString("| Pool # | CUSIP | Type | Coupon | WAC | WAM | Loan Count |\n|---|---|---|---|---|---|---|\n")
	for _, rec := range data.Records {
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f%% | %.2f%% | %d | %d |\n",
			rec.PoolNumber, rec.CUSIP, rec.SecurityType, rec.CouponRate, rec.WAC, rec.WAM, rec.LoanCount)
	}
	fmt.Fprintf(&b, "\n**Total Records:** %d", data.TotalRecords)

	return b.String(), data, nil
}

func (s *chatService) handleLoanLookup(ctx context.Context, p intent.Params) (string, interface{}, error) {
	if p.BorrowerLastName == "" || p.State == "" {
		return loanLookupClarification, nil, nil
	}

	data, err := s.provider.LoanLookup(ctx, fanniemae.LoanLookupRequest{
		ReferenceIdentifier:   referenceID("lookup"),
		BorrowerLastName:      p.BorrowerLastName,
		PropertyStreetAddress: p.PropertyAddress,
		PropertyCity:          p.City,
		PropertyState:         p.State,
		PropertyZipCode:       p.ZipCode,
	})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("## Loan Lookup Results\n\n")
	if data.OwnedByFannieMae {
		b.WriteString("### ✅ Loan Found in Fannie Mae Portfolio\n\n")
		b.WriteString("| Detail | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Fannie Mae Loan # | %s |\n", data.FannieMaeLoanNumber)
		fmt.Fprintf(&b, "| Servicer | %s |\n", data.ServicerName)
		fmt.Fprintf(&b, "| Current UPB | $%s |\n", grouped(data.CurrentUPB))
		fmt.Fprintf(&b, "| Note Rate | %.3f%% |\n", data.NoteRate)
		fmt.Fprintf(&b, "| Eligible for Refi | %s |\n", yesNo(data.EligibleForRefi))
		if data.EligibleForAppraisalWaiver {
			b.WriteString("| Appraisal Waiver | May qualify |\n\n")
		} else {
			b.WriteString("| Appraisal Waiver | Not eligible |\n\n")
		}
	} else {
		b.WriteString("### ℹ️ Loan Not Found\n\n")
		b.WriteString("This loan does not appear to be owned by Fannie Mae.\n\n")
		b.WriteString("The loan may be:\n")
		b.WriteString("- Owned by Freddie Mac\n")
		b.WriteString("- A portfolio loan\n")
		b.WriteString("- A government loan (FHA/VA/USDA)\n")
	}
	fmt.Fprintf(&b, "*%s*", data.Message)

	return b.String(), data, nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func (s *chatService) handleAMIHomeReady(ctx context.Context, p intent.Params) (string, interface{}, error) {
	if p.Income == 0 || p.State == "" {
		return amiClarification, nil, nil
	}

	county := p.County
	if county == "" {
		county = "Metro"
	}

	data, err := s.provider.AMILookup(ctx, fanniemae.AMILookupRequest{
		ReferenceIdentifier: referenceID("ami"),
		PropertyState:       p.State,
		PropertyCounty:      county,
		BorrowerIncome:      p.Income,
	})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("## HomeReady / AMI Eligibility Analysis\n\n")
	b.WriteString("| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Location | %s, %s |\n", county, p.State)
	fmt.Fprintf(&b, "| Area Median Income (AMI) | $%s |\n", grouped(data.AreaMedianIncome))
	fmt.Fprintf(&b, "| Borrower Income | $%s |\n", grouped(p.Income))
	fmt.Fprintf(&b, "| %% of AMI | %d%% |\n", data.AMIPercentage)
	fmt.Fprintf(&b, "| 80%% AMI Limit | $%s |\n\n", grouped(data.IncomeLimit80AMI))

	if data.HomeReadyEligible {
		b.WriteString("### ✅ HomeReady Eligible!\n\n")
		b.WriteString("Great news! The borrower qualifies for Fannie Mae's HomeReady program, which offers:\n")
		b.WriteString("- Down payments as low as 3%\n")
		b.WriteString("- Reduced MI coverage requirements\n")
		b.WriteString("- Flexible income sources (boarder income, rental income)\n\n")
	} else {
		b.WriteString("### ℹ️ Not HomeReady Eligible\n\n")
		b.WriteString("The borrower's income exceeds 80% of AMI for this area.\n\n")
	}

	b.WriteString("**Eligible Programs:**\n")
	for _, prog := range data.EligiblePrograms {
		check := ""
		if prog.Eligible {
			check = " ✓"
		}
		fmt.Fprintf(&b, "- %s%s\n", prog.ProgramName, check)
	}

	return b.String(), data, nil
}

func (s *chatService) handleLoanPricing(ctx context.Context, p intent.Params) (string, interface{}, error) {
	if p.LoanAmount == 0 || p.CreditScore == 0 {
		return loanPricingClarification, nil, nil
	}

	req := fanniemae.LoanPricingRequest{
		ReferenceIdentifier: referenceID("pricing"),
		LoanAmount:          p.LoanAmount,
		NoteRate:            p.NoteRate,
		LoanTerm:            360,
		CreditScore:         p.CreditScore,
		LTV:                 p.LTV,
		CLTV:                p.LTV,
		LoanPurpose:         p.Purpose,
		PropertyType:        "SINGLE_FAMILY",
		OccupancyType:       "PRIMARY_RESIDENCE",
		PropertyState:       p.State,
		PropertyCounty:      p.County,
		DeliveryType:        "CASH",
	}
	if req.NoteRate == 0 {
		req.NoteRate = 6.5
	}
	if req.LTV == 0 {
		req.LTV = 80
		req.CLTV = 80
	}
	if req.LoanPurpose == "" {
		req.LoanPurpose = "PURCHASE"
	}
	if req.PropertyState == "" {
		req.PropertyState = "CA"
	}
	if req.PropertyCounty == "" {
		req.PropertyCounty = "Los Angeles"
	}

	data, err := s.provider.GetLoanPricing(ctx, req)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("## Loan Pricing Analysis\n")
	fmt.Fprintf(&b, "*Pricing Date: %s*\n\n", data.PricingDate)
	b.WriteString("### Price Summary\n")
	b.WriteString("| Component | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Base Price | %.3f |\n", data.BasePrice)
	fmt.Fprintf(&b, "| Adjusted Price | %.3f |\n", data.AdjustedPrice)
	fmt.Fprintf(&b, "| SRP Price | %.3f |\n", data.SRPPrice)
	fmt.Fprintf(&b, "| **Net Price** | **%.3f** |\n\n", data.NetPrice)

	b.WriteString("### LLPA Details\n")
	b.WriteString("| Adjustment | Factor | Value |\n|---|---|---|\n")
	for _, llpa := range data.LLPADetails {
		sign := ""
		if llpa.AdjustmentValue >= 0 {
			sign = "+"
		}
		fmt.Fprintf(&b, "| %s | %s | %s%.3f |\n", llpa.AdjustmentName, llpa.RiskFactor, sign, llpa.AdjustmentValue)
	}

	fmt.Fprintf(&b, "\n**Eligibility:** %s\n", data.EligibilityStatus)
	for _, msg := range data.EligibilityMessages {
		fmt.Fprintf(&b, "- %s\n", msg)
	}

	return b.String(), data, nil
}

func (s *chatService) handleMissionScore(ctx context.Context, p intent.Params) (string, interface{}, error) {
	if p.State == "" {
		return missionScoreClarification, nil, nil
	}

	req := fanniemae.MissionScoreRequest{
		ReferenceIdentifier: referenceID("mission"),
		LoanAmount:          p.LoanAmount,
		PropertyState:       p.State,
		PropertyCounty:      p.County,
		PropertyZipCode:     p.ZipCode,
		BorrowerIncome:      p.Income,
	}
	if req.LoanAmount == 0 {
		req.LoanAmount = 350000
	}
	if req.PropertyCounty == "" {
		req.PropertyCounty = "Metro"
	}
	if req.PropertyZipCode == "" {
		req.PropertyZipCode = "00000"
	}
	if req.BorrowerIncome == 0 {
		req.BorrowerIncome = 75000
	}

	data, err := s.provider.GetMissionScore(ctx, req)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("## Mission Score Results\n\n")
	star := ""
	if data.MissionScore >= 2 {
		star = " 🌟"
	}
	fmt.Fprintf(&b, "### Overall Score: %d/3%s\n\n", data.MissionScore, star)
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Mission Criteria Share | %.1f%% |\n", data.MissionCriteriaShare)
	fmt.Fprintf(&b, "| Mission Density Score | %.1f |\n\n", data.MissionDensityScore)

	b.WriteString("### Component Scores\n")
	for _, comp := range data.ComponentScores {
		fmt.Fprintf(&b, "**%s**: %.0f/100\n", comp.Dimension, comp.Score)
		fmt.Fprintf(&b, "- Criteria Met: %d/%d\n", comp.CriteriaMetCount, comp.TotalCriteria)
		for _, c := range comp.CriteriaMet {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
		b.WriteString("\n")
	}

	if data.EligibleForIncentives {
		b.WriteString("### ✅ Eligible for Incentives\n")
		for _, inc := range data.IncentiveDetails {
			fmt.Fprintf(&b, "- **%s**: %s - %s\n", inc.IncentiveType, inc.IncentiveValue, inc.Description)
		}
	}

	return b.String(), data, nil
}

func (s *chatService) handleSRPPricing(ctx context.Context, p intent.Params) (string, interface{}, error) {
	req := fanniemae.SRPPricingRequest{
		ReferenceIdentifier: referenceID("srp"),
		LoanAmount:          p.LoanAmount,
		NoteRate:            p.NoteRate,
		LoanTerm:            360,
		LoanPurpose:         "PURCHASE",
		PropertyType:        "SINGLE_FAMILY",
		OccupancyType:       "PRIMARY_RESIDENCE",
		LTV:                 p.LTV,
		CreditScore:         p.CreditScore,
		ServicingRetained:   false,
	}
	if req.LoanAmount == 0 {
		req.LoanAmount = 300000
	}
	if req.NoteRate == 0 {
		req.NoteRate = 6.5
	}
	if req.LTV == 0 {
		req.LTV = 80
	}
	if req.CreditScore == 0 {
		req.CreditScore = 740
	}

	data, err := s.provider.GetSRPPricing(ctx, req)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("## SRP (Servicing Released Premium) Pricing\n\n")
	b.WriteString("SRP pricing determines the premium paid for selling servicing rights.\n\n")
	b.WriteString("### SRP Quote\n")
	b.WriteString("| Component | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Indicative SRP Price | %.3f |\n", data.SRPIndicativePrice)
	fmt.Fprintf(&b, "| Price Date | %s |\n", data.SRPPriceDate)
	fmt.Fprintf(&b, "| Servicing Value | %.3f |\n\n", data.ServicingValue)

	b.WriteString("### Price Breakdown\n")
	for _, comp := range data.PriceBreakdown {
		fmt.Fprintf(&b, "- **%s**: %.3f - %s\n", comp.Component, comp.Value, comp.Description)
	}

	b.WriteString("\n### Commitment Options\n")
	b.WriteString("| Period (Days) | Price | Expiration |\n|---|---|---|\n")
	for _, opt := range data.CommitmentOptions {
		expiry := opt.ExpirationDate
		if idx := strings.Index(expiry, "T"); idx >= 0 {
			expiry = expiry[:idx]
		}
		fmt.Fprintf(&b, "| %d | %.3f | %s |\n", opt.CommitmentPeriod, opt.Price, expiry)
	}

	return b.String(), data, nil
}

func (s *chatService) handleConstructionSpending(ctx context.Context, p intent.Params) (string, interface{}, error) {
	section := p.Section
	if section == "" {
		section = "Total"
	}

	data, err := s.provider.GetConstructionSpending(ctx, fanniemae.ConstructionSpendingRequest{
		Section:   section,
		Sector:    p.Sector,
		Subsector: p.Subsector,
	})
	if err != nil {
		return "", nil, err
	}

	label := section
	if data.Sector != "" {
		label += " " + data.Sector
	}
	if data.Subsector != "" {
		label += " / " + data.Subsector
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Construction Spending - %s\n", label)
	fmt.Fprintf(&b, "*Period: %s*\n\n", data.PeriodDate)
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total Spending | $%s million |\n", grouped(data.TotalSpending))
	fmt.Fprintf(&b, "| Month over Month | %.1f%% |\n", data.MonthOverMonth)
	fmt.Fprintf(&b, "| Year over Year | %.1f%% |\n\n", data.YearOverYear)
	fmt.Fprintf(&b, "*Source: %s*", data.Source)

	return b.String(), data, nil
}
