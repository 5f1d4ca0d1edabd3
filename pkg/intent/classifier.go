package intent

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type classifier struct {
	rules []rule
}

// rule is one ordered classification entry. A rule fires when any keyword
// matches and none of the excluded keywords do. Keywords are matched against
// the normalized query at word-start boundaries, so "loan limit" also hits
// "loan limits" while "ami" stays clear of "family" or "miami".
type rule struct {
	category Category
	any      []string
	none     []string
	extract  func(query string) Params
}

func NewClassifier() IClassifier {
	return &classifier{rules: buildRules()}
}

// Classify never fails: queries that match no rule land in CategoryGeneral
// with empty params. Evaluation order is fixed, first match wins.
func (c *classifier) Classify(query string) Result {
	cleaned := normalizeQuery(query)

	for _, r := range c.rules {
		if !matchesAny(cleaned, r.any) {
			continue
		}
		if matchesAny(cleaned, r.none) {
			continue
		}

		params := Params{}
		if r.extract != nil {
			params = r.extract(query)
		}

		return Result{Category: r.category, Params: params}
	}

	return Result{Category: CategoryGeneral}
}

// Ordered most-specific to most-general. Categories share vocabulary
// ("pricing" appears in SRP queries, "eligibility" in HiLo and MI ones),
// so broad rules carry exclusion lists instead of being reordered.
func buildRules() []rule {
	return []rule{
		{
			category: CategoryLoanLookup,
			any:      []string{"loan lookup", "look up loan", "lookup loan", "find loan", "is this loan", "loan owned", "owned by fannie"},
			extract:  extractLoanLookupParams,
		},
		{
			category: CategoryAMIHomeReady,
			any:      []string{"ami", "homeready", "home ready", "area median income", "income", "eligible", "eligibility"},
			none:     []string{"hilo", "high ltv", "refinow", "mi termination", "mortgage insurance", "cancel mi", "mission", "construction"},
			extract:  extractAMIParams,
		},
		{
			category: CategoryLoanPricing,
			any:      []string{"llpa", "pricing", "loan price", "price adjustment", "rate quote"},
			none:     []string{"srp", "servicing released", "servicing premium", "buy up", "buy down"},
			extract:  extractPricingParams,
		},
		{
			category: CategoryMissionScore,
			any:      []string{"mission"},
			extract:  extractMissionParams,
		},
		{
			category: CategorySRPPricing,
			any:      []string{"srp", "servicing released", "servicing premium", "servicing rights"},
			extract:  extractPricingParams,
		},
		{
			category: CategoryMITermination,
			any:      []string{"mi termination", "mortgage insurance", "cancel mi", "terminate mi", "pmi"},
		},
		{
			category: CategoryHiLoEligibility,
			any:      []string{"hilo", "high ltv", "refinow", "underwater"},
		},
		{
			category: CategoryPropertyData,
			any:      []string{"property data", "upd", "uniform property", "submit property"},
		},
		{
			category: CategoryAppraisalFindings,
			any:      []string{"appraisal", "cu score", "collateral underwriter"},
		},
		{
			category: CategoryDUMessages,
			any:      []string{"du message", "du findings", "desktop underwriter", "underwriting message", "casefile"},
		},
		{
			category: CategoryLoanLimits,
			any:      []string{"loan limit", "conforming limit", "conforming loan"},
			extract:  extractLocationParams,
		},
		{
			category: CategoryHousingPulse,
			any:      []string{"housing", "market", "home price", "inventory", "mortgage rate"},
			none:     []string{"manufactured", "mobile home"},
			extract:  extractLocationParams,
		},
		{
			category: CategoryManufacturedHousing,
			any:      []string{"manufactured", "mobile home"},
			extract:  extractLocationParams,
		},
		{
			category: CategoryOpportunityZones,
			any:      []string{"opportunity zone", "qualified opportunity"},
			extract:  extractLocationParams,
		},
		{
			category: CategoryInvestorTools,
			any:      []string{"investor", "pool", "cusip", "mbs", "security data", "securities"},
			extract:  extractInvestorParams,
		},
		{
			category: CategoryConstructionSpending,
			any:      []string{"construction"},
			extract:  extractConstructionParams,
		},
	}
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if hasKeyword(text, kw) {
			return true
		}
	}
	return false
}

// hasKeyword reports whether kw occurs in text starting at a word boundary.
// The trailing boundary is intentionally left open so singular keywords match
// plural phrasing.
func hasKeyword(text, kw string) bool {
	for i := 0; i <= len(text)-len(kw); {
		j := strings.Index(text[i:], kw)
		if j < 0 {
			return false
		}
		pos := i + j
		if pos == 0 || text[pos-1] == ' ' {
			return true
		}
		i = pos + 1
	}
	return false
}

func normalizeQuery(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
