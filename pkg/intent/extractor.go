package intent

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase builds a fresh caser per call; cases.Caser carries state and is
// not safe to share across goroutines.
func titleCase(s string) string {
	return cases.Title(language.AmericanEnglish).String(strings.ToLower(s))
}

var (
	reStateToken   = regexp.MustCompile(`\b[A-Z]{2}\b`)
	reZipCode      = regexp.MustCompile(`\b(\d{5})\b`)
	reCountyProper = regexp.MustCompile(`((?:[A-Z][A-Za-z'-]*\s+)+)[Cc]ounty\b`)
	reCountyToken  = regexp.MustCompile(`(?i)\b([a-z'-]+)\s+county\b`)

	reDollarAmount = regexp.MustCompile(`\$?\s*(\d[\d,]*(?:\.\d+)?)\s*([kKmM])?\b`)
	reScoreLabeled = regexp.MustCompile(`(?i)\b(\d{3})\s*(?:credit|score|fico)`)
	reScoreAfter   = regexp.MustCompile(`(?i)\b(?:credit score|fico|score)(?:\s+of)?\s*:?\s*(\d{3})\b`)
	reScoreBare    = regexp.MustCompile(`\b\d{3}\b`)
	reLTVBefore    = regexp.MustCompile(`(?i)\b(\d{1,3}(?:\.\d+)?)\s*%?\s*(?:ltv|loan.to.value)`)
	reLTVAfter     = regexp.MustCompile(`(?i)\b(?:ltv|loan.to.value)\s*(?:of|is|:)?\s*(\d{1,3}(?:\.\d+)?)`)
	reRateBefore   = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d+)?)\s*%?\s*(?:note rate|interest rate|rate)`)
	reRateAfter    = regexp.MustCompile(`(?i)\b(?:note rate|interest rate|rate)\s*(?:of|is|:)?\s*(\d{1,2}(?:\.\d+)?)`)

	rePoolNumber = regexp.MustCompile(`(?i)\bpool\s*#?\s*([a-z0-9]{4,12})\b`)
	reCUSIP      = regexp.MustCompile(`(?i)\bcusip\s*#?\s*([a-z0-9]{6,9})\b`)
	reBorrower   = regexp.MustCompile(`(?i)\b(?:borrower|last name)\s+(?:named?\s+)?([a-z][a-z'-]+)`)
	reAddress    = regexp.MustCompile(`(?i)\bat\s+(\d+\s+[a-z0-9 .'-]+?)(?:,|$)`)
	reCity       = regexp.MustCompile(`,\s*([A-Za-z][A-Za-z .'-]*?)\s+[A-Z]{2}\b`)
)

// USPS state and territory codes. Matching is case-sensitive on purpose:
// the tokens "in", "or" and "me" show up in ordinary prose all the time.
var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true, "PR": true, "VI": true, "GU": true,
}

// Ordered with two-word names first so "west virginia" never reads as
// "virginia". Scanned in slice order; never turn this into a map.
var stateNames = []struct {
	name string
	code string
}{
	{"new hampshire", "NH"}, {"new jersey", "NJ"}, {"new mexico", "NM"},
	{"new york", "NY"}, {"north carolina", "NC"}, {"north dakota", "ND"},
	{"rhode island", "RI"}, {"south carolina", "SC"}, {"south dakota", "SD"},
	{"west virginia", "WV"},
	{"alabama", "AL"}, {"alaska", "AK"}, {"arizona", "AZ"}, {"arkansas", "AR"},
	{"california", "CA"}, {"colorado", "CO"}, {"connecticut", "CT"},
	{"delaware", "DE"}, {"florida", "FL"}, {"georgia", "GA"}, {"hawaii", "HI"},
	{"idaho", "ID"}, {"illinois", "IL"}, {"indiana", "IN"}, {"iowa", "IA"},
	{"kansas", "KS"}, {"kentucky", "KY"}, {"louisiana", "LA"}, {"maine", "ME"},
	{"maryland", "MD"}, {"massachusetts", "MA"}, {"michigan", "MI"},
	{"minnesota", "MN"}, {"mississippi", "MS"}, {"missouri", "MO"},
	{"montana", "MT"}, {"nebraska", "NE"}, {"nevada", "NV"}, {"ohio", "OH"},
	{"oklahoma", "OK"}, {"oregon", "OR"}, {"pennsylvania", "PA"},
	{"tennessee", "TN"}, {"texas", "TX"}, {"utah", "UT"}, {"vermont", "VT"},
	{"virginia", "VA"}, {"washington", "WA"}, {"wisconsin", "WI"},
	{"wyoming", "WY"},
}


// ExtractState returns the first uppercase two-letter token that is a valid
// state code, falling back to spelled-out state names ("Texas" -> "TX").
func ExtractState(query string) string {
	for _, tok := range reStateToken.FindAllString(query, -1) {
		if stateCodes[tok] {
			return tok
		}
	}

	cleaned := normalizeQuery(query)
	for _, s := range stateNames {
		if hasKeyword(cleaned, s.name) {
			return s.code
		}
	}

	return ""
}

// ExtractCounty prefers the capitalized word run before "County"
// ("Los Angeles County" -> "Los Angeles") and falls back to the single
// preceding token when the query is all lowercase.
func ExtractCounty(query string) string {
	if m := reCountyProper.FindStringSubmatch(query); m != nil {
		county := strings.TrimSpace(m[1])
		if !countyStopword(county) {
			return county
		}
	}

	if m := reCountyToken.FindStringSubmatch(query); m != nil {
		if !countyStopword(m[1]) {
			return titleCase(m[1])
		}
	}

	return ""
}

func countyStopword(word string) bool {
	switch strings.ToLower(word) {
	case "in", "for", "the", "a", "any", "which", "what":
		return true
	}
	return false
}

func ExtractZipCode(query string) string {
	if m := reZipCode.FindStringSubmatch(query); m != nil {
		return m[1]
	}
	return ""
}

// ExtractDollarAmount returns the first dollar-like number in the query.
// The "$" is optional and "k"/"m" suffixes multiply, so "$70k" reads as
// 70000. The first number wins regardless of what it labels; see the
// extractor tests for the known ambiguity.
func ExtractDollarAmount(query string) int {
	m := reDollarAmount.FindStringSubmatch(query)
	if m == nil {
		return 0
	}

	cleaned := strings.ReplaceAll(m[1], ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	switch strings.ToLower(m[2]) {
	case "k":
		value *= 1_000
	case "m":
		value *= 1_000_000
	}

	return int(value)
}

// ExtractCreditScore looks for a three-digit number labeled with
// credit/score/fico, then falls back to any standalone 300-850 token.
// The fallback can misread a bare number (e.g. square footage); that
// matches the source behavior and is pinned in tests rather than fixed.
func ExtractCreditScore(query string) int {
	if m := reScoreLabeled.FindStringSubmatch(query); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			return score
		}
	}
	if m := reScoreAfter.FindStringSubmatch(query); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			return score
		}
	}

	for _, loc := range reScoreBare.FindAllStringIndex(query, -1) {
		if partOfLargerNumber(query, loc[0], loc[1]) {
			continue
		}
		score, err := strconv.Atoi(query[loc[0]:loc[1]])
		if err != nil {
			continue
		}
		if score >= 300 && score <= 850 {
			return score
		}
	}

	return 0
}

// partOfLargerNumber rejects three-digit runs that are really fragments of a
// separated larger number, like the "350" and "000" inside "$350,000".
func partOfLargerNumber(query string, start, end int) bool {
	if start > 0 {
		switch query[start-1] {
		case ',', '.', '$':
			return true
		}
	}
	if end < len(query) {
		switch query[end] {
		case ',', '.':
			if end+1 < len(query) && query[end+1] >= '0' && query[end+1] <= '9' {
				return true
			}
		case '%':
			return true
		}
	}
	return false
}

func ExtractLTV(query string) float64 {
	for _, re := range []*regexp.Regexp{reLTVBefore, reLTVAfter} {
		if m := re.FindStringSubmatch(query); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v
			}
		}
	}
	return 0
}

func ExtractNoteRate(query string) float64 {
	for _, re := range []*regexp.Regexp{reRateBefore, reRateAfter} {
		if m := re.FindStringSubmatch(query); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v
			}
		}
	}
	return 0
}

func ExtractLoanPurpose(query string) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "cash out") || strings.Contains(lower, "cash-out"):
		return "CASH_OUT_REFINANCE"
	case strings.Contains(lower, "refinance") || strings.Contains(lower, "refi"):
		return "RATE_TERM_REFINANCE"
	case strings.Contains(lower, "purchase"):
		return "PURCHASE"
	}
	return ""
}

var constructionSubsectors = []string{
	"office", "lodging", "educational", "health care", "healthcare",
	"highway", "manufacturing", "commercial", "power", "religious",
	"amusement", "transportation", "sewage", "water supply", "communication",
}

// ExtractConstructionPath maps keyword presence onto the three-level
// spending path. Section defaults to "Total" when neither ownership
// keyword appears.
func ExtractConstructionPath(query string) (section, sector, subsector string) {
	lower := strings.ToLower(query)

	section = "Total"
	if strings.Contains(lower, "private") {
		section = "Private"
	} else if strings.Contains(lower, "public") {
		section = "Public"
	}

	// "nonresidential" contains "residential", so it has to win the check.
	if strings.Contains(lower, "nonresidential") || strings.Contains(lower, "non-residential") {
		sector = "Nonresidential"
	} else if strings.Contains(lower, "residential") {
		sector = "Residential"
	}

	for _, name := range constructionSubsectors {
		if strings.Contains(lower, name) {
			if name == "healthcare" {
				name = "health care"
			}
			subsector = titleCase(name)
			break
		}
	}

	return section, sector, subsector
}

func extractLocationParams(query string) Params {
	return Params{
		State:   ExtractState(query),
		County:  ExtractCounty(query),
		ZipCode: ExtractZipCode(query),
	}
}

func extractAMIParams(query string) Params {
	params := extractLocationParams(query)
	params.Income = ExtractDollarAmount(query)
	return params
}

func extractPricingParams(query string) Params {
	params := extractLocationParams(query)
	params.LoanAmount = ExtractDollarAmount(query)
	params.NoteRate = ExtractNoteRate(query)
	params.LTV = ExtractLTV(query)
	params.CreditScore = ExtractCreditScore(query)
	params.Purpose = ExtractLoanPurpose(query)
	return params
}

func extractMissionParams(query string) Params {
	params := extractLocationParams(query)
	params.LoanAmount = ExtractDollarAmount(query)
	return params
}

func extractInvestorParams(query string) Params {
	params := Params{}
	if m := rePoolNumber.FindStringSubmatch(query); m != nil {
		params.PoolNumber = strings.ToUpper(m[1])
	}
	if m := reCUSIP.FindStringSubmatch(query); m != nil {
		params.CUSIP = strings.ToUpper(m[1])
	}
	return params
}

func extractLoanLookupParams(query string) Params {
	params := extractLocationParams(query)
	if m := reBorrower.FindStringSubmatch(query); m != nil {
		params.BorrowerLastName = titleCase(m[1])
	}
	if m := reAddress.FindStringSubmatch(query); m != nil {
		params.PropertyAddress = strings.TrimSpace(m[1])
	}
	if m := reCity.FindStringSubmatch(query); m != nil {
		params.City = strings.TrimSpace(m[1])
	}
	return params
}

func extractConstructionParams(query string) Params {
	section, sector, subsector := ExtractConstructionPath(query)
	return Params{
		Section:   section,
		Sector:    sector,
		Subsector: subsector,
	}
}
