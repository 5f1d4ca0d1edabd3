package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractState(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "uppercase code", query: "loan limits in CA", expected: "CA"},
		{name: "code with punctuation", query: "What are the loan limits in CA?", expected: "CA"},
		{name: "full state name", query: "loan limits in Texas", expected: "TX"},
		{name: "two word state name", query: "housing market in New York", expected: "NY"},
		{name: "lowercase token ignored", query: "is this in scope or not", expected: ""},
		{name: "invalid code ignored", query: "the XX limit", expected: ""},
		{name: "no state", query: "what are the loan limits", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractState(tt.query))
		})
	}
}

func TestExtractCounty(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "multi word county", query: "HomeReady in Los Angeles County, CA", expected: "Los Angeles"},
		{name: "single word county", query: "limits for Harris County TX", expected: "Harris"},
		{name: "lowercase fallback", query: "limits in travis county", expected: "Travis"},
		{name: "stopword rejected", query: "which county is this", expected: ""},
		{name: "no county", query: "loan limits in CA", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCounty(tt.query))
		})
	}
}

func TestExtractDollarAmount(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "dollar with commas", query: "a $350,000 loan", expected: 350000},
		{name: "no dollar sign", query: "income of 75000 per year", expected: 75000},
		{name: "k suffix", query: "is $70k income enough", expected: 70000},
		{name: "m suffix", query: "a $1.5m property", expected: 1500000},
		{name: "first number wins", query: "$200,000 loan with $50,000 down", expected: 200000},
		{name: "no amount", query: "loan limits in CA", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDollarAmount(tt.query))
		})
	}
}

func TestExtractZipCode(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "zip after state", query: "123 Main St, Austin TX 78701", expected: "78701"},
		{name: "no zip", query: "loan limits in CA", expected: ""},
		{name: "four digits ignored", query: "suite 1200 downtown", expected: ""},
		{name: "comma-grouped amount ignored", query: "a $75,000 income", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractZipCode(tt.query))
		})
	}
}

// Any standalone five-digit token is read as a zip code, including bare
// dollar amounts. Pinned as current behavior, not a guarantee.
func TestExtractZipCodeAmbiguity(t *testing.T) {
	assert.Equal(t, "75000", ExtractZipCode("income of 75000 per year"))
}

func TestExtractCreditScore(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "score before label", query: "720 credit score", expected: 720},
		{name: "score after label", query: "credit score of 680", expected: 680},
		{name: "fico label", query: "fico 745 borrower", expected: 745},
		{name: "bare in range token", query: "pricing for a 700 borrower", expected: 700},
		{name: "out of range ignored", query: "a 200 unit building", expected: 0},
		{name: "fragment of larger number ignored", query: "a $350,000 loan", expected: 0},
		{name: "labeled wins over earlier bare", query: "at 650 main st with 780 credit score", expected: 780},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCreditScore(tt.query))
		})
	}
}

// A bare in-range 3-digit number is read as a credit score even when it
// means something else. Pinned as current behavior, not a guarantee.
func TestExtractCreditScoreAmbiguity(t *testing.T) {
	assert.Equal(t, 450, ExtractCreditScore("a 450 square foot condo"))
}

func TestExtractLTVAndRate(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedLTV  float64
		expectedRate float64
	}{
		{name: "ltv before", query: "85% LTV purchase", expectedLTV: 85},
		{name: "ltv after", query: "an LTV of 96.5", expectedLTV: 96.5},
		{name: "rate before", query: "6.5% note rate", expectedRate: 6.5},
		{name: "rate after", query: "a rate of 7.25 percent", expectedRate: 7.25},
		{name: "both", query: "6.5 rate at 80 ltv", expectedLTV: 80, expectedRate: 6.5},
		{name: "neither", query: "loan limits in CA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedLTV, ExtractLTV(tt.query))
			assert.Equal(t, tt.expectedRate, ExtractNoteRate(tt.query))
		})
	}
}

func TestExtractLoanPurpose(t *testing.T) {
	assert.Equal(t, "PURCHASE", ExtractLoanPurpose("a purchase loan"))
	assert.Equal(t, "RATE_TERM_REFINANCE", ExtractLoanPurpose("refinance my loan"))
	assert.Equal(t, "CASH_OUT_REFINANCE", ExtractLoanPurpose("cash out refinance"))
	assert.Equal(t, "", ExtractLoanPurpose("loan limits in CA"))
}

func TestExtractConstructionPath(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		section   string
		sector    string
		subsector string
	}{
		{
			name:    "private residential",
			query:   "construction spending for private residential",
			section: "Private",
			sector:  "Residential",
		},
		{
			name:    "public nonresidential",
			query:   "public nonresidential construction",
			section: "Public",
			sector:  "Nonresidential",
		},
		{
			name:      "subsector",
			query:     "highway construction spending",
			section:   "Total",
			subsector: "Highway",
		},
		{
			name:    "defaults to total",
			query:   "construction spending",
			section: "Total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, sector, subsector := ExtractConstructionPath(tt.query)
			assert.Equal(t, tt.section, section)
			assert.Equal(t, tt.sector, sector)
			assert.Equal(t, tt.subsector, subsector)
		})
	}
}

func TestClassifyScenarioParams(t *testing.T) {
	c := NewClassifier()

	t.Run("loan limits scenario", func(t *testing.T) {
		result := c.Classify("What are the loan limits in CA?")
		require.Equal(t, CategoryLoanLimits, result.Category)
		assert.Equal(t, "CA", result.Params.State)
	})

	t.Run("ami scenario", func(t *testing.T) {
		result := c.Classify("Is $75,000 income eligible for HomeReady in Los Angeles County, CA?")
		require.Equal(t, CategoryAMIHomeReady, result.Category)
		assert.Equal(t, 75000, result.Params.Income)
		assert.Equal(t, "CA", result.Params.State)
		assert.Equal(t, "Los Angeles", result.Params.County)
	})

	t.Run("investor scenario", func(t *testing.T) {
		result := c.Classify("Show investor data for pool FN123456")
		require.Equal(t, CategoryInvestorTools, result.Category)
		assert.Equal(t, "FN123456", result.Params.PoolNumber)
	})

	t.Run("pricing scenario", func(t *testing.T) {
		result := c.Classify("Get pricing for $350,000 loan, 720 credit score, 85% LTV, purchase")
		require.Equal(t, CategoryLoanPricing, result.Category)
		assert.Equal(t, 350000, result.Params.LoanAmount)
		assert.Equal(t, 720, result.Params.CreditScore)
		assert.Equal(t, 85.0, result.Params.LTV)
		assert.Equal(t, "PURCHASE", result.Params.Purpose)
	})

	t.Run("lookup scenario", func(t *testing.T) {
		result := c.Classify("Look up loan for borrower Smith at 123 Main St, Austin TX 78701")
		require.Equal(t, CategoryLoanLookup, result.Category)
		assert.Equal(t, "Smith", result.Params.BorrowerLastName)
		assert.Equal(t, "TX", result.Params.State)
		assert.Equal(t, "123 Main St", result.Params.PropertyAddress)
		assert.Equal(t, "Austin", result.Params.City)
		assert.Equal(t, "78701", result.Params.ZipCode)
	})
}
