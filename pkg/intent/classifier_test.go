package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Category
	}{
		{
			name:     "loan limits with state",
			query:    "What are the loan limits in CA?",
			expected: CategoryLoanLimits,
		},
		{
			name:     "conforming limit phrasing",
			query:    "what is the conforming limit for Dallas county TX",
			expected: CategoryLoanLimits,
		},
		{
			name:     "ami homeready with income",
			query:    "Is $75,000 income eligible for HomeReady in Los Angeles County, CA?",
			expected: CategoryAMIHomeReady,
		},
		{
			name:     "area median income phrasing",
			query:    "what is the area median income in Texas",
			expected: CategoryAMIHomeReady,
		},
		{
			name:     "loan pricing with score and ltv",
			query:    "Get pricing for $350,000 loan, 720 credit score, 85% LTV, purchase",
			expected: CategoryLoanPricing,
		},
		{
			name:     "llpa phrasing",
			query:    "what are the LLPA adjustments for a 680 score refi",
			expected: CategoryLoanPricing,
		},
		{
			name:     "mission score",
			query:    "What is the mission score for this loan in GA?",
			expected: CategoryMissionScore,
		},
		{
			name:     "srp pricing",
			query:    "Get SRP pricing for a $300,000 loan",
			expected: CategorySRPPricing,
		},
		{
			name:     "servicing released phrasing",
			query:    "servicing released premium quote please",
			expected: CategorySRPPricing,
		},
		{
			name:     "mi termination",
			query:    "When can I cancel MI on my loan?",
			expected: CategoryMITermination,
		},
		{
			name:     "mortgage insurance phrasing",
			query:    "mortgage insurance termination eligibility",
			expected: CategoryMITermination,
		},
		{
			name:     "hilo eligibility",
			query:    "Check HiLo eligibility for my underwater loan",
			expected: CategoryHiLoEligibility,
		},
		{
			name:     "refinow phrasing",
			query:    "am I eligible for RefiNow high LTV refinance",
			expected: CategoryHiLoEligibility,
		},
		{
			name:     "property data",
			query:    "How do I submit property data through UPD?",
			expected: CategoryPropertyData,
		},
		{
			name:     "appraisal findings",
			query:    "What does a CU score of 2.5 mean on my appraisal?",
			expected: CategoryAppraisalFindings,
		},
		{
			name:     "du messages",
			query:    "Explain the DU findings on casefile 123",
			expected: CategoryDUMessages,
		},
		{
			name:     "housing pulse",
			query:    "How is the housing market in WA?",
			expected: CategoryHousingPulse,
		},
		{
			name:     "manufactured housing",
			query:    "Manufactured housing data for Florida",
			expected: CategoryManufacturedHousing,
		},
		{
			name:     "mobile home phrasing",
			query:    "mobile home loan volume in AZ",
			expected: CategoryManufacturedHousing,
		},
		{
			name:     "opportunity zones",
			query:    "Are there opportunity zones in zip 78701?",
			expected: CategoryOpportunityZones,
		},
		{
			name:     "investor pool",
			query:    "Show investor data for pool FN123456",
			expected: CategoryInvestorTools,
		},
		{
			name:     "cusip phrasing",
			query:    "look at CUSIP 3138WEAB1 security data",
			expected: CategoryInvestorTools,
		},
		{
			name:     "loan lookup",
			query:    "Look up loan for borrower Smith at 123 Main St, Austin TX 78701",
			expected: CategoryLoanLookup,
		},
		{
			name:     "owned by fannie phrasing",
			query:    "is my mortgage owned by Fannie Mae",
			expected: CategoryLoanLookup,
		},
		{
			name:     "construction spending",
			query:    "Show construction spending for private residential",
			expected: CategoryConstructionSpending,
		},
		{
			name:     "greeting falls through",
			query:    "hello",
			expected: CategoryGeneral,
		},
		{
			name:     "unrelated query falls through",
			query:    "what is the weather today",
			expected: CategoryGeneral,
		},
		{
			name:     "empty query falls through",
			query:    "",
			expected: CategoryGeneral,
		},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.query)
			assert.Equal(t, tt.expected, result.Category)
		})
	}
}

// Categories share vocabulary; these pin the documented tie-breaks so a
// reorder of the rule list shows up as a failure here.
func TestClassifyTieBreaks(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Category
	}{
		{
			name:     "srp beats pricing",
			query:    "Get SRP pricing for this loan",
			expected: CategorySRPPricing,
		},
		{
			name:     "mission plus pricing resolves to pricing",
			query:    "pricing with mission credits for $250,000",
			expected: CategoryLoanPricing,
		},
		{
			name:     "mi termination beats eligibility",
			query:    "mortgage insurance termination eligibility check",
			expected: CategoryMITermination,
		},
		{
			name:     "hilo beats eligibility",
			query:    "HiLo eligibility for my loan",
			expected: CategoryHiLoEligibility,
		},
		{
			name:     "manufactured beats housing pulse",
			query:    "manufactured housing market in TX",
			expected: CategoryManufacturedHousing,
		},
		{
			name:     "construction beats income words",
			query:    "residential construction spending",
			expected: CategoryConstructionSpending,
		},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.query)
			assert.Equal(t, tt.expected, result.Category)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()

	queries := []string{
		"What are the loan limits in CA?",
		"hello",
		"Get pricing for $350,000 loan, 720 credit score, 85% LTV, purchase",
	}
	for _, q := range queries {
		first := c.Classify(q)
		second := c.Classify(q)
		assert.Equal(t, first, second)
	}
}

func TestClassifyGeneralHasEmptyParams(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("tell me a joke")
	require.Equal(t, CategoryGeneral, result.Category)
	assert.Equal(t, Params{}, result.Params)
}

func TestClassifyKeywordBoundaries(t *testing.T) {
	c := NewClassifier()

	// "ami" must not fire inside "family" or "Miami".
	assert.Equal(t, CategoryGeneral, c.Classify("my family moved").Category)
	assert.Equal(t, CategoryGeneral, c.Classify("we relocated from Miami").Category)

	// Accents and punctuation are stripped before matching.
	assert.Equal(t, CategoryLoanLimits, c.Classify("loan-limits in CA, please!").Category)
}
