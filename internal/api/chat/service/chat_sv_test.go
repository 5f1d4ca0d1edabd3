package chatService

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtlmac/internal/api/chat"
	"rtlmac/pkg/fanniemae"
	"rtlmac/pkg/intent"
	"rtlmac/pkg/utils"
)

func newTestService() IChatService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(logger, intent.NewClassifier(), fanniemae.NewMock(), nil, utils.New())
}

func handle(t *testing.T, svc IChatService, message string) *chat.QueryResponse {
	t.Helper()
	resp, err := svc.HandleQuery(context.Background(), chat.QueryRequest{Message: message})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	return resp
}

func TestHandleQueryLoanLimits(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "What are the loan limits in CA?")
	assert.Equal(t, "loan_limits", resp.QueryType)
	require.NotNil(t, resp.Data)

	assert.Contains(t, resp.Content, "| 1-Unit | $1,149,825 |")
	assert.Contains(t, resp.Content, "| 2-Unit |")
	assert.Contains(t, resp.Content, "| 3-Unit |")
	assert.Contains(t, resp.Content, "| 4-Unit |")
	assert.Contains(t, resp.Content, "*Source:")
	assert.Contains(t, resp.Content, "Effective:")
	assert.Contains(t, resp.Content, "High-Cost Area")
}

func TestHandleQueryLoanLimitsClarification(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "What are the loan limits?")
	assert.Equal(t, "loan_limits", resp.QueryType)
	assert.Nil(t, resp.Data)
	assert.Contains(t, resp.Content, `"What are the loan limits in CA?"`)
}

func TestHandleQueryAMIEligible(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "Is $75,000 income eligible for HomeReady in Los Angeles County, CA?")
	assert.Equal(t, "ami_homeready", resp.QueryType)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(*fanniemae.AMILookupResponse)
	require.True(t, ok)
	assert.True(t, data.HomeReadyEligible)
	assert.Contains(t, resp.Content, "HomeReady Eligible!")
	assert.Contains(t, resp.Content, "| Location | Los Angeles, CA |")
}

func TestHandleQueryAMINotEligible(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "Is $120,000 income eligible for HomeReady in TX?")
	assert.Equal(t, "ami_homeready", resp.QueryType)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(*fanniemae.AMILookupResponse)
	require.True(t, ok)
	assert.False(t, data.HomeReadyEligible)
	assert.Contains(t, resp.Content, "Not HomeReady Eligible")
}

func TestHandleQueryAMIMissingParams(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing income", query: "Am I HomeReady eligible in CA?"},
		{name: "missing state", query: "Is $75,000 income HomeReady eligible?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handle(t, svc, tt.query)
			assert.Equal(t, "ami_homeready", resp.QueryType)
			assert.Nil(t, resp.Data)
			assert.Contains(t, resp.Content, "Example:")
		})
	}
}

func TestHandleQueryPricing(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "Get pricing for $350,000 loan, 720 credit score, 85% LTV, purchase")
	assert.Equal(t, "loan_pricing", resp.QueryType)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(*fanniemae.LoanPricingResponse)
	require.True(t, ok)

	assert.Contains(t, resp.Content, "**Net Price**")
	for _, llpa := range data.LLPADetails {
		assert.Contains(t, resp.Content, llpa.AdjustmentName)
	}
}

func TestHandleQueryPricingClarification(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "Get loan pricing")
	assert.Equal(t, "loan_pricing", resp.QueryType)
	assert.Nil(t, resp.Data)
	assert.Contains(t, resp.Content, "Loan Amount")
	assert.Contains(t, resp.Content, "Credit Score")
}

func TestHandleQueryGeneralMenuStable(t *testing.T) {
	svc := newTestService()

	first := handle(t, svc, "hello")
	assert.Equal(t, "general", first.QueryType)
	assert.Nil(t, first.Data)
	assert.Contains(t, first.Content, "Public Market Data")

	second := handle(t, svc, "hello")
	assert.Equal(t, first.Content, second.Content)
}

func TestHandleQueryStaticCategories(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		query    string
		category string
		contains string
	}{
		{name: "mi termination", query: "Check MI termination eligibility", category: "mi_termination", contains: "Termination Types"},
		{name: "hilo", query: "Check HiLo eligibility", category: "hilo_eligibility", contains: "High LTV Refinance"},
		{name: "property data", query: "Submit property data", category: "property_data", contains: "Uniform Property Dataset"},
		{name: "appraisal", query: "Get appraisal findings", category: "appraisal_findings", contains: "Collateral Underwriter"},
		{name: "du messages", query: "Get DU messages", category: "du_messages", contains: "Desktop Underwriter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handle(t, svc, tt.query)
			assert.Equal(t, tt.category, resp.QueryType)
			assert.Nil(t, resp.Data)
			assert.Contains(t, resp.Content, tt.contains)
		})
	}
}

func TestHandleQueryHistoryIgnored(t *testing.T) {
	svc := newTestService()

	withHistory, err := svc.HandleQuery(context.Background(), chat.QueryRequest{
		Message: "What are the loan limits in CA?",
		History: []chat.HistoryItem{
			{Role: "user", Content: "Get SRP pricing"},
			{Role: "assistant", Content: "..."},
		},
	})
	require.NoError(t, err)

	withoutHistory, err := svc.HandleQuery(context.Background(), chat.QueryRequest{
		Message: "What are the loan limits in CA?",
	})
	require.NoError(t, err)

	assert.Equal(t, withoutHistory.QueryType, withHistory.QueryType)
	assert.Equal(t, withoutHistory.Content, withHistory.Content)
}

func TestHandleQuerySRPDefaults(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "Get SRP pricing")
	assert.Equal(t, "srp_pricing", resp.QueryType)
	require.NotNil(t, resp.Data)
	assert.Contains(t, resp.Content, "Indicative SRP Price")
	assert.Contains(t, resp.Content, "Commitment Options")
}

func TestHandleQueryConstructionDefaults(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "Show construction spending")
	assert.Equal(t, "construction_spending", resp.QueryType)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(*fanniemae.ConstructionSpendingResponse)
	require.True(t, ok)
	assert.Equal(t, "Total", data.Section)
}

func TestHandleQueryInvestorPool(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "Show investor data for pool FN123456")
	assert.Equal(t, "investor_tools", resp.QueryType)
	require.NotNil(t, resp.Data)
	assert.Contains(t, resp.Content, "FN123456")
}

func TestCatalog(t *testing.T) {
	svc := newTestService()

	catalog := svc.Catalog()
	assert.Len(t, catalog.Categories, 16)

	groups := map[string]bool{}
	for _, entry := range catalog.Categories {
		assert.NotEmpty(t, entry.Category)
		assert.NotEmpty(t, entry.Description)
		assert.NotEmpty(t, entry.Example)
		groups[entry.Group] = true
	}
	assert.Len(t, groups, 4)
}

func TestHelpMenuMentionsEveryGroup(t *testing.T) {
	svc := newTestService()

	resp := handle(t, svc, "what can you do")

	for _, section := range []string{
		"Public Market Data",
		"Originating & Underwriting",
		"Pricing & Execution",
		"Servicing",
	} {
		assert.True(t, strings.Contains(resp.Content, section), "menu should mention %s", section)
	}
}
