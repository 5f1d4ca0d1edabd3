package chatService

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"rtlmac/internal/api/chat"
	"rtlmac/internal/entity"
	contextPkg "rtlmac/pkg/context"
	"rtlmac/pkg/intent"
)

// HandleQuery classifies the message, dispatches it to the matching
// provider endpoint and renders the result. History is ignored: every
// request is classified from scratch.
func (s *chatService) HandleQuery(ctx context.Context, req chat.QueryRequest) (*chat.QueryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	result := s.classifier.Classify(req.Message)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"query_type": result.Category,
	}).Debug("Query classified")

	content, data, err := s.dispatch(ctx, result)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"query_type": result.Category,
			"error":      err.Error(),
		}).Error("Dispatch failed")
		return nil, chat.ErrInternalServerError
	}

	s.saveQueryLog(ctx, req.Message, result, data != nil)

	return &chat.QueryResponse{
		Success:   true,
		Content:   content,
		Data:      data,
		QueryType: string(result.Category),
	}, nil
}

// saveQueryLog writes the audit record best-effort. A logging failure never
// affects the response.
func (s *chatService) saveQueryLog(ctx context.Context, message string, result intent.Result, resolved bool) {
	if s.chatRepo == nil {
		return
	}

	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create repository client for query log")
		return
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate query log ID")
		return
	}

	params, err := jsoniter.MarshalToString(result.Params)
	if err != nil {
		params = "{}"
	}

	queryLog := entity.QueryLog{
		ID:        id,
		RequestID: requestID,
		Message:   message,
		QueryType: string(result.Category),
		Params:    params,
		Resolved:  resolved,
	}

	if err := repo.QueryLog.CreateQueryLog(ctx, queryLog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to save query log")
	}
}

func (s *chatService) Catalog() chat.CatalogResponse {
	return chat.CatalogResponse{Categories: catalogEntries()}
}

func catalogEntries() []chat.CatalogEntry {
	return []chat.CatalogEntry{
		{Category: "loan_limits", Group: "Public Market Data", Description: "Conforming limits by location", Example: "Loan limits in California"},
		{Category: "housing_pulse", Group: "Public Market Data", Description: "Market metrics & trends", Example: "Housing market data for Texas"},
		{Category: "manufactured_housing", Group: "Public Market Data", Description: "MH community statistics", Example: "Manufactured housing in Florida"},
		{Category: "opportunity_zones", Group: "Public Market Data", Description: "Tax incentive zones", Example: "Opportunity zones in Nevada"},
		{Category: "investor_tools", Group: "Public Market Data", Description: "MBS/Security data", Example: "Show investor data for pool FN123456"},
		{Category: "construction_spending", Group: "Public Market Data", Description: "Construction spending by sector", Example: "Private residential construction spending"},
		{Category: "loan_lookup", Group: "Originating & Underwriting", Description: "Check Fannie Mae ownership", Example: "Is loan owned by Fannie Mae?"},
		{Category: "ami_homeready", Group: "Originating & Underwriting", Description: "Income eligibility", Example: "Is $70k income HomeReady eligible in TX?"},
		{Category: "property_data", Group: "Originating & Underwriting", Description: "UPD submission", Example: "Submit property data"},
		{Category: "appraisal_findings", Group: "Originating & Underwriting", Description: "Collateral analysis", Example: "Get appraisal findings"},
		{Category: "du_messages", Group: "Originating & Underwriting", Description: "Underwriting findings", Example: "Get DU messages"},
		{Category: "loan_pricing", Group: "Pricing & Execution", Description: "LLPAs & pricing", Example: "Get pricing for $400k loan, 740 score"},
		{Category: "mission_score", Group: "Pricing & Execution", Description: "Affordable lending score", Example: "Calculate mission score"},
		{Category: "srp_pricing", Group: "Pricing & Execution", Description: "Servicing premiums", Example: "Get SRP pricing"},
		{Category: "mi_termination", Group: "Servicing", Description: "Cancel mortgage insurance", Example: "Check MI termination eligibility"},
		{Category: "hilo_eligibility", Group: "Servicing", Description: "High LTV refi eligibility", Example: "Check HiLo eligibility"},
	}
}
