package fanniemae

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"

	"rtlmac/pkg/cache"
)

type IFannieMae interface {
	GetLoanLimits(ctx context.Context, req LoanLimitsRequest) (*LoanLimitsResponse, error)
	GetHousingPulse(ctx context.Context, req HousingPulseRequest) (*HousingPulseResponse, error)
	GetManufacturedHousing(ctx context.Context, req ManufacturedHousingRequest) (*ManufacturedHousingResponse, error)
	GetOpportunityZones(ctx context.Context, req OpportunityZonesRequest) (*OpportunityZonesResponse, error)
	GetInvestorData(ctx context.Context, req InvestorDataRequest) (*InvestorDataResponse, error)
	LoanLookup(ctx context.Context, req LoanLookupRequest) (*LoanLookupResponse, error)
	AMILookup(ctx context.Context, req AMILookupRequest) (*AMILookupResponse, error)
	GetLoanPricing(ctx context.Context, req LoanPricingRequest) (*LoanPricingResponse, error)
	GetMissionScore(ctx context.Context, req MissionScoreRequest) (*MissionScoreResponse, error)
	GetSRPPricing(ctx context.Context, req SRPPricingRequest) (*SRPPricingResponse, error)
	GetConstructionSpending(ctx context.Context, req ConstructionSpendingRequest) (*ConstructionSpendingResponse, error)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	requestTimeout = 10 * time.Second
	cacheTTL       = 15 * time.Minute
)

// New returns the live client with mock fallback when credentials are
// configured, or the plain mock otherwise. Either way the returned client
// never surfaces transport errors to its callers.
func New(log *logrus.Logger, responseCache cache.ICache) IFannieMae {
	tokenURL := os.Getenv("FANNIEMAE_TOKEN_URL")
	clientID := os.Getenv("FANNIEMAE_CLIENT_ID")
	clientSecret := os.Getenv("FANNIEMAE_CLIENT_SECRET")

	if tokenURL == "" || clientID == "" || clientSecret == "" {
		log.Warn("Fannie Mae credentials not configured, serving mock data only")
		return NewMock()
	}

	creds := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	live := &liveClient{
		log:          log,
		apiURL:       envOrDefault("FANNIEMAE_API_URL", "https://api.fanniemae.com"),
		exchangeURL:  envOrDefault("FANNIEMAE_EXCHANGE_URL", "https://api.theexchange.fanniemae.com"),
		authedClient: creds.Client(context.Background()),
		publicClient: &http.Client{Timeout: requestTimeout},
		cache:        responseCache,
	}

	return &fallbackClient{log: log, live: live, mock: NewMock()}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// liveClient talks to the real endpoints. Public Exchange data goes out
// unauthenticated and is cached in Redis; the rest is POSTed with an OAuth
// client-credentials token managed by the oauth2 TokenSource.
type liveClient struct {
	log          *logrus.Logger
	apiURL       string
	exchangeURL  string
	authedClient *http.Client
	publicClient *http.Client
	cache        cache.ICache
}

func (c *liveClient) getPublic(ctx context.Context, path string, query url.Values, out interface{}) error {
	fullURL := c.exchangeURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, fullURL); err == nil {
			return json.Unmarshal([]byte(cached), out)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.publicClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, fullURL, string(body), cacheTTL); err != nil {
			c.log.WithFields(logrus.Fields{"error": err.Error(), "key": fullURL}).Warn("Failed to cache response")
		}
	}

	return nil
}

func (c *liveClient) postAuthed(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.authedClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *liveClient) GetLoanLimits(ctx context.Context, req LoanLimitsRequest) (*LoanLimitsResponse, error) {
	query := url.Values{}
	query.Set("state", req.State)
	if req.County != "" {
		query.Set("county", req.County)
	}

	var out LoanLimitsResponse
	if err := c.getPublic(ctx, "/v1/loan-limits", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetHousingPulse(ctx context.Context, req HousingPulseRequest) (*HousingPulseResponse, error) {
	query := url.Values{}
	if req.State != "" {
		query.Set("state", req.State)
	}

	var out HousingPulseResponse
	if err := c.getPublic(ctx, "/v1/housing-pulse", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetManufacturedHousing(ctx context.Context, req ManufacturedHousingRequest) (*ManufacturedHousingResponse, error) {
	query := url.Values{}
	if req.State != "" {
		query.Set("state", req.State)
	}

	var out ManufacturedHousingResponse
	if err := c.getPublic(ctx, "/v1/manufactured-housing", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetOpportunityZones(ctx context.Context, req OpportunityZonesRequest) (*OpportunityZonesResponse, error) {
	query := url.Values{}
	if req.State != "" {
		query.Set("state", req.State)
	}
	if req.County != "" {
		query.Set("county", req.County)
	}

	var out OpportunityZonesResponse
	if err := c.getPublic(ctx, "/v1/opportunity-zones", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetConstructionSpending(ctx context.Context, req ConstructionSpendingRequest) (*ConstructionSpendingResponse, error) {
	query := url.Values{}
	query.Set("section", req.Section)
	if req.Sector != "" {
		query.Set("sector", req.Sector)
	}
	if req.Subsector != "" {
		query.Set("subsector", req.Subsector)
	}

	var out ConstructionSpendingResponse
	if err := c.getPublic(ctx, "/v1/construction-spending", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetInvestorData(ctx context.Context, req InvestorDataRequest) (*InvestorDataResponse, error) {
	var out InvestorDataResponse
	if err := c.postAuthed(ctx, "/v1/investor-tools/securities", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) LoanLookup(ctx context.Context, req LoanLookupRequest) (*LoanLookupResponse, error) {
	var out LoanLookupResponse
	if err := c.postAuthed(ctx, "/v1/loan-lookup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) AMILookup(ctx context.Context, req AMILookupRequest) (*AMILookupResponse, error) {
	var out AMILookupResponse
	if err := c.postAuthed(ctx, "/v1/ami-lookup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetLoanPricing(ctx context.Context, req LoanPricingRequest) (*LoanPricingResponse, error) {
	var out LoanPricingResponse
	if err := c.postAuthed(ctx, "/v1/loan-pricing", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetMissionScore(ctx context.Context, req MissionScoreRequest) (*MissionScoreResponse, error) {
	var out MissionScoreResponse
	if err := c.postAuthed(ctx, "/v1/mission-index/score", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *liveClient) GetSRPPricing(ctx context.Context, req SRPPricingRequest) (*SRPPricingResponse, error) {
	var out SRPPricingResponse
	if err := c.postAuthed(ctx, "/v1/srp-pricing", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// fallbackClient serves live data and falls back to the mock on any error,
// so callers above it never see a provider failure.
type fallbackClient struct {
	log  *logrus.Logger
	live IFannieMae
	mock IFannieMae
}

func (f *fallbackClient) warn(endpoint string, err error) {
	f.log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"error":    err.Error(),
	}).Warn("Live Fannie Mae call failed, serving mock data")
}

func (f *fallbackClient) GetLoanLimits(ctx context.Context, req LoanLimitsRequest) (*LoanLimitsResponse, error) {
	resp, err := f.live.GetLoanLimits(ctx, req)
	if err != nil {
		f.warn("loan-limits", err)
		return f.mock.GetLoanLimits(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetHousingPulse(ctx context.Context, req HousingPulseRequest) (*HousingPulseResponse, error) {
	resp, err := f.live.GetHousingPulse(ctx, req)
	if err != nil {
		f.warn("housing-pulse", err)
		return f.mock.GetHousingPulse(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetManufacturedHousing(ctx context.Context, req ManufacturedHousingRequest) (*ManufacturedHousingResponse, error) {
	resp, err := f.live.GetManufacturedHousing(ctx, req)
	if err != nil {
		f.warn("manufactured-housing", err)
		return f.mock.GetManufacturedHousing(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetOpportunityZones(ctx context.Context, req OpportunityZonesRequest) (*OpportunityZonesResponse, error) {
	resp, err := f.live.GetOpportunityZones(ctx, req)
	if err != nil {
		f.warn("opportunity-zones", err)
		return f.mock.GetOpportunityZones(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetInvestorData(ctx context.Context, req InvestorDataRequest) (*InvestorDataResponse, error) {
	resp, err := f.live.GetInvestorData(ctx, req)
	if err != nil {
		f.warn("investor-tools", err)
		return f.mock.GetInvestorData(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) LoanLookup(ctx context.Context, req LoanLookupRequest) (*LoanLookupResponse, error) {
	resp, err := f.live.LoanLookup(ctx, req)
	if err != nil {
		f.warn("loan-lookup", err)
		return f.mock.LoanLookup(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) AMILookup(ctx context.Context, req AMILookupRequest) (*AMILookupResponse, error) {
	resp, err := f.live.AMILookup(ctx, req)
	if err != nil {
		f.warn("ami-lookup", err)
		return f.mock.AMILookup(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetLoanPricing(ctx context.Context, req LoanPricingRequest) (*LoanPricingResponse, error) {
	resp, err := f.live.GetLoanPricing(ctx, req)
	if err != nil {
		f.warn("loan-pricing", err)
		return f.mock.GetLoanPricing(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetMissionScore(ctx context.Context, req MissionScoreRequest) (*MissionScoreResponse, error) {
	resp, err := f.live.GetMissionScore(ctx, req)
	if err != nil {
		f.warn("mission-index", err)
		return f.mock.GetMissionScore(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetSRPPricing(ctx context.Context, req SRPPricingRequest) (*SRPPricingResponse, error) {
	resp, err := f.live.GetSRPPricing(ctx, req)
	if err != nil {
		f.warn("srp-pricing", err)
		return f.mock.GetSRPPricing(ctx, req)
	}
	return resp, nil
}

func (f *fallbackClient) GetConstructionSpending(ctx context.Context, req ConstructionSpendingRequest) (*ConstructionSpendingResponse, error) {
	resp, err := f.live.GetConstructionSpending(ctx, req)
	if err != nil {
		f.warn("construction-spending", err)
		return f.mock.GetConstructionSpending(ctx, req)
	}
	return resp, nil
}
