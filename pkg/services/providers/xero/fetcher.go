package xero

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

const (
	defaultBaseURL = "https://api.xero.com"
	dateFormat     = "2006-01-02"
)

// Fetcher retrieves Xero reports with pre-provisioned credentials. It never
// acquires or refreshes tokens; a rejected token surfaces as an
// AuthExpiredError.
type Fetcher struct {
	baseURL  string
	tenantID string
	token    string
	client   *http.Client
}

type FetcherConfig struct {
	BaseURL  string
	TenantID string
	Token    string
	Client   *http.Client
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{
		baseURL:  cfg.BaseURL,
		tenantID: cfg.TenantID,
		token:    cfg.Token,
		client:   cfg.Client,
	}
}

func (f *Fetcher) FetchProfitAndLoss(ctx context.Context, window domain.TimeWindow) (*reporttree.Report, error) {
	return f.fetchReport(ctx, "ProfitAndLoss", window)
}

func (f *Fetcher) FetchBalanceSheet(ctx context.Context, window domain.TimeWindow) (*reporttree.Report, error) {
	return f.fetchReport(ctx, "BalanceSheet", window)
}

func (f *Fetcher) fetchReport(ctx context.Context, name string, window domain.TimeWindow) (*reporttree.Report, error) {
	query := url.Values{}
	query.Set("fromDate", window.Start.Format(dateFormat))
	query.Set("toDate", window.End.Format(dateFormat))

	endpoint := fmt.Sprintf("%s/api.xro/2.0/Reports/%s?%s", f.baseURL, name, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build xero %s request: %w", name, err)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Xero-tenant-id", f.tenantID)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("xero %s request failed: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providers.ResponseError("xero", resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read xero %s response: %w", name, err)
	}

	report, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode xero %s report: %w", name, err)
	}
	return report, nil
}
