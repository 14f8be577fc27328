package qbo

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
	defaultBaseURL = "https://quickbooks.api.intuit.com"
	dateFormat     = "2006-01-02"
)

// Fetcher retrieves QBO reports with pre-provisioned credentials.
type Fetcher struct {
	baseURL string
	realmID string
	token   string
	client  *http.Client
}

type FetcherConfig struct {
	BaseURL string
	RealmID string
	Token   string
	Client  *http.Client
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{
		baseURL: cfg.BaseURL,
		realmID: cfg.RealmID,
		token:   cfg.Token,
		client:  cfg.Client,
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
	query.Set("start_date", window.Start.Format(dateFormat))
	query.Set("end_date", window.End.Format(dateFormat))

	endpoint := fmt.Sprintf("%s/v3/company/%s/reports/%s?%s", f.baseURL, f.realmID, name, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build qbo %s request: %w", name, err)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qbo %s request failed: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providers.ResponseError("qbo", resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read qbo %s response: %w", name, err)
	}

	report, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode qbo %s report: %w", name, err)
	}
	return report, nil
}
