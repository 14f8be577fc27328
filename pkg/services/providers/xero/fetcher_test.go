package xero

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/providers"
)

func testWindow() domain.TimeWindow {
	return domain.MonthWindow(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
}

func TestFetcher_FetchProfitAndLoss(t *testing.T) {
	var gotPath, gotTenant string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTenant = r.Header.Get("Xero-tenant-id")
		assert.Equal(t, "2025-06-01", r.URL.Query().Get("fromDate"))
		assert.Equal(t, "2025-06-30", r.URL.Query().Get("toDate"))
		w.Write([]byte(profitAndLossPayload))
	}))
	defer server.Close()

	f := NewFetcher(FetcherConfig{BaseURL: server.URL, TenantID: "tenant-1", Token: "token"})
	report, err := f.FetchProfitAndLoss(context.Background(), testWindow())

	require.NoError(t, err)
	require.Len(t, report.Roots, 1)
	assert.Equal(t, "/api.xro/2.0/Reports/ProfitAndLoss", gotPath)
	assert.Equal(t, "tenant-1", gotTenant)
}

func TestFetcher_AuthExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	f := NewFetcher(FetcherConfig{BaseURL: server.URL})
	_, err := f.FetchBalanceSheet(context.Background(), testWindow())

	require.Error(t, err)
	assert.True(t, providers.IsAuthExpired(err))
}

func TestFetcher_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	f := NewFetcher(FetcherConfig{BaseURL: server.URL})
	_, err := f.FetchProfitAndLoss(context.Background(), testWindow())

	require.Error(t, err)
	rl, ok := providers.AsRateLimited(err)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, rl.RetryAfter)
}

func TestFetcher_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcher(FetcherConfig{BaseURL: server.URL})
	_, err := f.FetchProfitAndLoss(context.Background(), testWindow())

	require.Error(t, err)
	_, ok := providers.AsRateLimited(err)
	assert.False(t, ok)
	assert.False(t, providers.IsAuthExpired(err))
}
