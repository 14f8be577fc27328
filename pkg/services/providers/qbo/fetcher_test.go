package qbo

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

func TestFetcher_FetchProfitAndLoss(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "2025-06-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2025-06-30", r.URL.Query().Get("end_date"))
		w.Write([]byte(profitAndLossPayload))
	}))
	defer server.Close()

	f := NewFetcher(FetcherConfig{BaseURL: server.URL, RealmID: "realm-9", Token: "token"})
	window := domain.MonthWindow(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	report, err := f.FetchProfitAndLoss(context.Background(), window)

	require.NoError(t, err)
	require.Len(t, report.Roots, 1)
	assert.Equal(t, "/v3/company/realm-9/reports/ProfitAndLoss", gotPath)
}

func TestFetcher_RateLimitedWithoutRetryAfter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	f := NewFetcher(FetcherConfig{BaseURL: server.URL})
	window := domain.MonthWindow(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	_, err := f.FetchBalanceSheet(context.Background(), window)

	require.Error(t, err)
	rl, ok := providers.AsRateLimited(err)
	require.True(t, ok)
	assert.Zero(t, rl.RetryAfter)
}
