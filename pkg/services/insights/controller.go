package insights

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/reporttree"
)

// ConnectionSource answers which accounting provider the caller has linked.
// Returns providers.ErrNoProviderLinked when there is none.
type ConnectionSource interface {
	ActiveConnection(ctx context.Context) (*providers.Connection, error)
}

// Service is the dashboard-facing surface of this package.
type Service interface {
	Insights(ctx context.Context, tf domain.Timeframe, window domain.TimeWindow) (*domain.Insights, error)
	Trend(ctx context.Context, year int) ([]domain.TrendPoint, error)
	Cashflow(ctx context.Context, year int) ([]domain.CashflowPoint, error)
}

type Settings struct {
	TrendInterval    time.Duration
	CashflowInterval time.Duration
	Retry            RetrySettings
}

func DefaultSettings() Settings {
	return Settings{
		TrendInterval:    DefaultTrendInterval,
		CashflowInterval: DefaultCashflowInterval,
		Retry: RetrySettings{
			Fallback: DefaultRetryFallback,
			Ceiling:  DefaultRetryCeiling,
		},
	}
}

type service struct {
	source   ConnectionSource
	settings Settings
	sleeper  Sleeper
}

// NewService wires the orchestration layer. A nil sleeper uses the wall
// clock; tests inject a fake.
func NewService(source ConnectionSource, settings Settings, sleeper Sleeper) Service {
	if sleeper == nil {
		sleeper = RealSleeper{}
	}
	if settings.TrendInterval <= 0 {
		settings.TrendInterval = DefaultTrendInterval
	}
	if settings.CashflowInterval <= 0 {
		settings.CashflowInterval = DefaultCashflowInterval
	}
	return &service{source: source, settings: settings, sleeper: sleeper}
}

func (s *service) Insights(
	ctx context.Context,
	tf domain.Timeframe,
	window domain.TimeWindow,
) (*domain.Insights, error) {
	conn, err := s.source.ActiveConnection(ctx)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	out := &domain.Insights{Window: window, Timeframe: tf}

	// P&L and Balance Sheet for the same window go back to back, unpaced.
	pl, plErr := conn.Fetcher.FetchProfitAndLoss(ctx, window)
	if plErr != nil {
		logger.Error().Err(plErr).Str("provider", conn.Name).Msg("profit and loss fetch failed")
		out.Err = plErr.Error()
	}
	bs, bsErr := conn.Fetcher.FetchBalanceSheet(ctx, window)
	if bsErr != nil {
		logger.Error().Err(bsErr).Str("provider", conn.Name).Msg("balance sheet fetch failed")
		if out.Err == "" {
			out.Err = bsErr.Error()
		}
	}

	report := ExtractReport(conn.Adapter, pl, bs)
	out.KPIs = BuildKPIs(report, s.lastMonthExpenses(ctx, conn, window))
	out.Breakdown = conn.Adapter.ExpenseBreakdown(pl)
	out.Trend = s.trendAggregator(conn, true).Series(ctx, window)
	return out, nil
}

func (s *service) Trend(ctx context.Context, year int) ([]domain.TrendPoint, error) {
	conn, err := s.source.ActiveConnection(ctx)
	if err != nil {
		return nil, err
	}
	return s.trendAggregator(conn, false).Series(ctx, domain.YearWindow(year)), nil
}

func (s *service) Cashflow(ctx context.Context, year int) ([]domain.CashflowPoint, error) {
	conn, err := s.source.ActiveConnection(ctx)
	if err != nil {
		return nil, err
	}
	agg := NewAggregator(
		s.monthFetch(conn, false),
		NewPacer(s.settings.CashflowInterval, s.sleeper),
		s.sleeper,
		s.settings.Retry,
	)
	return agg.CashflowSeries(ctx, domain.YearWindow(year)), nil
}

// lastMonthExpenses is best effort; failures mean the runway stays nil.
func (s *service) lastMonthExpenses(
	ctx context.Context,
	conn *providers.Connection,
	window domain.TimeWindow,
) float64 {
	prev := domain.MonthWindow(window.Start.AddDate(0, -1, 0))
	pl, err := conn.Fetcher.FetchProfitAndLoss(ctx, prev)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("prior month fetch failed, cash runway unavailable")
		return 0
	}
	return conn.Adapter.OperatingExpenses(pl).Headline
}

func (s *service) trendAggregator(conn *providers.Connection, withBreakdown bool) *Aggregator {
	return NewAggregator(
		s.monthFetch(conn, withBreakdown),
		NewPacer(s.settings.TrendInterval, s.sleeper),
		s.sleeper,
		s.settings.Retry,
	)
}

func (s *service) monthFetch(conn *providers.Connection, withBreakdown bool) FetchMonth {
	return func(ctx context.Context, month domain.TimeWindow) (MonthResult, error) {
		pl, err := conn.Fetcher.FetchProfitAndLoss(ctx, month)
		if err != nil {
			return MonthResult{}, err
		}
		result := MonthResult{Report: extractMonthly(conn.Adapter, pl)}
		if withBreakdown {
			result.Breakdown = conn.Adapter.ExpenseBreakdown(pl)
		}
		return result, nil
	}
}

func extractMonthly(a providers.Adapter, pl *reporttree.Report) domain.NormalizedReport {
	return ExtractReport(a, pl, nil)
}
