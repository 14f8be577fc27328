package insights

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/providers"
)

const (
	DefaultTrendInterval    = 125 * time.Millisecond
	DefaultCashflowInterval = 1200 * time.Millisecond
	DefaultRetryFallback    = 2 * time.Second
	DefaultRetryCeiling     = 30 * time.Second
)

// MonthResult is what one month's fetch contributes to the series.
type MonthResult struct {
	Report    domain.NormalizedReport
	Breakdown []domain.ExpenseLineItem
}

// FetchMonth retrieves and extracts a single month. An error counts as that
// month's failure only.
type FetchMonth func(ctx context.Context, window domain.TimeWindow) (MonthResult, error)

// RetrySettings bounds the single rate-limit retry per month.
type RetrySettings struct {
	Fallback time.Duration
	Ceiling  time.Duration
}

// Aggregator drives the sequential per-month fetch loop: months in
// chronological order, one request in flight, a fixed pause between
// requests. Each month independently ends in a success or a zero point.
type Aggregator struct {
	fetch   FetchMonth
	pacer   *Pacer
	sleeper Sleeper
	retry   RetrySettings
}

func NewAggregator(fetch FetchMonth, pacer *Pacer, sleeper Sleeper, retry RetrySettings) *Aggregator {
	if sleeper == nil {
		sleeper = RealSleeper{}
	}
	if retry.Fallback <= 0 {
		retry.Fallback = DefaultRetryFallback
	}
	if retry.Ceiling <= 0 {
		retry.Ceiling = DefaultRetryCeiling
	}
	return &Aggregator{fetch: fetch, pacer: pacer, sleeper: sleeper, retry: retry}
}

type monthPoint struct {
	label     string
	report    domain.NormalizedReport
	breakdown []domain.ExpenseLineItem
}

// Series produces one TrendPoint per month of the window, in order. When the
// caller's deadline expires mid-loop the series is returned truncated.
func (a *Aggregator) Series(ctx context.Context, window domain.TimeWindow) []domain.TrendPoint {
	collected := a.collect(ctx, window)
	points := make([]domain.TrendPoint, 0, len(collected))
	for _, mp := range collected {
		points = append(points, domain.TrendPoint{
			Month:           mp.label,
			Revenue:         mp.report.Revenue,
			Expenses:        mp.report.Expenses,
			CostOfGoodsSold: mp.report.CostOfGoodsSold,
			Breakdown:       mp.breakdown,
		})
	}
	return points
}

// CashflowSeries is the slower-paced cash-movement variant. Cash out counts
// each outflow once: the strictly-operating figure plus cost of goods sold.
func (a *Aggregator) CashflowSeries(ctx context.Context, window domain.TimeWindow) []domain.CashflowPoint {
	collected := a.collect(ctx, window)
	flows := make([]domain.CashflowPoint, 0, len(collected))
	for _, mp := range collected {
		out := mp.report.OperatingExpenses + mp.report.CostOfGoodsSold
		flows = append(flows, domain.CashflowPoint{
			Month:   mp.label,
			CashIn:  mp.report.Revenue,
			CashOut: out,
			Net:     mp.report.Revenue - out,
		})
	}
	return flows
}

func (a *Aggregator) collect(ctx context.Context, window domain.TimeWindow) []monthPoint {
	logger := zerolog.Ctx(ctx)
	months := window.Months()
	points := make([]monthPoint, 0, len(months))

	for _, month := range months {
		if err := a.pacer.Wait(ctx); err != nil {
			logger.Warn().Err(err).Msg("trend loop interrupted, returning truncated series")
			return points
		}

		result, err := a.fetchWithRetry(ctx, month)
		if err != nil {
			if ctx.Err() != nil {
				return points
			}
			logger.Warn().
				Err(err).
				Str("month", month.Start.Format("2006-01")).
				Msg("month fetch failed, zero-filling")
			points = append(points, monthPoint{label: month.Label()})
			continue
		}

		points = append(points, monthPoint{
			label:     month.Label(),
			report:    result.Report,
			breakdown: result.Breakdown,
		})
	}
	return points
}

// fetchWithRetry retries exactly once after a rate-limit response, waiting
// the advertised delay, the fallback when none is given, capped.
func (a *Aggregator) fetchWithRetry(ctx context.Context, month domain.TimeWindow) (MonthResult, error) {
	result, err := a.fetch(ctx, month)
	if err == nil {
		return result, nil
	}

	rl, ok := providers.AsRateLimited(err)
	if !ok {
		return MonthResult{}, err
	}

	delay := rl.RetryAfter
	if delay <= 0 {
		delay = a.retry.Fallback
	}
	if delay > a.retry.Ceiling {
		delay = a.retry.Ceiling
	}

	zerolog.Ctx(ctx).Info().
		Dur("delay", delay).
		Str("month", month.Start.Format("2006-01")).
		Msg("rate limited, retrying once")

	if err := a.sleeper.Sleep(ctx, delay); err != nil {
		return MonthResult{}, err
	}
	return a.fetch(ctx, month)
}
