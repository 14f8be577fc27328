package insights

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/finsight/pkg/adapters"
	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/domain"
	insightssvc "github.com/fin-tools/finsight/pkg/services/insights"
)

const dateFormat = "2006-01-02"

type Handler struct {
	service insightssvc.Service
}

func NewHandler(service insightssvc.Service) *Handler {
	return &Handler{service: service}
}

// GetInsights serves the dashboard payload. Provider failures degrade to a
// structurally complete zero-valued response with an error annotation; only
// malformed query parameters produce a non-200 status.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	tf, window, ok := parseWindow(w, r)
	if !ok {
		return
	}

	var response api.InsightsResponse
	result, err := h.service.Insights(ctx, tf, window)
	if err != nil {
		logger.Warn().Err(err).Msg("serving zero-valued insights")
		response = adapters.ZeroInsights(tf, window, err.Error())
	} else {
		response = adapters.MapInsightsDomainToApi(result)
	}

	writeJSON(w, logger, response)
}

// GetTrend serves the year-indexed monthly trend series.
func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	year, ok := parseYear(w, r)
	if !ok {
		return
	}
	window := domain.YearWindow(year)
	timeframe := adapters.MapTimeframeDomainToApi(domain.TimeframeYear, window)

	points, err := h.service.Trend(ctx, year)
	if err != nil {
		logger.Warn().Err(err).Msg("serving zero-valued trend")
		zero := adapters.ZeroInsights(domain.TimeframeYear, window, err.Error())
		writeJSON(w, logger, api.TrendResponse{
			TrendData: zero.TrendData,
			Timeframe: timeframe,
			Error:     err.Error(),
		})
		return
	}

	writeJSON(w, logger, api.TrendResponse{
		TrendData: adapters.MapTrendPointsDomainToApi(points),
		Timeframe: timeframe,
	})
}

// GetCashflow serves the cash-movement series.
func (h *Handler) GetCashflow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	year, ok := parseYear(w, r)
	if !ok {
		return
	}
	window := domain.YearWindow(year)
	timeframe := adapters.MapTimeframeDomainToApi(domain.TimeframeYear, window)

	points, err := h.service.Cashflow(ctx, year)
	if err != nil {
		logger.Warn().Err(err).Msg("serving zero-valued cashflow")
		months := window.Months()
		zero := make([]api.CashflowPoint, 0, len(months))
		for _, m := range months {
			zero = append(zero, api.CashflowPoint{Month: m.Label()})
		}
		writeJSON(w, logger, api.CashflowResponse{
			Points:    zero,
			Timeframe: timeframe,
			Error:     err.Error(),
		})
		return
	}

	writeJSON(w, logger, api.CashflowResponse{
		Points:    adapters.MapCashflowPointsDomainToApi(points),
		Timeframe: timeframe,
	})
}

func parseWindow(w http.ResponseWriter, r *http.Request) (domain.Timeframe, domain.TimeWindow, bool) {
	now := time.Now().UTC()
	tf := domain.Timeframe(r.URL.Query().Get("timeframe"))

	switch tf {
	case "", domain.TimeframeYear:
		return domain.TimeframeYear, domain.YearWindow(now.Year()), true
	case domain.TimeframeMonth:
		return domain.TimeframeMonth, domain.MonthWindow(now), true
	case domain.TimeframeCustom:
		fromRaw := r.URL.Query().Get("fromDate")
		toRaw := r.URL.Query().Get("toDate")
		if fromRaw == "" || toRaw == "" {
			http.Error(w, "fromDate and toDate are required for CUSTOM timeframe", http.StatusBadRequest)
			return "", domain.TimeWindow{}, false
		}
		from, err := time.Parse(dateFormat, fromRaw)
		if err != nil {
			http.Error(w, "invalid 'fromDate' format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return "", domain.TimeWindow{}, false
		}
		to, err := time.Parse(dateFormat, toRaw)
		if err != nil {
			http.Error(w, "invalid 'toDate' format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return "", domain.TimeWindow{}, false
		}
		if to.Before(from) {
			http.Error(w, "'toDate' must not be before 'fromDate'", http.StatusBadRequest)
			return "", domain.TimeWindow{}, false
		}
		return domain.TimeframeCustom, domain.AlignedWindow(from, to), true
	default:
		http.Error(w, "invalid 'timeframe'. Expected YEAR, MONTH or CUSTOM", http.StatusBadRequest)
		return "", domain.TimeWindow{}, false
	}
}

func parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().UTC().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1900 || year > 9999 {
		http.Error(w, "invalid 'year'. Expected a four-digit year", http.StatusBadRequest)
		return 0, false
	}
	return year, true
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
