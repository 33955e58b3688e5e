package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/charts"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/internal/export"
	"github.com/cloud-ru/amortization-go/internal/metrics"
	"github.com/cloud-ru/amortization-go/internal/service"
)

// AmortizationHandler HTTP-обработчики расчета графика
type AmortizationHandler struct {
	cfg        *config.Config
	calculator *service.Calculator
	logger     *zap.Logger
}

// NewAmortizationHandler создает обработчик
func NewAmortizationHandler(cfg *config.Config, calculator *service.Calculator, logger *zap.Logger) *AmortizationHandler {
	return &AmortizationHandler{
		cfg:        cfg,
		calculator: calculator,
		logger:     logger.Named("http"),
	}
}

type amortizationResponse struct {
	PeriodicRate float64                    `json:"periodic_rate"`
	Installment  float64                    `json:"installment"`
	Periods      int                        `json:"periods"`
	Schedule     []amortization.ScheduleRow `json:"schedule"`
	Totals       amortization.Totals        `json:"totals"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Calculate POST /api/v1/amortization. Параметр preview=N оставляет первые и
// последние N строк графика.
func (h *AmortizationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	const endpoint = "calculate"

	if r.Method != http.MethodPost {
		h.writeError(w, endpoint, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var params amortization.LoanParameters
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		h.writeError(w, endpoint, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	preview, err := optionalInt(r.URL.Query(), "preview", 0)
	if err != nil || preview < 0 {
		h.writeError(w, endpoint, http.StatusBadRequest, errors.New("preview: ожидается неотрицательное целое"))
		return
	}

	result, err := h.calculator.Compute(r.Context(), "compute_amortization", params)
	if err != nil {
		h.writeError(w, endpoint, statusFor(err), err)
		return
	}

	resp := amortizationResponse{
		PeriodicRate: result.PeriodicRate,
		Installment:  result.Installment,
		Periods:      len(result.Schedule) - 1,
		Schedule:     Preview(result.Schedule, preview),
		Totals:       result.Totals,
	}
	h.writeJSON(w, endpoint, http.StatusOK, resp)
}

// DownloadCSV GET /api/v1/amortization.csv
func (h *AmortizationHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	const endpoint = "csv"

	params, err := h.paramsFromQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, endpoint, http.StatusBadRequest, err)
		return
	}

	result, err := h.calculator.Compute(r.Context(), "export_csv", params)
	if err != nil {
		h.writeError(w, endpoint, statusFor(err), err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, result.Schedule); err != nil {
		h.writeError(w, endpoint, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	h.write(w, endpoint, http.StatusOK, buf.Bytes())
}

// Charts GET /api/v1/amortization/charts
func (h *AmortizationHandler) Charts(w http.ResponseWriter, r *http.Request) {
	const endpoint = "charts"

	params, err := h.paramsFromQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, endpoint, http.StatusBadRequest, err)
		return
	}

	result, err := h.calculator.Compute(r.Context(), "render_charts", params)
	if err != nil {
		h.writeError(w, endpoint, statusFor(err), err)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, result.Schedule); err != nil {
		h.writeError(w, endpoint, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.write(w, endpoint, http.StatusOK, buf.Bytes())
}

// Preview возвращает первые и последние n строк графика; при n == 0 или
// коротком графике возвращается весь график
func Preview(schedule []amortization.ScheduleRow, n int) []amortization.ScheduleRow {
	if n <= 0 || n >= len(schedule)-n {
		return schedule
	}
	out := make([]amortization.ScheduleRow, 0, 2*n)
	out = append(out, schedule[:n]...)
	return append(out, schedule[len(schedule)-n:]...)
}

func (h *AmortizationHandler) paramsFromQuery(q url.Values) (amortization.LoanParameters, error) {
	var params amortization.LoanParameters
	var err error

	if params.Principal, err = optionalFloat(q, "principal", h.cfg.DefaultPrincipal); err != nil {
		return params, err
	}
	if params.AnnualEffectiveRate, err = optionalFloat(q, "annual_rate_percent", 0); err != nil {
		return params, err
	}
	if params.TermYears, err = optionalInt(q, "term_years", 0); err != nil {
		return params, err
	}
	if params.PeriodsPerYear, err = optionalInt(q, "periods_per_year", 0); err != nil {
		return params, err
	}
	return params, nil
}

func optionalFloat(q url.Values, key string, def float64) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: ожидается число: %w", key, amortization.ErrInvalidInput)
	}
	return v, nil
}

func optionalInt(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: ожидается целое число: %w", key, amortization.ErrInvalidInput)
	}
	return v, nil
}

func statusFor(err error) int {
	if errors.Is(err, amortization.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *AmortizationHandler) writeJSON(w http.ResponseWriter, endpoint string, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encode response", zap.String("endpoint", endpoint), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		metrics.HTTPRequests.WithLabelValues(endpoint, strconv.Itoa(http.StatusInternalServerError)).Inc()
		return
	}
	w.Header().Set("Content-Type", "application/json")
	h.write(w, endpoint, status, body)
}

func (h *AmortizationHandler) writeError(w http.ResponseWriter, endpoint string, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("endpoint", endpoint), zap.Error(err))
	}
	h.writeJSON(w, endpoint, status, errorResponse{Error: err.Error()})
}

func (h *AmortizationHandler) write(w http.ResponseWriter, endpoint string, status int, body []byte) {
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write response", zap.String("endpoint", endpoint), zap.Error(err))
	}
	metrics.HTTPRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}
