package handler

import (
	"net/http"
	"strconv"

	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/usecases/reporting"
	"github.com/lfreitas/barber-manager-api/pkg/apiErrors"
	"github.com/lfreitas/barber-manager-api/pkg/log"
	"github.com/lfreitas/barber-manager-api/pkg/utils"
)

// GetFinancialSummary calcula o resumo financeiro do tenant no período
// informado via query string (start_date e end_date, formato 2006-01-02)
func GetFinancialSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		filters := &domain.ReportFilters{
			StartDate: startDate,
			EndDate:   endDate,
		}

		summary, err := service.GetFinancialSummary(tenantID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("reports: failed to build financial summary")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o resumo financeiro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GenerateForecast gera e persiste uma nova previsão de receita para o tenant
func GenerateForecast(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		horizonDays := 30
		if raw := r.URL.Query().Get("horizon_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Horizonte inválido, use 30, 60 ou 90", nil)
				return
			}
			horizonDays = parsed
		}

		forecast, err := service.GenerateForecast(tenantID, horizonDays)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id":    tenantID,
				"horizon_days": horizonDays,
				"error":        err.Error(),
			}).Error("reports: failed to generate forecast")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar a previsão de receita", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(forecast); err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("reports: failed to encode response")
		}
	})
}

// ListForecasts lista o histórico de previsões do tenant, da mais recente
// para a mais antiga
func ListForecasts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		forecasts, err := service.ListForecasts(tenantID)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("reports: failed to list forecasts")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar previsões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(forecasts); err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
