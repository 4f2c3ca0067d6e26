package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/usecases/insighting"
	"github.com/lfreitas/barber-manager-api/pkg/apiErrors"
	"github.com/lfreitas/barber-manager-api/pkg/log"
	"github.com/lfreitas/barber-manager-api/pkg/middleware"
)

// tenantFromRequest resolve o tenant da rota e garante que o usuário
// autenticado pertence a ele. Administradores podem acessar qualquer tenant.
func tenantFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if tenantID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tenant não especificado", nil)
		return "", false
	}

	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}

	if userClaims.UserRoleID != middleware.RoleAdmin && userClaims.UserTenantID != tenantID {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este tenant", nil)
		return "", false
	}

	return tenantID, true
}

// ListActiveInsights lista os insights ativos do tenant
func ListActiveInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		insights, err := service.ListActiveInsights(tenantID)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("insights: failed to list active insights")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar insights", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ReprocessInsights força o reprocessamento dos insights do tenant
func ReprocessInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithField("tenant_id", tenantID).Info("insights: manual reprocess requested")

		generated, err := service.ProcessInsights(tenantID)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("insights: failed to reprocess insights")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao reprocessar insights", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"generated": len(generated),
			"insights":  generated,
		}); err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("insights: failed to encode response")
		}
	})
}

// ResolveInsight marca um insight como resolvido
func ResolveInsight(service insighting.Insighter) http.Handler {
	return updateInsightStatus("resolve", func(service insighting.Insighter, insightID string) error {
		return service.ResolveInsight(insightID)
	}, service)
}

// IgnoreInsight descarta manualmente um insight
func IgnoreInsight(service insighting.Insighter) http.Handler {
	return updateInsightStatus("ignore", func(service insighting.Insighter, insightID string) error {
		return service.IgnoreInsight(insightID)
	}, service)
}

func updateInsightStatus(action string, fn func(insighting.Insighter, string) error, service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		insightID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if insightID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Insight não especificado", nil)
			return
		}

		if err := fn(service, insightID); err != nil {
			logger.WithFields(log.Fields{
				"insight_id": insightID,
				"action":     action,
				"error":      err.Error(),
			}).Error("insights: failed to update insight status")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar insight", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
