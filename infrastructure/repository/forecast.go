package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const forecastsTable = "forecasts f"

type ForecastRepository interface {
	Save(forecast *domain.Forecast) error
	ListByTenant(tenantID string) ([]*domain.Forecast, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func (r *forecastRepository) Save(forecast *domain.Forecast) error {
	var detailsJSON []byte
	var err error

	if forecast.Details != nil {
		detailsJSON, err = json.Marshal(forecast.Details)
		if err != nil {
			return fmt.Errorf("erro ao serializar detalhes da previsão para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("forecasts").
		Columns("id", "tenant_id", "period", "value", "created_at", "details").
		Values(
			forecast.ID,
			forecast.TenantID,
			forecast.Period,
			forecast.Value,
			forecast.CreatedAt,
			detailsJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *forecastRepository) ListByTenant(tenantID string) ([]*domain.Forecast, error) {
	query, args, err := squirrel.
		Select("f.id, f.tenant_id, f.period, f.value, f.created_at, f.details").
		From(forecastsTable).
		Where(squirrel.Eq{"f.tenant_id": tenantID}).
		OrderBy("f.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	forecasts := make([]*domain.Forecast, 0)
	for rows.Next() {
		forecast := &domain.Forecast{}
		var detailsJSON []byte

		err := rows.Scan(
			&forecast.ID,
			&forecast.TenantID,
			&forecast.Period,
			&forecast.Value,
			&forecast.CreatedAt,
			&detailsJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}

		if detailsJSON != nil {
			details := &domain.ForecastDetails{}
			if err := json.Unmarshal(detailsJSON, details); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON dos detalhes: %w", err)
			}
			forecast.Details = details
		}

		forecasts = append(forecasts, forecast)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return forecasts, nil
}
