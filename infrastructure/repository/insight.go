package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const insightsTable = "insights i"

type InsightRepository interface {
	Save(insight *domain.Insight) error
	GetByID(insightID string) (*domain.Insight, error)
	ListActiveByTenant(tenantID string) ([]*domain.Insight, error)
	Resolve(insightID string) error
	Ignore(insightID string) error
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) Save(insight *domain.Insight) error {
	var dataJSON []byte
	var err error

	if insight.Data != nil {
		dataJSON, err = json.Marshal(insight.Data)
		if err != nil {
			return fmt.Errorf("erro ao serializar payload do insight para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("insights").
		Columns("id", "tenant_id", "module_id", "name", "category", "description", "priority", "cooldown_hours", "threshold", "status", "created_at", "data").
		Values(
			insight.ID,
			insight.TenantID,
			insight.ModuleID,
			insight.Name,
			insight.Category,
			insight.Description,
			insight.Priority,
			insight.CooldownHours,
			insight.Threshold,
			insight.Status,
			insight.CreatedAt,
			dataJSON,
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

func (r *insightRepository) GetByID(insightID string) (*domain.Insight, error) {
	insights, err := r.listInsights(squirrel.Eq{"i.id": insightID})
	if err != nil {
		return nil, err
	}
	if len(insights) == 0 {
		return nil, nil
	}
	return insights[0], nil
}

func (r *insightRepository) ListActiveByTenant(tenantID string) ([]*domain.Insight, error) {
	return r.listInsights(squirrel.Eq{
		"i.tenant_id": tenantID,
		"i.status":    domain.InsightStatusActive,
	})
}

func (r *insightRepository) listInsights(whereClause squirrel.Sqlizer) ([]*domain.Insight, error) {
	query, args, err := squirrel.
		Select("i.id, i.tenant_id, i.module_id, i.name, i.category, i.description, i.priority, i.cooldown_hours, i.threshold, i.status, i.created_at, i.resolved_at, i.data").
		From(insightsTable).
		Where(whereClause).
		OrderBy("i.priority DESC", "i.created_at DESC").
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

	insights := make([]*domain.Insight, 0)
	for rows.Next() {
		insight := &domain.Insight{}
		var dataJSON []byte

		err := rows.Scan(
			&insight.ID,
			&insight.TenantID,
			&insight.ModuleID,
			&insight.Name,
			&insight.Category,
			&insight.Description,
			&insight.Priority,
			&insight.CooldownHours,
			&insight.Threshold,
			&insight.Status,
			&insight.CreatedAt,
			&insight.ResolvedAt,
			&dataJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}

		if dataJSON != nil {
			data := make(map[string]any)
			if err := json.Unmarshal(dataJSON, &data); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON do payload: %w", err)
			}
			insight.Data = data
		}

		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *insightRepository) Resolve(insightID string) error {
	return r.updateStatus(insightID, domain.InsightStatusResolved)
}

func (r *insightRepository) Ignore(insightID string) error {
	return r.updateStatus(insightID, domain.InsightStatusIgnored)
}

func (r *insightRepository) updateStatus(insightID, status string) error {
	query, args, err := squirrel.
		Update("insights").
		Set("status", status).
		Set("resolved_at", time.Now()).
		Where(squirrel.Eq{"id": insightID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("insight não encontrado: %s", insightID)
	}

	return nil
}
