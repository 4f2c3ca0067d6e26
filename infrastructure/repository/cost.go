package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const costsTable = "costs co"

type CostRepository interface {
	GetByTenant(tenantID string) ([]*domain.Cost, error)
}

type costRepository struct {
	conn *postgres.Connection
}

func NewCostRepository(conn *postgres.Connection) CostRepository {
	return &costRepository{
		conn: conn,
	}
}

func (r *costRepository) GetByTenant(tenantID string) ([]*domain.Cost, error) {
	query, args, err := squirrel.
		Select("co.id, co.tenant_id, co.name, co.value, co.type, co.due_date, co.paid").
		From(costsTable).
		Where(squirrel.Eq{"co.tenant_id": tenantID}).
		OrderBy("co.due_date ASC NULLS LAST").
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

	costs := make([]*domain.Cost, 0)
	for rows.Next() {
		cost := &domain.Cost{}
		err := rows.Scan(
			&cost.ID,
			&cost.TenantID,
			&cost.Name,
			&cost.Value,
			&cost.Type,
			&cost.DueDate,
			&cost.Paid,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}
