package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const subscriptionsTable = "subscriptions sub"

type SubscriptionRepository interface {
	GetByTenant(tenantID string) ([]*domain.Subscription, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

func (r *subscriptionRepository) GetByTenant(tenantID string) ([]*domain.Subscription, error) {
	query, args, err := squirrel.
		Select("sub.id, sub.tenant_id, sub.customer_id, sub.plan_name, sub.price, sub.status, sub.started_at, sub.ended_at").
		From(subscriptionsTable).
		Where(squirrel.Eq{"sub.tenant_id": tenantID}).
		OrderBy("sub.started_at ASC").
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

	subscriptions := make([]*domain.Subscription, 0)
	for rows.Next() {
		subscription := &domain.Subscription{}
		err := rows.Scan(
			&subscription.ID,
			&subscription.TenantID,
			&subscription.CustomerID,
			&subscription.PlanName,
			&subscription.Price,
			&subscription.Status,
			&subscription.StartedAt,
			&subscription.EndedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
		}
		subscriptions = append(subscriptions, subscription)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return subscriptions, nil
}
