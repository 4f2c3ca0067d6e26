package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const tenantsTable = "tenants t"

type TenantRepository interface {
	GetByID(tenantID string) (*domain.Tenant, error)
	GetBySlug(slug string) (*domain.Tenant, error)
	ListTenants() ([]*domain.Tenant, error)
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetByID(tenantID string) (*domain.Tenant, error) {
	return r.getTenant(squirrel.Eq{"t.id": tenantID})
}

func (r *tenantRepository) GetBySlug(slug string) (*domain.Tenant, error) {
	return r.getTenant(squirrel.Eq{"t.slug": slug})
}

func (r *tenantRepository) getTenant(whereClause map[string]interface{}) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.slug, t.created_at").
		From(tenantsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	tenant := &domain.Tenant{}
	err = r.conn.QueryRow(query, args...).Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Slug,
		&tenant.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
	}

	return tenant, nil
}

func (r *tenantRepository) ListTenants() ([]*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.slug, t.created_at").
		From(tenantsTable).
		OrderBy("t.created_at ASC").
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

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.Slug, &tenant.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}
