package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const (
	servicesTable = "services s"
	productsTable = "products pr"
)

type ServiceRepository interface {
	GetByTenant(tenantID string) ([]*domain.Service, error)
}

type ProductRepository interface {
	GetByTenant(tenantID string) ([]*domain.Product, error)
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

func (r *serviceRepository) GetByTenant(tenantID string) ([]*domain.Service, error) {
	query, args, err := squirrel.
		Select("s.id, s.tenant_id, s.name, s.price, s.duration_minutes, s.active").
		From(servicesTable).
		Where(squirrel.Eq{"s.tenant_id": tenantID}).
		OrderBy("s.name ASC").
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service := &domain.Service{}
		err := rows.Scan(
			&service.ID,
			&service.TenantID,
			&service.Name,
			&service.Price,
			&service.DurationMinutes,
			&service.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByTenant(tenantID string) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("pr.id, pr.tenant_id, pr.name, pr.price, pr.stock, pr.active").
		From(productsTable).
		Where(squirrel.Eq{"pr.tenant_id": tenantID}).
		OrderBy("pr.name ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.TenantID,
			&product.Name,
			&product.Price,
			&product.Stock,
			&product.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
