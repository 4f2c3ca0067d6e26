package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const (
	customersTable     = "customers c"
	professionalsTable = "professionals p"
)

type CustomerRepository interface {
	GetByTenant(tenantID string) ([]*domain.Customer, error)
}

type ProfessionalRepository interface {
	GetByTenant(tenantID string) ([]*domain.Professional, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) GetByTenant(tenantID string) ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.tenant_id, c.name, c.email, c.phone, c.created_at").
		From(customersTable).
		Where(squirrel.Eq{"c.tenant_id": tenantID}).
		OrderBy("c.name ASC").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := &domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.TenantID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

type professionalRepository struct {
	conn *postgres.Connection
}

func NewProfessionalRepository(conn *postgres.Connection) ProfessionalRepository {
	return &professionalRepository{
		conn: conn,
	}
}

func (r *professionalRepository) GetByTenant(tenantID string) ([]*domain.Professional, error) {
	query, args, err := squirrel.
		Select("p.id, p.tenant_id, p.name, p.email").
		From(professionalsTable).
		Where(squirrel.Eq{"p.tenant_id": tenantID}).
		OrderBy("p.name ASC").
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

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		professional := &domain.Professional{}
		err := rows.Scan(
			&professional.ID,
			&professional.TenantID,
			&professional.Name,
			&professional.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear profissional: %w", err)
		}
		professionals = append(professionals, professional)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return professionals, nil
}
