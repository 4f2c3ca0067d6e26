package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const transactionsTable = "financial_transactions ft"

type TransactionRepository interface {
	GetByTenant(tenantID string) ([]*domain.FinancialTransaction, error)
	GetByTenantAndPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.FinancialTransaction, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) GetByTenant(tenantID string) ([]*domain.FinancialTransaction, error) {
	return r.listTransactions(squirrel.Eq{"ft.tenant_id": tenantID}, nil)
}

func (r *transactionRepository) GetByTenantAndPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.FinancialTransaction, error) {
	return r.listTransactions(
		squirrel.Eq{"ft.tenant_id": tenantID},
		squirrel.And{
			squirrel.GtOrEq{"ft.created_at": startDate},
			squirrel.Lt{"ft.created_at": endDate},
		},
	)
}

func (r *transactionRepository) listTransactions(whereClauses ...squirrel.Sqlizer) ([]*domain.FinancialTransaction, error) {
	builder := squirrel.
		Select("ft.id, ft.tenant_id, ft.appointment_id, ft.type, ft.value, ft.description, ft.created_at").
		From(transactionsTable).
		OrderBy("ft.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	for _, clause := range whereClauses {
		if clause != nil {
			builder = builder.Where(clause)
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.FinancialTransaction, 0)
	for rows.Next() {
		transaction := &domain.FinancialTransaction{}
		err := rows.Scan(
			&transaction.ID,
			&transaction.TenantID,
			&transaction.AppointmentID,
			&transaction.Type,
			&transaction.Value,
			&transaction.Description,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento financeiro: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}
