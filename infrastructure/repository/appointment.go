package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

const appointmentsTable = "appointments ap"

type AppointmentRepository interface {
	GetByTenant(tenantID string) ([]*domain.Appointment, error)
	GetByTenantAndPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.Appointment, error)
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

func (r *appointmentRepository) GetByTenant(tenantID string) ([]*domain.Appointment, error) {
	return r.listAppointments(squirrel.Eq{"ap.tenant_id": tenantID}, nil)
}

func (r *appointmentRepository) GetByTenantAndPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.Appointment, error) {
	return r.listAppointments(
		squirrel.Eq{"ap.tenant_id": tenantID},
		squirrel.And{
			squirrel.GtOrEq{"ap.date": startDate},
			squirrel.Lt{"ap.date": endDate},
		},
	)
}

func (r *appointmentRepository) listAppointments(whereClauses ...squirrel.Sqlizer) ([]*domain.Appointment, error) {
	builder := squirrel.
		Select("ap.id, ap.tenant_id, ap.customer_id, ap.professional_id, ap.service_id, ap.date, ap.status, ap.value, ap.cost, ap.created_at").
		From(appointmentsTable).
		OrderBy("ap.date ASC").
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

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment := &domain.Appointment{}
		err := rows.Scan(
			&appointment.ID,
			&appointment.TenantID,
			&appointment.CustomerID,
			&appointment.ProfessionalID,
			&appointment.ServiceID,
			&appointment.Date,
			&appointment.Status,
			&appointment.Value,
			&appointment.Cost,
			&appointment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return appointments, nil
}
