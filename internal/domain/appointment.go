package domain

import "time"

// Status possíveis de um agendamento. A transição é de mão única:
// scheduled -> done ou scheduled -> cancelled.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusDone      = "done"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment é um agendamento. Value guarda o preço cobrado no momento do
// agendamento, independente do preço atual do serviço no catálogo.
type Appointment struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	CustomerID     string    `json:"customer_id"`
	ProfessionalID string    `json:"professional_id"`
	ServiceID      string    `json:"service_id"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	Value          float64   `json:"value"`
	Cost           *float64  `json:"cost"`
	CreatedAt      time.Time `json:"created_at"`
}
