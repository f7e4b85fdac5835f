package domain

import "time"

// Pago records a single payroll payment for an employee.
type Pago struct {
	ID         string    `json:"id"`
	Fecha      time.Time `json:"fecha"`
	Tipo       string    `json:"tipo"`
	Monto      float64   `json:"monto"`
	Estado     string    `json:"estado"`
	EmpleadoID string    `json:"empleadoId"`
}
