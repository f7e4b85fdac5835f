package domain

import "errors"

var ErrEmpleadoNotFound = errors.New("empleado not found")

// Empleado is an employee on a client's payroll, identified by DNI.
type Empleado struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	DNI       string `json:"dni"`
	Compania  string `json:"compania"`
	ClienteID string `json:"clienteId"`
}
