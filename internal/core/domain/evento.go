package domain

import (
	"errors"
	"time"
)

var ErrEventoNotFound = errors.New("evento not found")

// Evento is a calendar entry owned by a single user. Hora is the wall-clock
// time of day in zero-padded "HH:MM" form, kept separate from Fecha so
// time-of-day windows can be compared lexicographically.
type Evento struct {
	ID        string    `json:"id"`
	Fecha     time.Time `json:"fecha"`
	Hora      string    `json:"hora"`
	Texto     string    `json:"texto"`
	UsuarioID string    `json:"usuarioId"`
}
