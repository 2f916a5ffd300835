package entity

import "time"

// Company representa una organización/tenant del sistema. Las bodegas pertenecen
// siempre a exactamente una empresa.
type Company struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
