package entity

import "time"

// Review representa una reseña dejada por un cliente.
// Rating es un entero en [1,5]. Comment es opcional.
type Review struct {
	ID       int64
	ClientID int64
	Rating   int
	Comment  string
	Date     time.Time
}
