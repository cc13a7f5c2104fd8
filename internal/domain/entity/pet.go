package entity

// Pet representa una mascota registrada a nombre de un cliente.
type Pet struct {
	ID       int64
	Name     string
	Species  string
	Breed    string
	Age      int // años cumplidos, >= 0
	ClientID int64
}
