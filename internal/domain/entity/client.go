package entity

// Client representa un cliente (dueño) de la clínica veterinaria.
// Es la raíz de la jerarquía: sus mascotas, facturas y reseñas se
// eliminan en cascada a nivel de esquema.
type Client struct {
	ID    int64
	Name  string
	Email string
	Phone string // 7-15 dígitos, opcional "+" inicial
}
