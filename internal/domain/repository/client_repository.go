// Package repository define los puertos de persistencia del dominio, uno por
// entidad. Contrato común: Create asigna el ID generado por el almacén sobre
// la entidad recibida; GetByID devuelve (nil, nil) cuando no existe; Update y
// Delete reportan con un bool si alguna fila fue afectada (borrar un ID
// inexistente es (false, nil), no un error). La integridad referencial
// (cascadas cliente→mascota→cita→registro, cliente→factura, cliente→reseña)
// es responsabilidad del esquema, no de estos puertos.
package repository

import "github.com/tu-usuario/clinica-pro/internal/domain/entity"

// ClientRepository puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetAll() ([]*entity.Client, error)
	GetByID(id int64) (*entity.Client, error)
	Update(client *entity.Client) (bool, error)
	Delete(id int64) (bool, error)
}
