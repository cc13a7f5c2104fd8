package repository

import "github.com/tu-usuario/clinica-pro/internal/domain/entity"

// PetRepository puerto de persistencia para Pet.
type PetRepository interface {
	Create(pet *entity.Pet) error
	GetAll() ([]*entity.Pet, error)
	GetByClient(clientID int64) ([]*entity.Pet, error)
	GetByID(id int64) (*entity.Pet, error)
	Update(pet *entity.Pet) (bool, error)
	Delete(id int64) (bool, error)
}
