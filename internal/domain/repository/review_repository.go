package repository

import "github.com/tu-usuario/clinica-pro/internal/domain/entity"

// ReviewRepository puerto de persistencia para Review.
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetAll() ([]*entity.Review, error)
	GetByClient(clientID int64) ([]*entity.Review, error)
	Delete(id int64) (bool, error)
}
