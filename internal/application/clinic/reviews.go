package clinic

import (
	"time"

	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// AddReview valida y registra una reseña. La calificación debe ser un entero
// en [1,5]; comment es opcional; date vacía equivale a "hoy", evaluado en el
// momento de la llamada.
func (s *Service) AddReview(clientID int64, rating int, comment, date string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.Validationf("La calificación debe estar entre 1 y 5")
	}
	y, m, d := s.now().UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date != "" {
		if !validation.IsValidDate(date) {
			return nil, domain.Validationf("Fecha inválida, use el formato YYYY-MM-DD")
		}
		day, _ = validation.ParseDate(date)
	}
	review := &entity.Review{
		ClientID: clientID,
		Rating:   rating,
		Comment:  comment,
		Date:     day,
	}
	if err := s.reviews.Create(review); err != nil {
		s.log.Errorf("error creando reseña: %v", err)
		return nil, err
	}
	s.log.Infof("reseña creada: %d", review.ID)
	return review, nil
}

// ListReviews devuelve todas las reseñas.
func (s *Service) ListReviews() ([]*entity.Review, error) {
	return s.reviews.GetAll()
}

// ListReviewsByClient devuelve las reseñas de un cliente.
func (s *Service) ListReviewsByClient(clientID int64) ([]*entity.Review, error) {
	return s.reviews.GetByClient(clientID)
}

// DeleteReview elimina una reseña.
func (s *Service) DeleteReview(id int64) (bool, error) {
	ok, err := s.reviews.Delete(id)
	if err != nil {
		s.log.Errorf("error eliminando reseña %d: %v", id, err)
		return false, err
	}
	return ok, nil
}
