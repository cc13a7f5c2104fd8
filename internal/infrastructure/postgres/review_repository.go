package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación de ReviewRepository (usable con pool o tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una reseña nueva y asigna el ID generado. Comment vacío se
// guarda como NULL.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (client_id, rating, comment, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		review.ClientID, review.Rating, nullIfEmpty(review.Comment), review.Date,
	).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetAll devuelve todas las reseñas en orden de ID.
func (r *ReviewRepo) GetAll() ([]*entity.Review, error) {
	query := `SELECT id, client_id, rating, comment, date FROM reviews ORDER BY id`
	return r.queryReviews(query)
}

// GetByClient devuelve las reseñas de un cliente.
func (r *ReviewRepo) GetByClient(clientID int64) ([]*entity.Review, error) {
	query := `SELECT id, client_id, rating, comment, date FROM reviews WHERE client_id = $1 ORDER BY id`
	return r.queryReviews(query, clientID)
}

// Delete elimina una reseña por ID.
func (r *ReviewRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReviewRepo) queryReviews(query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		var comment sql.NullString
		if err := rows.Scan(&rv.ID, &rv.ClientID, &rv.Rating, &comment, &rv.Date); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		rv.Comment = comment.String
		list = append(list, &rv)
	}
	return list, rows.Err()
}
