package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo repositorio de reseñas en memoria.
type ReviewRepo struct {
	mu     sync.RWMutex
	byID   map[int64]entity.Review
	nextID int64
}

// NewReviewRepository construye el repositorio vacío.
func NewReviewRepository() *ReviewRepo {
	return &ReviewRepo{byID: make(map[int64]entity.Review)}
}

func (r *ReviewRepo) Create(review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	review.ID = r.nextID
	r.byID[review.ID] = *review
	return nil
}

func (r *ReviewRepo) GetAll() ([]*entity.Review, error) {
	return r.filter(func(entity.Review) bool { return true }), nil
}

func (r *ReviewRepo) GetByClient(clientID int64) ([]*entity.Review, error) {
	return r.filter(func(rv entity.Review) bool { return rv.ClientID == clientID }), nil
}

func (r *ReviewRepo) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *ReviewRepo) filter(keep func(entity.Review) bool) []*entity.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Review
	for _, rv := range r.byID {
		if keep(rv) {
			rv := rv
			list = append(list, &rv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
