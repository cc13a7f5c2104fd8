package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

// PetRepo repositorio de mascotas en memoria.
type PetRepo struct {
	mu     sync.RWMutex
	byID   map[int64]entity.Pet
	nextID int64
}

// NewPetRepository construye el repositorio vacío.
func NewPetRepository() *PetRepo {
	return &PetRepo{byID: make(map[int64]entity.Pet)}
}

func (r *PetRepo) Create(pet *entity.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	pet.ID = r.nextID
	r.byID[pet.ID] = *pet
	return nil
}

func (r *PetRepo) GetAll() ([]*entity.Pet, error) {
	return r.filter(func(entity.Pet) bool { return true }), nil
}

func (r *PetRepo) GetByClient(clientID int64) ([]*entity.Pet, error) {
	return r.filter(func(p entity.Pet) bool { return p.ClientID == clientID }), nil
}

func (r *PetRepo) GetByID(id int64) (*entity.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PetRepo) Update(pet *entity.Pet) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[pet.ID]; !ok {
		return false, nil
	}
	r.byID[pet.ID] = *pet
	return true, nil
}

func (r *PetRepo) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *PetRepo) filter(keep func(entity.Pet) bool) []*entity.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Pet
	for _, p := range r.byID {
		if keep(p) {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
