// Package memory implementa los puertos de persistencia en memoria (mapa +
// mutex, IDs autoincrementales). Respeta el mismo contrato que los
// adaptadores de PostgreSQL: GetByID devuelve (nil, nil) si no existe y
// Delete de un ID inexistente es (false, nil). Respaldan los tests de los
// servicios y el modo demo sin base de datos.
package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo repositorio de clientes en memoria.
type ClientRepo struct {
	mu     sync.RWMutex
	byID   map[int64]entity.Client
	nextID int64
}

// NewClientRepository construye el repositorio vacío.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{byID: make(map[int64]entity.Client)}
}

func (r *ClientRepo) Create(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	client.ID = r.nextID
	r.byID[client.ID] = *client
	return nil
}

func (r *ClientRepo) GetAll() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Client, 0, len(r.byID))
	for _, c := range r.byID {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) Update(client *entity.Client) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[client.ID]; !ok {
		return false, nil
	}
	r.byID[client.ID] = *client
	return true, nil
}

func (r *ClientRepo) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
