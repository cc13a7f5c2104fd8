package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo repositorio de citas en memoria.
type AppointmentRepo struct {
	mu     sync.RWMutex
	byID   map[int64]entity.Appointment
	nextID int64
}

// NewAppointmentRepository construye el repositorio vacío.
func NewAppointmentRepository() *AppointmentRepo {
	return &AppointmentRepo{byID: make(map[int64]entity.Appointment)}
}

func (r *AppointmentRepo) Create(appt *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	appt.ID = r.nextID
	r.byID[appt.ID] = *appt
	return nil
}

func (r *AppointmentRepo) GetAll() ([]*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		a := a
		list = append(list, &a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *AppointmentRepo) GetByID(id int64) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AppointmentRepo) Update(appt *entity.Appointment) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[appt.ID]; !ok {
		return false, nil
	}
	r.byID[appt.ID] = *appt
	return true, nil
}

func (r *AppointmentRepo) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
