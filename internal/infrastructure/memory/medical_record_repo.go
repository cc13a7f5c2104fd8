package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.MedicalRecordRepository = (*MedicalRecordRepo)(nil)

// MedicalRecordRepo repositorio de registros clínicos en memoria. Necesita el
// repositorio de citas para materializar la proyección del historial (en SQL
// es un JOIN).
type MedicalRecordRepo struct {
	mu     sync.RWMutex
	byID   map[int64]entity.MedicalRecord
	nextID int64
	appts  *AppointmentRepo
}

// NewMedicalRecordRepository construye el repositorio vacío.
func NewMedicalRecordRepository(appts *AppointmentRepo) *MedicalRecordRepo {
	return &MedicalRecordRepo{byID: make(map[int64]entity.MedicalRecord), appts: appts}
}

func (r *MedicalRecordRepo) Create(record *entity.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	record.ID = r.nextID
	r.byID[record.ID] = *record
	return nil
}

// GetHistoryByPet arma registro + cita para la mascota, más reciente primero.
func (r *MedicalRecordRepo) GetHistoryByPet(petID int64) ([]*entity.MedicalHistoryEntry, error) {
	r.mu.RLock()
	records := make([]entity.MedicalRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		records = append(records, rec)
	}
	r.mu.RUnlock()

	var list []*entity.MedicalHistoryEntry
	for _, rec := range records {
		appt, err := r.appts.GetByID(rec.AppointmentID)
		if err != nil || appt == nil || appt.PetID != petID {
			continue
		}
		list = append(list, &entity.MedicalHistoryEntry{
			RecordID:  rec.ID,
			Date:      appt.Date,
			Reason:    appt.Reason,
			Diagnosis: rec.Diagnosis,
			Treatment: rec.Treatment,
			Notes:     rec.Notes,
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}
