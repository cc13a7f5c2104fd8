package clinic

import (
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// AddPet valida y registra una mascota. La existencia del cliente no se
// verifica aquí: la clave foránea del esquema es la autoridad.
func (s *Service) AddPet(name, species, breed string, age int, clientID int64) (*entity.Pet, error) {
	if err := validatePet(name, species, age); err != nil {
		return nil, err
	}
	pet := &entity.Pet{Name: name, Species: species, Breed: breed, Age: age, ClientID: clientID}
	if err := s.pets.Create(pet); err != nil {
		s.log.Errorf("error creando mascota: %v", err)
		return nil, err
	}
	s.log.Infof("mascota creada: %d", pet.ID)
	return pet, nil
}

// UpdatePet valida y actualiza una mascota existente.
func (s *Service) UpdatePet(pet *entity.Pet) (bool, error) {
	if err := validatePet(pet.Name, pet.Species, pet.Age); err != nil {
		return false, err
	}
	ok, err := s.pets.Update(pet)
	if err != nil {
		s.log.Errorf("error actualizando mascota %d: %v", pet.ID, err)
		return false, err
	}
	if ok {
		s.log.Infof("mascota actualizada: %d", pet.ID)
	}
	return ok, nil
}

// ListPets devuelve todas las mascotas.
func (s *Service) ListPets() ([]*entity.Pet, error) {
	return s.pets.GetAll()
}

// ListPetsByClient devuelve las mascotas de un cliente.
func (s *Service) ListPetsByClient(clientID int64) ([]*entity.Pet, error) {
	return s.pets.GetByClient(clientID)
}

// GetPetByID devuelve la mascota o (nil, nil) si no existe.
func (s *Service) GetPetByID(id int64) (*entity.Pet, error) {
	return s.pets.GetByID(id)
}

// DeletePet elimina una mascota (sus citas y registros caen por cascada).
func (s *Service) DeletePet(id int64) (bool, error) {
	ok, err := s.pets.Delete(id)
	if err != nil {
		s.log.Errorf("error eliminando mascota %d: %v", id, err)
		return false, err
	}
	return ok, nil
}

func validatePet(name, species string, age int) error {
	if !validation.IsNotEmpty(name) {
		return domain.Validationf("El nombre es obligatorio")
	}
	if !validation.IsNotEmpty(species) {
		return domain.Validationf("La especie es obligatoria")
	}
	if !validation.IsNonNegative(age) {
		return domain.Validationf("La edad no puede ser negativa")
	}
	return nil
}
