package clinic

import (
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// AddClient valida y registra un cliente nuevo. Devuelve la entidad
// persistida con el ID que asignó el almacén.
func (s *Service) AddClient(name, email, phone string) (*entity.Client, error) {
	if err := validateClient(name, email, phone); err != nil {
		return nil, err
	}
	client := &entity.Client{Name: name, Email: email, Phone: phone}
	if err := s.clients.Create(client); err != nil {
		s.log.Errorf("error creando cliente: %v", err)
		return nil, err
	}
	s.log.Infof("cliente creado: %d", client.ID)
	return client, nil
}

// UpdateClient valida y actualiza un cliente existente. El bool indica si
// alguna fila fue afectada (false = el ID no existe).
func (s *Service) UpdateClient(client *entity.Client) (bool, error) {
	if err := validateClient(client.Name, client.Email, client.Phone); err != nil {
		return false, err
	}
	ok, err := s.clients.Update(client)
	if err != nil {
		s.log.Errorf("error actualizando cliente %d: %v", client.ID, err)
		return false, err
	}
	if ok {
		s.log.Infof("cliente actualizado: %d", client.ID)
	}
	return ok, nil
}

// ListClients devuelve todos los clientes en el orden del repositorio.
func (s *Service) ListClients() ([]*entity.Client, error) {
	return s.clients.GetAll()
}

// GetClientByID devuelve el cliente o (nil, nil) si no existe.
func (s *Service) GetClientByID(id int64) (*entity.Client, error) {
	return s.clients.GetByID(id)
}

// DeleteClient elimina un cliente. Las mascotas, citas, registros, facturas
// y reseñas asociadas caen por cascada en el esquema. Borrar un ID
// inexistente devuelve (false, nil).
func (s *Service) DeleteClient(id int64) (bool, error) {
	ok, err := s.clients.Delete(id)
	if err != nil {
		s.log.Errorf("error eliminando cliente %d: %v", id, err)
		return false, err
	}
	return ok, nil
}

func validateClient(name, email, phone string) error {
	if !validation.IsNotEmpty(name) {
		return domain.Validationf("El nombre es obligatorio")
	}
	if !validation.IsValidEmail(email) {
		return domain.Validationf("Email inválido")
	}
	if !validation.IsValidPhone(phone) {
		return domain.Validationf("Teléfono inválido")
	}
	return nil
}
