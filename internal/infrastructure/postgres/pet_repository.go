package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

// PetRepo implementación de PetRepository (usable con pool o tx).
type PetRepo struct {
	q Querier
}

// NewPetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPetRepository(q Querier) *PetRepo {
	return &PetRepo{q: q}
}

// Create persiste una mascota nueva y asigna el ID generado.
func (r *PetRepo) Create(pet *entity.Pet) error {
	query := `
		INSERT INTO pets (name, species, breed, age, client_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		pet.Name, pet.Species, pet.Breed, pet.Age, pet.ClientID,
	).Scan(&pet.ID)
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

// GetAll devuelve todas las mascotas en orden de ID.
func (r *PetRepo) GetAll() ([]*entity.Pet, error) {
	query := `SELECT id, name, species, breed, age, client_id FROM pets ORDER BY id`
	return r.queryPets(query)
}

// GetByClient devuelve las mascotas de un cliente.
func (r *PetRepo) GetByClient(clientID int64) ([]*entity.Pet, error) {
	query := `SELECT id, name, species, breed, age, client_id FROM pets WHERE client_id = $1 ORDER BY id`
	return r.queryPets(query, clientID)
}

// GetByID obtiene una mascota; (nil, nil) si no existe.
func (r *PetRepo) GetByID(id int64) (*entity.Pet, error) {
	query := `SELECT id, name, species, breed, age, client_id FROM pets WHERE id = $1`
	var p entity.Pet
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Species, &p.Breed, &p.Age, &p.ClientID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return &p, nil
}

// Update actualiza una mascota; el bool indica si alguna fila fue afectada.
func (r *PetRepo) Update(pet *entity.Pet) (bool, error) {
	query := `
		UPDATE pets SET name = $2, species = $3, breed = $4, age = $5, client_id = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		pet.ID, pet.Name, pet.Species, pet.Breed, pet.Age, pet.ClientID,
	)
	if err != nil {
		return false, fmt.Errorf("update pet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina una mascota por ID (cascada sobre citas y registros).
func (r *PetRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete pet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PetRepo) queryPets(query string, args ...any) ([]*entity.Pet, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pet
	for rows.Next() {
		var p entity.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.Age, &p.ClientID); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
