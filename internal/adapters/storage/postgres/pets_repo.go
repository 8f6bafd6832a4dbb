package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petstore/internal/domain/pets"

	"github.com/google/uuid"
)

const selectPets = `
	SELECT id, name, category, available, gender
	FROM pets
`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) Create(ctx context.Context, p *pets.Pet) error {
	if p == nil {
		return errors.New("pet required")
	}
	id := uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, name, category, available, gender)
		VALUES ($1, $2, $3, $4, $5)
	`, id, p.Name, p.Category, p.Available, string(p.Gender))
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			category = $3,
			available = $4,
			gender = $5
		WHERE id = $1
	`, p.ID, p.Name, p.Category, p.Available, string(p.Gender))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Find(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, selectPets+` WHERE id = $1`, id)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) All(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, "")
}

func (r *PetsRepo) FindByCategory(ctx context.Context, category string) ([]pets.Pet, error) {
	return r.list(ctx, `WHERE category = $1`, category)
}

func (r *PetsRepo) FindByName(ctx context.Context, name string) ([]pets.Pet, error) {
	return r.list(ctx, `WHERE name = $1`, name)
}

func (r *PetsRepo) FindByAvailability(ctx context.Context, available bool) ([]pets.Pet, error) {
	return r.list(ctx, `WHERE available = $1`, available)
}

func (r *PetsRepo) FindByGender(ctx context.Context, gender pets.Gender) ([]pets.Pet, error) {
	return r.list(ctx, `WHERE gender = $1`, string(gender))
}

func (r *PetsRepo) list(ctx context.Context, where string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, selectPets+where+` ORDER BY created_at ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p      pets.Pet
		gender string
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Category, &p.Available, &gender); err != nil {
		return pets.Pet{}, err
	}
	p.Gender = pets.Gender(gender)
	return p, nil
}
