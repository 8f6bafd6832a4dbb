package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petstore/internal/domain/pets"

	"github.com/google/uuid"
)

type petRepo struct {
	mu    sync.RWMutex
	byID  map[string]pets.Pet
	order []string // ids en orden de creación
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p *pets.Pet) error {
	if p == nil {
		return errors.New("pet required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	r.byID[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *petRepo) Find(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) All(ctx context.Context) ([]pets.Pet, error) {
	return r.where(func(pets.Pet) bool { return true }), nil
}

func (r *petRepo) FindByCategory(ctx context.Context, category string) ([]pets.Pet, error) {
	return r.where(func(p pets.Pet) bool { return p.Category == category }), nil
}

func (r *petRepo) FindByName(ctx context.Context, name string) ([]pets.Pet, error) {
	return r.where(func(p pets.Pet) bool { return p.Name == name }), nil
}

func (r *petRepo) FindByAvailability(ctx context.Context, available bool) ([]pets.Pet, error) {
	return r.where(func(p pets.Pet) bool { return p.Available == available }), nil
}

func (r *petRepo) FindByGender(ctx context.Context, gender pets.Gender) ([]pets.Pet, error) {
	return r.where(func(p pets.Pet) bool { return p.Gender == gender }), nil
}

func (r *petRepo) where(keep func(pets.Pet) bool) []pets.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, id := range r.order {
		if p := r.byID[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}
