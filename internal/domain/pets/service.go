package pets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// FilterField identifica el único filtro que aplica List.
type FilterField string

const (
	FilterNone      FilterField = ""
	FilterCategory  FilterField = "category"
	FilterName      FilterField = "name"
	FilterAvailable FilterField = "available"
	FilterGender    FilterField = "gender"
)

type Filter struct {
	Field FilterField
	Value string
}

// Available devuelve el valor booleano del filtro available.
func (f Filter) Available() bool { return ParseAvailable(f.Value) }

// FilterFromQuery elige un solo filtro con precedencia fija:
// category > name > available > gender. Los valores vacíos se ignoran.
func FilterFromQuery(q url.Values) Filter {
	for _, f := range []FilterField{FilterCategory, FilterName, FilterAvailable, FilterGender} {
		if v := q.Get(string(f)); v != "" {
			return Filter{Field: f, Value: v}
		}
	}
	return Filter{}
}

type Option func(*Service)

// WithPurchaseObserver registra un callback que corre después de cada compra persistida.
func WithPurchaseObserver(fn func(Pet)) Option {
	return func(s *Service) { s.onPurchase = fn }
}

type Service struct {
	repo       Repository
	onPurchase func(Pet)
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	switch f.Field {
	case FilterCategory:
		return s.repo.FindByCategory(ctx, f.Value)
	case FilterName:
		return s.repo.FindByName(ctx, f.Value)
	case FilterAvailable:
		return s.repo.FindByAvailability(ctx, f.Available())
	case FilterGender:
		return s.repo.FindByGender(ctx, Gender(f.Value))
	default:
		return s.repo.All(ctx)
	}
}

func (s *Service) Get(ctx context.Context, id string) (Pet, error) {
	return s.repo.Find(ctx, id)
}

// Create deserializa data en una mascota nueva y la persiste; el store asigna el id.
func (s *Service) Create(ctx context.Context, data map[string]any) (Pet, error) {
	var p Pet
	if err := p.Deserialize(data); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return p, nil
}

// Update reemplaza los cuatro campos mutables. El id del path siempre gana
// sobre cualquier id que venga en data.
func (s *Service) Update(ctx context.Context, id string, data map[string]any) (Pet, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if err := p.Deserialize(data); err != nil {
		return Pet{}, err
	}
	p.ID = id

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("update pet %s: %w", id, err)
	}
	return p, nil
}

// Delete es idempotente: un id inexistente no es error.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.Find(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete pet %s: %w", id, err)
	}
	return nil
}

// Purchase pasa available de true a false. Sobre una mascota no disponible
// devuelve ErrNotAvailable; nunca vuelve a marcarla disponible.
func (s *Service) Purchase(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if !p.Available {
		return Pet{}, ErrNotAvailable
	}

	p.Available = false
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("purchase pet %s: %w", id, err)
	}
	if s.onPurchase != nil {
		s.onPurchase(p)
	}
	return p, nil
}
