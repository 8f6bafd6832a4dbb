package pets

import "context"

// Repository es el record store. Create asigna el ID; las búsquedas devuelven
// en orden de creación y Find devuelve ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, p *Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error

	Find(ctx context.Context, id string) (Pet, error)
	All(ctx context.Context) ([]Pet, error)
	FindByCategory(ctx context.Context, category string) ([]Pet, error)
	FindByName(ctx context.Context, name string) ([]Pet, error)
	FindByAvailability(ctx context.Context, available bool) ([]Pet, error)
	FindByGender(ctx context.Context, gender Gender) ([]Pet, error)
}
