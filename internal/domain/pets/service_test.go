package pets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	seq     int
	order   []string
	byID    map[string]Pet
	calls   []string
	failing error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p *Pet) error {
	if r.failing != nil {
		return r.failing
	}
	r.seq++
	p.ID = fmt.Sprintf("pet-%d", r.seq)
	r.byID[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	r.calls = append(r.calls, "delete:"+id)
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Find(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) filter(call string, keep func(Pet) bool) []Pet {
	r.calls = append(r.calls, call)
	out := make([]Pet, 0)
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *testRepo) All(ctx context.Context) ([]Pet, error) {
	return r.filter("all", func(Pet) bool { return true }), nil
}

func (r *testRepo) FindByCategory(ctx context.Context, category string) ([]Pet, error) {
	return r.filter("category", func(p Pet) bool { return p.Category == category }), nil
}

func (r *testRepo) FindByName(ctx context.Context, name string) ([]Pet, error) {
	return r.filter("name", func(p Pet) bool { return p.Name == name }), nil
}

func (r *testRepo) FindByAvailability(ctx context.Context, available bool) ([]Pet, error) {
	return r.filter("available", func(p Pet) bool { return p.Available == available }), nil
}

func (r *testRepo) FindByGender(ctx context.Context, gender Gender) ([]Pet, error) {
	return r.filter("gender", func(p Pet) bool { return p.Gender == gender }), nil
}

func mustCreate(t *testing.T, svc *Service, name, category string, available bool, gender Gender) Pet {
	t.Helper()
	p, err := svc.Create(context.Background(), map[string]any{
		"name": name, "category": category, "available": available, "gender": string(gender),
	})
	require.NoError(t, err)
	return p
}

// -------------------------
// Tests
// -------------------------

func TestFilterFromQuery_Precedence(t *testing.T) {
	tests := []struct {
		query string
		want  Filter
	}{
		{"", Filter{}},
		{"category=dog&name=Fido", Filter{Field: FilterCategory, Value: "dog"}},
		{"name=Fido&available=yes&gender=MALE", Filter{Field: FilterName, Value: "Fido"}},
		{"gender=MALE&available=no", Filter{Field: FilterAvailable, Value: "no"}},
		{"gender=FEMALE", Filter{Field: FilterGender, Value: "FEMALE"}},
		{"category=&name=Fido", Filter{Field: FilterName, Value: "Fido"}},
		{"other=1", Filter{}},
	}
	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		require.NoError(t, err)
		assert.Equal(t, tt.want, FilterFromQuery(q), tt.query)
	}
}

func TestService_List_UsesOnlyFirstFilter(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	mustCreate(t, svc, "Fido", "dog", true, GenderMale)
	mustCreate(t, svc, "Kitty", "cat", false, GenderFemale)
	mustCreate(t, svc, "Rex", "dog", false, GenderMale)

	ctx := context.Background()

	got, err := svc.List(ctx, Filter{Field: FilterCategory, Value: "dog"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(ctx, Filter{Field: FilterAvailable, Value: "TRUE"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Fido", got[0].Name)

	got, err = svc.List(ctx, Filter{Field: FilterAvailable, Value: "nope"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(ctx, Filter{Field: FilterGender, Value: "FEMALE"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kitty", got[0].Name)

	got, err = svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fido", "Kitty", "Rex"}, []string{got[0].Name, got[1].Name, got[2].Name})

	assert.Equal(t, []string{"category", "available", "available", "gender", "all"}, repo.calls)
}

func TestService_Create_AssignsID(t *testing.T) {
	svc := NewService(newTestRepo())

	p := mustCreate(t, svc, "Fido", "dog", true, GenderMale)
	assert.Equal(t, "pet-1", p.ID)

	got, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_Create_InvalidData_DoesNotPersist(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), map[string]any{"name": "Fido"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, repo.byID)
}

func TestService_Create_StoreFailureIsWrapped(t *testing.T) {
	repo := newTestRepo()
	repo.failing = errors.New("disk full")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validData())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.failing)
}

func TestService_Update_PathIDWins(t *testing.T) {
	svc := NewService(newTestRepo())
	p := mustCreate(t, svc, "Fido", "dog", true, GenderMale)

	data := map[string]any{"id": "someone-else", "name": "Fido II", "category": "cat", "available": false, "gender": "UNKNOWN"}
	got, err := svc.Update(context.Background(), p.ID, data)
	require.NoError(t, err)

	assert.Equal(t, Pet{ID: p.ID, Name: "Fido II", Category: "cat", Available: false, Gender: GenderUnknown}, got)

	stored, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "missing", validData())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_InvalidKeepsStored(t *testing.T) {
	svc := NewService(newTestRepo())
	p := mustCreate(t, svc, "Fido", "dog", true, GenderMale)

	_, err := svc.Update(context.Background(), p.ID, map[string]any{"name": "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	stored, _ := svc.Get(context.Background(), p.ID)
	assert.Equal(t, p, stored)
}

func TestService_Delete_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	p := mustCreate(t, svc, "Fido", "dog", true, GenderMale)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	require.NoError(t, svc.Delete(context.Background(), p.ID))
	require.NoError(t, svc.Delete(context.Background(), "never-existed"))

	assert.Equal(t, []string{"delete:" + p.ID}, repo.calls)
	_, err := svc.Get(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Purchase_OneDirectional(t *testing.T) {
	var observed []Pet
	svc := NewService(newTestRepo(), WithPurchaseObserver(func(p Pet) { observed = append(observed, p) }))
	p := mustCreate(t, svc, "Fido", "dog", true, GenderMale)

	got, err := svc.Purchase(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)

	_, err = svc.Purchase(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrNotAvailable)

	stored, _ := svc.Get(context.Background(), p.ID)
	assert.False(t, stored.Available)
	require.Len(t, observed, 1)
	assert.Equal(t, p.ID, observed[0].ID)
}

func TestService_Purchase_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Purchase(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateCanMakeAvailableAgain(t *testing.T) {
	svc := NewService(newTestRepo())
	p := mustCreate(t, svc, "Fido", "dog", false, GenderMale)

	data := validData()
	data["available"] = true
	got, err := svc.Update(context.Background(), p.ID, data)
	require.NoError(t, err)
	assert.True(t, got.Available)

	_, err = svc.Purchase(context.Background(), p.ID)
	assert.NoError(t, err)
}
