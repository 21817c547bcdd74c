package memory

import (
	"strings"

	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository"
)

type catalogRepository struct {
	products []domain.Product
	outlets  []domain.Outlet
	users    []domain.User

	productsByID map[string]domain.Product
	outletsByID  map[string]domain.Outlet
	usersByEmail map[string]domain.User
	usersByID    map[string]domain.User
}

// NewCatalogRepository builds an immutable in-memory catalog. Slice order
// is preserved for Products and Outlets.
func NewCatalogRepository(products []domain.Product, outlets []domain.Outlet, users []domain.User) repository.CatalogRepository {
	r := &catalogRepository{
		products:     append([]domain.Product(nil), products...),
		outlets:      append([]domain.Outlet(nil), outlets...),
		users:        append([]domain.User(nil), users...),
		productsByID: make(map[string]domain.Product, len(products)),
		outletsByID:  make(map[string]domain.Outlet, len(outlets)),
		usersByEmail: make(map[string]domain.User, len(users)),
		usersByID:    make(map[string]domain.User, len(users)),
	}
	for _, p := range r.products {
		r.productsByID[p.ID] = p
	}
	for _, o := range r.outlets {
		r.outletsByID[o.ID] = o
	}
	for _, u := range r.users {
		r.usersByEmail[strings.ToLower(u.Email)] = u
		r.usersByID[u.ID] = u
	}
	return r
}

// NewSeedCatalogRepository builds the catalog from the static seed data.
func NewSeedCatalogRepository() repository.CatalogRepository {
	return NewCatalogRepository(domain.SeedProducts(), domain.SeedOutlets(), domain.SeedUsers())
}

func (r *catalogRepository) Products() []domain.Product {
	return append([]domain.Product(nil), r.products...)
}

func (r *catalogRepository) Outlets() []domain.Outlet {
	return append([]domain.Outlet(nil), r.outlets...)
}

func (r *catalogRepository) ProductByID(id string) (domain.Product, bool) {
	p, ok := r.productsByID[id]
	return p, ok
}

func (r *catalogRepository) OutletByID(id string) (domain.Outlet, bool) {
	o, ok := r.outletsByID[id]
	return o, ok
}

func (r *catalogRepository) UserByEmail(email string) (domain.User, bool) {
	u, ok := r.usersByEmail[strings.ToLower(strings.TrimSpace(email))]
	return u, ok
}

func (r *catalogRepository) UserByID(id string) (domain.User, bool) {
	u, ok := r.usersByID[id]
	return u, ok
}
