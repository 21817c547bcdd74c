package repository

import "github.com/incial/stockflow/internal/domain"

// CatalogRepository serves the static reference data: outlets, products and
// the user directory. The catalogs never change after construction, so
// lookups take no context and never fail transiently. Products and Outlets
// preserve declaration order.
type CatalogRepository interface {
	Products() []domain.Product
	Outlets() []domain.Outlet
	ProductByID(id string) (domain.Product, bool)
	OutletByID(id string) (domain.Outlet, bool)
	UserByEmail(email string) (domain.User, bool)
	UserByID(id string) (domain.User, bool)
}
