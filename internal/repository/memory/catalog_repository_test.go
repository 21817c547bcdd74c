package memory_test

import (
	"testing"

	"github.com/incial/stockflow/internal/repository/memory"
)

func TestCatalogRepository_Lookups(t *testing.T) {
	catalog := memory.NewSeedCatalogRepository()

	if p, ok := catalog.ProductByID("p10"); !ok || p.Name != "Mountain Dew Can" {
		t.Errorf("ProductByID(p10) = %+v %v, want Mountain Dew Can", p, ok)
	}
	if _, ok := catalog.ProductByID("p99"); ok {
		t.Error("ProductByID(p99) must miss")
	}
	if o, ok := catalog.OutletByID("ot-2"); !ok || o.Name != "Uptown Plaza" {
		t.Errorf("OutletByID(ot-2) = %+v %v, want Uptown Plaza", o, ok)
	}
}

func TestCatalogRepository_UserByEmailCaseInsensitive(t *testing.T) {
	catalog := memory.NewSeedCatalogRepository()

	tests := []string{
		"admin@system.com",
		"ADMIN@SYSTEM.COM",
		"  Admin@System.com  ",
	}
	for _, email := range tests {
		user, ok := catalog.UserByEmail(email)
		if !ok || user.ID != "u-1" {
			t.Errorf("UserByEmail(%q) = %+v %v, want the admin user", email, user, ok)
		}
	}

	if _, ok := catalog.UserByEmail("nobody@system.com"); ok {
		t.Error("UserByEmail for an unknown address must miss")
	}
}

func TestCatalogRepository_PreservesDeclarationOrder(t *testing.T) {
	catalog := memory.NewSeedCatalogRepository()

	products := catalog.Products()
	if products[0].ID != "p1" || products[len(products)-1].ID != "p20" {
		t.Errorf("product order = %s..%s, want p1..p20", products[0].ID, products[len(products)-1].ID)
	}

	outlets := catalog.Outlets()
	if outlets[0].ID != "ot-1" || outlets[2].ID != "ot-3" {
		t.Errorf("outlet order = %s..%s, want ot-1..ot-3", outlets[0].ID, outlets[2].ID)
	}
}
