package seed

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFixtureIdentifiersAreValidUUIDs(t *testing.T) {
	for _, u := range Users {
		if _, err := uuid.Parse(u.ID); err != nil {
			t.Fatalf("user %q has invalid id %q: %v", u.Email, u.ID, err)
		}
	}
	for _, c := range Customers {
		if _, err := uuid.Parse(c.ID); err != nil {
			t.Fatalf("customer %q has invalid id %q: %v", c.Name, c.ID, err)
		}
	}
	for _, inv := range Invoices {
		if _, err := uuid.Parse(inv.ID); err != nil {
			t.Fatalf("invoice %q has invalid id: %v", inv.ID, err)
		}
	}
}

func TestInvoiceFixturesReferenceKnownCustomers(t *testing.T) {
	known := make(map[string]bool, len(Customers))
	for _, c := range Customers {
		known[c.ID] = true
	}

	for _, inv := range Invoices {
		if !known[inv.CustomerID] {
			t.Fatalf("invoice %q references unknown customer %q", inv.ID, inv.CustomerID)
		}
	}
}

func TestInvoiceFixturesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool, len(Invoices))

	for _, inv := range Invoices {
		if seen[inv.ID] {
			t.Fatalf("duplicate invoice fixture id %q", inv.ID)
		}
		seen[inv.ID] = true

		if inv.AmountCents <= 0 {
			t.Fatalf("invoice %q has non-positive amount %d", inv.ID, inv.AmountCents)
		}
		if inv.Status != "pending" && inv.Status != "paid" {
			t.Fatalf("invoice %q has unknown status %q", inv.ID, inv.Status)
		}
		if _, err := time.Parse("2006-01-02", inv.Date); err != nil {
			t.Fatalf("invoice %q has invalid date %q: %v", inv.ID, inv.Date, err)
		}
	}
}

func TestRevenueFixturesCoverTwelveMonths(t *testing.T) {
	if len(Months) != 12 {
		t.Fatalf("revenue months = %d, want 12", len(Months))
	}

	seen := make(map[string]bool, len(Months))
	for _, m := range Months {
		if len(m.Month) > 4 {
			t.Fatalf("month %q longer than the column allows", m.Month)
		}
		if seen[m.Month] {
			t.Fatalf("duplicate month %q", m.Month)
		}
		seen[m.Month] = true
	}
}
