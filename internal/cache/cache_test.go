package cache

import "testing"

func TestPathCache(t *testing.T) {
	c := NewPathCache()

	if _, ok := c.Get("/dashboard/invoices"); ok {
		t.Fatalf("empty cache must not return entries")
	}

	c.Set("/dashboard/invoices", []byte(`[]`))

	body, ok := c.Get("/dashboard/invoices")
	if !ok || string(body) != `[]` {
		t.Fatalf("Get = %q, %v; want [], true", body, ok)
	}

	c.Invalidate("/dashboard/invoices")

	if _, ok := c.Get("/dashboard/invoices"); ok {
		t.Fatalf("entry must be gone after Invalidate")
	}
}

func TestPathCache_InvalidateUnknownPath(t *testing.T) {
	c := NewPathCache()
	c.Invalidate("/dashboard/invoices")
}
