package cmd

import (
	"testing"

	"github.com/dawoodab/khata"
)

func TestLineFlags(t *testing.T) {
	var items lineFlags

	if err := items.Set("p1:3:100"); err != nil {
		t.Fatal(err)
	}
	if err := items.Set("p2:2.5:75.50"); err != nil {
		t.Fatal(err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].ProductID != "p1" || !items[0].Quantity.Equal(khata.Q(3)) {
		t.Errorf("items[0] = %+v", items[0])
	}

	stamped := items.priceIn("PKR")
	if stamped[1].UnitPrice.Currency() != "PKR" {
		t.Errorf("currency = %q", stamped[1].UnitPrice.Currency())
	}
	if !stamped[1].UnitPrice.Equal(khata.M(75.5, "PKR")) {
		t.Errorf("unit price = %s", stamped[1].UnitPrice)
	}

	for _, bad := range []string{"", "p1", "p1:3", "p1:x:100", "p1:3:x", "p1:3:100:extra"} {
		if err := items.Set(bad); err == nil {
			t.Errorf("Set(%q): want error", bad)
		}
	}
}

func TestParseRange(t *testing.T) {
	// no flags means no filter
	r, err := parseRange("", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if !r.From.IsZero() || !r.To.IsZero() {
		t.Errorf("range = %+v, want zero", r)
	}

	r, err = parseRange("month", "", "2026-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if r.From.String() != "2026-03-01" || r.To.String() != "2026-03-31" {
		t.Errorf("range = %s..%s", r.From, r.To)
	}

	r, err = parseRange("", "2026-01-01", "2026-03-31")
	if err != nil {
		t.Fatal(err)
	}
	if r.From.String() != "2026-01-01" || r.To.String() != "2026-03-31" {
		t.Errorf("range = %s..%s", r.From, r.To)
	}

	if _, err := parseRange("fortnight", "", ""); err == nil {
		t.Error("want error for unknown period")
	}
}
