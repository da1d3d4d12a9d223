package khata

import (
	"slices"
	"testing"
	"time"
)

func c9(id, name string) Customer {
	return Customer{ID: id, Name: name, CreatedAt: time.Unix(0, 0)}
}

func names[T Record](c *Collection[T], get func(T) string) []string {
	var out []string
	for item := range c.All() {
		out = append(out, get(item))
	}
	return out
}

func TestCollectionUpsert(t *testing.T) {
	c := newCollection[Customer](KeyCustomers)
	c.Upsert(c9("a", "Aslam"))
	c.Upsert(c9("b", "Bashir"))
	c.Upsert(c9("c", "Chaudhry"))
	c.Upsert(c9("b", "Bashir & Sons")) // replace in place

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	got := names(c, func(x Customer) string { return x.Name })
	want := []string{"Aslam", "Bashir & Sons", "Chaudhry"}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	if x, ok := c.Get("b"); !ok || x.Name != "Bashir & Sons" {
		t.Errorf("Get(b) = %v, %v", x, ok)
	}
}

func TestCollectionDelete(t *testing.T) {
	c := newCollection[Customer](KeyCustomers)
	for _, id := range []string{"a", "b", "c", "d"} {
		c.Upsert(c9(id, id))
	}

	if !c.Delete("b") {
		t.Fatal("Delete(b) = false")
	}
	if c.Delete("b") {
		t.Error("second Delete(b) = true")
	}

	got := names(c, func(x Customer) string { return x.ID })
	want := []string{"a", "c", "d"}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	// the tail must be reachable after the reindex
	if x, ok := c.Get("d"); !ok || x.ID != "d" {
		t.Errorf("Get(d) = %v, %v", x, ok)
	}
}

func TestCollectionSelect(t *testing.T) {
	c := newCollection[Customer](KeyCustomers)
	c.Upsert(Customer{ID: "a", Name: "Aslam", City: "Lahore"})
	c.Upsert(Customer{ID: "b", Name: "Bashir", City: "Karachi"})
	c.Upsert(Customer{ID: "c", Name: "Chaudhry Aslam", City: "Lahore"})

	got := c.Select(CustomerMatches("aslam"), func(x Customer) bool { return x.City == "Lahore" })
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Select() = %v", got)
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	c := newCollection[Customer](KeyCustomers)
	c.Upsert(Customer{ID: "a", Name: "Aslam", CurrentBalance: M(150, "PKR")})
	c.Upsert(Customer{ID: "b", Name: "Bashir"})

	data, err := c.encode()
	if err != nil {
		t.Fatal(err)
	}

	loaded := newCollection[Customer](KeyCustomers)
	if err := loaded.load(data); err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", loaded.Len())
	}
	a, ok := loaded.Get("a")
	if !ok || !a.CurrentBalance.Equal(M(150, "PKR")) {
		t.Errorf("Get(a) = %+v, %v", a, ok)
	}
}
