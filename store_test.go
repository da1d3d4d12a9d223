package khata

import (
	"strings"
	"testing"
)

func TestEncodeRecords(t *testing.T) {
	data, err := encodeRecords(KeyProducts, []Product{
		{ID: "p1", Name: "Lawn 2-piece", Price: M(1250, "PKR"), StockQuantity: Q(20), Unit: "meters"},
	})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), data)
	}
	if lines[0] != `{"khata":1,"collection":"products"}` {
		t.Errorf("header = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"price":{"amount":1250,"currency":"PKR"}`) {
		t.Errorf("record = %s", lines[1])
	}
}

func TestDecodeRecords(t *testing.T) {
	payload := `{"khata":1,"collection":"products"}
{"id":"p1","name":"Lawn 2-piece","price":{"amount":1250,"currency":"PKR"},"stockQuantity":20,"unit":"meters"}
{"id":"p2","name":"Cotton plain","price":{"amount":300.5,"currency":"PKR"},"stockQuantity":12.5,"unit":"meters"}
`
	items, err := decodeRecords[Product](KeyProducts, []byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if !items[0].Price.Equal(M(1250, "PKR")) {
		t.Errorf("price = %s", items[0].Price)
	}
	if !items[1].StockQuantity.Equal(Q(12.5)) {
		t.Errorf("stock = %s", items[1].StockQuantity)
	}
}

func TestDecodeRecordsEmpty(t *testing.T) {
	items, err := decodeRecords[Product](KeyProducts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if items != nil {
		t.Errorf("got %v, want nil", items)
	}
}

func TestDecodeRecordsRejects(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"future schema version", `{"khata":2,"collection":"products"}` + "\n"},
		{"wrong collection", `{"khata":1,"collection":"sales"}` + "\n"},
		{"garbage header", `not json` + "\n"},
		{"garbage record", `{"khata":1,"collection":"products"}` + "\n" + `{broken` + "\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeRecords[Product](KeyProducts, []byte(tc.payload)); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}
