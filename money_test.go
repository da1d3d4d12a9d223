package khata

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(100, "PKR")
	b := M(75.5, "PKR")

	if got := a.Add(b); !got.Equal(M(175.5, "PKR")) {
		t.Errorf("Add = %s", got)
	}
	if got := b.Sub(a); !got.Equal(M(-24.5, "PKR")) {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Mul(Q(2.5)); !got.Equal(M(250, "PKR")) {
		t.Errorf("Mul = %s", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the zero Money carries no currency and adopts the other operand's
	zero := Money{}
	if got := zero.Add(M(40, "PKR")); got.Currency() != "PKR" {
		t.Errorf("currency = %q, want PKR", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mixing currencies must panic")
		}
	}()
	M(1, "PKR").Add(M(1, "USD"))
}

func TestMoneyOrZero(t *testing.T) {
	if got := M(-50, "PKR").OrZero(); !got.IsZero() || got.Currency() != "PKR" {
		t.Errorf("OrZero(-50) = %s %s", got, got.Currency())
	}
	if got := M(50, "PKR").OrZero(); !got.Equal(M(50, "PKR")) {
		t.Errorf("OrZero(50) = %s", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(M(1250.5, "PKR"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"amount":1250.5,"currency":"PKR"}` {
		t.Errorf("marshal = %s", data)
	}

	var m Money
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(1250.5, "PKR")) {
		t.Errorf("unmarshal = %s", m)
	}

	// a currency-less amount stays terse on the wire
	data, err = json.Marshal(M(10, ""))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"amount":10}` {
		t.Errorf("marshal = %s", data)
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("99.99", "PKR")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(99.99, "PKR")) {
		t.Errorf("ParseMoney = %s", m)
	}
	if _, err := ParseMoney("not a number", "PKR"); err == nil {
		t.Error("want error")
	}
}
