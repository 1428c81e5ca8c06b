package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyBRL(t *testing.T) {
	cases := []struct {
		in      string
		brl     string
		absBRL  string
	}{
		{"50", "R$ 50.00", "R$ 50.00"},
		{"-50", "R$ -50.00", "R$ 50.00"},
		{"12.5", "R$ 12.50", "R$ 12.50"},
		{"0", "R$ 0.00", "R$ 0.00"},
		{"199.999", "R$ 200.00", "R$ 200.00"},
	}
	for _, tc := range cases {
		m := NewMoney(decimal.RequireFromString(tc.in))
		if got := m.BRL(); got != tc.brl {
			t.Errorf("BRL(%s) = %q, want %q", tc.in, got, tc.brl)
		}
		if got := m.AbsBRL(); got != tc.absBRL {
			t.Errorf("AbsBRL(%s) = %q, want %q", tc.in, got, tc.absBRL)
		}
	}
}

func TestKindSigned(t *testing.T) {
	fifty := NewMoney(decimal.RequireFromString("50"))
	negFifty := fifty.Neg()

	if got := Income.Signed(fifty); !got.Equal(fifty) {
		t.Errorf("Income.Signed(50) = %s, want 50", got.Amount)
	}
	if got := Income.Signed(negFifty); !got.Equal(fifty) {
		t.Errorf("Income.Signed(-50) = %s, want 50", got.Amount)
	}
	if got := Expense.Signed(fifty); !got.Equal(negFifty) {
		t.Errorf("Expense.Signed(50) = %s, want -50", got.Amount)
	}
	if got := Expense.Signed(negFifty); !got.Equal(negFifty) {
		t.Errorf("Expense.Signed(-50) = %s, want -50", got.Amount)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(decimal.RequireFromString("0.1"))
	sum := MoneyZero()
	for i := 0; i < 10; i++ {
		sum = sum.Add(a)
	}
	if !sum.Equal(NewMoney(decimal.RequireFromString("1"))) {
		t.Errorf("ten times 0.1 = %s, want 1", sum.Amount)
	}
}
