package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"grana/internal/core"
)

func expense(desc, amount string) core.Transaction {
	return core.Transaction{
		Description: desc,
		Amount:      core.Expense.Signed(core.NewMoney(decimal.RequireFromString(amount))),
		Kind:        core.Expense,
		Category:    core.CategoryOutros,
		Date:        time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		Settled:     true,
	}
}

func TestAppendAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := New()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		stored, err := s.Append(ctx, expense("mercado", "10"))
		if err != nil {
			t.Fatalf("Append() error: %v", err)
		}
		if len(stored.ID) != core.IDLength {
			t.Fatalf("Append() assigned id %q", stored.ID)
		}
		if seen[stored.ID] {
			t.Fatalf("Append() reused id %q", stored.ID)
		}
		seen[stored.ID] = true
	}
}

func TestDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Append(ctx, expense("aluguel", "800")); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	before, _ := s.Len(ctx)

	stored, err := s.Append(ctx, expense("mercado", "50"))
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	removed, ok, err := s.Delete(ctx, stored.ID)
	if err != nil || !ok {
		t.Fatalf("Delete(%q) = %v, %v", stored.ID, ok, err)
	}
	if removed.Description != "mercado" {
		t.Errorf("Delete() returned %q", removed.Description)
	}

	after, _ := s.Len(ctx)
	if after != before {
		t.Errorf("store size after create+delete = %d, want %d", after, before)
	}

	// Deleting the same id again is a normal not-found outcome.
	if _, ok, err := s.Delete(ctx, stored.ID); err != nil || ok {
		t.Errorf("second Delete(%q) = %v, %v; want not found, nil", stored.ID, ok, err)
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := New()
	stored, err := s.Append(ctx, expense("mercado", "50"))
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	for _, id := range []string{stored.ID, "  " + stored.ID + " ", lower(stored.ID)} {
		got, ok, err := s.Find(ctx, id)
		if err != nil || !ok {
			t.Fatalf("Find(%q) = %v, %v", id, ok, err)
		}
		if got.ID != stored.ID {
			t.Errorf("Find(%q) returned id %q", id, got.ID)
		}
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestRecentMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	var ids []string
	for _, d := range []string{"a", "b", "c", "d", "e", "f"} {
		stored, err := s.Append(ctx, expense(d, "1"))
		if err != nil {
			t.Fatalf("Append() error: %v", err)
		}
		ids = append(ids, stored.ID)
	}

	recent, err := s.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("Recent(5) returned %d records", len(recent))
	}
	for i := 0; i < 5; i++ {
		want := ids[len(ids)-1-i]
		if recent[i].ID != want {
			t.Errorf("Recent()[%d].ID = %q, want %q", i, recent[i].ID, want)
		}
	}

	all, err := s.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Recent(100) returned %d records, want 6", len(all))
	}
}

func TestFilterKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, d := range []string{"mercado 1", "ifood", "mercado 2"} {
		if _, err := s.Append(ctx, expense(d, "5")); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, err := s.Filter(ctx, func(t core.Transaction) bool {
		return t.Description != "ifood"
	})
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if len(got) != 2 || got[0].Description != "mercado 1" || got[1].Description != "mercado 2" {
		t.Errorf("Filter() = %+v", got)
	}
}

func TestAppendRejectsSignMismatch(t *testing.T) {
	ctx := context.Background()
	s := New()
	bad := expense("mercado", "50")
	bad.Amount = bad.Amount.Abs() // expense with positive amount
	if _, err := s.Append(ctx, bad); err == nil {
		t.Fatal("Append() accepted an expense with positive amount")
	}
	if n, _ := s.Len(ctx); n != 0 {
		t.Errorf("store size = %d after rejected append", n)
	}
}
