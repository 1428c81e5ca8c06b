package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Kind = "Receita"
	Expense Kind = "Despesa"
)

const (
	CategoryMercado     Category = "Mercado"
	CategoryMoradia     Category = "Moradia"
	CategoryContas      Category = "Contas"
	CategoryTransporte  Category = "Transporte"
	CategoryAlimentacao Category = "Alimentação"
	CategoryRenda       Category = "Renda"
	CategoryLazer       Category = "Lazer"
	CategoryPessoal     Category = "Pessoal"
	CategoryOutros      Category = "Outros"
)

type (
	// Kind tells income from expense. The rendered value is the pt-BR label.
	Kind string

	// Category is the closed spending label set derived from a description
	// once, at creation time.
	Category string

	// Transaction is a single recorded income or expense event. Amount is
	// signed: positive for Receita, negative for Despesa.
	Transaction struct {
		ID          string
		Description string
		Amount      Money
		Kind        Kind
		Category    Category
		Date        time.Time
		Settled     bool
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrSignMismatch  = errors.New("amount sign does not match kind")
	ErrEmptyID       = errors.New("empty transaction id")
	ErrIDExhausted   = errors.New("could not generate a unique transaction id")
	ErrUnknownMonth  = errors.New("unknown month")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Signed returns amount with the sign this kind requires, regardless of the
// sign it came in with.
func (k Kind) Signed(amount Money) Money {
	if k == Expense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	}
	return ErrInvalidKind
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if t.Kind == Income && t.Amount.IsNegative() {
		return ErrSignMismatch
	}
	if t.Kind == Expense && !t.Amount.IsNegative() && !t.Amount.IsZero() {
		return ErrSignMismatch
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// DisplayDescription never renders empty text.
func (t Transaction) DisplayDescription() string {
	if strings.TrimSpace(t.Description) == "" {
		return "Sem descrição"
	}
	return t.Description
}

// FormatDate renders a date the way the user expects it: DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// NewDate builds a calendar date at midnight UTC and reports whether the
// day/month/year round-trip exactly. Lenient overflow (31/02 becoming 02/03)
// counts as invalid.
func NewDate(year, month, day int) (time.Time, error) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// DateOf truncates an instant to its calendar date, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameMonth reports whether t falls in the given month and year.
func SameMonth(t time.Time, month time.Month, year int) bool {
	return t.Month() == month && t.Year() == year
}
