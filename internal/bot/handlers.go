package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	"grana/internal/category"
	"grana/internal/core"
	"grana/internal/log"
	"grana/internal/parse"
	"grana/internal/text"
)

const summaryEntries = 5

func (b *Bot) handleIncome(ctx context.Context, in input) string {
	return b.register(ctx, in, core.Income)
}

func (b *Bot) handleExpense(ctx context.Context, in input) string {
	return b.register(ctx, in, core.Expense)
}

func (b *Bot) register(ctx context.Context, in input, kind core.Kind) string {
	amount := parse.Amount(in.raw)
	desc := parse.Description(in.raw)
	date, err := parse.Date(in.raw, in.now)
	if err != nil {
		return replyInvalidDate
	}

	t := core.Transaction{
		Description: desc,
		Amount:      kind.Signed(core.NewMoney(amount)),
		Kind:        kind,
		Category:    category.Classify(desc),
		Date:        date,
		Settled:     true,
	}
	stored, err := b.store.Append(ctx, t)
	if err != nil {
		b.log.ErrorContext(ctx, "Failed to append transaction",
			log.FieldKind, string(kind), log.FieldError, err)
		return replyGenericError
	}
	b.log.InfoContext(ctx, "Transaction registered",
		log.FieldTransactionID, stored.ID,
		log.FieldKind, string(stored.Kind),
		log.FieldCategory, string(stored.Category),
		log.FieldAmount, stored.Amount.Amount.String())
	return formatConfirmation(stored)
}

func (b *Bot) handleDelete(ctx context.Context, in input) string {
	m := deleteRe.FindStringSubmatch(in.folded)
	if m == nil {
		return replyDeleteUsage
	}
	id := core.NormalizeID(m[1])
	removed, ok, err := b.store.Delete(ctx, id)
	if err != nil {
		b.log.ErrorContext(ctx, "Failed to delete transaction",
			log.FieldTransactionID, id, log.FieldError, err)
		return replyGenericError
	}
	if !ok {
		return formatNotFound(id)
	}
	b.log.InfoContext(ctx, "Transaction deleted", log.FieldTransactionID, id)
	return formatDeleted(removed)
}

func (b *Bot) handleSummary(ctx context.Context, in input) string {
	n, err := b.store.Len(ctx)
	if err != nil {
		b.log.ErrorContext(ctx, "Failed to count transactions", log.FieldError, err)
		return replyGenericError
	}
	if n == 0 {
		return replyNoTransactions
	}

	recent, err := b.store.Recent(ctx, summaryEntries)
	if err != nil {
		b.log.ErrorContext(ctx, "Failed to list recent transactions", log.FieldError, err)
		return replyGenericError
	}
	// Totals cover every stored record, not just the ones shown.
	all, err := b.store.Filter(ctx, func(core.Transaction) bool { return true })
	if err != nil {
		b.log.ErrorContext(ctx, "Failed to list transactions", log.FieldError, err)
		return replyGenericError
	}

	income, expense := core.MoneyZero(), core.MoneyZero()
	for _, t := range all {
		if t.Kind == core.Income {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount.Abs())
		}
	}
	return formatSummary(income, expense, income.Sub(expense), recent)
}

func (b *Bot) handleCategoryThisMonth(ctx context.Context, in input) string {
	m := catThisMonthRe.FindStringSubmatch(in.folded)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return replyCategoryUnclear
	}
	term := strings.TrimSpace(m[1])
	return b.categorySpend(ctx, term, in.now.Month(), in.now.Year(), true)
}

func (b *Bot) handleCategoryOtherMonth(ctx context.Context, in input) string {
	m := catOtherMonthRe.FindStringSubmatch(in.folded)
	if m == nil || strings.TrimSpace(m[1]) == "" || strings.TrimSpace(m[2]) == "" {
		return replyOtherMonthUsage
	}
	term := strings.TrimSpace(m[1])
	monthToken, yearToken := splitMonthYear(strings.TrimSpace(m[2]))

	year := in.now.Year()
	if yearToken != "" {
		y, err := strconv.Atoi(yearToken)
		if err != nil {
			return replyOtherMonthUsage
		}
		year = y
	}
	month, err := core.ResolveMonth(monthToken)
	if err != nil {
		return formatUnknownMonth(monthToken)
	}
	return b.categorySpend(ctx, term, month, year, false)
}

// splitMonthYear accepts "3", "março" or "1/2024" shorthand.
func splitMonthYear(token string) (month, year string) {
	if i := strings.IndexByte(token, '/'); i >= 0 {
		return token[:i], token[i+1:]
	}
	return token, ""
}

// categorySpend sums expenses whose description contains term during the
// given month and itemizes every match in insertion order.
func (b *Bot) categorySpend(ctx context.Context, term string, month time.Month, year int, currentMonth bool) string {
	matches, err := b.store.Filter(ctx, func(t core.Transaction) bool {
		return t.Kind == core.Expense &&
			core.SameMonth(t.Date, month, year) &&
			text.ContainsFold(t.Description, term)
	})
	if err != nil {
		b.log.ErrorContext(ctx, "Failed to filter transactions",
			log.FieldTerm, term, log.FieldMonth, int(month), log.FieldYear, year,
			log.FieldError, err)
		return replyGenericError
	}
	if len(matches) == 0 {
		return formatNoExpenses(term, core.MonthName(month))
	}

	total := core.MoneyZero()
	for _, t := range matches {
		total = total.Add(t.Amount.Abs())
	}
	if currentMonth {
		return formatMonthSpend(term, total, matches)
	}
	return formatOtherMonthSpend(term, core.MonthName(month), total, matches)
}
