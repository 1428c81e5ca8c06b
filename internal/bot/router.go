package bot

import (
	"context"
	"regexp"
	"time"

	"grana/internal/chat"
	"grana/internal/text"
)

// Patterns match against folded text (lower-case, no diacritics), so
// "transação"/"transacao" and "mês"/"mes" are one spelling here.
var (
	incomeRe        = regexp.MustCompile(`(ganhei|recebi|faturei|\+)\s*[\d,.]+`)
	expenseRe       = regexp.MustCompile(`(gastei|paguei|comprei|-)\s*[\d,.]+`)
	deleteRe        = regexp.MustCompile(`excluir transacao\s+(\w+)`)
	summaryRe       = regexp.MustCompile(`extrato|resumo`)
	catThisMonthRe  = regexp.MustCompile(`quanto gastei com (.+) esse mes`)
	catOtherMonthRe = regexp.MustCompile(`quanto gastei com (.+?) (?:em|no mes de|no mes)\s+([\w/]+)`)
)

// input carries both renditions of a message: raw for extraction (case and
// accents preserved in descriptions) and folded for matching.
type input struct {
	raw    string
	folded string
	now    time.Time
}

type route struct {
	intent string
	re     *regexp.Regexp
	handle func(ctx context.Context, in input) string
}

// buildRoutes returns the dispatch table. Order is a correctness requirement:
// the two category-spend patterns overlap and "esse mes" must win over the
// explicit-month form, which is only tried when the simpler one fails.
func (b *Bot) buildRoutes() []route {
	return []route{
		{"income", incomeRe, b.handleIncome},
		{"expense", expenseRe, b.handleExpense},
		{"delete", deleteRe, b.handleDelete},
		{"summary", summaryRe, b.handleSummary},
		{"category-this-month", catThisMonthRe, b.handleCategoryThisMonth},
		{"category-other-month", catOtherMonthRe, b.handleCategoryOtherMonth},
	}
}

// dispatch tries each route in order against the folded text and runs the
// first match. It returns the reply (empty for no reply) and the intent name.
func (b *Bot) dispatch(ctx context.Context, msg chat.Message) (reply, intent string) {
	in := input{
		raw:    msg.Text,
		folded: text.Fold(msg.Text),
		now:    b.clock(),
	}
	for _, r := range b.routes {
		if r.re.MatchString(in.folded) {
			return r.handle(ctx, in), r.intent
		}
	}
	return "", ""
}
