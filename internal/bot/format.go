package bot

import (
	"fmt"
	"strings"

	"grana/internal/core"
)

// Canned replies. All user-facing text is pt-BR; amounts render as
// "R$ 12.34" and dates as DD/MM/YYYY.
const (
	replyGenericError    = "❌ Ocorreu um erro ao processar sua solicitação"
	replyInvalidDate     = "❌ Data inválida informada. Verifique o formato e tente novamente (ex: 20/02/2024)"
	replyDeleteUsage     = `❌ Formato inválido. Use: "excluir transação CÓDIGO"`
	replyNoTransactions  = "📭 Nenhuma transação registrada ainda."
	replyCategoryUnclear = "❌ Não entendi qual categoria você quer consultar."
	replyOtherMonthUsage = "❌ Formato inválido. Tente:\n" +
		`- "quanto gastei com ifood em fevereiro"` + "\n" +
		`- "no mês 3"` + "\n" +
		`- "no mês 1/2024"`
)

func kindBadge(k core.Kind) string {
	if k == core.Income {
		return "🟩 Receita"
	}
	return "🟥 Despesa"
}

func formatConfirmation(t core.Transaction) string {
	var b strings.Builder
	b.WriteString("*Transação Registrada com Sucesso!*\n\n")
	fmt.Fprintf(&b, "Identificador: %s\n\n", t.ID)
	b.WriteString("📋 *Resumo da Transação:*\n")
	b.WriteString("───────────────────────\n")
	fmt.Fprintf(&b, "🔖 *Descrição:* %s\n", t.DisplayDescription())
	fmt.Fprintf(&b, "💸 *Valor:* %s\n", t.Amount.AbsBRL())
	fmt.Fprintf(&b, "🔄 *Tipo:* %s\n", kindBadge(t.Kind))
	fmt.Fprintf(&b, "🔖 *Categoria:* %s\n", t.Category)
	b.WriteString("🏦 *Conta:* Não Informado\n")
	fmt.Fprintf(&b, "🗓️ *Data:* %s\n\n", core.FormatDate(t.Date))
	b.WriteString("💵 Pago: ✅\n\n")
	fmt.Fprintf(&b, "❌ Quer excluir essa transação? Basta digitar: \"Excluir transação %s\" e pronto!", t.ID)
	return b.String()
}

func formatDeleted(t core.Transaction) string {
	return fmt.Sprintf("🗑️ Transação *%s* removida com sucesso!\n💰 Valor: %s\n📅 Data: %s",
		t.ID, t.Amount.AbsBRL(), core.FormatDate(t.Date))
}

func formatNotFound(id string) string {
	return fmt.Sprintf("⚠️ Não encontrei nenhuma transação com o código *%s*", id)
}

func formatSummary(income, expense, balance core.Money, recent []core.Transaction) string {
	var b strings.Builder
	b.WriteString("*📊 Extrato Financeiro*\n\n")
	fmt.Fprintf(&b, "🟢 Total Receitas: %s\n", income.BRL())
	fmt.Fprintf(&b, "🔴 Total Despesas: %s\n", expense.BRL())
	fmt.Fprintf(&b, "💰 *Saldo Atual:* %s\n\n", balance.BRL())
	b.WriteString("🕓 Últimas Transações:\n")
	for _, t := range recent {
		badge := "🟥"
		if t.Kind == core.Income {
			badge = "🟩"
		}
		fmt.Fprintf(&b, "\n%s *%s* | %s\n📅 %s | 📝 %s | 🆔 %s\n",
			badge, t.Kind, t.Amount.AbsBRL(),
			core.FormatDate(t.Date), t.DisplayDescription(), t.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatNoExpenses(term, monthName string) string {
	return fmt.Sprintf("📭 Nenhuma despesa com %q em %s.", term, monthName)
}

func formatMonthSpend(term string, total core.Money, matches []core.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💸 Você gastou *%s* com *%s* neste mês.\n\n", total.BRL(), term)
	b.WriteString("📌 Transações:\n")
	writeItemized(&b, matches)
	return b.String()
}

func formatOtherMonthSpend(term, monthName string, total core.Money, matches []core.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Gastos com *%s* em *%s*: *%s*\n\n", term, monthName, total.BRL())
	b.WriteString("📌 Transações:\n")
	writeItemized(&b, matches)
	return b.String()
}

func formatUnknownMonth(token string) string {
	return fmt.Sprintf("❌ Mês %q não reconhecido. Tente algo como \"março\", \"3\" ou \"setembro\".", token)
}

func writeItemized(b *strings.Builder, matches []core.Transaction) {
	for _, t := range matches {
		fmt.Fprintf(b, "\n🟥 %s - %s (%s)",
			t.Amount.AbsBRL(), t.DisplayDescription(), core.FormatDate(t.Date))
	}
}
