// Package category maps free-text descriptions onto the closed category set.
package category

import (
	"grana/internal/core"
	"grana/internal/text"
)

type rule struct {
	keywords []string
	category core.Category
}

// Rules are evaluated top to bottom and the first keyword hit wins, so a
// description like "conta do mercado" lands on Mercado, not Contas. Keywords
// are stored folded; matching ignores case and accents.
var rules = []rule{
	{[]string{"mercado"}, core.CategoryMercado},
	{[]string{"aluguel"}, core.CategoryMoradia},
	{[]string{"luz", "agua", "conta"}, core.CategoryContas},
	{[]string{"uber", "transporte"}, core.CategoryTransporte},
	{[]string{"ifood", "pizza", "comida"}, core.CategoryAlimentacao},
	{[]string{"salario", "freela"}, core.CategoryRenda},
	{[]string{"jogo", "valorant"}, core.CategoryLazer},
	{[]string{"presente", "roupa"}, core.CategoryPessoal},
}

// Classify returns the first category whose keyword occurs in description,
// or Outros when none does. Deterministic for a given input; the result is
// derived once at creation time and never recomputed.
func Classify(description string) core.Category {
	folded := text.Fold(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if text.ContainsFold(folded, kw) {
				return r.category
			}
		}
	}
	return core.CategoryOutros
}
