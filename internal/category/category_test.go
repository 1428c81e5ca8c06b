package category

import (
	"testing"

	"grana/internal/core"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		desc string
		want core.Category
	}{
		{"mercado", core.CategoryMercado},
		{"compras no Mercado Central", core.CategoryMercado},
		{"aluguel de março", core.CategoryMoradia},
		{"conta de luz", core.CategoryContas},
		{"água do mês", core.CategoryContas},
		{"uber para o centro", core.CategoryTransporte},
		{"transporte público", core.CategoryTransporte},
		{"ifood", core.CategoryAlimentacao},
		{"pizza com amigos", core.CategoryAlimentacao},
		{"comida japonesa", core.CategoryAlimentacao},
		{"salário de fevereiro", core.CategoryRenda},
		{"freela de design", core.CategoryRenda},
		{"jogo novo", core.CategoryLazer},
		{"skins valorant", core.CategoryLazer},
		{"presente da vó", core.CategoryPessoal},
		{"roupa de frio", core.CategoryPessoal},
		{"dentista", core.CategoryOutros},
		{"", core.CategoryOutros},
	}
	for _, tc := range cases {
		if got := Classify(tc.desc); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// "conta do mercado" carries both a Mercado and a Contas keyword; the
	// table order decides.
	if got := Classify("conta do mercado"); got != core.CategoryMercado {
		t.Errorf("Classify(\"conta do mercado\") = %q, want %q", got, core.CategoryMercado)
	}
}

func TestClassifyIgnoresAccentsAndCase(t *testing.T) {
	cases := []struct {
		desc string
		want core.Category
	}{
		{"SALARIO", core.CategoryRenda},
		{"Água", core.CategoryContas},
		{"IFOOD", core.CategoryAlimentacao},
	}
	for _, tc := range cases {
		if got := Classify(tc.desc); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}
