package domain

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Summarize calcula os três KPIs do dashboard a partir de uma tabela,
// tipicamente já filtrada por período.
//
// A receita total soma apenas células presentes da coluna revenue. A
// coluna é autoritativa e nunca é conferida contra units * unit_price.
// O valor é arredondado para moeda inteira, como exibido no dashboard.
// Tabela vazia produz KPIs zerados, nunca erro.
func Summarize(t SalesTable) KPISummary {
	var revenue float64
	var units int64
	categories := make(map[string]struct{})

	for _, rec := range t {
		if r, ok := rec.Revenue.Get(); ok {
			revenue += r
		}

		if u, ok := rec.Units.Get(); ok {
			units += u
		}

		if c, ok := rec.Category.Get(); ok {
			categories[c] = struct{}{}
		}
	}

	return KPISummary{
		TotalRevenue: int64(math.Round(revenue)),
		TotalUnits:   units,
		NCategories:  len(categories),
	}
}

// GroupByCategory soma a receita por categoria para o gráfico de barras.
// Categoria ausente forma o próprio balde em vez de ser descartada.
// O resultado vem ordenado por receita decrescente; empates preservam a
// ordem de primeira aparição da categoria na tabela.
func GroupByCategory(t SalesTable) []CategoryRevenue {
	groups := make([]CategoryRevenue, 0)
	index := make(map[string]int)

	// Chave interna do balde de categoria ausente; nunca colide com uma
	// categoria real porque categorias presentes não são vazias.
	const missingKey = ""

	for _, rec := range t {
		key := missingKey
		label := MissingCategoryLabel
		missing := true

		if c, ok := rec.Category.Get(); ok {
			key, label, missing = c, c, false
		}

		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, CategoryRevenue{Category: label, Missing: missing})
		}

		if r, ok := rec.Revenue.Get(); ok {
			groups[i].Revenue += r
		}
	}

	for i := range groups {
		groups[i].Revenue = utils.RoundWithTwoDecimalPlace(groups[i].Revenue)
	}

	// Estável: empates mantêm a ordem de primeira aparição
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue > groups[j].Revenue
	})

	return groups
}

// GroupByDate soma a receita por dia para o gráfico de série temporal,
// em ordem ascendente de data. Linhas com data ausente ficam de fora.
func GroupByDate(t SalesTable) []DailyRevenue {
	sums := make(map[time.Time]float64)

	for _, rec := range t {
		d, ok := rec.Date.Get()
		if !ok {
			continue
		}

		// Data com todas as receitas ausentes ainda aparece na série, com soma zero
		sums[d] += rec.Revenue.OrZero()
	}

	daily := make([]DailyRevenue, 0, len(sums))
	for d, r := range sums {
		daily = append(daily, DailyRevenue{Date: d, Revenue: utils.RoundWithTwoDecimalPlace(r)})
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})

	return daily
}
