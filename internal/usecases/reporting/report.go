package reporting

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Period é o intervalo efetivamente aplicado ao relatório, já resolvido
// contra o span do dataset quando o chamador omite um dos limites.
type Period struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// CategoryRevenueItem é um item do gráfico de barras de receita por categoria
type CategoryRevenueItem struct {
	Category string  `json:"category"`
	Missing  bool    `json:"missing,omitempty"`
	Revenue  float64 `json:"revenue"`
}

// DailyRevenueItem é um ponto da série temporal de receita diária
type DailyRevenueItem struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// RecordView é uma linha de venda no formato de preview da tabela.
// Células ausentes serializam como null, nunca como zero ou vazio.
type RecordView struct {
	Date            *string  `json:"date"`
	Category        *string  `json:"category"`
	Units           *int64   `json:"units"`
	UnitPrice       *float64 `json:"unit_price"`
	Region          string   `json:"region"`
	SalesChannel    string   `json:"sales_channel"`
	CustomerSegment string   `json:"customer_segment"`
	Revenue         *float64 `json:"revenue"`
}

// SalesReport é o payload completo consumido pelo dashboard: os KPIs e
// os dois agrupamentos prontos para os gráficos.
//
// Quando o período selecionado não tem nenhuma linha, EmptyRange marca o
// estado (que é exibível, não um erro) e FallbackKPIs carrega o resumo
// da tabela sem filtro, para o frontend oferecer a visão completa.
type SalesReport struct {
	Period            Period                `json:"period"`
	RowCount          int                   `json:"row_count"`
	KPIs              domain.KPISummary     `json:"kpis"`
	RevenueByCategory []CategoryRevenueItem `json:"revenue_by_category"`
	RevenueByDate     []DailyRevenueItem    `json:"revenue_by_date"`
	EmptyRange        bool                  `json:"empty_range"`
	FallbackKPIs      *domain.KPISummary    `json:"fallback_kpis,omitempty"`
}

func toCategoryItems(groups []domain.CategoryRevenue) []CategoryRevenueItem {
	items := make([]CategoryRevenueItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, CategoryRevenueItem{
			Category: g.Category,
			Missing:  g.Missing,
			Revenue:  g.Revenue,
		})
	}
	return items
}

func toDailyItems(daily []domain.DailyRevenue) []DailyRevenueItem {
	items := make([]DailyRevenueItem, 0, len(daily))
	for _, d := range daily {
		items = append(items, DailyRevenueItem{
			Date:    d.Date.Format(time.DateOnly),
			Revenue: d.Revenue,
		})
	}
	return items
}

func toRecordView(rec domain.SalesRecord) RecordView {
	view := RecordView{
		Region:          rec.Region,
		SalesChannel:    rec.SalesChannel,
		CustomerSegment: rec.CustomerSegment,
	}

	if d, ok := rec.Date.Get(); ok {
		formatted := d.Format(time.DateOnly)
		view.Date = &formatted
	}

	if c, ok := rec.Category.Get(); ok {
		category := c
		view.Category = &category
	}

	if u, ok := rec.Units.Get(); ok {
		units := u
		view.Units = &units
	}

	if p, ok := rec.UnitPrice.Get(); ok {
		price := p
		view.UnitPrice = &price
	}

	if r, ok := rec.Revenue.Get(); ok {
		revenue := r
		view.Revenue = &revenue
	}

	return view
}
