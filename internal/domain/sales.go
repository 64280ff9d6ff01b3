package domain

import "time"

// Colunas obrigatórias do dataset de vendas, na ordem do contrato.
// A validação de esquema e a exportação CSV seguem exatamente esta ordem.
var RequiredColumns = []string{
	"date",
	"category",
	"units",
	"unit_price",
	"region",
	"sales_channel",
	"customer_segment",
	"revenue",
}

// Rótulo usado nos agrupamentos para o balde de categoria ausente
const MissingCategoryLabel = "(uncategorized)"

// Cell representa o valor de uma célula que pode estar ausente.
// Um valor malformado no CSV vira uma célula ausente, nunca um erro de carga.
// O estado "ausente" é explícito e tipado, não um sentinela tipo NaN.
type Cell[T any] struct {
	value T
	valid bool
}

// Present cria uma célula com valor presente
func Present[T any](v T) Cell[T] {
	return Cell[T]{value: v, valid: true}
}

// Missing cria uma célula ausente
func Missing[T any]() Cell[T] {
	return Cell[T]{}
}

// Get retorna o valor e se ele está presente
func (c Cell[T]) Get() (T, bool) {
	return c.value, c.valid
}

// Valid informa se a célula tem valor presente
func (c Cell[T]) Valid() bool {
	return c.valid
}

// OrZero retorna o valor presente ou o zero do tipo
func (c Cell[T]) OrZero() T {
	return c.value
}

// SalesRecord é uma linha normalizada do dataset de vendas.
// O campo Revenue é a coluna autoritativa: os KPIs nunca recalculam
// a receita a partir de Units * UnitPrice, mesmo que estejam inconsistentes.
type SalesRecord struct {
	Date            Cell[time.Time]
	Category        Cell[string]
	Units           Cell[int64]
	UnitPrice       Cell[float64]
	Region          string
	SalesChannel    string
	CustomerSegment string
	Revenue         Cell[float64]
}

// SalesTable é uma coleção ordenada de registros de venda.
// Depois de carregada, a tabela é imutável: filtros e agregações
// sempre produzem novas estruturas.
type SalesTable []SalesRecord

// DateRange é um intervalo de datas com ambas as extremidades inclusivas.
// A camada chamadora é responsável por garantir Start <= End; o filtro
// não reordena um intervalo invertido (ver FilterByDateRange).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains informa se a data pertence ao intervalo [Start, End]
func (dr DateRange) Contains(d time.Time) bool {
	return !d.Before(dr.Start) && !d.After(dr.End)
}

// Reversed informa se o intervalo foi informado invertido (Start > End)
func (dr DateRange) Reversed() bool {
	return dr.Start.After(dr.End)
}

// ReportFilters são os filtros aplicáveis aos relatórios de venda.
// Datas nulas significam "sem limite", resolvidas para o span do dataset.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// KPISummary são os três escalares exibidos no topo do dashboard
type KPISummary struct {
	TotalRevenue int64 `json:"total_revenue"`
	TotalUnits   int64 `json:"total_units"`
	NCategories  int   `json:"n_categories"`
}

// CategoryRevenue é a soma de receita de uma categoria
type CategoryRevenue struct {
	Category string
	Missing  bool
	Revenue  float64
}

// DailyRevenue é a soma de receita de um dia
type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

// DateSpan retorna a menor e a maior data presentes na tabela.
// Retorna ok=false quando nenhuma linha tem data presente.
func DateSpan(t SalesTable) (min, max time.Time, ok bool) {
	for _, rec := range t {
		d, valid := rec.Date.Get()
		if !valid {
			continue
		}

		if !ok {
			min, max = d, d
			ok = true
			continue
		}

		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	return min, max, ok
}
