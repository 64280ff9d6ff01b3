package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts de data aceitos na coerção, testados em ordem.
// Qualquer componente de hora ou fuso é descartado depois do parse.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
}

// CoerceDate converte o conteúdo bruto de uma célula em data de calendário.
// Valor vazio ou improcessável vira célula ausente; a linha é mantida.
func CoerceDate(raw string) Cell[time.Time] {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Missing[time.Time]()
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return Present(TruncateToDay(parsed))
	}

	return Missing[time.Time]()
}

// TruncateToDay descarta hora e fuso, mantendo só o dia de calendário.
// O agrupamento por data depende desta granularidade.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CoerceUnits converte o conteúdo bruto em quantidade inteira.
// Aceita também decimais (arredondando) porque fontes exportadas de
// planilhas costumam gravar inteiros como "3.0".
func CoerceUnits(raw string) Cell[int64] {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Missing[int64]()
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Present(n)
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Present(int64(math.Round(f)))
	}

	return Missing[int64]()
}

// CoerceDecimal converte o conteúdo bruto em valor decimal.
// Conteúdo não numérico degrada para célula ausente, nunca para erro.
func CoerceDecimal(raw string) Cell[float64] {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Missing[float64]()
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Missing[float64]()
	}

	return Present(f)
}

// CoerceCategory normaliza uma categoria: remove espaços das bordas e
// trata o vazio como ausente. Caixa e espaços internos são preservados,
// pois a normalização não pode apagar distinções que o usuário enxerga.
func CoerceCategory(raw string) Cell[string] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Missing[string]()
	}

	return Present(trimmed)
}

// NormalizeText normaliza colunas categóricas simples (região, canal, segmento)
func NormalizeText(raw string) string {
	return strings.TrimSpace(raw)
}

// Normalize reaplica as regras de normalização sobre uma tabela já tipada.
// É idempotente: aplicar duas vezes produz exatamente o mesmo resultado.
func Normalize(t SalesTable) SalesTable {
	normalized := make(SalesTable, 0, len(t))

	for _, rec := range t {
		out := rec

		if d, ok := rec.Date.Get(); ok {
			out.Date = Present(TruncateToDay(d))
		}

		if c, ok := rec.Category.Get(); ok {
			out.Category = CoerceCategory(c)
		}

		out.Region = NormalizeText(rec.Region)
		out.SalesChannel = NormalizeText(rec.SalesChannel)
		out.CustomerSegment = NormalizeText(rec.CustomerSegment)

		normalized = append(normalized, out)
	}

	return normalized
}
