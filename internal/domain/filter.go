package domain

// FilterByDateRange retorna as linhas cuja data pertence ao intervalo
// [Start, End], ambas as extremidades inclusivas. É uma projeção pura:
// a tabela de entrada nunca é modificada e a ordem relativa das linhas
// é preservada.
//
// Linhas com data ausente ficam de fora: não há como satisfazer uma
// comparação de limites sem data. Um intervalo invertido (Start > End)
// retorna tabela vazia em vez de trocar os limites: trocar esconderia
// um bug do chamador.
func FilterByDateRange(t SalesTable, dr DateRange) SalesTable {
	filtered := make(SalesTable, 0)

	if dr.Reversed() {
		return filtered
	}

	for _, rec := range t {
		d, ok := rec.Date.Get()
		if !ok {
			continue
		}

		if dr.Contains(d) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}
