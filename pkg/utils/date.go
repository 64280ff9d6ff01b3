package utils

import "time"

// ParseDate converte um parâmetro de data no formato YYYY-MM-DD.
// Parâmetro vazio retorna nil sem erro: significa "sem limite".
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
