package dataset

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ExportCSV re-serializa uma tabela (filtrada ou completa) de volta ao
// formato delimitado, para download pelo usuário. O cabeçalho segue a
// ordem do contrato de colunas e as células ausentes viram campo vazio,
// de modo que recarregar o arquivo exportado reproduz a mesma tabela
// normalizada.
func ExportCSV(t domain.SalesTable) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(domain.RequiredColumns); err != nil {
		return nil, errors.Wrapf(ErrLoadFailure, "erro ao escrever cabeçalho: %v", err)
	}

	row := make([]string, len(domain.RequiredColumns))

	for _, rec := range t {
		row[0] = formatDate(rec.Date)
		row[1] = rec.Category.OrZero()
		row[2] = formatUnits(rec.Units)
		row[3] = formatDecimal(rec.UnitPrice)
		row[4] = rec.Region
		row[5] = rec.SalesChannel
		row[6] = rec.CustomerSegment
		row[7] = formatDecimal(rec.Revenue)

		if err := w.Write(row); err != nil {
			return nil, errors.Wrapf(ErrLoadFailure, "erro ao escrever linha: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrapf(ErrLoadFailure, "erro ao finalizar CSV: %v", err)
	}

	return buf.Bytes(), nil
}

func formatDate(c domain.Cell[time.Time]) string {
	d, ok := c.Get()
	if !ok {
		return ""
	}
	return d.Format(time.DateOnly)
}

func formatUnits(c domain.Cell[int64]) string {
	u, ok := c.Get()
	if !ok {
		return ""
	}
	return strconv.FormatInt(u, 10)
}

func formatDecimal(c domain.Cell[float64]) string {
	f, ok := c.Get()
	if !ok {
		return ""
	}
	// Menor representação que faz round-trip exato no parse
	return strconv.FormatFloat(f, 'f', -1, 64)
}
