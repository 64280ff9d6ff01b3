package dataset

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestExportCSV(t *testing.T) {
	t.Run("Cabeçalho segue a ordem do contrato de colunas", func(t *testing.T) {
		payload, err := ExportCSV(domain.SalesTable{})

		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
		require.Len(t, lines, 1)
		assert.Equal(t, strings.Join(domain.RequiredColumns, ","), lines[0])
	})

	t.Run("Células ausentes viram campo vazio", func(t *testing.T) {
		table := domain.SalesTable{
			{
				Date:            domain.Missing[time.Time](),
				Category:        domain.Missing[string](),
				Units:           domain.Missing[int64](),
				UnitPrice:       domain.Missing[float64](),
				Region:          "Sul",
				SalesChannel:    "online",
				CustomerSegment: "B2C",
				Revenue:         domain.Missing[float64](),
			},
		}

		payload, err := ExportCSV(table)

		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, ",,,,Sul,online,B2C,", lines[1])
	})

	t.Run("Exportar e recarregar reproduz a mesma tabela normalizada", func(t *testing.T) {
		table := domain.SalesTable{
			{
				Date:            domain.Present(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				Category:        domain.Present("Eletrônicos"),
				Units:           domain.Present(int64(2)),
				UnitPrice:       domain.Present(49.95),
				Region:          "Sul",
				SalesChannel:    "online",
				CustomerSegment: "B2C",
				Revenue:         domain.Present(99.9),
			},
			{
				Date:            domain.Missing[time.Time](),
				Category:        domain.Present("Vestuário"),
				Units:           domain.Missing[int64](),
				UnitPrice:       domain.Present(10.0),
				Region:          "Norte",
				SalesChannel:    "loja",
				CustomerSegment: "B2B",
				Revenue:         domain.Missing[float64](),
			},
		}

		payload, err := ExportCSV(table)
		require.NoError(t, err)

		reloaded, err := ParseTable(bytes.NewReader(payload))
		require.NoError(t, err)

		assert.Equal(t, table, reloaded)
	})
}
