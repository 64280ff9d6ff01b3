package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		missing bool
	}{
		{
			name: "Data simples no formato ISO",
			raw:  "2024-01-15",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Data com componente de hora descarta a hora",
			raw:  "2024-01-15 13:45:08",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Data RFC3339 descarta hora e fuso",
			raw:  "2024-01-15T23:59:59Z",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Data com barras",
			raw:  "2024/01/15",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Espaços nas bordas são tolerados",
			raw:  "  2024-01-15  ",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Valor vazio vira célula ausente",
			raw:     "",
			missing: true,
		},
		{
			name:    "Valor improcessável vira célula ausente",
			raw:     "not-a-date",
			missing: true,
		},
		{
			name:    "Data em formato desconhecido vira célula ausente",
			raw:     "15/01/2024",
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := CoerceDate(tt.raw)

			got, ok := cell.Get()
			assert.Equal(t, !tt.missing, ok)
			if !tt.missing {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestCoerceUnits(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		missing bool
	}{
		{
			name: "Inteiro simples",
			raw:  "42",
			want: 42,
		},
		{
			name: "Decimal de planilha arredonda para inteiro",
			raw:  "3.0",
			want: 3,
		},
		{
			name: "Decimal fracionário arredonda",
			raw:  "2.6",
			want: 3,
		},
		{
			name: "Negativo é aceito",
			raw:  "-5",
			want: -5,
		},
		{
			name:    "Valor vazio vira célula ausente",
			raw:     "",
			missing: true,
		},
		{
			name:    "Texto vira célula ausente",
			raw:     "muitos",
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := CoerceUnits(tt.raw)

			got, ok := cell.Get()
			assert.Equal(t, !tt.missing, ok)
			if !tt.missing {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoerceDecimal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		missing bool
	}{
		{
			name: "Decimal simples",
			raw:  "19.90",
			want: 19.90,
		},
		{
			name: "Inteiro vira decimal",
			raw:  "100",
			want: 100.0,
		},
		{
			name: "Espaços nas bordas são tolerados",
			raw:  " 12.5 ",
			want: 12.5,
		},
		{
			name:    "Valor vazio vira célula ausente",
			raw:     "",
			missing: true,
		},
		{
			name:    "Texto vira célula ausente",
			raw:     "abc",
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := CoerceDecimal(tt.raw)

			got, ok := cell.Get()
			assert.Equal(t, !tt.missing, ok)
			if !tt.missing {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoerceCategory(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		missing bool
	}{
		{
			name: "Categoria simples",
			raw:  "Eletrônicos",
			want: "Eletrônicos",
		},
		{
			name: "Espaços das bordas são removidos",
			raw:  "  Vestuário  ",
			want: "Vestuário",
		},
		{
			name: "Caixa e espaços internos são preservados",
			raw:  "Casa e Jardim",
			want: "Casa e Jardim",
		},
		{
			name:    "Vazio vira célula ausente",
			raw:     "",
			missing: true,
		},
		{
			name:    "Só espaços vira célula ausente",
			raw:     "   ",
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := CoerceCategory(tt.raw)

			got, ok := cell.Get()
			assert.Equal(t, !tt.missing, ok)
			if !tt.missing {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	table := SalesTable{
		{
			Date:            Present(time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)),
			Category:        Present("  Eletrônicos "),
			Units:           Present(int64(2)),
			UnitPrice:       Present(49.9),
			Region:          " Sul ",
			SalesChannel:    "online",
			CustomerSegment: " B2C",
			Revenue:         Present(99.8),
		},
		{
			Date:     Missing[time.Time](),
			Category: Missing[string](),
			Revenue:  Missing[float64](),
		},
	}

	once := Normalize(table)
	twice := Normalize(once)

	assert.Equal(t, once, twice)

	// A hora foi descartada e o texto aparado na primeira passada
	d, ok := once[0].Date.Get()
	assert.True(t, ok)
	assert.True(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Equal(d))

	c, ok := once[0].Category.Get()
	assert.True(t, ok)
	assert.Equal(t, "Eletrônicos", c)

	assert.Equal(t, "Sul", once[0].Region)
	assert.Equal(t, "B2C", once[0].CustomerSegment)

	// Células ausentes continuam ausentes
	assert.False(t, once[1].Date.Valid())
	assert.False(t, once[1].Category.Valid())
}
