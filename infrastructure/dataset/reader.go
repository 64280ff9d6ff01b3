package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// MissingColumns valida o cabeçalho contra as colunas obrigatórias e
// retorna as ausentes, na ordem da lista de obrigatórias (não na ordem
// do arquivo). Não falha nunca: quem decide se a ausência é fatal é o
// chamador. Colunas extras são toleradas e ignoradas.
func MissingColumns(header []string) []string {
	found := make(map[string]struct{}, len(header))
	for _, col := range header {
		found[col] = struct{}{}
	}

	missing := make([]string, 0)
	for _, required := range domain.RequiredColumns {
		if _, ok := found[required]; !ok {
			missing = append(missing, required)
		}
	}

	return missing
}

// ParseTable lê um CSV de vendas, valida o esquema e produz a tabela
// normalizada. Falhas de parse do arquivo viram ErrLoadFailure; esquema
// incompleto vira SchemaError; célula malformada vira célula ausente e a
// linha é mantida.
func ParseTable(r io.Reader) (domain.SalesTable, error) {
	cr := csv.NewReader(skipBOM(r))
	// Linhas com contagem de campos divergente são toleradas; células
	// faltantes degradam para ausente como qualquer célula malformada
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrLoadFailure, "arquivo vazio, sem linha de cabeçalho")
	}
	if err != nil {
		return nil, errors.Wrapf(ErrLoadFailure, "erro ao ler cabeçalho: %v", err)
	}

	headerCopy := make([]string, len(header))
	copy(headerCopy, header)

	if missing := MissingColumns(headerCopy); len(missing) > 0 {
		return nil, &SchemaError{
			Expected: domain.RequiredColumns,
			Found:    headerCopy,
			Missing:  missing,
		}
	}

	// Índice da primeira ocorrência de cada coluna obrigatória
	colIx := make(map[string]int, len(domain.RequiredColumns))
	for i, col := range headerCopy {
		if _, seen := colIx[col]; !seen {
			colIx[col] = i
		}
	}

	table := make(domain.SalesTable, 0)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrLoadFailure, "erro ao ler linha do CSV: %v", err)
		}

		cell := func(name string) string {
			ix := colIx[name]
			if ix >= len(record) {
				return ""
			}
			return record[ix]
		}

		table = append(table, domain.SalesRecord{
			Date:            domain.CoerceDate(cell("date")),
			Category:        domain.CoerceCategory(cell("category")),
			Units:           domain.CoerceUnits(cell("units")),
			UnitPrice:       domain.CoerceDecimal(cell("unit_price")),
			Region:          domain.NormalizeText(cell("region")),
			SalesChannel:    domain.NormalizeText(cell("sales_channel")),
			CustomerSegment: domain.NormalizeText(cell("customer_segment")),
			Revenue:         domain.CoerceDecimal(cell("revenue")),
		})
	}

	return table, nil
}

// LoadFile carrega e normaliza o dataset de vendas a partir do caminho.
// Arquivo inexistente vira NotFoundError com o contexto que a interface
// mostra ao usuário.
func LoadFile(path string) (domain.SalesTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cwd, _ := os.Getwd()
			return nil, &NotFoundError{Path: path, WorkingDir: cwd}
		}
		return nil, errors.Wrapf(ErrLoadFailure, "erro ao abrir arquivo: %v", err)
	}
	defer f.Close()

	return ParseTable(bufio.NewReader(f))
}

// skipBOM descarta o BOM UTF-8 quando presente. Exportações de planilha
// costumam incluí-lo, e ele corromperia o nome da primeira coluna.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	bom, err := br.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	return br
}
