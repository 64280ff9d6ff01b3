package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Erros sentinela da carga do dataset. Os três abortam a carga por
// completo: não existe tabela parcial. Célula malformada NÃO passa por
// aqui; ela degrada para célula ausente durante a normalização.
var (
	// ErrSourceNotFound indica que o arquivo fonte não pôde ser lido
	ErrSourceNotFound = errors.New("sales dataset source not found")

	// ErrMissingColumns indica colunas obrigatórias ausentes no cabeçalho
	ErrMissingColumns = errors.New("sales dataset is missing required columns")

	// ErrLoadFailure indica qualquer outra falha de parse do arquivo
	ErrLoadFailure = errors.New("failed to load sales dataset")
)

// NotFoundError carrega o contexto que o usuário precisa ver quando o
// arquivo fonte não existe: o caminho esperado e o diretório de trabalho.
type NotFoundError struct {
	Path       string
	WorkingDir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("arquivo de dados não encontrado: %s (diretório de trabalho: %s)", e.Path, e.WorkingDir)
}

func (e *NotFoundError) Unwrap() error {
	return ErrSourceNotFound
}

// SchemaError descreve um cabeçalho que não atende ao contrato de colunas.
// A mensagem enumera o esperado, o encontrado e a diferença, porque esse
// é um erro de configuração que o usuário resolve olhando para o arquivo.
type SchemaError struct {
	Expected []string
	Found    []string
	Missing  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"colunas obrigatórias ausentes no dataset: [%s] (esperadas: [%s]; encontradas: [%s])",
		strings.Join(e.Missing, ", "),
		strings.Join(e.Expected, ", "),
		strings.Join(e.Found, ", "),
	)
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingColumns
}
