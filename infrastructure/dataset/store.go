package dataset

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Info descreve o dataset carregado, para a rota de metadados e para a
// resolução do período padrão dos filtros.
type Info struct {
	Path     string     `json:"path"`
	Rows     int        `json:"rows"`
	MinDate  *time.Time `json:"min_date"`
	MaxDate  *time.Time `json:"max_date"`
	LoadedAt time.Time  `json:"loaded_at"`
}

// entry guarda a tabela memoizada junto com a impressão digital do
// arquivo (tamanho + mtime) usada para detectar mudança na fonte.
type entry struct {
	table    domain.SalesTable
	size     int64
	modTime  time.Time
	loadedAt time.Time
}

// Store memoiza a carga do dataset por caminho de arquivo.
//
// É a versão explícita do cache de carga: um objeto com operação de
// invalidação exposta, dono do ciclo de vida, em vez de estado global
// escondido. Get re-consulta o stat do arquivo e recarrega de forma
// transparente quando a impressão digital mudou; Invalidate força a
// próxima carga. Seguro para leitores concorrentes.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewStore cria um Store vazio
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
	}
}

// Get retorna a tabela normalizada do caminho, carregando na primeira
// chamada e reusando a tabela imutável nas seguintes. Se o arquivo
// mudou desde a última carga, recarrega antes de retornar.
func (s *Store) Get(path string) (domain.SalesTable, error) {
	key, stat, err := s.fingerprint(path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && e.size == stat.Size() && e.modTime.Equal(stat.ModTime()) {
		return e.table, nil
	}

	return s.load(key, stat)
}

// Info retorna os metadados do dataset, carregando-o se necessário
func (s *Store) Info(path string) (*Info, error) {
	table, err := s.Get(path)
	if err != nil {
		return nil, err
	}

	key, _, err := s.fingerprint(path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	e := s.entries[key]
	s.mu.RUnlock()

	info := &Info{
		Path:     key,
		Rows:     len(table),
		LoadedAt: e.loadedAt,
	}

	if min, max, ok := domain.DateSpan(table); ok {
		info.MinDate = &min
		info.MaxDate = &max
	}

	return info, nil
}

// Refresh re-consulta o stat da fonte e recarrega quando ela mudou.
// Retorna se houve recarga. É o que o agendador de atualização usa.
func (s *Store) Refresh(path string) (bool, error) {
	key, stat, err := s.fingerprint(path)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && e.size == stat.Size() && e.modTime.Equal(stat.ModTime()) {
		return false, nil
	}

	if _, err := s.load(key, stat); err != nil {
		return false, err
	}

	return true, nil
}

// Invalidate descarta a entrada memoizada do caminho; a próxima chamada
// a Get recarrega do arquivo.
func (s *Store) Invalidate(path string) {
	key := normalizePath(path)

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()

	logrus.WithField("path", key).Info("dataset: cache invalidado")
}

// InvalidateAll descarta todas as entradas memoizadas
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.entries = make(map[string]*entry)
	s.mu.Unlock()

	logrus.Info("dataset: cache totalmente invalidado")
}

func (s *Store) load(key string, stat os.FileInfo) (domain.SalesTable, error) {
	start := time.Now()

	table, err := LoadFile(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = &entry{
		table:    table,
		size:     stat.Size(),
		modTime:  stat.ModTime(),
		loadedAt: time.Now(),
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"path":        key,
		"rows":        len(table),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("dataset: tabela carregada e memoizada")

	return table, nil
}

// fingerprint resolve o caminho para a chave do cache e consulta o stat
// do arquivo, traduzindo ausência em NotFoundError.
func (s *Store) fingerprint(path string) (string, os.FileInfo, error) {
	key := normalizePath(path)

	stat, err := os.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			cwd, _ := os.Getwd()
			return "", nil, &NotFoundError{Path: key, WorkingDir: cwd}
		}
		return "", nil, err
	}

	return key, stat, nil
}

func normalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
