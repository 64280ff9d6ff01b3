package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDatasetInfo retorna os metadados do dataset carregado: caminho,
// total de linhas e o span de datas que alimenta o seletor de período
func GetDatasetInfo(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := service.DatasetInfo()
		if err != nil {
			logger.WithError(err).Error("dataset: falha ao obter metadados")
			writeDatasetError(w, err)
			return
		}

		writeJSON(w, r, info)
	})
}

// ReloadDataset invalida o cache memoizado e recarrega o dataset do
// arquivo na hora, sem esperar o agendador
func ReloadDataset(cfg *config.Config, store *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		store.Invalidate(cfg.Dataset.Path)

		table, err := store.Get(cfg.Dataset.Path)
		if err != nil {
			logger.WithError(err).Error("dataset: falha ao recarregar após invalidação")
			writeDatasetError(w, err)
			return
		}

		logger.WithField("rows", len(table)).Info("dataset: recarregado manualmente")

		writeJSON(w, r, map[string]any{
			"message": "Dataset recarregado com sucesso",
			"rows":    len(table),
		})
	})
}
