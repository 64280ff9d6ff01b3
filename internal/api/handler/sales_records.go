package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesRecords retorna linhas do período para o preview da tabela do
// dashboard, ordenadas por (data, categoria)
func GetSalesRecords(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		limit := 0
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed <= 0 {
				logger.WithField("limit", rawLimit).Warn("records: parâmetro limit inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		records, err := service.Records(filters, limit)
		if err != nil {
			logger.WithError(err).Error("records: falha ao montar o preview de linhas")
			writeDatasetError(w, err)
			return
		}

		logger.WithField("rows", len(records)).Debug("records: preview montado")

		writeJSON(w, r, records)
	})
}
