package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesExport devolve o período filtrado (ou a tabela completa,
// quando nenhum limite é informado) como anexo CSV para download
func GetSalesExport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		payload, err := service.Export(filters)
		if err != nil {
			logger.WithError(err).Error("export: falha ao serializar o CSV")
			writeDatasetError(w, err)
			return
		}

		filename := "sales_full.csv"
		if filters.StartDate != nil || filters.EndDate != nil {
			filename = "sales_filtered.csv"
		}

		logger.WithFields(log.Fields{
			"filename": filename,
			"bytes":    len(payload),
		}).Info("export: CSV gerado para download")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if _, err := w.Write(payload); err != nil {
			logger.WithError(err).Error("export: falha ao escrever a resposta")
		}
	})
}
