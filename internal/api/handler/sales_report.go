package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesReport monta o payload completo do dashboard: KPIs e os dois
// agrupamentos para os gráficos, no período informado
func GetSalesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		report, err := service.Report(filters)
		if err != nil {
			logger.WithError(err).Error("report: falha ao montar o relatório de vendas")
			writeDatasetError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date":  report.Period.StartDate,
			"end_date":    report.Period.EndDate,
			"row_count":   report.RowCount,
			"empty_range": report.EmptyRange,
		}).Info("report: relatório de vendas montado")

		writeJSON(w, r, report)
	})
}

// GetSalesKPIs retorna apenas os três escalares do topo do dashboard
func GetSalesKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		kpis, err := service.KPIs(filters)
		if err != nil {
			logger.WithError(err).Error("report: falha ao calcular KPIs")
			writeDatasetError(w, err)
			return
		}

		writeJSON(w, r, kpis)
	})
}

// GetRevenueByCategory retorna a soma de receita por categoria, ordenada
// por receita decrescente, para o gráfico de barras
func GetRevenueByCategory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		groups, err := service.RevenueByCategory(filters)
		if err != nil {
			logger.WithError(err).Error("report: falha ao agrupar receita por categoria")
			writeDatasetError(w, err)
			return
		}

		writeJSON(w, r, groups)
	})
}

// GetRevenueByDate retorna a soma de receita por dia, em ordem
// ascendente, para o gráfico de série temporal
func GetRevenueByDate(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		daily, err := service.RevenueByDate(filters)
		if err != nil {
			logger.WithError(err).Error("report: falha ao agrupar receita por dia")
			writeDatasetError(w, err)
			return
		}

		writeJSON(w, r, daily)
	})
}
