package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// SalesReports agrupa as rotas consumidas pelos widgets do dashboard
func SalesReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/report",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service),
		},
		{
			Path:    "/v1/sales/kpis",
			Method:  http.MethodGet,
			Handler: GetSalesKPIs(service),
		},
		{
			Path:    "/v1/sales/revenue-by-category",
			Method:  http.MethodGet,
			Handler: GetRevenueByCategory(service),
		},
		{
			Path:    "/v1/sales/revenue-by-date",
			Method:  http.MethodGet,
			Handler: GetRevenueByDate(service),
		},
		{
			Path:    "/v1/sales/records",
			Method:  http.MethodGet,
			Handler: GetSalesRecords(service),
		},
		{
			Path:    "/v1/sales/export",
			Method:  http.MethodGet,
			Handler: GetSalesExport(service),
		},
	}
}

// Dataset agrupa as rotas de metadados e recarga do dataset
func Dataset(cfg *config.Config, service reporting.Reporter, store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(service),
		},
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(cfg, store),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
