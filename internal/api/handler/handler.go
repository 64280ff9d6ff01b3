package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta de sucesso dos handlers
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("api: falha ao serializar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// parseReportFilters lê start_date/end_date da query string.
// Parâmetro ausente vira limite nulo (sem restrição); formato inválido
// é erro de validação do chamador.
func parseReportFilters(w http.ResponseWriter, r *http.Request) (*domain.ReportFilters, bool) {
	logger := log.ForContext(r.Context())

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("api: parâmetro start_date inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("api: parâmetro end_date inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}

// writeDatasetError traduz a taxonomia de erros da carga do dataset
// para os códigos da API
func writeDatasetError(w http.ResponseWriter, err error) {
	var notFound *dataset.NotFoundError
	var schema *dataset.SchemaError

	switch {
	case errors.As(err, &notFound):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, notFound.Error(), map[string]any{
			"path":        notFound.Path,
			"working_dir": notFound.WorkingDir,
		})
	case errors.As(err, &schema):
		apiErrors.WriteError(w, apiErrors.ErrDatasetSchema, schema.Error(), map[string]any{
			"expected_columns": schema.Expected,
			"found_columns":    schema.Found,
			"missing_columns":  schema.Missing,
		})
	case errors.Is(err, dataset.ErrLoadFailure):
		apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
