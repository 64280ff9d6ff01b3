package reporting_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

const testDataPath = "data/sales.csv"

func testConfig() *config.Config {
	return &config.Config{
		Dataset: config.Dataset{
			Path:         testDataPath,
			PreviewLimit: 2,
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateP(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

// Tabela usada nos testes do serviço:
//
//	2024-01-01  A  2un  100.0
//	2024-01-01  B  1un   50.0
//	2024-01-02  A  3un  150.0
//	(sem data)  C  1un   25.0
func testTable() domain.SalesTable {
	return domain.SalesTable{
		{
			Date:     domain.Present(day(2024, 1, 1)),
			Category: domain.Present("A"),
			Units:    domain.Present(int64(2)),
			Revenue:  domain.Present(100.0),
		},
		{
			Date:     domain.Present(day(2024, 1, 1)),
			Category: domain.Present("B"),
			Units:    domain.Present(int64(1)),
			Revenue:  domain.Present(50.0),
		},
		{
			Date:     domain.Present(day(2024, 1, 2)),
			Category: domain.Present("A"),
			Units:    domain.Present(int64(3)),
			Revenue:  domain.Present(150.0),
		},
		{
			Date:     domain.Missing[time.Time](),
			Category: domain.Present("C"),
			Units:    domain.Present(int64(1)),
			Revenue:  domain.Present(25.0),
		},
	}
}

func TestService_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		filters  *domain.ReportFilters
		validate func(t *testing.T, report *reporting.SalesReport)
	}{
		{
			name:    "Sem filtros usa a tabela completa, inclusive linhas sem data",
			filters: nil,
			validate: func(t *testing.T, report *reporting.SalesReport) {
				assert.Equal(t, reporting.Period{}, report.Period)
				assert.Equal(t, 4, report.RowCount)
				assert.Equal(t, domain.KPISummary{TotalRevenue: 325, TotalUnits: 7, NCategories: 3}, report.KPIs)
				assert.False(t, report.EmptyRange)
				assert.Nil(t, report.FallbackKPIs)
			},
		},
		{
			name:    "Filtros vazios equivalem a nenhum filtro",
			filters: &domain.ReportFilters{},
			validate: func(t *testing.T, report *reporting.SalesReport) {
				assert.Equal(t, 4, report.RowCount)
				assert.False(t, report.EmptyRange)
			},
		},
		{
			name: "Período explícito filtra com extremidades inclusivas",
			filters: &domain.ReportFilters{
				StartDate: dateP(2024, 1, 1),
				EndDate:   dateP(2024, 1, 1),
			},
			validate: func(t *testing.T, report *reporting.SalesReport) {
				assert.Equal(t, reporting.Period{StartDate: "2024-01-01", EndDate: "2024-01-01"}, report.Period)
				assert.Equal(t, 2, report.RowCount)
				assert.Equal(t, domain.KPISummary{TotalRevenue: 150, TotalUnits: 3, NCategories: 2}, report.KPIs)
				assert.Equal(t, []reporting.CategoryRevenueItem{
					{Category: "A", Revenue: 100.0},
					{Category: "B", Revenue: 50.0},
				}, report.RevenueByCategory)
				assert.Equal(t, []reporting.DailyRevenueItem{
					{Date: "2024-01-01", Revenue: 150.0},
				}, report.RevenueByDate)
			},
		},
		{
			name: "Limite omitido é resolvido para o span do dataset",
			filters: &domain.ReportFilters{
				StartDate: dateP(2024, 1, 2),
			},
			validate: func(t *testing.T, report *reporting.SalesReport) {
				assert.Equal(t, reporting.Period{StartDate: "2024-01-02", EndDate: "2024-01-02"}, report.Period)
				assert.Equal(t, 1, report.RowCount)
			},
		},
		{
			name: "Período sem linhas marca o estado e oferece KPIs de fallback",
			filters: &domain.ReportFilters{
				StartDate: dateP(2024, 2, 1),
				EndDate:   dateP(2024, 2, 28),
			},
			validate: func(t *testing.T, report *reporting.SalesReport) {
				assert.True(t, report.EmptyRange)
				assert.Equal(t, 0, report.RowCount)
				assert.Equal(t, domain.KPISummary{}, report.KPIs)

				require.NotNil(t, report.FallbackKPIs)
				assert.Equal(t, domain.KPISummary{TotalRevenue: 325, TotalUnits: 7, NCategories: 3}, *report.FallbackKPIs)
			},
		},
		{
			name: "Intervalo invertido produz período vazio em vez de trocar os limites",
			filters: &domain.ReportFilters{
				StartDate: dateP(2024, 1, 2),
				EndDate:   dateP(2024, 1, 1),
			},
			validate: func(t *testing.T, report *reporting.SalesReport) {
				assert.True(t, report.EmptyRange)
				assert.Equal(t, 0, report.RowCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := mocks.NewMockDatasetProvider(ctrl)
			mockStore.EXPECT().Get(testDataPath).Return(testTable(), nil)

			service := reporting.NewService(testConfig(), mockStore)

			report, err := service.Report(tt.filters)

			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_KPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDatasetProvider(ctrl)
	mockStore.EXPECT().Get(testDataPath).Return(testTable(), nil)

	service := reporting.NewService(testConfig(), mockStore)

	kpis, err := service.KPIs(&domain.ReportFilters{
		StartDate: dateP(2024, 1, 2),
		EndDate:   dateP(2024, 1, 2),
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.KPISummary{TotalRevenue: 150, TotalUnits: 3, NCategories: 1}, kpis)
}

func TestService_RevenueByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDatasetProvider(ctrl)
	mockStore.EXPECT().Get(testDataPath).Return(testTable(), nil)

	service := reporting.NewService(testConfig(), mockStore)

	items, err := service.RevenueByCategory(nil)

	require.NoError(t, err)
	assert.Equal(t, []reporting.CategoryRevenueItem{
		{Category: "A", Revenue: 250.0},
		{Category: "B", Revenue: 50.0},
		{Category: "C", Revenue: 25.0},
	}, items)
}

func TestService_RevenueByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDatasetProvider(ctrl)
	mockStore.EXPECT().Get(testDataPath).Return(testTable(), nil)

	service := reporting.NewService(testConfig(), mockStore)

	items, err := service.RevenueByDate(nil)

	require.NoError(t, err)
	// A linha sem data fica de fora da série temporal
	assert.Equal(t, []reporting.DailyRevenueItem{
		{Date: "2024-01-01", Revenue: 150.0},
		{Date: "2024-01-02", Revenue: 150.0},
	}, items)
}

func TestService_Records(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Ordena por data e categoria, linhas sem data vão para o fim", func(t *testing.T) {
		mockStore := mocks.NewMockDatasetProvider(ctrl)
		mockStore.EXPECT().Get(testDataPath).Return(testTable(), nil)

		service := reporting.NewService(testConfig(), mockStore)

		records, err := service.Records(nil, 10)

		require.NoError(t, err)
		require.Len(t, records, 4)

		assert.Equal(t, "A", *records[0].Category)
		assert.Equal(t, "2024-01-01", *records[0].Date)
		assert.Equal(t, "B", *records[1].Category)
		assert.Equal(t, "A", *records[2].Category)
		assert.Equal(t, "2024-01-02", *records[2].Date)

		// Linha sem data fecha o preview, com as células ausentes como null
		assert.Nil(t, records[3].Date)
		assert.Equal(t, "C", *records[3].Category)
	})

	t.Run("Limite inválido usa o padrão da configuração", func(t *testing.T) {
		mockStore := mocks.NewMockDatasetProvider(ctrl)
		mockStore.EXPECT().Get(testDataPath).Return(testTable(), nil)

		service := reporting.NewService(testConfig(), mockStore)

		records, err := service.Records(nil, 0)

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDatasetProvider(ctrl)
	mockStore.EXPECT().Get(testDataPath).Return(testTable(), nil)

	service := reporting.NewService(testConfig(), mockStore)

	payload, err := service.Export(&domain.ReportFilters{
		StartDate: dateP(2024, 1, 1),
		EndDate:   dateP(2024, 1, 1),
	})

	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(domain.RequiredColumns, ","), lines[0])
	assert.Contains(t, lines[1], "2024-01-01")
}

func TestService_DatasetInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := &dataset.Info{Path: testDataPath, Rows: 4}

	mockStore := mocks.NewMockDatasetProvider(ctrl)
	mockStore.EXPECT().Info(testDataPath).Return(expected, nil)

	service := reporting.NewService(testConfig(), mockStore)

	info, err := service.DatasetInfo()

	require.NoError(t, err)
	assert.Equal(t, expected, info)
}

func TestService_PropagaErroDeCarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadErr := &dataset.NotFoundError{Path: testDataPath, WorkingDir: "/app"}

	mockStore := mocks.NewMockDatasetProvider(ctrl)
	mockStore.EXPECT().Get(testDataPath).Return(nil, loadErr)

	service := reporting.NewService(testConfig(), mockStore)

	_, err := service.Report(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrSourceNotFound)
}
