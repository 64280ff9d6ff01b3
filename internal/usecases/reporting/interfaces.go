package reporting

import (
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DatasetProvider é a dependência de dados do serviço de relatórios.
// A implementação real é o dataset.Store memoizado.
type DatasetProvider interface {
	Get(path string) (domain.SalesTable, error)
	Info(path string) (*dataset.Info, error)
}

// Reporter expõe as operações consumidas pela camada de apresentação
// do dashboard.
type Reporter interface {
	// Report monta o payload completo do dashboard: KPIs e os dois
	// agrupamentos, para o período informado
	Report(filters *domain.ReportFilters) (*SalesReport, error)

	// KPIs calcula apenas os três escalares do topo do dashboard
	KPIs(filters *domain.ReportFilters) (*domain.KPISummary, error)

	// RevenueByCategory retorna a soma de receita por categoria,
	// ordenada por receita decrescente
	RevenueByCategory(filters *domain.ReportFilters) ([]CategoryRevenueItem, error)

	// RevenueByDate retorna a soma de receita por dia, em ordem
	// ascendente de data
	RevenueByDate(filters *domain.ReportFilters) ([]DailyRevenueItem, error)

	// Records retorna linhas do período para o preview da tabela,
	// ordenadas por (data, categoria)
	Records(filters *domain.ReportFilters, limit int) ([]RecordView, error)

	// Export re-serializa o período filtrado (ou a tabela completa)
	// como CSV para download
	Export(filters *domain.ReportFilters) ([]byte, error)

	// DatasetInfo retorna os metadados do dataset carregado
	DatasetInfo() (*dataset.Info, error)
}
