package reporting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Limite de preview usado quando o chamador não informa um válido
const defaultPreviewLimit = 100

// Service implementa Reporter sobre a tabela memoizada do Store.
// Cada interação do usuário refaz o ciclo filtrar-e-agregar por inteiro;
// a tabela carregada é imutável e compartilhada entre as requisições.
type Service struct {
	cfg   *config.Config
	store DatasetProvider
}

// NewService cria o serviço de relatórios de venda
func NewService(cfg *config.Config, store DatasetProvider) Reporter {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

// Report monta o payload completo do dashboard para o período
func (s *Service) Report(filters *domain.ReportFilters) (*SalesReport, error) {
	full, filtered, period, applied, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		Period:            period,
		RowCount:          len(filtered),
		KPIs:              domain.Summarize(filtered),
		RevenueByCategory: toCategoryItems(domain.GroupByCategory(filtered)),
		RevenueByDate:     toDailyItems(domain.GroupByDate(filtered)),
	}

	// Período sem linhas é um estado exibível: o frontend avisa o usuário
	// e oferece a visão sem filtro como alternativa
	if applied && len(filtered) == 0 {
		fallback := domain.Summarize(full)
		report.EmptyRange = true
		report.FallbackKPIs = &fallback

		logrus.WithFields(logrus.Fields{
			"start_date": report.Period.StartDate,
			"end_date":   report.Period.EndDate,
		}).Info("reporting: período selecionado sem dados, oferecendo fallback")
	}

	return report, nil
}

// KPIs calcula os três escalares do período
func (s *Service) KPIs(filters *domain.ReportFilters) (*domain.KPISummary, error) {
	_, filtered, _, _, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	kpis := domain.Summarize(filtered)
	return &kpis, nil
}

// RevenueByCategory soma a receita do período por categoria
func (s *Service) RevenueByCategory(filters *domain.ReportFilters) ([]CategoryRevenueItem, error) {
	_, filtered, _, _, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	return toCategoryItems(domain.GroupByCategory(filtered)), nil
}

// RevenueByDate soma a receita do período por dia
func (s *Service) RevenueByDate(filters *domain.ReportFilters) ([]DailyRevenueItem, error) {
	_, filtered, _, _, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	return toDailyItems(domain.GroupByDate(filtered)), nil
}

// Records retorna as linhas do período para o preview, ordenadas por
// (data, categoria) como na tabela do dashboard. Linhas sem data vão
// para o fim.
func (s *Service) Records(filters *domain.ReportFilters, limit int) ([]RecordView, error) {
	_, filtered, _, _, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.previewLimit()
	}

	// Cópia própria: a ordenação do preview não pode tocar a tabela
	preview := make(domain.SalesTable, len(filtered))
	copy(preview, filtered)

	sort.SliceStable(preview, func(i, j int) bool {
		di, iOK := preview[i].Date.Get()
		dj, jOK := preview[j].Date.Get()

		if iOK != jOK {
			return iOK
		}
		if iOK && !di.Equal(dj) {
			return di.Before(dj)
		}

		return preview[i].Category.OrZero() < preview[j].Category.OrZero()
	})

	if len(preview) > limit {
		preview = preview[:limit]
	}

	views := make([]RecordView, 0, len(preview))
	for _, rec := range preview {
		views = append(views, toRecordView(rec))
	}

	return views, nil
}

// Export re-serializa o período como CSV para download
func (s *Service) Export(filters *domain.ReportFilters) ([]byte, error) {
	_, filtered, _, _, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	return dataset.ExportCSV(filtered)
}

// DatasetInfo retorna os metadados do dataset carregado
func (s *Service) DatasetInfo() (*dataset.Info, error) {
	return s.store.Info(s.cfg.Dataset.Path)
}

// view carrega a tabela memoizada e resolve o período dos filtros.
//
// Sem nenhum limite informado a tabela completa é usada sem filtro,
// inclusive linhas com data ausente, que nenhum intervalo alcançaria.
// Com pelo menos um limite, o outro é resolvido para o span do dataset
// e o filtro inclusivo é aplicado.
func (s *Service) view(filters *domain.ReportFilters) (full, filtered domain.SalesTable, period Period, applied bool, err error) {
	full, err = s.store.Get(s.cfg.Dataset.Path)
	if err != nil {
		return nil, nil, Period{}, false, err
	}

	if filters == nil || (filters.StartDate == nil && filters.EndDate == nil) {
		return full, full, Period{}, false, nil
	}

	min, max, hasDates := domain.DateSpan(full)

	dr := domain.DateRange{}

	if filters.StartDate != nil {
		dr.Start = domain.TruncateToDay(*filters.StartDate)
	} else if hasDates {
		dr.Start = min
	}

	if filters.EndDate != nil {
		dr.End = domain.TruncateToDay(*filters.EndDate)
	} else if hasDates {
		dr.End = max
	}

	period = Period{
		StartDate: dr.Start.Format(time.DateOnly),
		EndDate:   dr.End.Format(time.DateOnly),
	}

	return full, domain.FilterByDateRange(full, dr), period, true, nil
}

func (s *Service) previewLimit() int {
	if s.cfg != nil && s.cfg.Dataset.PreviewLimit > 0 {
		return s.cfg.Dataset.PreviewLimit
	}
	return defaultPreviewLimit
}
