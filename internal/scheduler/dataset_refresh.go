package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// DatasetRefreshConfig representa a configuração do agendador de
// atualização do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService re-consulta a fonte de dados periodicamente e
// recarrega a tabela memoizada quando o arquivo mudou. É o ciclo de
// vida explícito do cache de carga: a invalidação acontece aqui ou pela
// rota manual de reload, nunca por estado global escondido.
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DatasetRefreshConfig
	dataPath            string
	store               *dataset.Store
	refreshRunning      bool
	refreshMutex        sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastRunReloaded     bool
	lastRunErrorMessage string
}

// NewDatasetRefreshService cria uma nova instância do serviço de
// atualização do dataset
func NewDatasetRefreshService(store *dataset.Store, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		Enabled:      appConfig.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
		"data_path":     appConfig.Dataset.Path,
	}).Info("Configuração do agendador de atualização do dataset carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		dataPath:  appConfig.Dataset.Path,
		store:     store,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma atualização fora do agendamento
func (s *DatasetRefreshService) TriggerManualSync() {
	go s.refreshDataset()
}

// GetStatus retorna o estado atual do agendador para a rota de status
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.refreshRunning,
		"last_reloaded": s.lastRunReloaded,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}
	if !s.lastRunCompletedAt.IsZero() {
		status["last_run_completed_at"] = s.lastRunCompletedAt.Format(time.RFC3339)
	}
	if s.lastRunErrorMessage != "" {
		status["last_run_error"] = s.lastRunErrorMessage
	}

	return status
}

// refreshDataset executa uma passada de atualização: stat na fonte e
// recarga quando a impressão digital mudou
func (s *DatasetRefreshService) refreshDataset() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do dataset já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	s.refreshMutex.Unlock()

	reloaded, err := s.store.Refresh(s.dataPath)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRunCompletedAt = time.Now()
	s.lastRunReloaded = reloaded
	s.lastRunErrorMessage = ""
	if err != nil {
		s.lastRunErrorMessage = err.Error()
	}
	s.refreshMutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("path", s.dataPath).Error("Erro ao atualizar o dataset")
		return
	}

	if reloaded {
		logrus.WithField("path", s.dataPath).Info("Dataset recarregado: fonte mudou desde a última carga")
	} else {
		logrus.WithField("path", s.dataPath).Debug("Dataset inalterado desde a última carga")
	}
}
