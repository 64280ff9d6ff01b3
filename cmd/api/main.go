package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Carga inicial do dataset: qualquer erro aqui é fatal, pois não
	// existe dashboard sem a tabela válida
	store := dataset.NewStore()

	table, err := store.Get(cfg.Dataset.Path)
	if err != nil {
		logrus.WithError(err).WithField("path", cfg.Dataset.Path).Fatal("Erro ao carregar o dataset de vendas")
	}

	logrus.WithFields(logrus.Fields{
		"path": cfg.Dataset.Path,
		"rows": len(table),
	}).Info("Dataset de vendas carregado com sucesso")

	reportService := reporting.NewService(cfg, store)

	// Agendador que mantém a tabela memoizada em dia com o arquivo fonte
	refreshService := scheduler.NewDatasetRefreshService(store, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	} else {
		logrus.Info("Agendador de atualização do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		store,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
