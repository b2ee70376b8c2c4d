package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/outflo-api/infrastructure/database/postgres"
	"github.com/vfg2006/outflo-api/infrastructure/integrator/groq"
	"github.com/vfg2006/outflo-api/infrastructure/integrator/groq/groqclient"
	"github.com/vfg2006/outflo-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/outflo-api/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/outflo-api/infrastructure/repository"
	"github.com/vfg2006/outflo-api/internal/api"
	"github.com/vfg2006/outflo-api/internal/config"
	"github.com/vfg2006/outflo-api/internal/usecases/campaigning"
	"github.com/vfg2006/outflo-api/internal/usecases/outreach"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A conexão é única no processo e fechada só aqui
	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	campaignService := campaigning.NewService(campaignRepo)

	linkedInIntegrator := linkedin.New(linkedinclient.NewClient(cfg))
	groqIntegrator := groq.New(groqclient.NewClient(cfg), cfg.Groq.Model)
	outreachService := outreach.NewService(linkedInIntegrator, groqIntegrator)

	server, err := api.New(cfg, campaignService, outreachService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
