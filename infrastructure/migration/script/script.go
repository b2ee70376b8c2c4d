package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/outflo-api/infrastructure/database/postgres"
	"github.com/vfg2006/outflo-api/internal/config"
)

type migration struct {
	Name      string
	Statement string
}

// Todas as migrações são idempotentes e podem rodar de novo sem efeito
var migrations = []migration{
	{
		Name: "create_campaigns_table",
		Statement: `CREATE TABLE IF NOT EXISTS campaigns (
	id          VARCHAR(32) PRIMARY KEY,
	name        TEXT        NOT NULL,
	description TEXT        NOT NULL,
	status      VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
	leads       TEXT[]      NOT NULL DEFAULT '{}',
	account_ids TEXT[]      NOT NULL DEFAULT '{}',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		Name: "add_campaigns_status_check",
		Statement: `DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'campaigns_status_check') THEN
		ALTER TABLE campaigns
			ADD CONSTRAINT campaigns_status_check CHECK (status IN ('ACTIVE', 'INACTIVE', 'DELETED'));
	END IF;
END $$`,
	},
	{
		Name:      "create_campaigns_status_created_at_index",
		Statement: `CREATE INDEX IF NOT EXISTS idx_campaigns_status_created_at ON campaigns (status, created_at)`,
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação")
	}

	for i, m := range migrations {
		startTime := time.Now()

		if _, err := tx.ExecContext(ctx, m.Statement); err != nil {
			_ = tx.Rollback()
			logrus.WithError(err).WithField("migration", m.Name).Fatal("Erro ao aplicar migração, rollback executado")
		}

		logrus.WithFields(logrus.Fields{
			"migration": m.Name,
			"elapsed":   time.Since(startTime).String(),
		}).Infof("Migração aplicada [%d/%d]", i+1, len(migrations))
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar transação")
	}

	logrus.Info("Migração concluída com sucesso")
}
