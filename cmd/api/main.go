package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-os-api/infrastructure/integrator/meta"
	"github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/infrastructure/store/firebase"
	"github.com/vfg2006/agency-os-api/infrastructure/store/localcache"
	"github.com/vfg2006/agency-os-api/infrastructure/store/pgstore"
	"github.com/vfg2006/agency-os-api/internal/api"
	"github.com/vfg2006/agency-os-api/internal/api/handler"
	"github.com/vfg2006/agency-os-api/internal/config"
	"github.com/vfg2006/agency-os-api/internal/scheduler"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving"
	"github.com/vfg2006/agency-os-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-os-api/internal/usecases/ledgering"
	"github.com/vfg2006/agency-os-api/internal/usecases/messaging"
	"github.com/vfg2006/agency-os-api/internal/usecases/publishing"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, os.Stdout)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pgConn *postgres.Connection
	if cfg.Database.Enabled || cfg.Store.Driver == config.StoreDriverPostgres {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()
	}

	cache, err := localcache.Open(ctx, cfg.LocalCache.Path)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o cache local")
	}
	defer cache.Close()

	collections := store.NewFallbackStore(remoteStore(cfg, pgConn), cache, cfg.Firebase.Timeout)

	contentRepo := repository.NewContentRepository(collections)
	clientRepo := repository.NewClientRepository(collections)
	userRepo := repository.NewUserRepository(collections)
	messageRepo := repository.NewMessageRepository(collections)

	var snapshotRepo repository.BackupSnapshotRepository
	if pgConn != nil {
		snapshotRepo = repository.NewBackupSnapshotRepository(pgConn)
	}

	metaIntegrator := meta.New(metaclient.NewClient(cfg.Meta))
	formatter := reporting.NewFormatter(cfg.Ledger.Locale)

	authenticator := authenticating.NewService(userRepo, cfg)
	publisher := publishing.NewService(contentRepo)
	ledger := ledgering.NewService(clientRepo, metaIntegrator, formatter)
	reporter := reporting.NewService(clientRepo, reporting.NewEngine(formatter))
	inbox := messaging.NewService(messageRepo)
	archiver := archiving.NewService(contentRepo, clientRepo, userRepo, messageRepo, snapshotRepo)

	metaCampaignSyncService := scheduler.NewMetaCampaignSyncService(ledger, cfg)
	backupSnapshotService := scheduler.NewBackupSnapshotService(archiver, cfg)

	if err := metaCampaignSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de campanhas do Meta")
	}

	if snapshotRepo != nil {
		if err := backupSnapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de backup")
		}
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Publisher:     publisher,
		Ledger:        ledger,
		Reporter:      reporter,
		Inbox:         inbox,
		Archiver:      archiver,
		CronJobs: handler.CronJobServices{
			MetaCampaignSync: metaCampaignSyncService,
			BackupSnapshot:   backupSnapshotService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do binário ser encontrado em go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// remoteStore escolhe o banco remoto pelo STORE_DRIVER. Com "memory" não há remoto
// e o cache local responde sozinho.
func remoteStore(cfg *config.Config, pgConn *postgres.Connection) store.CollectionStore {
	switch cfg.Store.Driver {
	case config.StoreDriverFirebase:
		if cfg.Firebase.DatabaseURL == "" {
			logrus.Warn("FIREBASE_DATABASE_URL não configurado, usando apenas o cache local")
			return nil
		}
		return firebase.New(cfg.Firebase)
	case config.StoreDriverPostgres:
		return pgstore.New(pgConn)
	case config.StoreDriverMemory:
		return store.NewMemoryStore()
	default:
		logrus.WithField("driver", cfg.Store.Driver).Warn("STORE_DRIVER desconhecido, usando apenas o cache local")
		return nil
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o schema do PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
