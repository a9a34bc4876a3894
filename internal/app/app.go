package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-store/internal/repository/catcache"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"

	"github.com/fsdevblog/groph-store/pkg/uow"

	"github.com/fsdevblog/groph-store/internal/config"
	"github.com/fsdevblog/groph-store/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-store/internal/service"
	"github.com/fsdevblog/groph-store/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

const catalogCacheTTL = 5 * time.Minute

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with run address %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, a.initCatalog(conn), a.Config.AdminPasswordHash)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:             a.Logger,
		AccountService:     services.AccountService,
		TransactionService: services.TransactionService,
		QueryService:       services.QueryService,
		CatalogService:     services.CatalogService,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
		AdminAuthKey:       a.Config.AdminAuthKey,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initCatalog возвращает репозиторий каталога для витринных чтений. Если задан
// адрес redis, чтения оборачиваются кешем; без него работаем напрямую с БД.
func (a *App) initCatalog(conn *pgxpool.Pool) service.CatalogRepository {
	catalogRepo := pgrepo.NewCatalogRepository(conn)
	if a.Config.RedisAddr == "" {
		return catalogRepo
	}

	client := goredis.NewClient(&goredis.Options{Addr: a.Config.RedisAddr})
	return catcache.New(catalogRepo, client, catalogCacheTTL, a.Logger)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// customer repo
	customerRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewCustomerRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.CustomerRepoName), customerRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// credit card repo
	cardRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewCardRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.CardRepoName), cardRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// catalog repo
	catalogRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewCatalogRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.CatalogRepoName), catalogRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// ledger repo
	ledgerRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewLedgerRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.LedgerRepoName), ledgerRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
