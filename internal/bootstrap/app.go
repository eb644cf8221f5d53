package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"sitestudio-backend/internal/queue"
	"sitestudio-backend/internal/shared/config"
	"sitestudio-backend/internal/shared/server"
	"sitestudio-backend/internal/shared/storage/db"
	"sitestudio-backend/internal/shared/storage/object"
	localstore "sitestudio-backend/internal/shared/storage/object/local"
	s3store "sitestudio-backend/internal/shared/storage/object/s3"
	"sitestudio-backend/internal/structures"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Store             object.ObjectStore
	Queue             queue.Client
	StructuresRepo    structures.Repo
	StructuresService *structures.Service
	StructuresHandler *structures.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   app.Config,
		Handlers: []server.RouteRegistrar{app.StructuresHandler},
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildQueue returns a nil client when no render queue is configured.
func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.RenderQueueURL) == "" {
		log.Printf("bootstrap: RENDER_QUEUE_URL empty; render handoff disabled")
		return nil, nil
	}
	client, err := queue.NewSQSClient(ctx, cfg.AWSRegion, cfg.RenderQueueURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func buildServices(app *App) {
	var repo structures.Repo
	if app.DB != nil {
		repo = &structures.PGRepo{DB: app.DB}
	} else {
		repo = structures.NewMemoryRepo()
	}

	svc := &structures.Service{
		Repo:  repo,
		Store: app.Store,
		Queue: app.Queue,
	}

	app.StructuresRepo = repo
	app.StructuresService = svc
	app.StructuresHandler = structures.NewHandler(svc)
}
