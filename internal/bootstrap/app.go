package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"careerprep-backend/internal/documents"
	"careerprep-backend/internal/extract"
	"careerprep-backend/internal/parse"
	"careerprep-backend/internal/shared/config"
	"careerprep-backend/internal/shared/server"
	"careerprep-backend/internal/shared/storage/db"
	"careerprep-backend/internal/shared/storage/object"
	localstore "careerprep-backend/internal/shared/storage/object/local"
	s3store "careerprep-backend/internal/shared/storage/object/s3"
	"careerprep-backend/internal/skills"
)

// App holds the wired application dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsRepo documents.DocumentsRepo
	ParsesRepo    parse.ParsesRepo

	DocumentsService *documents.Service
	ParseService     *parse.Service

	DocumentsHandler *documents.Handler
	ParseHandler     *parse.Handler
}

// Build prepares all dependencies and the router. With no DATABASE_URL in a
// dev-like environment, repositories fall back to in-memory implementations.
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

	var docRepo documents.DocumentsRepo
	var parsesRepo parse.ParsesRepo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		parsesRepo = &parse.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
		parsesRepo = parse.NewMemoryRepo()
	}

	cascade := extract.NewCascade(extract.Config{
		MinTextChars:  cfg.ExtractMinTextChars,
		TikaServerURL: cfg.TikaServerURL,
		TikaTimeout:   30 * time.Second,
	})
	matcher := skills.NewMatcher(skills.DefaultTaxonomy(), skills.MatcherConfig{
		ContextWindow: cfg.SkillContextWindow,
		SectionWindow: cfg.SkillSectionWindow,
	})

	docSvc := &documents.Service{
		Store:           store,
		Repo:            docRepo,
		StorageProvider: cfg.ObjectStoreType,
	}
	parseSvc := &parse.Service{
		Cascade: cascade,
		Matcher: matcher,
		Repo:    parsesRepo,
		Docs:    docSvc,
	}

	docHandler := documents.NewHandler(docSvc)
	parseHandler := parse.NewHandler(parseSvc)
	if cfg.MaxUploadBytes > 0 {
		parseHandler.MaxUploadSize = cfg.MaxUploadBytes
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		DocumentsRepo:    docRepo,
		ParsesRepo:       parsesRepo,
		DocumentsService: docSvc,
		ParseService:     parseSvc,
		DocumentsHandler: docHandler,
		ParseHandler:     parseHandler,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		ParseHandler:     parseHandler,
		DocumentsHandler: docHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	// Lambda instances share the database; migrations run via cmd/migrate.
	if !db.IsLambdaRuntime() {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
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

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
