package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lizet96/citas-backend/config"
	"github.com/lizet96/citas-backend/database"
	"github.com/lizet96/citas-backend/metrics"
	"github.com/lizet96/citas-backend/models"
	"github.com/lizet96/citas-backend/routes"
	"github.com/lizet96/citas-backend/store"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: No se pudo cargar el archivo .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuración: %v", err)
	}
	logger := newLogger(cfg)

	// Conectar al almacenamiento
	ctx := context.Background()
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("no se pudo abrir el almacenamiento", slog.String("driver", cfg.StoreDriver), slog.Any("error", err))
		os.Exit(1)
	}

	app := routes.NewApp(routes.Deps{
		Config:  cfg,
		Store:   st,
		Metrics: metrics.NewManager(true),
		Logger:  logger,
	})

	go func() {
		logger.Info("servidor iniciado", slog.String("addr", cfg.Addr()), slog.String("driver", cfg.StoreDriver))
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error("servidor detenido", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Apagado ordenado
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("apagando servidor")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("apagado del servidor", slog.Any("error", err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Error("cerrar almacenamiento", slog.Any("error", err))
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.CitaStore, error) {
	switch cfg.StoreDriver {
	case store.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		pg := store.NewPostgresStore(pool)
		if err := pg.Migrar(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return pg, nil
	case store.DriverMemory:
		logger.Warn("usando almacenamiento en memoria, los datos no persisten")
		return store.NewMemoryStore(), nil
	default:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoTimeout, logger)
		if err != nil {
			return nil, err
		}
		return store.NewMongoStore(client, cfg.MongoDB, cfg.MongoCollection), nil
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.Environment == models.EnvironmentProduction {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
