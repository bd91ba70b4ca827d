package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"olympiad-cms/internal/config"
	"olympiad-cms/internal/db"
	"olympiad-cms/internal/event"
	"olympiad-cms/internal/httpapi"
	"olympiad-cms/internal/store"
	"olympiad-cms/internal/store/mongostore"
	"olympiad-cms/internal/store/sqlstore"
	"olympiad-cms/internal/upload"
)

func main() {
	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "[olympiad-api] ", log.LstdFlags|log.Lshortfile)

	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to connect to %s store: %v", cfg.StoreDriver, err)
	}
	logger.Printf("%s store initialised", cfg.StoreDriver)

	uploads, err := upload.NewManager(cfg.UploadDir, logger)
	if err != nil {
		logger.Fatalf("failed to init uploads dir: %v", err)
	}

	var publisher event.Publisher = event.NopPublisher{}
	if cfg.RabbitURI != "" {
		rp, err := event.NewRabbitPublisher(cfg.RabbitURI, cfg.RabbitExchange, logger)
		if err != nil {
			logger.Fatalf("failed to init rabbit publisher: %v", err)
		}
		publisher = rp
		logger.Printf("content events publishing to exchange %q", cfg.RabbitExchange)
	}
	defer publisher.Close()

	server := httpapi.NewServer(st, uploads, publisher, logger)

	ln, err := httpapi.Listen(cfg.Port, cfg.PortProbes, logger)
	if err != nil {
		logger.Fatalf("failed to bind: %v", err)
	}

	srv := &http.Server{Handler: server.Handler(cfg.AllowedOrigins)}
	go func() {
		logger.Printf("HTTP server listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("HTTP server error: %v", err)
		}
	}()

	// Block until we receive a signal / ctx cancelled
	<-ctx.Done()
	logger.Println("shutdown signal received, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("HTTP server shutdown error: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Printf("store close error: %v", err)
	}

	logger.Println("shutdown complete")
}

func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverLibSQL:
		conn, err := db.OpenLibSQL(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return sqlstore.New(ctx, conn, logger)
	default:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return mongostore.New(client, client.Database(cfg.MongoDBName), logger)
	}
}
