// Package server initializes and runs the vault server. It wires the
// database, migrations, the field cipher and the services behind the HTTP
// endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
	"github.com/dmitrijs2005/drivenpass/internal/logging"
	"github.com/dmitrijs2005/drivenpass/internal/server/config"
	"github.com/dmitrijs2005/drivenpass/internal/server/models"
	"github.com/dmitrijs2005/drivenpass/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/drivenpass/internal/server/rest"
	"github.com/dmitrijs2005/drivenpass/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.RESTServer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	cipher, err := cryptox.NewCipher(cfg.EncryptionSecret)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	userService := services.NewUserService(db, rm, cfg)
	eraseService := services.NewEraseService(db, rm)
	cardVault := services.NewVault[*models.Card](rm.Cards(db), cipher)
	credentialVault := services.NewVault[*models.Credential](rm.Credentials(db), cipher)
	noteVault := services.NewVault[*models.Note](rm.Notes(db), cipher)

	srv := rest.NewRESTServer(
		cfg.Address,
		logger,
		rest.NewAuthHandler(userService),
		rest.NewSecretHandler[*models.Card](cardVault, "Card", rest.ParseCardRequest),
		rest.NewSecretHandler[*models.Credential](credentialVault, "Credential", rest.ParseCredentialRequest),
		rest.NewSecretHandler[*models.Note](noteVault, "Note", rest.ParseNoteRequest),
		rest.NewEraseHandler(eraseService),
		userService,
		cfg.SecretKey,
	)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
