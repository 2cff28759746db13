package main

import (
	"chat-relay/auth"
	"chat-relay/directory"
	"chat-relay/internal"
	"chat-relay/relay"
	"chat-relay/runtime/workers"
	"chat-relay/sanitize"
	"chat-relay/services"
	"chat-relay/transport"
	"chat-relay/wire"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning the error to main instead of exiting directly guarantees that
// deferred cleanup (like the database close) always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	// Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Domain components
	store := directory.NewStore(db)
	dir := directory.NewDirectory(log)
	authenticator := auth.NewAuthenticator(log, []byte(config.SessionSecret), config.AuthTokenDuration)
	sanitizer, err := sanitize.New(log, internal.SplitWords(config.CensoredWords), replacement)
	if err != nil {
		return fmt.Errorf("sanitizer setup failed: %w", err)
	}

	// 4. Transport & packet routing
	server := transport.NewWebsocketServer(log)
	chatRelay, err := relay.New(log, server, authenticator, dir, sanitizer, config.HistoryCapacity)
	if err != nil {
		return fmt.Errorf("relay setup failed: %w", err)
	}
	authService := services.NewAuthService(store, authenticator, dir)
	loginHandler := services.NewLoginHandler(log, authService, server)

	server.RegisterHandler(wire.ChatModule, chatRelay.HandlePacket)
	server.RegisterHandler(wire.UsersModule, loginHandler.HandlePacket)
	server.OnConnectionClosed(dir.LogOut)
	dir.SubscribeLogin(chatRelay.OnLogin)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised workers
	mux := http.NewServeMux()
	mux.Handle("/ws", server.Handler())

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewListenerWorker(log, address, mux),
		workers.NewSelfStatsWorker(log, config.MetricInterval),
	)

	log.Info("Starting chat relay", "address", address)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
