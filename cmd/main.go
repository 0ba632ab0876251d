package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"campus-chat/auth"
	"campus-chat/gateway"
	"campus-chat/httpapi"
	"campus-chat/moderation"
	"campus-chat/realtime"
	"campus-chat/repositories"
	"campus-chat/runtime/workers"
	"campus-chat/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the server and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	replacement, err := config.CharacterRune()
	if err != nil {
		return err
	}

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	indexWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = indexWriter.Close()
	}()

	// 3. Repositories & Services
	messageRepository := repositories.NewMessageRepository(db, log)
	chatRepository := repositories.NewChatRepository(db)
	userRepository := repositories.NewUserRepository(db)
	searchIndex := repositories.NewSearchIndex(indexWriter, log)

	moderator, err := moderation.NewDefaultModerator(replacement, log)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}

	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(userRepository, tokens)
	chatService := services.NewChatService(
		messageRepository, chatRepository, userRepository, searchIndex, moderator, log)

	// 4. Realtime gateway under supervision
	gw := gateway.NewGateway(log,
		realtime.NewPresenceRegistry(),
		realtime.NewTypingTracker(),
		realtime.NewRoster(log),
		config.BufferSize,
	)
	wsHandler := gateway.NewWSHandler(log, gw, func(token string) (string, error) {
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			return "", err
		}
		return claims.UserID, nil
	}, config.ConnectionBufferSize)

	sup := workers.NewSupervisor(log)
	sup.Add(gw, workers.NewHeartbeatWorker(log, config.HeartbeatInterval))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	// 6. HTTP server (REST + WebSocket upgrade)
	server := httpapi.NewServer(httpapi.Options{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Log:     log,
		Tokens:  tokens,
		AuthSvc: authService,
		ChatSvc: chatService,
		WS:      wsHandler,
	})

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx := context.Background()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("http server shutdown", "error", err)
	}
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
