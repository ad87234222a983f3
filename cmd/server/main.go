package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"chat-hub/auth"
	server2 "chat-hub/grpc/server"
	"chat-hub/internal"
	"chat-hub/moderation"
	pbaccount "chat-hub/proto/account"
	pbchat "chat-hub/proto/chat"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/runtime/workers"
	"chat-hub/services"
	"chat-hub/sink"
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
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.GetLoggerFromString(config.LogLevel)
	auth.SetSigningKey(config.JWTSigningKey)

	// 2. Storage (BadgerDB + Bluge index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	// 3. Repositories
	userRepository := repositories.NewUserRepository(db)
	roomRepository := repositories.NewRoomRepository(db, log)
	messageRepository := repositories.NewMessageRepository(db, index, log)

	// 4. Moderation
	censoredChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewDefaultModerator(censoredChar)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}

	// 5. Supervision & Orchestration
	sup := workers.NewSupervisor(log)
	sup.Add(workers.NewHealthWorker(log, 15*time.Second))
	registry := runtime.NewRegistry()
	orchestrator := runtime.NewOrchestrator(log, sup, registry,
		userRepository, roomRepository, config.BufferSize, config.SinkTimeout)
	orchestrator.Add(sink.NewActivity(log))

	// 6. Services
	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)
	roomService := services.NewRoomService(roomRepository, userRepository, messageRepository, orchestrator)
	messageService := services.NewMessageService(messageRepository, roomRepository, moderator, orchestrator)

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go orchestrator.Start(ctx)

	// 8. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	authInterceptor := auth.NewInterceptor(userRepository)
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(authInterceptor.Unary),
		grpc.ChainStreamInterceptor(authInterceptor.Stream),
	)
	pbaccount.RegisterAuthServiceServer(s, server2.NewAuthServer(authService))
	pbchat.RegisterChatServiceServer(s, server2.NewChatServer(log, messageService, roomService,
		orchestrator, config.ConnectionBufferSize))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 9. Metrics endpoint & optional store inspector
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf("%s:%d", config.Host, config.MetricsPort), mux)
	}()
	if config.EnableDebugServer {
		internal.StartDebugServer(db, config.DebugPort, nil, nil)
	}

	// 10. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 11. Final Cleanup
	s.GracefulStop()
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
