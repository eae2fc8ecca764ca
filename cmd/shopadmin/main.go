package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/shopadmin/internal/client/admin"
	"github.com/iudanet/shopadmin/internal/client/api"
	"github.com/iudanet/shopadmin/internal/client/cli"
	"github.com/iudanet/shopadmin/internal/client/iocli"
	"github.com/iudanet/shopadmin/internal/client/session"
	"github.com/iudanet/shopadmin/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (env: SHOPADMIN_SERVER)")
	dbPath := flag.String("db", "shopadmin.db", "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент и сервисы
	apiClient := api.NewClient(resolveServerURL(*serverURL), boltStorage, logger)
	sessionService := session.NewService(apiClient, boltStorage, logger)
	adminService := admin.NewService(apiClient, logger)
	stdio := iocli.NewStdio()

	// Принудительный выход из сессии: чистка уже сделана, осталось сказать пользователю
	sessionService.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Please run 'shopadmin login' to authenticate again.")
	})

	console := cli.New(sessionService, adminService, stdio)
	console.Run(ctx, command, args[1:])
}

// resolveServerURL выбирает адрес сервера: флаг, затем env, затем значение по умолчанию
func resolveServerURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("SHOPADMIN_SERVER"); env != "" {
		return env
	}
	return defaultServerURL
}

func printVersion() {
	fmt.Printf("ShopAdmin Console\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
