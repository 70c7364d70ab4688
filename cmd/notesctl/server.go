package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/notes-in-go/pkg/config"
	"github.com/doodlesbykumbi/notes-in-go/pkg/db"
	"github.com/doodlesbykumbi/notes-in-go/pkg/password"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/endpoints"
	gormstore "github.com/doodlesbykumbi/notes-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/notes-in-go/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the notes application server",
	Long: `Run the notes application server

To run the server requires the environment variables NOTES_TOKEN_SIGNING_KEY and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		signingKeyB64, ok := os.LookupEnv("NOTES_TOKEN_SIGNING_KEY")
		if !ok || signingKeyB64 == "" {
			fmt.Fprintln(os.Stderr, "NOTES_TOKEN_SIGNING_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		signingKey, err := base64.StdEncoding.DecodeString(signingKeyB64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad NOTES_TOKEN_SIGNING_KEY:", err)
			os.Exit(1)
		}
		if len(signingKey) < 32 {
			fmt.Fprintln(os.Stderr, "NOTES_TOKEN_SIGNING_KEY must decode to at least 32 bytes")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		usersStore := gormstore.NewUsersStore(database)
		notesStore := gormstore.NewNotesStore(database)
		issuer := token.NewIssuer(signingKey, cfg.TokenTTLDuration())
		hasher := password.NewHasher()

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(usersStore, notesStore, issuer, hasher, database, host, port)

		endpoints.RegisterAll(s)

		// Reload configuration when the config file changes
		stopWatch, err := config.Watch()
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			defer stopWatch()
		}

		errs := make(chan error, 1)
		go func() {
			errs <- s.Start()
		}()

		log.Printf("Running server at http://%s:%s...\n", host, port)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errs:
			log.Fatal(err)
		case sig := <-stop:
			log.Printf("Received %s, shutting down...", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				log.Printf("Shutdown error: %v", err)
			}
			if sqlDB, err := database.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
