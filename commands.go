package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rpupo63/cms-admin-backend/api"
	"github.com/rpupo63/cms-admin-backend/config"
	"github.com/rpupo63/cms-admin-backend/database"
	"github.com/rpupo63/cms-admin-backend/models"
	"github.com/rpupo63/cms-admin-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	envFiles []string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "cms-admin",
		Short:        "Admin dashboard backend for blog posts, customers and policy agreements",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(opts)
			},
		},
		newGenerateCommand(opts),
		&cobra.Command{
			Use:   "report",
			Short: "List database columns that no model maps",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReport(opts)
			},
		},
	)

	return root
}

func newGenerateCommand(opts *options) *cobra.Command {
	var outPath string
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Migrate the tables and generate typed query helpers",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := setup(opts)
			db, err := database.Open(c)
			if err != nil {
				return err
			}

			if !skipMigrate {
				log.Info().Msg("Migrating models...")
				if err := models.Migrate(db); err != nil {
					return err
				}
			}

			log.Info().Str("out", outPath).Msg("Generating query helpers...")
			models.GenerateQueries(db, outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "./generated", "output directory for generated code")
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "only generate code")
	return cmd
}

// setup loads configuration and configures the global logger
func setup(opts *options) map[string]string {
	c := config.Load(opts.envFiles...)

	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(config.GetString(c, "LOG_FORMAT", "json"), "console") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return c
}

func runServe(opts *options) error {
	c := setup(opts)
	log.Info().Msg("Initializing app...")

	db, err := database.Open(c)
	if err != nil {
		return err
	}

	var uploader *services.Uploader
	if config.GetString(c, "S3_BUCKET", "") != "" {
		store, err := services.NewS3FileStore(context.Background(), c)
		if err != nil {
			return err
		}
		uploader = services.NewUploader(store, config.GetString(c, "FILE_DOWNLOAD_BASE_URL", "/files"))
	} else {
		log.Warn().Msg("S3_BUCKET not set, file endpoints are disabled")
	}

	server, err := api.NewServer(database.New(db), uploader, c)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(time.Duration(config.GetInt(c, "SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second)
	return serveExitError(fatalErr)
}

// interruptError is sent on the server error channel when the process is signalled
type interruptError struct {
	signal os.Signal
}

func (e interruptError) Error() string {
	return e.signal.String()
}

// serveExitError maps the reason the server stopped to the command result. Signals
// and a closed server are a clean exit; anything else, such as a busy port, is not.
func serveExitError(err error) error {
	var interrupt interruptError
	if err == nil || errors.Is(err, http.ErrServerClosed) || errors.As(err, &interrupt) {
		return nil
	}
	return fmt.Errorf("server stopped: %w", err)
}

func runReport(opts *options) error {
	c := setup(opts)
	db, err := database.Open(c)
	if err != nil {
		return err
	}

	reports, err := models.ColumnMismatchReport(db)
	if err != nil {
		return err
	}

	fmt.Println("=== COLUMN MISMATCH REPORT ===")
	total := 0
	for _, report := range reports {
		fmt.Printf("\n--- Table: %s ---\n", report.Table)
		if !report.Exists {
			fmt.Println("Table does not exist yet (run generate to create it)")
			continue
		}
		if len(report.Unmapped) == 0 {
			fmt.Println("All columns are accounted for in the model.")
		} else {
			fmt.Printf("Found %d columns not accounted for in model:\n", len(report.Unmapped))
			for _, col := range report.Unmapped {
				fmt.Printf("  - %s\n", col)
			}
		}
		for _, col := range report.NotInTable {
			fmt.Printf("  ! model column missing from table: %s\n", col)
		}
		total += len(report.Unmapped)
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Total mismatched columns across all tables: %d\n", total)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- interruptError{signal: <-c}
}
