package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Agurato/filmstats/internal/business"
	"github.com/Agurato/filmstats/internal/config"
	"github.com/Agurato/filmstats/internal/infrastructure"
	"github.com/Agurato/filmstats/internal/model"
	"github.com/Agurato/filmstats/internal/service/printer"
)

type app struct {
	conf     *config.Config
	filePath string
}

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}
	setupLogging(conf.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(conf).ExecuteContext(ctx); err != nil {
		stop()
		log.WithField("error", err).Fatalln("filmstats failed")
	}
}

func setupLogging(level string) {
	logrusLevel, err := log.ParseLevel(level)
	if err != nil {
		logrusLevel = log.InfoLevel
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(logrusLevel)

	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		zerologLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zerologLevel)
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func newRootCmd(conf *config.Config) *cobra.Command {
	a := &app{conf: conf}

	rootCmd := &cobra.Command{
		Use:           "filmstats [file]",
		Short:         "Statistics over a flat text film dataset",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.filePath, "file", "f", "", "dataset path (default $"+config.EnvFile+" or "+config.DefaultFile+")")

	rootCmd.AddCommand(
		a.newReportCmd(),
		a.newSearchCmd(),
		a.newServeCmd(),
		a.newWatchCmd(),
		a.newExportCmd(),
	)
	return rootCmd
}

// datasetPath picks the positional argument, then the --file flag, then the configuration
func (a *app) datasetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if a.filePath != "" {
		return a.filePath
	}
	return a.conf.File
}

func (a *app) stats() *business.Stats {
	return business.NewStats(a.conf.Workers)
}

func (a *app) reportOptions() business.ReportOptions {
	return business.ReportOptions{
		Letter:          a.conf.Letter,
		TopWords:        a.conf.TopWords,
		AllTitleLetters: a.conf.LetterMode == config.LetterModeFirst,
	}
}

func (a *app) loadFilms(path string) ([]model.Film, error) {
	log.WithField("path", path).Debugln("Loading dataset")
	return infrastructure.ReadFilms(path)
}

func (a *app) printReport(cmd *cobra.Command, films []model.Film) error {
	report := a.stats().BuildReport(films, a.reportOptions())
	return printer.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
}
