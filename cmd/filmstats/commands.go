package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Agurato/filmstats/internal/business"
	"github.com/Agurato/filmstats/internal/infrastructure"
	"github.com/Agurato/filmstats/internal/model"
	"github.com/Agurato/filmstats/internal/service/printer"
	"github.com/Agurato/filmstats/internal/service/server"
)

func (a *app) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [file]",
		Short: "Print every statistic of the dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runReport,
	}
}

func (a *app) runReport(cmd *cobra.Command, args []string) error {
	films, err := a.loadFilms(a.datasetPath(args))
	if err != nil {
		return err
	}
	return a.printReport(cmd, films)
}

func (a *app) newSearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Find films by approximate title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			films, err := a.loadFilms(a.datasetPath(nil))
			if err != nil {
				return err
			}
			return printer.NewPrinter(cmd.OutOrStdout()).PrintFilms(business.SearchFilms(films, args[0], limit))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of results, 0 for all")
	return cmd
}

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the statistics as a JSON API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.datasetPath(args)
			fm, err := business.NewFilmManager(infrastructure.NewDataset(path))
			if err != nil {
				return err
			}
			server.SetFilmsLoaded(len(fm.GetFilms()))

			handler := server.NewStatsHandler(fm, a.stats(), business.NewPaginater[model.Film](a.conf.ItemsPerPage), a.reportOptions())
			router := server.NewServer(handler)

			if !a.conf.Watch {
				return server.Run(cmd.Context(), a.conf.ListenAddr, router)
			}

			fw, err := infrastructure.NewFileWatcher(path, a.conf.WatchInterval, func(string) {
				if err := fm.Reload(); err != nil {
					log.WithField("error", err).Errorln("Could not reload dataset, keeping previous films")
					return
				}
				server.SetFilmsLoaded(len(fm.GetFilms()))
				log.WithField("path", path).Infoln("Dataset reloaded")
			})
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return fw.Run(ctx)
			})
			g.Go(func() error {
				defer fw.Stop()
				return server.Run(ctx, a.conf.ListenAddr, router)
			})
			return g.Wait()
		},
	}
}

func (a *app) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Print the report again every time the dataset changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.datasetPath(args)
			fm, err := business.NewFilmManager(infrastructure.NewDataset(path))
			if err != nil {
				return err
			}
			if err := a.printReport(cmd, fm.GetFilms()); err != nil {
				return err
			}

			fw, err := infrastructure.NewFileWatcher(path, a.conf.WatchInterval, func(string) {
				if err := fm.Reload(); err != nil {
					log.WithField("error", err).Errorln("Could not reload dataset, keeping previous report")
					return
				}
				if err := a.printReport(cmd, fm.GetFilms()); err != nil {
					log.WithField("error", err).Errorln("Could not print report")
				}
			})
			if err != nil {
				return err
			}
			return fw.Run(cmd.Context())
		},
	}
}

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <database> [file]",
		Short: "Write the parsed dataset to an SQLite database",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			films, err := a.loadFilms(a.datasetPath(args[1:]))
			if err != nil {
				return err
			}
			return exportFilms(cmd.Context(), args[0], films, cmd)
		},
	}
}

func exportFilms(ctx context.Context, dbPath string, films []model.Film, cmd *cobra.Command) error {
	db, err := infrastructure.NewSQLite(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ExportFilms(ctx, films); err != nil {
		return err
	}
	count, err := db.CountExportedFilms(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d films to %s\n", count, dbPath)
	return nil
}
