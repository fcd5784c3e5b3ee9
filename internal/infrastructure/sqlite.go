package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/filmstats/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS films (
	id    INTEGER PRIMARY KEY,
	title TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS film_directors (
	film_id  INTEGER NOT NULL REFERENCES films(id),
	position INTEGER NOT NULL,
	name     TEXT NOT NULL,
	PRIMARY KEY (film_id, position)
);
CREATE TABLE IF NOT EXISTS film_actors (
	film_id  INTEGER NOT NULL REFERENCES films(id),
	position INTEGER NOT NULL,
	name     TEXT NOT NULL,
	PRIMARY KEY (film_id, position)
);
`

// SQLite stores a parsed dataset in an SQLite database file
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and creates if needed) the database at path
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database '%s': %w", path, err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create schema in '%s': %w", path, err)
	}
	log.Debug().Str("path", path).Msg("Opened SQLite database")

	return &SQLite{
		db: db,
	}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// ExportFilms replaces the content of the database with films, in a single transaction
func (s *SQLite) ExportFilms(ctx context.Context, films []model.Film) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"film_actors", "film_directors", "films"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("could not clear table %s: %w", table, err)
		}
	}

	filmStmt, err := tx.PrepareContext(ctx, "INSERT INTO films (id, title) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer filmStmt.Close()
	directorStmt, err := tx.PrepareContext(ctx, "INSERT INTO film_directors (film_id, position, name) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer directorStmt.Close()
	actorStmt, err := tx.PrepareContext(ctx, "INSERT INTO film_actors (film_id, position, name) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer actorStmt.Close()

	for i, film := range films {
		id := i + 1
		if _, err = filmStmt.ExecContext(ctx, id, film.Title); err != nil {
			return fmt.Errorf("could not insert film '%s': %w", film.Title, err)
		}
		for pos, director := range film.Directors {
			if _, err = directorStmt.ExecContext(ctx, id, pos, director); err != nil {
				return fmt.Errorf("could not insert director of '%s': %w", film.Title, err)
			}
		}
		for pos, actor := range film.Actors {
			if _, err = actorStmt.ExecContext(ctx, id, pos, actor); err != nil {
				return fmt.Errorf("could not insert actor of '%s': %w", film.Title, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit export: %w", err)
	}
	log.Info().Int("films", len(films)).Msg("Exported films")
	return nil
}

// CountExportedFilms returns the number of films stored in the database
func (s *SQLite) CountExportedFilms(ctx context.Context) (count int, err error) {
	err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM films").Scan(&count)
	return
}

// GetFilms reads the stored films back, in export order
func (s *SQLite) GetFilms(ctx context.Context) ([]model.Film, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM films ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("could not query films: %w", err)
	}
	defer rows.Close()

	var (
		films []model.Film
		index = make(map[int64]int)
	)
	for rows.Next() {
		var (
			id    int64
			title string
		)
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		index[id] = len(films)
		films = append(films, model.Film{Title: title, Directors: []string{}, Actors: []string{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.fillNames(ctx, "film_directors", films, index, func(f *model.Film, name string) {
		f.Directors = append(f.Directors, name)
	}); err != nil {
		return nil, err
	}
	if err := s.fillNames(ctx, "film_actors", films, index, func(f *model.Film, name string) {
		f.Actors = append(f.Actors, name)
	}); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *SQLite) fillNames(ctx context.Context, table string, films []model.Film, index map[int64]int, add func(*model.Film, string)) error {
	rows, err := s.db.QueryContext(ctx, "SELECT film_id, name FROM "+table+" ORDER BY film_id, position")
	if err != nil {
		return fmt.Errorf("could not query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			filmID int64
			name   string
		)
		if err := rows.Scan(&filmID, &name); err != nil {
			return err
		}
		if i, ok := index[filmID]; ok {
			add(&films[i], name)
		}
	}
	return rows.Err()
}
