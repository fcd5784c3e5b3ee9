package business

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Agurato/filmstats/internal/model"
)

type FilmStorer interface {
	GetFilms() ([]model.Film, error)
}

// FilmManager holds the loaded films. The slice it hands out is never modified,
// a reload replaces it as a whole
type FilmManager struct {
	FilmStorer

	mu    sync.RWMutex
	films []model.Film
}

// NewFilmManager loads the films from fs
func NewFilmManager(fs FilmStorer) (*FilmManager, error) {
	fm := &FilmManager{
		FilmStorer: fs,
	}
	if err := fm.Reload(); err != nil {
		return nil, err
	}
	return fm, nil
}

// Reload reads the films again. On error the current films are kept
func (fm *FilmManager) Reload() error {
	films, err := fm.FilmStorer.GetFilms()
	if err != nil {
		return fmt.Errorf("could not load films: %w", err)
	}

	fm.mu.Lock()
	fm.films = films
	fm.mu.Unlock()

	log.Debug().Int("films", len(films)).Msg("Films loaded")
	return nil
}

func (fm *FilmManager) GetFilms() []model.Film {
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	return fm.films
}
