package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/rs/zerolog/log"
)

// FileWatcher polls a dataset file and calls onChange when it is written or replaced
type FileWatcher struct {
	watcher  *watcher.Watcher
	path     string
	interval time.Duration
	onChange func(path string)
}

func NewFileWatcher(path string, interval time.Duration, onChange func(path string)) (*FileWatcher, error) {
	w := watcher.New()
	// Several writes within one poll are reported once
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write, watcher.Create, watcher.Rename, watcher.Move)
	if err := w.Add(path); err != nil {
		return nil, fmt.Errorf("could not watch '%s': %w", path, err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     path,
		interval: interval,
		onChange: onChange,
	}, nil
}

// Run polls until ctx is done or Stop is called
func (fw *FileWatcher) Run(ctx context.Context) error {
	go fw.eventListener()
	go func() {
		select {
		case <-ctx.Done():
			// Close is a no-op on a watcher that has not started yet
			fw.watcher.Wait()
			fw.Stop()
		case <-fw.watcher.Closed:
		}
	}()

	log.Info().Str("path", fw.path).Dur("interval", fw.interval).Msg("Watching dataset")
	return fw.watcher.Start(fw.interval)
}

// Wait blocks until the watcher has started polling
func (fw *FileWatcher) Wait() {
	fw.watcher.Wait()
}

func (fw *FileWatcher) Stop() {
	fw.watcher.Close()
}

// eventListener listens for file writes and replacements
func (fw *FileWatcher) eventListener() {
	for {
		select {
		case event := <-fw.watcher.Event:
			log.Debug().Str("op", event.Op.String()).Str("path", event.Path).Msg("New file event")
			fw.onChange(fw.path)
		case err := <-fw.watcher.Error:
			log.Error().Err(err).Str("path", fw.path).Msg("Error event")
		case <-fw.watcher.Closed:
			return
		}
	}
}
