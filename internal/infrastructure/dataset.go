package infrastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/filmstats/internal/model"
)

const (
	fieldSeparator = "|"
	listSeparator  = ","
	maxLineSize    = 1024 * 1024
)

// title|[director, director]|[actor, actor]
var filmLineRegex = regexp2.MustCompile(`^(?<title>[^|]*)(?:\|(?<directors>[^|]*)(?:\|(?<actors>.*))?)?$`, regexp2.None)

// Dataset reads films from a flat text file, one film per line
type Dataset struct {
	path string
}

func NewDataset(path string) *Dataset {
	return &Dataset{
		path: path,
	}
}

func (d Dataset) Path() string {
	return d.path
}

// GetFilms reads the whole dataset file
func (d Dataset) GetFilms() ([]model.Film, error) {
	return ReadFilms(d.path)
}

// ReadFilms opens the file at path and parses every line as a film
func ReadFilms(path string) ([]model.Film, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", model.ErrDatasetNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open dataset '%s': %w", path, err)
	}
	defer file.Close()

	films, err := ParseFilms(file)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset '%s': %w", path, err)
	}
	log.Debug().Str("path", path).Int("films", len(films)).Msg("Loaded dataset")
	return films, nil
}

// ParseFilms parses one film per line of r, in order
func ParseFilms(r io.Reader) ([]model.Film, error) {
	var films []model.Film

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		film, err := ParseFilmLine(scanner.Text())
		if err != nil {
			return nil, err
		}
		films = append(films, film)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return films, nil
}

// ParseFilmLine parses a single dataset line. Missing fields give empty lists
func ParseFilmLine(line string) (model.Film, error) {
	line = strings.TrimSuffix(line, "\r")

	match, err := filmLineRegex.FindStringMatch(line)
	if err != nil {
		return model.Film{}, fmt.Errorf("could not parse line %q: %w", line, err)
	}
	if match == nil {
		// Cannot happen with the current expression, every field is optional
		return model.Film{Title: strings.TrimSpace(line)}, nil
	}

	return model.Film{
		Title:     strings.TrimSpace(match.GroupByName("title").String()),
		Directors: splitList(match.GroupByName("directors").String(), true),
		Actors:    splitList(match.GroupByName("actors").String(), false),
	}, nil
}

// splitList splits a "[a, b]" or "a, b" list. Empty entries are kept only if keepEmpty is set
func splitList(field string, keepEmpty bool) []string {
	field = strings.TrimSpace(field)
	field = strings.TrimPrefix(field, "[")
	field = strings.TrimSuffix(field, "]")
	if strings.TrimSpace(field) == "" {
		return []string{}
	}

	parts := strings.Split(field, listSeparator)
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" && !keepEmpty {
			continue
		}
		list = append(list, part)
	}
	return list
}
