package business

import (
	"cmp"
	"runtime"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/Agurato/filmstats/internal/model"
)

// Stats computes statistics over an immutable slice of films.
// Counting queries are spread over a pool of workers on large datasets
type Stats struct {
	workers int
}

func NewStats(workers int) *Stats {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Stats{
		workers: workers,
	}
}

// CountFilms returns the number of films with a title
func (s Stats) CountFilms(films []model.Film) int {
	return s.countBy(films, func(f model.Film) bool {
		return f.Title != ""
	})
}

// CountUntitledFilms returns the number of films with an empty title
func (s Stats) CountUntitledFilms(films []model.Film) int {
	return s.countBy(films, func(f model.Film) bool {
		return f.Title == ""
	})
}

// CountFilmsWithoutDirector returns the number of films with no registered director name
func (s Stats) CountFilmsWithoutDirector(films []model.Film) int {
	return s.countBy(films, func(f model.Film) bool {
		return !f.HasDirector()
	})
}

// FilmsStartingWith returns the films whose title starts with letter. Untitled films never match
func (s Stats) FilmsStartingWith(films []model.Film, letter rune) []model.Film {
	return lo.Filter(films, func(f model.Film, _ int) bool {
		first, size := utf8.DecodeRuneInString(f.Title)
		return size > 0 && first == letter
	})
}

// CountDirectorsWhoAct returns the number of films where a director is also credited as an actor
func (s Stats) CountDirectorsWhoAct(films []model.Film) int {
	return s.countBy(films, func(f model.Film) bool {
		return lo.ContainsBy(f.Directors, func(director string) bool {
			return director != "" && lo.Contains(f.Actors, director)
		})
	})
}

// FilmWithMostActors returns the film with the most actors, the first one on ties
func (s Stats) FilmWithMostActors(films []model.Film) (model.Film, bool) {
	if len(films) == 0 {
		return model.Film{}, false
	}
	return lo.MaxBy(films, func(a, b model.Film) bool {
		return a.ActorCount() > b.ActorCount()
	}), true
}

// CountActorCredits returns the total number of actor credits, duplicates included
func (s Stats) CountActorCredits(films []model.Film) int {
	return parallelSum(films, s.workers, model.Film.ActorCount)
}

// CountDistinctActors returns the number of different actor names
func (s Stats) CountDistinctActors(films []model.Film) int {
	actors := lo.FlatMap(films, func(f model.Film, _ int) []string {
		return f.Actors
	})
	return len(lo.Uniq(actors))
}

// SingleLetterTitleCounts counts the films whose whole title is a single ASCII letter
func (s Stats) SingleLetterTitleCounts(films []model.Film) []model.LetterCount {
	return letterCounts(films, func(title string) bool {
		return len(title) == 1 && isASCIILetter(title[0])
	})
}

// StartingLetterCounts counts the films by the first letter of their title,
// for titles starting with an ASCII letter
func (s Stats) StartingLetterCounts(films []model.Film) []model.LetterCount {
	return letterCounts(films, func(title string) bool {
		return len(title) > 0 && isASCIILetter(title[0])
	})
}

// MostCommonFirstWords ranks the first words of the titles, most frequent first.
// Words with the same count are sorted alphabetically
func (s Stats) MostCommonFirstWords(films []model.Film, n int) []model.WordCount {
	words := lo.FilterMap(films, func(f model.Film, _ int) (string, bool) {
		word, _, _ := strings.Cut(f.Title, " ")
		return word, word != ""
	})
	groups := lo.GroupBy(words, func(word string) string {
		return word
	})
	ranking := lo.MapToSlice(groups, func(word string, occurrences []string) model.WordCount {
		return model.WordCount{Word: word, Count: len(occurrences)}
	})
	slices.SortFunc(ranking, func(a, b model.WordCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Word, b.Word)
	})

	if n >= 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// DirectorWithMostFilms returns the primary director of the most films and these films, in dataset order.
// Directors with the same count are sorted alphabetically. Returns "" when no film has a primary director
func (s Stats) DirectorWithMostFilms(films []model.Film) (string, []model.Film) {
	directed := lo.Filter(films, func(f model.Film, _ int) bool {
		return f.PrimaryDirector() != ""
	})
	if len(directed) == 0 {
		return "", nil
	}
	byDirector := lo.GroupBy(directed, model.Film.PrimaryDirector)

	var (
		top      string
		topFilms []model.Film
	)
	for director, directorFilms := range byDirector {
		if len(directorFilms) > len(topFilms) || (len(directorFilms) == len(topFilms) && director < top) {
			top = director
			topFilms = directorFilms
		}
	}
	return top, topFilms
}

func (s Stats) countBy(films []model.Film, predicate func(model.Film) bool) int {
	return parallelSum(films, s.workers, func(f model.Film) int {
		return lo.Ternary(predicate(f), 1, 0)
	})
}

func letterCounts(films []model.Film, keep func(title string) bool) []model.LetterCount {
	kept := lo.Filter(films, func(f model.Film, _ int) bool {
		return keep(f.Title)
	})
	groups := lo.GroupBy(kept, func(f model.Film) string {
		return f.Title[:1]
	})
	counts := lo.MapToSlice(groups, func(letter string, letterFilms []model.Film) model.LetterCount {
		return model.LetterCount{Letter: letter, Count: len(letterFilms)}
	})
	slices.SortFunc(counts, func(a, b model.LetterCount) int {
		return cmp.Compare(a.Letter, b.Letter)
	})
	return counts
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
