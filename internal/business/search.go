package business

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Agurato/filmstats/internal/model"
	"github.com/Agurato/filmstats/internal/utilities"
)

type searchResult struct {
	film     model.Film
	distance int
}

// SearchFilms returns the films whose title contains or is close to the query,
// closest first then by title.
// A limit of 0 returns every match
func SearchFilms(films []model.Film, query string, limit int) []model.Film {
	query = normalizeTitle(query)
	if query == "" {
		return nil
	}
	// Levenshtein distance so that the title corresponds at least a little bit
	maxDistance := len(query) / 3

	var results []searchResult
	for _, film := range films {
		title := normalizeTitle(film.Title)
		if title == "" {
			continue
		}
		distance := levenshtein.ComputeDistance(query, title)
		if strings.Contains(title, query) || distance <= maxDistance {
			results = append(results, searchResult{film: film, distance: distance})
		}
	}

	slices.SortStableFunc(results, func(a, b searchResult) int {
		if a.distance != b.distance {
			return cmp.Compare(a.distance, b.distance)
		}
		return cmp.Compare(a.film.Title, b.film.Title)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	matches := make([]model.Film, 0, len(results))
	for _, r := range results {
		matches = append(matches, r.film)
	}
	return matches
}

func normalizeTitle(title string) string {
	return utilities.RemoveArticle(strings.ToLower(strings.TrimSpace(title)))
}
