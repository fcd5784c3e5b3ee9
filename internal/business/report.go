package business

import (
	"github.com/Agurato/filmstats/internal/model"
)

type ReportOptions struct {
	Letter   rune // letter of the "title begins with" list
	TopWords int
	// AllTitleLetters counts every title by its first letter instead of only single letter titles
	AllTitleLetters bool
}

// BuildReport runs every statistic over films, one after the other
func (s Stats) BuildReport(films []model.Film, opts ReportOptions) model.Report {
	report := model.Report{
		FilmCount:            s.CountFilms(films),
		WithoutDirectorCount: s.CountFilmsWithoutDirector(films),
		Letter:               string(opts.Letter),
		FilmsStartingWith:    s.FilmsStartingWith(films, opts.Letter),
		DirectorsWhoAct:      s.CountDirectorsWhoAct(films),
	}
	if film, ok := s.FilmWithMostActors(films); ok {
		report.MostActors = &film
	}
	report.ActorCredits = s.CountActorCredits(films)
	report.DistinctActors = s.CountDistinctActors(films)
	if opts.AllTitleLetters {
		report.LetterCounts = s.StartingLetterCounts(films)
	} else {
		report.LetterCounts = s.SingleLetterTitleCounts(films)
	}
	report.CommonWords = s.MostCommonFirstWords(films, opts.TopWords)
	report.TopDirector, report.TopDirectorFilms = s.DirectorWithMostFilms(films)

	return report
}
