package printer

import (
	"io"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Agurato/filmstats/internal/model"
)

const none = "(none)"

// Printer writes a report as labelled plain text blocks
type Printer struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w: w,
		p: message.NewPrinter(language.English),
	}
}

// PrintReport writes every block of the report, in order. It returns the first write error
func (pr *Printer) PrintReport(report model.Report) error {
	pr.err = nil

	pr.block("Number of movies contained in the database:", pr.count(report.FilmCount))
	pr.block("Number of movies for which no director name is registered:", pr.count(report.WithoutDirectorCount))
	pr.block("List of movies whose title begins with '"+report.Letter+"':", filmTitles(report.FilmsStartingWith)...)
	pr.block("Number of directors who are also mentioned as actors:", pr.count(report.DirectorsWhoAct))
	if report.MostActors != nil {
		pr.block("The movie with maximum number of actors:",
			"Title: "+report.MostActors.Title,
			"Director(s): "+list(report.MostActors.Directors),
			"Actors: "+list(report.MostActors.Actors))
	} else {
		pr.block("The movie with maximum number of actors:", none)
	}
	pr.block("Number of all actors:", pr.count(report.ActorCredits))
	pr.block("Number of all distinct actors:", pr.count(report.DistinctActors))
	pr.block("Map of characters", "{"+strings.Join(lo.Map(report.LetterCounts, func(lc model.LetterCount, _ int) string {
		return lc.Letter + "=" + pr.count(lc.Count)
	}), ", ")+"}")
	pr.block("List of most common words in movie title:", list(lo.Map(report.CommonWords, func(wc model.WordCount, _ int) string {
		return wc.Word + "=" + pr.count(wc.Count)
	})))
	if report.TopDirector != "" && len(report.TopDirectorFilms) > 0 {
		// Whole director list of the first film, co-directors included
		pr.block("Director with most movies:", list(report.TopDirectorFilms[0].Directors))
		pr.block("Films:", filmTitles(report.TopDirectorFilms)...)
	} else {
		pr.block("Director with most movies:", none)
	}

	return pr.err
}

// count formats n as plain digits, without grouping separators
func (pr *Printer) count(n int) string {
	return pr.p.Sprint(number.Decimal(n, number.NoSeparator()))
}

func (pr *Printer) block(label string, lines ...string) {
	pr.write(label + "\n")
	for _, line := range lines {
		pr.write(line + "\n")
	}
	pr.write("\n")
}

func (pr *Printer) write(s string) {
	if pr.err != nil {
		return
	}
	_, pr.err = io.WriteString(pr.w, s)
}

// PrintFilms writes one film per line with its directors and actors
func (pr *Printer) PrintFilms(films []model.Film) error {
	pr.err = nil
	for _, film := range films {
		pr.write(film.Title + " " + list(film.Directors) + " " + list(film.Actors) + "\n")
	}
	return pr.err
}

func filmTitles(films []model.Film) []string {
	return lo.Map(films, func(f model.Film, _ int) string {
		return f.Title
	})
}

func list(elems []string) string {
	return "[" + strings.Join(elems, ", ") + "]"
}
