package server

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/Agurato/filmstats/internal/business"
	"github.com/Agurato/filmstats/internal/model"
)

const defaultSearchLimit = 20

type FilmGetter interface {
	GetFilms() []model.Film
}

type StatsComputer interface {
	BuildReport(films []model.Film, opts business.ReportOptions) model.Report
	FilmsStartingWith(films []model.Film, letter rune) []model.Film
	DirectorWithMostFilms(films []model.Film) (string, []model.Film)
}

type StatsHandler struct {
	FilmGetter
	StatsComputer
	paginater     *business.Paginater[model.Film]
	reportOptions business.ReportOptions
}

func NewStatsHandler(fg FilmGetter, sc StatsComputer, p *business.Paginater[model.Film], opts business.ReportOptions) *StatsHandler {
	return &StatsHandler{
		FilmGetter:    fg,
		StatsComputer: sc,
		paginater:     p,
		reportOptions: opts,
	}
}

// GETReport returns every statistic of the dataset
func (sh StatsHandler) GETReport(c *gin.Context) {
	films := sh.FilmGetter.GetFilms()
	c.JSON(http.StatusOK, sh.StatsComputer.BuildReport(films, sh.reportOptions))
}

// GETFilms returns a page of films, optionally only the ones starting with a letter
func (sh StatsHandler) GETFilms(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}

	films := sh.FilmGetter.GetFilms()
	if startsWith := c.Query("startsWith"); startsWith != "" {
		if utf8.RuneCountInString(startsWith) != 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startsWith must be a single character"})
			return
		}
		letter, _ := utf8.DecodeRuneInString(startsWith)
		films = sh.StatsComputer.FilmsStartingWith(films, letter)
	}

	pagedFilms, pages := sh.paginater.GetPagination(page, films)
	c.JSON(http.StatusOK, gin.H{
		"films": pagedFilms,
		"pages": pages,
		"total": len(films),
	})
}

// GETSearch returns the films whose title is close to the q parameter
func (sh StatsHandler) GETSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	films := business.SearchFilms(sh.FilmGetter.GetFilms(), query, limit)
	if films == nil {
		films = []model.Film{}
	}
	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"films": films,
	})
}

// GETTopDirector returns the director with the most films and these films
func (sh StatsHandler) GETTopDirector(c *gin.Context) {
	director, films := sh.StatsComputer.DirectorWithMostFilms(sh.FilmGetter.GetFilms())
	if director == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no film has a director"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"director": director,
		"films":    films,
	})
}
