package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/filmstats/internal/business"
	"github.com/Agurato/filmstats/internal/model"
	"github.com/Agurato/filmstats/internal/service/server"
)

type staticFilms []model.Film

func (sf staticFilms) GetFilms() []model.Film {
	return sf
}

func newTestRouter(films []model.Film) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := server.NewStatsHandler(
		staticFilms(films),
		business.NewStats(2),
		business.NewPaginater[model.Film](2),
		business.ReportOptions{Letter: 'X', TopWords: 10},
	)
	return server.NewServer(handler)
}

func testFilms() []model.Film {
	return []model.Film{
		{Title: "Alpha", Directors: []string{"Jane Doe"}, Actors: []string{"Jane Doe", "Bob"}},
		{Title: "Apple", Directors: []string{}, Actors: []string{"Sam"}},
		{Title: "Xanadu", Directors: []string{"Robert Greenwald"}, Actors: []string{"Olivia Newton-John"}},
		{Title: "Another Alpha", Directors: []string{"Jane Doe"}, Actors: []string{}},
		{Title: "Xerxes", Directors: []string{""}, Actors: []string{}},
	}
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGETReport(t *testing.T) {
	w := get(t, newTestRouter(testFilms()), "/api/report")
	require.Equal(t, http.StatusOK, w.Code)

	var report model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 5, report.FilmCount)
	assert.Equal(t, 2, report.WithoutDirectorCount)
	assert.Len(t, report.FilmsStartingWith, 2)
	assert.Equal(t, 1, report.DirectorsWhoAct)
	assert.Equal(t, 4, report.ActorCredits)
	assert.Equal(t, 4, report.DistinctActors)
	assert.Equal(t, "Jane Doe", report.TopDirector)
}

func TestGETFilms(t *testing.T) {
	router := newTestRouter(testFilms())

	type filmsResponse struct {
		Films []model.Film       `json:"films"`
		Pages []model.Pagination `json:"pages"`
		Total int                `json:"total"`
	}

	t.Run("Page", func(t *testing.T) {
		w := get(t, router, "/api/films?page=2")
		require.Equal(t, http.StatusOK, w.Code)
		var res filmsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 5, res.Total)
		require.Len(t, res.Films, 2)
		assert.Equal(t, "Xanadu", res.Films[0].Title)
		assert.Contains(t, res.Pages, model.Pagination{Number: 2, Active: true})
	})

	t.Run("StartsWith", func(t *testing.T) {
		w := get(t, router, "/api/films?startsWith=X")
		require.Equal(t, http.StatusOK, w.Code)
		var res filmsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 2, res.Total)
	})

	t.Run("BadParams", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/films?page=zero").Code)
		assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/films?page=0").Code)
		assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/films?startsWith=XY").Code)
	})
}

func TestGETSearch(t *testing.T) {
	router := newTestRouter(testFilms())

	w := get(t, router, "/api/search?q=alpha")
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Films []model.Film `json:"films"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Films, 2)
	assert.Equal(t, "Alpha", res.Films[0].Title)

	w = get(t, router, "/api/search?q=casablanca")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"films":[]`)

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/search").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/search?q=a&limit=-1").Code)
}

func TestGETTopDirector(t *testing.T) {
	w := get(t, newTestRouter(testFilms()), "/api/directors/top")
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Director string       `json:"director"`
		Films    []model.Film `json:"films"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Jane Doe", res.Director)
	assert.Len(t, res.Films, 2)

	assert.Equal(t, http.StatusNotFound, get(t, newTestRouter(nil), "/api/directors/top").Code)
}

func TestMetrics(t *testing.T) {
	router := newTestRouter(testFilms())
	server.SetFilmsLoaded(5)
	get(t, router, "/api/report")
	assert.Equal(t, http.StatusNotFound, get(t, router, "/nowhere").Code)

	w := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `filmstats_http_requests_total{method="GET",path="/api/report",status="200"}`))
	assert.Contains(t, body, "filmstats_films_loaded 5")
}
