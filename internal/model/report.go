package model

// WordCount is an entry of a word frequency ranking
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// LetterCount is the number of films grouped under a title letter
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// Report holds the result of every statistic computed over a dataset, in display order
type Report struct {
	FilmCount            int           `json:"filmCount"`
	WithoutDirectorCount int           `json:"withoutDirectorCount"`
	Letter               string        `json:"letter"`
	FilmsStartingWith    []Film        `json:"filmsStartingWith"`
	DirectorsWhoAct      int           `json:"directorsWhoAct"`
	MostActors           *Film         `json:"mostActors,omitempty"`
	ActorCredits         int           `json:"actorCredits"`
	DistinctActors       int           `json:"distinctActors"`
	LetterCounts         []LetterCount `json:"letterCounts"`
	CommonWords          []WordCount   `json:"commonWords"`
	TopDirector          string        `json:"topDirector"`
	TopDirectorFilms     []Film        `json:"topDirectorFilms"`
}
