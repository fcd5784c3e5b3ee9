package model

// Film is one record of the dataset
type Film struct {
	Title     string   `json:"title"`
	Directors []string `json:"directors"` // "" marks an unknown director
	Actors    []string `json:"actors"`
}

// PrimaryDirector returns the first listed director, or "" if there is none
func (f Film) PrimaryDirector() string {
	if len(f.Directors) == 0 {
		return ""
	}
	return f.Directors[0]
}

// HasDirector reports whether the director list is neither empty nor the lone
// unknown-director sentinel
func (f Film) HasDirector() bool {
	switch len(f.Directors) {
	case 0:
		return false
	case 1:
		return f.Directors[0] != ""
	default:
		return true
	}
}

func (f Film) ActorCount() int {
	return len(f.Actors)
}
