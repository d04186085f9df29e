// Package session owns the in-memory application state that drives the
// derived-view pipeline. Derived views and aggregation only read it; all
// mutation goes through the methods here, which mirror favorites and the
// recently-viewed list to the local store on every change.
package session

import (
	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/pipeline"
	"github.com/osint-atlas/atlas/internal/store"
)

// maxCompare bounds the comparison selection.
const maxCompare = 3

// State is the explicit session-state struct passed to the pipeline and
// persistence layers. Filters, sort, compare mode and the comparison
// selection are ephemeral; favorites and recently-viewed survive restarts.
type State struct {
	Filters pipeline.Filters
	Sort    pipeline.SortMode

	Favorites []int
	Recent    []int

	CompareMode bool
	Compare     []int

	User *model.User

	st *store.Store
}

// New creates session state hydrated from the local store.
func New(st *store.Store) *State {
	return &State{
		Filters:   pipeline.NewFilters(),
		Sort:      pipeline.SortNameAsc,
		Favorites: st.LoadIDs(store.KeyFavorites),
		Recent:    st.LoadIDs(store.KeyRecent),
		User:      st.LoadUser(),
		st:        st,
	}
}

// IsFavorite reports whether the tool is favorited.
func (s *State) IsFavorite(id int) bool {
	for _, f := range s.Favorites {
		if f == id {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes a favorite and mirrors the list to the
// store.
func (s *State) ToggleFavorite(id int) {
	if s.IsFavorite(id) {
		kept := make([]int, 0, len(s.Favorites))
		for _, f := range s.Favorites {
			if f != id {
				kept = append(kept, f)
			}
		}
		s.Favorites = kept
	} else {
		s.Favorites = append(s.Favorites, id)
	}
	s.st.SaveIDs(store.KeyFavorites, s.Favorites)
}

// RecordView notes a tool "open" in the recently-viewed list (deduplicated,
// most-recent-first, capped) and mirrors it to the store. Callers skip this
// in compare mode.
func (s *State) RecordView(id int) {
	s.Recent = pipeline.PushRecent(s.Recent, id)
	s.st.SaveIDs(store.KeyRecent, s.Recent)
}

// InCompare reports whether the tool is selected for comparison.
func (s *State) InCompare(id int) bool {
	for _, c := range s.Compare {
		if c == id {
			return true
		}
	}
	return false
}

// ToggleCompare adds or removes a tool from the comparison selection.
// Adding a fourth tool while three are selected is a no-op; the return
// value reports whether the selection changed.
func (s *State) ToggleCompare(id int) bool {
	if s.InCompare(id) {
		kept := make([]int, 0, len(s.Compare))
		for _, c := range s.Compare {
			if c != id {
				kept = append(kept, c)
			}
		}
		s.Compare = kept
		return true
	}
	if len(s.Compare) >= maxCompare {
		return false
	}
	s.Compare = append(s.Compare, id)
	return true
}

// SetCompareMode toggles compare mode. Entering it clears any previous
// selection.
func (s *State) SetCompareMode(on bool) {
	s.CompareMode = on
	if on {
		s.Compare = nil
	}
}

// SetUser records the signed-in identity (nil on sign-out).
func (s *State) SetUser(u *model.User) {
	s.User = u
}
