package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PlaceholderCover is the cover reference used when a record has none.
const PlaceholderCover = "/placeholder.svg"

// Similarity bounds, in percent.
const (
	MinSimilarity = 0
	MaxSimilarity = 100
)

// Recommendation is a single ranked book suggestion.
type Recommendation struct {
	// ID uniquely identifies the record.
	ID int `json:"id"`

	// Title is the book title.
	Title string `json:"title"`

	// Author is the display name of the author.
	Author string `json:"author"`

	// Similarity is a precomputed plot-similarity percentage (0-100).
	Similarity int `json:"similarity"`

	// Description is a short plot summary.
	Description string `json:"description"`

	// Keywords are display tags. Order is preserved when rendering.
	Keywords []string `json:"keywords"`

	// Cover references the cover image. May be empty.
	Cover string `json:"cover,omitempty"`
}

// CoverRef returns the cover reference, falling back to PlaceholderCover.
func (r Recommendation) CoverRef() string {
	if strings.TrimSpace(r.Cover) == "" {
		return PlaceholderCover
	}
	return r.Cover
}

// MatchLabel returns the badge text for the similarity score.
func (r Recommendation) MatchLabel() string {
	return fmt.Sprintf("%d%% Match", r.Similarity)
}

// Validate checks the record is displayable.
func (r Recommendation) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: recommendation %d has no title", ErrInvalidInput, r.ID)
	}
	if r.Similarity < MinSimilarity || r.Similarity > MaxSimilarity {
		return fmt.Errorf("%w: recommendation %d similarity %d out of range",
			ErrInvalidInput, r.ID, r.Similarity)
	}
	return nil
}

// SortBySimilarity orders records by similarity, highest first.
// Records with equal scores keep their relative order.
func SortBySimilarity(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Similarity > recs[j].Similarity
	})
}

// IsRanked reports whether recs is ordered by non-increasing similarity.
func IsRanked(recs []Recommendation) bool {
	for i := 1; i < len(recs); i++ {
		if recs[i].Similarity > recs[i-1].Similarity {
			return false
		}
	}
	return true
}
