// Package content holds the curated pools that schedules are assembled from.
//
// Pools are process-wide constants. Text fields may contain placeholders
// ({philosopher}, {concept}, {theme}, {angle}, {greeting}, {emphasis}) that
// the planner fills in for a given day.
package content

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyPool is returned by Validate when a required pool has no entries.
var ErrEmptyPool = errors.New("empty content pool")

// ErrIncompleteLexicon is returned by Validate when a tone lexicon is missing fields.
var ErrIncompleteLexicon = errors.New("incomplete tone lexicon")

// Philosopher is a thinker a day can be built around.
type Philosopher struct {
	Name    string `json:"name" yaml:"name"`
	Concept string `json:"concept" yaml:"concept"`
}

// Theme is a thematic focus with the hashtag derived from it.
type Theme struct {
	Label   string `json:"label" yaml:"label"`
	Hashtag string `json:"hashtag" yaml:"hashtag"`
}

// VideoTemplate is the raw material of a short-form video post.
type VideoTemplate struct {
	Title           string
	Hook            string
	TalkingPoints   []string
	CallToAction    string
	Structure       []string
	OpeningQuestion string
	Visual          string
	Audio           string
}

// CarouselTemplate is the raw material of a static or carousel post.
type CarouselTemplate struct {
	Title         string
	Hook          string
	TalkingPoints []string
	CallToAction  string
	Format        []string
	Insight       string
}

// ToneLexicon holds the substitution strings for one tone.
type ToneLexicon struct {
	Label    string
	Greeting string
	Emphasis []string
	Hashtags []string
	Summary  string
}

// Pools is the complete curated universe. Treat it as read-only.
type Pools struct {
	Philosophers      []Philosopher
	Themes            []Theme
	Angles            []string
	VideoTemplates    []VideoTemplate
	CarouselTemplates []CarouselTemplate
	Hashtags          []string
	Lexicon           map[string]ToneLexicon
}

// PoolStat reports the size of a named pool.
type PoolStat struct {
	Name string
	Size int
}

// Validate checks that every pool can be selected from. Two video templates
// are drawn per day, so that pool needs at least two entries.
func (p *Pools) Validate() error {
	for _, stat := range p.Stats() {
		if stat.Size == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyPool, stat.Name)
		}
	}
	if len(p.VideoTemplates) < 2 {
		return fmt.Errorf("%w: video templates need at least 2 entries, have %d", ErrEmptyPool, len(p.VideoTemplates))
	}

	for _, key := range p.ToneKeys() {
		lex := p.Lexicon[key]
		switch {
		case lex.Label == "", lex.Greeting == "", lex.Summary == "":
			return fmt.Errorf("%w: %s has empty label, greeting or summary", ErrIncompleteLexicon, key)
		case len(lex.Emphasis) == 0:
			return fmt.Errorf("%w: %s has no emphasis words", ErrIncompleteLexicon, key)
		case len(lex.Hashtags) == 0:
			return fmt.Errorf("%w: %s has no hashtags", ErrIncompleteLexicon, key)
		}
	}
	return nil
}

// Stats returns pool sizes in a fixed order.
func (p *Pools) Stats() []PoolStat {
	return []PoolStat{
		{Name: "philosophers", Size: len(p.Philosophers)},
		{Name: "themes", Size: len(p.Themes)},
		{Name: "angles", Size: len(p.Angles)},
		{Name: "video templates", Size: len(p.VideoTemplates)},
		{Name: "carousel templates", Size: len(p.CarouselTemplates)},
		{Name: "hashtags", Size: len(p.Hashtags)},
		{Name: "tone lexicons", Size: len(p.Lexicon)},
	}
}

// ToneKeys returns the lexicon keys sorted alphabetically.
func (p *Pools) ToneKeys() []string {
	keys := make([]string, 0, len(p.Lexicon))
	for k := range p.Lexicon {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
