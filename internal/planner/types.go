// Package planner assembles multi-day editorial calendars from the curated
// content pools.
//
// This package enables curaplan to:
// - Rotate philosophers, themes and curatorial angles across days
// - Build two short-form video posts and one carousel post per day
// - Reproduce the same calendar for the same date, length, tone and seed
package planner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTone is returned when a tone outside the enumerated set is used.
var ErrUnknownTone = errors.New("unknown tone")

// Tone selects the lexicon used to phrase generated content.
type Tone string

const (
	TonePoetic       Tone = "poetic"
	ToneAcademic     Tone = "academic"
	ToneProvocative  Tone = "provocative"
	ToneDemystifying Tone = "demystifying"
)

var toneLabels = map[Tone]string{
	TonePoetic:       "Şiirsel",
	ToneAcademic:     "Akademik",
	ToneProvocative:  "Provokatif",
	ToneDemystifying: "Sadeleştirici",
}

// Tones returns every tone in presentation order.
func Tones() []Tone {
	return []Tone{TonePoetic, ToneAcademic, ToneProvocative, ToneDemystifying}
}

// ParseTone accepts a tone key, case-insensitively.
func ParseTone(s string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w %q: must be one of %s", ErrUnknownTone, s, toneList())
	}
	return t, nil
}

// Valid reports whether t is one of the enumerated tones.
func (t Tone) Valid() bool {
	_, ok := toneLabels[t]
	return ok
}

// Label returns the display label of the tone.
func (t Tone) Label() string {
	return toneLabels[t]
}

func toneList() string {
	names := make([]string, 0, len(toneLabels))
	for _, t := range Tones() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// PostKind discriminates the post variants.
type PostKind string

const (
	KindShortVideo PostKind = "short-form-video"
	KindCarousel   PostKind = "static/carousel"
)

// ErrInvalidPost is returned by Post.Validate when kind and payload disagree.
var ErrInvalidPost = errors.New("invalid post")

// ErrInvalidPlan is returned by DailyPlan.Validate when the daily shape is wrong.
var ErrInvalidPlan = errors.New("invalid plan")

// dailyKinds is the post order every plan follows.
var dailyKinds = [PostsPerDay]PostKind{KindShortVideo, KindShortVideo, KindCarousel}

// DailyPlan is the content scheduled for one calendar day.
type DailyPlan struct {
	Date            string `json:"date" yaml:"date"`
	Summary         string `json:"summary" yaml:"summary"`
	MainPhilosopher string `json:"mainPhilosopher" yaml:"mainPhilosopher"`
	FocusTheme      string `json:"focusTheme" yaml:"focusTheme"`
	CuratorialAngle string `json:"curatorialAngle" yaml:"curatorialAngle"`
	Posts           []Post `json:"posts" yaml:"posts"`
}

// Post is one schedulable item. Exactly one of Video or Carousel is set,
// matching Kind.
type Post struct {
	ID            string           `json:"id" yaml:"id"`
	Kind          PostKind         `json:"kind" yaml:"kind"`
	Title         string           `json:"title" yaml:"title"`
	Hook          string           `json:"hook" yaml:"hook"`
	TalkingPoints []string         `json:"talkingPoints" yaml:"talkingPoints"`
	CallToAction  string           `json:"callToAction" yaml:"callToAction"`
	Hashtags      []string         `json:"hashtags" yaml:"hashtags"`
	Video         *VideoDetails    `json:"video,omitempty" yaml:"video,omitempty"`
	Carousel      *CarouselDetails `json:"carousel,omitempty" yaml:"carousel,omitempty"`
}

// VideoDetails is the short-form video payload.
type VideoDetails struct {
	Structure       []string `json:"structure" yaml:"structure"`
	OpeningQuestion string   `json:"openingQuestion" yaml:"openingQuestion"`
	Visual          string   `json:"visual" yaml:"visual"`
	Audio           string   `json:"audio" yaml:"audio"`
}

// CarouselDetails is the static/carousel payload.
type CarouselDetails struct {
	Format  []string `json:"format" yaml:"format"`
	Insight string   `json:"insight" yaml:"insight"`
}

// Validate checks that the payload matches the kind.
func (p Post) Validate() error {
	switch p.Kind {
	case KindShortVideo:
		if p.Video == nil || p.Carousel != nil {
			return fmt.Errorf("%w %s: video post must carry only a video payload", ErrInvalidPost, p.ID)
		}
	case KindCarousel:
		if p.Carousel == nil || p.Video != nil {
			return fmt.Errorf("%w %s: carousel post must carry only a carousel payload", ErrInvalidPost, p.ID)
		}
	default:
		return fmt.Errorf("%w %s: unknown kind %q", ErrInvalidPost, p.ID, p.Kind)
	}
	return nil
}

// Validate checks that the plan holds two videos then one carousel, each
// with a payload matching its kind.
func (d DailyPlan) Validate() error {
	if len(d.Posts) != PostsPerDay {
		return fmt.Errorf("%w %s: expected %d posts, got %d", ErrInvalidPlan, d.Date, PostsPerDay, len(d.Posts))
	}
	for i, p := range d.Posts {
		if p.Kind != dailyKinds[i] {
			return fmt.Errorf("%w %s: post %d should be %s, got %q", ErrInvalidPlan, d.Date, i+1, dailyKinds[i], p.Kind)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidPlan, d.Date, err)
		}
	}
	return nil
}

// CountKinds returns how many posts of each kind the plan holds.
func (d DailyPlan) CountKinds() map[PostKind]int {
	counts := make(map[PostKind]int, 2)
	for _, p := range d.Posts {
		counts[p.Kind]++
	}
	return counts
}
