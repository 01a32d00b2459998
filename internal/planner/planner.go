package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/gauthierbraillon/curaplan/internal/content"
	"github.com/gauthierbraillon/curaplan/internal/selector"
)

// PostsPerDay is the fixed daily output: two videos then one carousel.
const PostsPerDay = 3

// Option configures the Engine.
type Option func(*Engine)

// WithClock sets the clock used for the invalid-date fallback.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine generates schedules from a set of pools. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	pools *content.Pools
	now   func() time.Time
}

// New creates an Engine after checking that the pools are usable for every tone.
func New(pools *content.Pools, opts ...Option) (*Engine, error) {
	if err := pools.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pools: %w", err)
	}
	for _, t := range Tones() {
		if _, ok := pools.Lexicon[string(t)]; !ok {
			return nil, fmt.Errorf("invalid pools: %w %q has no lexicon", ErrUnknownTone, t)
		}
	}

	e := &Engine{
		pools: pools,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

var defaultEngine = func() *Engine {
	e, err := New(content.Default())
	if err != nil {
		panic(err)
	}
	return e
}()

// Default returns the engine backed by the built-in pools.
func Default() *Engine {
	return defaultEngine
}

// GenerateSchedule runs the default engine.
func GenerateSchedule(startDate string, dayCount int, tone Tone, seed int64) ([]DailyPlan, error) {
	return defaultEngine.GenerateSchedule(startDate, dayCount, tone, seed)
}

// GenerateSchedule builds the calendar for a start date given as text. An
// empty or unparsable date falls back to today.
func (e *Engine) GenerateSchedule(startDate string, dayCount int, tone Tone, seed int64) ([]DailyPlan, error) {
	return e.build(e.ResolveStartDate(startDate), dayCount, tone, seed)
}

// ResolveStartDate returns the calendar date the engine would start from.
func (e *Engine) ResolveStartDate(startDate string) time.Time {
	if start, ok := ParseStartDate(startDate); ok {
		return start
	}
	return e.today()
}

// Generate builds the calendar for a start date. A zero time falls back to today.
func (e *Engine) Generate(start time.Time, dayCount int, tone Tone, seed int64) ([]DailyPlan, error) {
	if start.IsZero() {
		start = e.today()
	}
	return e.build(calendarDate(start), dayCount, tone, seed)
}

func (e *Engine) today() time.Time {
	return calendarDate(e.now())
}

// picks records the pool indices chosen for one day.
type picks struct {
	philosopher int
	theme       int
	angle       int
	carousel    int
}

func (e *Engine) build(start time.Time, dayCount int, tone Tone, seed int64) ([]DailyPlan, error) {
	if !tone.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownTone, tone)
	}
	lex := e.pools.Lexicon[string(tone)]

	days := ClampDays(dayCount)
	sel := selector.New(string(tone), seed)
	prev := picks{
		philosopher: selector.None,
		theme:       selector.None,
		angle:       selector.None,
		carousel:    selector.None,
	}

	plans := make([]DailyPlan, 0, days)
	for day := 0; day < days; day++ {
		cur := picks{
			philosopher: sel.Pick(day, selector.SlotPhilosopher, 0, len(e.pools.Philosophers), prev.philosopher),
			theme:       sel.Pick(day, selector.SlotTheme, 0, len(e.pools.Themes), prev.theme),
			angle:       sel.Pick(day, selector.SlotAngle, 0, len(e.pools.Angles), prev.angle),
			carousel:    sel.Pick(day, selector.SlotCarouselTemplate, 2, len(e.pools.CarouselTemplates), prev.carousel),
		}
		plans = append(plans, e.assemble(sel, day, start.AddDate(0, 0, day), cur, lex))
		prev = cur
	}
	return plans, nil
}

func (e *Engine) assemble(sel selector.Selector, day int, date time.Time, cur picks, lex content.ToneLexicon) DailyPlan {
	philosopher := e.pools.Philosophers[cur.philosopher]
	theme := e.pools.Themes[cur.theme]
	angle := e.pools.Angles[cur.angle]
	iso := date.Format(DateLayout)

	v := vars{
		philosopher: philosopher.Name,
		concept:     philosopher.Concept,
		theme:       theme.Label,
		angle:       angle,
		greeting:    lex.Greeting,
	}

	n := len(e.pools.VideoTemplates)
	first := sel.Distinct(day, selector.SlotVideoTemplate, 0, n)
	second := sel.Distinct(day, selector.SlotVideoTemplate, 1, n, first)

	posts := make([]Post, 0, PostsPerDay)
	for slot, idx := range []int{first, second} {
		pv := v.withEmphasis(lex, sel, day, slot+1)
		posts = append(posts, videoPost(postID(iso, slot+1), e.pools.VideoTemplates[idx], pv.replacer(), e.hashtags(sel, day, slot+1, theme, lex)))
	}
	cv := v.withEmphasis(lex, sel, day, 3)
	posts = append(posts, carouselPost(postID(iso, 3), e.pools.CarouselTemplates[cur.carousel], cv.replacer(), e.hashtags(sel, day, 3, theme, lex)))

	return DailyPlan{
		Date:            iso,
		Summary:         v.withEmphasis(lex, sel, day, 0).replacer().Replace(lex.Summary),
		MainPhilosopher: philosopher.Name,
		FocusTheme:      theme.Label,
		CuratorialAngle: angle,
		Posts:           posts,
	}
}

func postID(date string, slot int) string {
	return fmt.Sprintf("%s-%d", date, slot)
}

func videoPost(id string, tpl content.VideoTemplate, r *strings.Replacer, tags []string) Post {
	return Post{
		ID:            id,
		Kind:          KindShortVideo,
		Title:         r.Replace(tpl.Title),
		Hook:          r.Replace(tpl.Hook),
		TalkingPoints: fillAll(r, tpl.TalkingPoints),
		CallToAction:  r.Replace(tpl.CallToAction),
		Hashtags:      tags,
		Video: &VideoDetails{
			Structure:       fillAll(r, tpl.Structure),
			OpeningQuestion: r.Replace(tpl.OpeningQuestion),
			Visual:          r.Replace(tpl.Visual),
			Audio:           r.Replace(tpl.Audio),
		},
	}
}

func carouselPost(id string, tpl content.CarouselTemplate, r *strings.Replacer, tags []string) Post {
	return Post{
		ID:            id,
		Kind:          KindCarousel,
		Title:         r.Replace(tpl.Title),
		Hook:          r.Replace(tpl.Hook),
		TalkingPoints: fillAll(r, tpl.TalkingPoints),
		CallToAction:  r.Replace(tpl.CallToAction),
		Hashtags:      tags,
		Carousel: &CarouselDetails{
			Format:  fillAll(r, tpl.Format),
			Insight: r.Replace(tpl.Insight),
		},
	}
}

// hashtags returns the theme tag, two tone tags and one general tag, without duplicates.
func (e *Engine) hashtags(sel selector.Selector, day, slot int, theme content.Theme, lex content.ToneLexicon) []string {
	n := len(lex.Hashtags)
	first := sel.Distinct(day, selector.SlotHashtag, slot*4, n)
	second := sel.Distinct(day, selector.SlotHashtag, slot*4+1, n, first)
	general := sel.Index(day, selector.SlotHashtag, slot*4+2, len(e.pools.Hashtags))

	return dedupe([]string{
		theme.Hashtag,
		lex.Hashtags[first],
		lex.Hashtags[second],
		e.pools.Hashtags[general],
	})
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// vars are the placeholder values for one post.
type vars struct {
	philosopher string
	concept     string
	theme       string
	angle       string
	greeting    string
	emphasis    string
}

func (v vars) withEmphasis(lex content.ToneLexicon, sel selector.Selector, day, slot int) vars {
	v.emphasis = lex.Emphasis[sel.Index(day, selector.SlotPhrasing, slot, len(lex.Emphasis))]
	return v
}

func (v vars) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{philosopher}", v.philosopher,
		"{concept}", v.concept,
		"{theme}", v.theme,
		"{angle}", v.angle,
		"{greeting}", v.greeting,
		"{emphasis}", v.emphasis,
	)
}

func fillAll(r *strings.Replacer, xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = r.Replace(x)
	}
	return out
}
