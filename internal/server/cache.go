package server

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/gauthierbraillon/curaplan/internal/planner"
)

// ScheduleCache memoizes generated schedules by their four inputs. Schedules
// are deterministic, so entries never expire; the LRU only bounds memory.
// Cached schedules are shared between callers and must not be modified.
type ScheduleCache struct {
	engine  *planner.Engine
	entries *lru.Cache[string, []planner.DailyPlan]
	group   singleflight.Group
	metrics *Metrics
}

// NewScheduleCache creates a cache holding up to size schedules.
func NewScheduleCache(engine *planner.Engine, size int, metrics *Metrics) (*ScheduleCache, error) {
	if size <= 0 {
		size = 1
	}
	entries, err := lru.New[string, []planner.DailyPlan](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule cache: %w", err)
	}
	return &ScheduleCache{
		engine:  engine,
		entries: entries,
		metrics: metrics,
	}, nil
}

// Get returns the schedule for the inputs, generating it on a miss.
// Concurrent misses for the same key share one generation.
func (c *ScheduleCache) Get(start time.Time, days int, tone planner.Tone, seed int64) ([]planner.DailyPlan, error) {
	days = planner.ClampDays(days)
	key := cacheKey(start, days, tone, seed)

	if schedule, ok := c.entries.Get(key); ok {
		c.metrics.incCache("hit")
		return schedule, nil
	}
	c.metrics.incCache("miss")

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		began := time.Now()
		schedule, err := c.engine.Generate(start, days, tone, seed)
		if err != nil {
			return nil, err
		}
		c.metrics.observeGeneration(time.Since(began).Seconds())
		c.metrics.incGenerated(string(tone))
		c.entries.Add(key, schedule)
		return schedule, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]planner.DailyPlan), nil
}

// Len returns the number of cached schedules.
func (c *ScheduleCache) Len() int {
	return c.entries.Len()
}

func cacheKey(start time.Time, days int, tone planner.Tone, seed int64) string {
	return fmt.Sprintf("%s|%d|%s|%d", start.Format(planner.DateLayout), days, tone, seed)
}
