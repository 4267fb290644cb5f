// Package metrics derives summary counts and chart series from a timeline
// event sequence. All derivations are pure functions over the loaded
// events; nothing here touches storage.
package metrics

import (
	"sort"
	"time"

	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// Summary is the key-metrics rollup shown on the dashboard.
type Summary struct {
	Commits        int `json:"commits"`
	TasksCompleted int `json:"tasksCompleted"`
	Blockers       int `json:"blockers"`
	Milestones     int `json:"milestones"`
	TotalEvents    int `json:"totalEvents"`
}

// Summarize computes category counts over the full event sequence.
func Summarize(events []timeline.Event) Summary {
	return Summary{
		Commits:        timeline.CountByCategory(events, timeline.CategoryGitActivity),
		TasksCompleted: timeline.CountByCategory(events, timeline.CategoryTaskCompleted),
		Blockers:       timeline.CountByCategory(events, timeline.CategoryBlockerEncountered),
		Milestones:     timeline.CountByCategory(events, timeline.CategoryMilestoneAchieved),
		TotalEvents:    len(events),
	}
}

// Point is one day in the activity-overview series.
type Point struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
	Tasks   int    `json:"tasks"`
}

// Series buckets events by calendar day and returns per-day commit and
// completed-task counts, ordered by date ascending. Days with no activity
// are omitted.
func Series(events []timeline.Event) []Point {
	type bucket struct {
		commits int
		tasks   int
	}
	byDay := make(map[string]*bucket)

	for _, e := range events {
		day := e.Date.Format(time.DateOnly)
		b := byDay[day]
		if b == nil {
			b = &bucket{}
			byDay[day] = b
		}
		switch e.Category.Normalize() {
		case timeline.CategoryGitActivity:
			b.commits++
		case timeline.CategoryTaskCompleted:
			b.tasks++
		}
	}

	points := make([]Point, 0, len(byDay))
	for day, b := range byDay {
		points = append(points, Point{Date: day, Commits: b.commits, Tasks: b.tasks})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
