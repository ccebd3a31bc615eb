// Package agg has aggregation logic for Git activity data.
package agg

import (
	"sort"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// WeekStart returns the Monday at or before t's calendar date, at midnight in
// t's location. A timestamp already on a Monday maps to that same date.
func WeekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	d := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// WeekKey formats the Monday bucket of t as a calendar date.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(schema.WeekDateFormat)
}

// Table accumulates per-week, per-contributor activity. Folding records is
// commutative and associative, so neither record order nor repository order
// affects the final cells.
type Table map[schema.StatKey]*schema.WeeklyContributorStat

// NewTable creates an empty aggregation table.
func NewTable() Table {
	return make(Table)
}

// Fold adds commit records into the table.
func (t Table) Fold(records ...schema.CommitRecord) {
	for _, rec := range records {
		key := schema.StatKey{Week: WeekKey(rec.Timestamp), Contributor: rec.Author}
		cell, ok := t[key]
		if !ok {
			cell = &schema.WeeklyContributorStat{WeekStart: key.Week, Contributor: key.Contributor}
			t[key] = cell
		}
		cell.Commits++
		cell.LinesAdded += rec.LinesAdded
		cell.LinesDeleted += rec.LinesDeleted
	}
}

// Stats returns all cells ordered by week start ascending, then contributor
// ascending. The ordering is deterministic regardless of fold order.
func (t Table) Stats() []schema.WeeklyContributorStat {
	stats := make([]schema.WeeklyContributorStat, 0, len(t))
	for _, cell := range t {
		stats = append(stats, *cell)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].WeekStart != stats[j].WeekStart {
			return stats[i].WeekStart < stats[j].WeekStart
		}
		return stats[i].Contributor < stats[j].Contributor
	})
	return stats
}

// Totals sums activity across all cells.
func Totals(stats []schema.WeeklyContributorStat) schema.Totals {
	var totals schema.Totals
	for _, s := range stats {
		totals.Commits += s.Commits
		totals.LinesAdded += s.LinesAdded
		totals.LinesDeleted += s.LinesDeleted
	}
	return totals
}

// TopContributors ranks contributors by total commit count descending.
// Ties break on the contributor string ascending for determinism.
// A limit of 0 or less returns everyone.
func TopContributors(stats []schema.WeeklyContributorStat, limit int) []schema.ContributorTotal {
	byName := make(map[string]*schema.ContributorTotal)
	for _, s := range stats {
		ct, ok := byName[s.Contributor]
		if !ok {
			ct = &schema.ContributorTotal{Contributor: s.Contributor}
			byName[s.Contributor] = ct
		}
		ct.Commits += s.Commits
		ct.LinesAdded += s.LinesAdded
		ct.LinesDeleted += s.LinesDeleted
	}

	ranked := make([]schema.ContributorTotal, 0, len(byName))
	for _, ct := range byName {
		ranked = append(ranked, *ct)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Commits != ranked[j].Commits {
			return ranked[i].Commits > ranked[j].Commits
		}
		return ranked[i].Contributor < ranked[j].Contributor
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// WeeklyTotals sums cells per week, ordered chronologically.
func WeeklyTotals(stats []schema.WeeklyContributorStat) []schema.WeekTotal {
	byWeek := make(map[string]*schema.WeekTotal)
	for _, s := range stats {
		wt, ok := byWeek[s.WeekStart]
		if !ok {
			wt = &schema.WeekTotal{WeekStart: s.WeekStart}
			byWeek[s.WeekStart] = wt
		}
		wt.Commits += s.Commits
		wt.LinesAdded += s.LinesAdded
		wt.LinesDeleted += s.LinesDeleted
	}

	weeks := make([]schema.WeekTotal, 0, len(byWeek))
	for _, wt := range byWeek {
		weeks = append(weeks, *wt)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart < weeks[j].WeekStart
	})
	return weeks
}
