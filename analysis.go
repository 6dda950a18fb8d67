package main

import (
	"strings"
	"time"
)

// CategoryReport aggregates the matched sessions of one category.
type CategoryReport struct {
	Category        string
	Sessions        int
	TotalMinutes    int
	QuotaHours      int
	WorkMinutes     int
	OvertimeMinutes int
	TagMinutes      map[string]int
}

// Report is the analysis result for one period. TotalSessions and Matched
// let the caller tell an empty store apart from a filter matching nothing;
// PeriodFallback flags an unrecognized period string that fell back to the
// weekly window.
type Report struct {
	Period          string
	CategoryFilter  string
	PeriodFallback  bool
	TotalSessions   int
	Matched         int
	Groups          []CategoryReport
	WorkMinutes     int
	OvertimeMinutes int
}

// normalizePeriod maps a period string onto one of day/week/month/year.
// Unknown strings fall back to week.
func normalizePeriod(period string) (string, bool) {
	switch strings.ToLower(period) {
	case "day", "daily":
		return "day", true
	case "week", "weekly", "":
		return "week", true
	case "month", "monthly":
		return "month", true
	case "year", "yearly":
		return "year", true
	default:
		return "week", false
	}
}

// startOfWeek is the most recent Monday 00:00 UTC.
func startOfWeek(now time.Time) time.Time {
	days := (int(now.Weekday()) + 6) % 7
	day := now.AddDate(0, 0, -days)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// inPeriod reports whether start falls inside the period window ending at
// now. Both timestamps are compared in UTC.
func inPeriod(start, now time.Time, period string) bool {
	start, now = start.UTC(), now.UTC()

	switch period {
	case "day":
		return start.Year() == now.Year() && start.YearDay() == now.YearDay()
	case "month":
		return start.Year() == now.Year() && start.Month() == now.Month()
	case "year":
		return start.Year() == now.Year()
	default: // week
		weekStart := startOfWeek(now)
		return !start.Before(weekStart) && !start.After(now)
	}
}

// Analyze filters sessions by period (and optionally by category), groups
// them per category and splits each group's total into work time and
// overtime against the category's weekly quota. A quota of zero counts
// everything as work time.
func (a *App) Analyze(period, categoryFilter string) *Report {
	data := a.store.Data
	normalized, known := normalizePeriod(period)

	report := &Report{
		Period:         normalized,
		CategoryFilter: categoryFilter,
		PeriodFallback: !known,
		TotalSessions:  len(data.Sessions),
	}

	now := a.now().UTC()

	groupIdx := make(map[string]int)
	for _, s := range data.Sessions {
		if !inPeriod(s.Start, now, normalized) {
			continue
		}
		if categoryFilter != "" && s.Category != categoryFilter {
			continue
		}

		report.Matched++

		i, ok := groupIdx[s.Category]
		if !ok {
			i = len(report.Groups)
			groupIdx[s.Category] = i
			report.Groups = append(report.Groups, CategoryReport{
				Category:   s.Category,
				QuotaHours: categoryQuota(data, s.Category),
				TagMinutes: make(map[string]int),
			})
		}

		g := &report.Groups[i]
		g.Sessions++
		g.TotalMinutes += s.Duration
		for _, tag := range s.Tags {
			g.TagMinutes[tag] += s.Duration
		}
	}

	for i := range report.Groups {
		g := &report.Groups[i]

		quota := g.QuotaHours * 60
		if quota > 0 {
			g.WorkMinutes = min(g.TotalMinutes, quota)
			g.OvertimeMinutes = max(0, g.TotalMinutes-quota)
		} else {
			g.WorkMinutes = g.TotalMinutes
		}

		report.WorkMinutes += g.WorkMinutes
		report.OvertimeMinutes += g.OvertimeMinutes
	}

	return report
}

// categoryQuota looks up a category's weekly quota; sessions referencing a
// deleted category report a quota of zero.
func categoryQuota(data *Data, name string) int {
	for _, c := range data.Categories {
		if c.Name == name {
			return c.WeeklyQuota
		}
	}
	return 0
}
