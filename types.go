package main

import "time"

// Category is a work bucket with a weekly hour quota.
type Category struct {
	Name        string `json:"name"`
	WeeklyQuota int    `json:"weekly_quota_hours"`
}

// Tag is a label sessions can reference by name.
type Tag struct {
	Name string `json:"name"`
}

// Session is a timed work entry linked to one category and zero or more tags.
// Start is set when the session is started; End holds the provisional end
// computed from the planned duration until the session is ended for real.
type Session struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	Tags     []string   `json:"tags"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end,omitempty"`
	Duration int        `json:"duration_minutes"`
}

// Data is the full persisted state of the tracker.
type Data struct {
	Categories       []Category `json:"categories"`
	Tags             []Tag      `json:"tags"`
	Sessions         []Session  `json:"sessions"`
	TotalWeeklyQuota *int       `json:"total_weekly_quota_hours,omitempty"`
}
