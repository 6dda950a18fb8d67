package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionSlotMinutes is the grid all session durations snap to.
const SessionSlotMinutes = 15

// StartSession creates a new session starting now with a provisional end
// computed from the planned duration. The duration must be a non-zero
// multiple of the 15-minute grid, the category must exist and every tag
// must exist.
func (a *App) StartSession(title, category string, tags []string, duration int) (*Session, error) {
	data := a.store.Data

	if duration <= 0 || duration%SessionSlotMinutes != 0 {
		return nil, fmt.Errorf("%d minutes: %w", duration, ErrInvalidDuration)
	}

	if categoryIndex(data, category) == -1 {
		return nil, fmt.Errorf("category %q: %w", category, ErrCategoryNotFound)
	}

	for _, tag := range tags {
		if tagIndex(data, tag) == -1 {
			return nil, fmt.Errorf("tag %q: %w", tag, ErrTagNotFound)
		}
	}

	now := a.now().UTC()
	end := now.Add(time.Duration(duration) * time.Minute)

	session := Session{
		ID:       uuid.New().String(),
		Title:    title,
		Category: category,
		Tags:     tags,
		Start:    now,
		End:      &end,
		Duration: duration,
	}

	data.Sessions = append(data.Sessions, session)
	if err := a.store.Save(); err != nil {
		return nil, err
	}
	return &data.Sessions[len(data.Sessions)-1], nil
}

// EndSession closes the session with the exact id. The stored duration
// becomes the elapsed whole minutes floored to the 15-minute grid, so a
// session ended after 22 minutes records 15 and one ended after 14
// records 0.
func (a *App) EndSession(id string) (*Session, error) {
	data := a.store.Data

	var session *Session
	for i := range data.Sessions {
		if data.Sessions[i].ID == id {
			session = &data.Sessions[i]
			break
		}
	}
	if session == nil {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}

	now := a.now().UTC()
	elapsed := int(now.Sub(session.Start).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}

	session.Duration = elapsed / SessionSlotMinutes * SessionSlotMinutes
	session.End = &now

	if err := a.store.Save(); err != nil {
		return nil, err
	}
	return session, nil
}

// findSession resolves an id exactly first, then as a prefix of stored
// ids. A prefix matching more than one session is rejected rather than
// silently picking the first.
func findSession(data *Data, id string) (int, error) {
	for i := range data.Sessions {
		if data.Sessions[i].ID == id {
			return i, nil
		}
	}

	var matches []int
	for i := range data.Sessions {
		if strings.HasPrefix(data.Sessions[i].ID, id) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return -1, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	case 1:
		return matches[0], nil
	default:
		return -1, fmt.Errorf("session %q matches %d sessions: %w", id, len(matches), ErrAmbiguousID)
	}
}

// DeleteSession removes the session matching id (exact or unique prefix)
// after confirmation. Declining returns (false, nil) and changes nothing.
func (a *App) DeleteSession(id string) (bool, error) {
	data := a.store.Data

	idx, err := findSession(data, id)
	if err != nil {
		return false, err
	}

	prompt := fmt.Sprintf("Delete session %q?", data.Sessions[idx].Title)
	if !a.confirm(prompt) {
		return false, nil
	}

	data.Sessions = append(data.Sessions[:idx], data.Sessions[idx+1:]...)
	if err := a.store.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// ListSessions returns all sessions in insertion order.
func (a *App) ListSessions() []Session {
	return a.store.Data.Sessions
}
