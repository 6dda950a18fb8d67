package main

import "fmt"

// TagLimit caps how many tags can exist at once.
const TagLimit = 7

// TagList is the listing view of all tags against the fixed cap.
type TagList struct {
	Tags  []Tag
	Limit int
}

func tagIndex(data *Data, name string) int {
	for i, t := range data.Tags {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (a *App) CreateTag(name string) error {
	data := a.store.Data

	if tagIndex(data, name) != -1 {
		return fmt.Errorf("tag %q: %w", name, ErrDuplicateName)
	}

	if len(data.Tags) >= TagLimit {
		return ErrTagLimitExceeded
	}

	data.Tags = append(data.Tags, Tag{Name: name})
	return a.store.Save()
}

func (a *App) ListTags() TagList {
	return TagList{Tags: a.store.Data.Tags, Limit: TagLimit}
}

// DeleteTag removes the named tag, asking for confirmation when sessions
// still reference it. Declining returns (false, nil) and changes nothing;
// confirming leaves the dangling references on the sessions in place.
func (a *App) DeleteTag(name string) (bool, error) {
	data := a.store.Data

	idx := tagIndex(data, name)
	if idx == -1 {
		return false, fmt.Errorf("tag %q: %w", name, ErrTagNotFound)
	}

	inUse := false
	for _, s := range data.Sessions {
		for _, t := range s.Tags {
			if t == name {
				inUse = true
				break
			}
		}
	}

	if inUse {
		prompt := fmt.Sprintf("Tag %q is used by existing sessions. Delete anyway?", name)
		if !a.confirm(prompt) {
			return false, nil
		}
	}

	data.Tags = append(data.Tags[:idx], data.Tags[idx+1:]...)
	if err := a.store.Save(); err != nil {
		return false, err
	}
	return true, nil
}
