package main

import "fmt"

// CategoryList is the listing view of all categories plus quota usage.
type CategoryList struct {
	Categories []Category
	UsedQuota  int  // hours
	TotalQuota *int // hours, nil when no total quota is set
}

// quotaSum adds up the weekly quotas of all categories except the named
// one. An empty name sums everything.
func quotaSum(data *Data, except string) int {
	sum := 0
	for _, c := range data.Categories {
		if c.Name != except {
			sum += c.WeeklyQuota
		}
	}
	return sum
}

func categoryIndex(data *Data, name string) int {
	for i, c := range data.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (a *App) CreateCategory(name string, quota int) error {
	data := a.store.Data

	if categoryIndex(data, name) != -1 {
		return fmt.Errorf("category %q: %w", name, ErrDuplicateName)
	}

	if total := data.TotalWeeklyQuota; total != nil && quotaSum(data, "")+quota > *total {
		return fmt.Errorf("category %q: %w", name, ErrQuotaExceeded)
	}

	data.Categories = append(data.Categories, Category{Name: name, WeeklyQuota: quota})
	return a.store.Save()
}

func (a *App) UpdateCategory(name string, quota int) error {
	data := a.store.Data

	idx := categoryIndex(data, name)
	if idx == -1 {
		return fmt.Errorf("category %q: %w", name, ErrCategoryNotFound)
	}

	if total := data.TotalWeeklyQuota; total != nil && quotaSum(data, name)+quota > *total {
		return fmt.Errorf("category %q: %w", name, ErrQuotaExceeded)
	}

	data.Categories[idx].WeeklyQuota = quota
	return a.store.Save()
}

// DeleteCategory removes the named category. When sessions still reference
// it the caller is asked to confirm first; declining returns (false, nil)
// and leaves the store untouched. Dangling session references are kept.
func (a *App) DeleteCategory(name string) (bool, error) {
	data := a.store.Data

	idx := categoryIndex(data, name)
	if idx == -1 {
		return false, fmt.Errorf("category %q: %w", name, ErrCategoryNotFound)
	}

	inUse := false
	for _, s := range data.Sessions {
		if s.Category == name {
			inUse = true
			break
		}
	}

	if inUse {
		prompt := fmt.Sprintf("Category %q is used by existing sessions. Delete anyway?", name)
		if !a.confirm(prompt) {
			return false, nil
		}
	}

	data.Categories = append(data.Categories[:idx], data.Categories[idx+1:]...)
	if err := a.store.Save(); err != nil {
		return false, err
	}
	return true, nil
}

func (a *App) ListCategories() CategoryList {
	data := a.store.Data
	return CategoryList{
		Categories: data.Categories,
		UsedQuota:  quotaSum(data, ""),
		TotalQuota: data.TotalWeeklyQuota,
	}
}

// SetTotalQuota sets the overall weekly budget. A total below the current
// category quota sum would break the quota invariant, so it is rejected.
func (a *App) SetTotalQuota(hours int) error {
	data := a.store.Data

	if used := quotaSum(data, ""); used > hours {
		return fmt.Errorf("total of %dh is below the %dh already assigned: %w", hours, used, ErrQuotaExceeded)
	}

	data.TotalWeeklyQuota = &hours
	return a.store.Save()
}
