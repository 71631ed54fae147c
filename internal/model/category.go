package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultIconName is assigned to categories created without an icon and to
// persisted categories from versions that predate icons.
const DefaultIconName = "pricetag-outline"

// Category is a user-defined label used to classify expenses.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IconName string `json:"iconName,omitempty"`
}

// DefaultCategories returns the built-in category set installed on first run.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "Food", IconName: "restaurant-outline"},
		{ID: "transport", Name: "Transport", IconName: "car-outline"},
		{ID: "shopping", Name: "Shopping", IconName: "cart-outline"},
		{ID: "bills", Name: "Bills", IconName: "card-outline"},
		{ID: "other", Name: "Other", IconName: "ellipsis-horizontal-circle-outline"},
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a category ID from its display name: lowercase with
// whitespace runs collapsed to hyphens. The name must already be trimmed.
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// UniqueSlug returns the slug for name, disambiguated with an epoch suffix
// when the plain slug is already taken.
func UniqueSlug(name string, taken func(id string) bool, now time.Time) string {
	slug := Slugify(name)
	if taken(slug) {
		return fmt.Sprintf("%s-%d", slug, now.UnixMilli())
	}
	return slug
}
