package models

import (
	"sort"

	"github.com/dmitrijs2005/tribunal/internal/timex"
)

// Form is a downloadable document template.
type Form struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Version     string          `json:"version"`
	CreatedDate timex.Timestamp `json:"created_date"`
	UpdatedDate timex.Timestamp `json:"updated_date"`
	IsActive    bool            `json:"is_active"`
}

// FormCategory describes a catalog section.
type FormCategory struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Catalog is the form list grouped by category, as returned by the API.
type Catalog struct {
	Forms map[string][]Form `json:"forms"`
	Total int               `json:"total"`
}

// Categories returns the category keys present in the catalog, sorted.
func (c Catalog) Categories() []string {
	keys := make([]string, 0, len(c.Forms))
	for k := range c.Forms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Find looks a form up by id across all categories.
func (c Catalog) Find(id int64) (Form, bool) {
	for _, forms := range c.Forms {
		for _, f := range forms {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Form{}, false
}

// CategoryInfo returns the category with the given value, or a placeholder
// labelled with the raw value.
func CategoryInfo(categories []FormCategory, value string) FormCategory {
	for _, c := range categories {
		if c.Value == value {
			return c
		}
	}
	return FormCategory{Value: value, Label: value}
}
