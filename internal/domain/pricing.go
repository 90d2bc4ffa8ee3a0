package domain

import "time"

// PricingItem is a single priced line inside a category.
type PricingItem struct {
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description *string `json:"description,omitempty"`
}

// PricingCategory groups price lines, e.g. "Sofás".
type PricingCategory struct {
	ID        string        `json:"id"`
	Category  string        `json:"category"`
	Items     []PricingItem `json:"items"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
}

// PricingCategoryPatch carries the fields of a partial pricing update.
type PricingCategoryPatch struct {
	Category *string
	Items    []PricingItem
	Active   *bool
}

// Empty reports whether the patch changes nothing.
func (p PricingCategoryPatch) Empty() bool {
	return p.Category == nil && p.Items == nil && p.Active == nil
}

// Apply copies the set fields onto c.
func (p PricingCategoryPatch) Apply(c *PricingCategory) {
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Items != nil {
		c.Items = p.Items
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
}
