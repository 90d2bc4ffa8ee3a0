package domain

import "time"

// Service is a cleaning service offered on the site.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServicePatch carries the fields of a partial service update. Nil means unchanged.
type ServicePatch struct {
	Title       *string
	Description *string
	Icon        *string
	Features    []string
	Active      *bool
}

// Empty reports whether the patch changes nothing.
func (p ServicePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Icon == nil && p.Features == nil && p.Active == nil
}

// Apply copies the set fields onto s.
func (p ServicePatch) Apply(s *Service) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.Features != nil {
		s.Features = p.Features
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}
