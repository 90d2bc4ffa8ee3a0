package domain

import "time"

// Testimonial is a customer review shown on the site.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TestimonialPatch carries the fields of a partial testimonial update.
type TestimonialPatch struct {
	Name     *string
	Location *string
	Rating   *int
	Text     *string
	Active   *bool
}

// Empty reports whether the patch changes nothing.
func (p TestimonialPatch) Empty() bool {
	return p.Name == nil && p.Location == nil && p.Rating == nil && p.Text == nil && p.Active == nil
}

// Apply copies the set fields onto t.
func (p TestimonialPatch) Apply(t *Testimonial) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
}
