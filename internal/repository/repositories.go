package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every content collection.
type Repositories struct {
	Services     ServiceRepository
	Pricing      PricingRepository
	Testimonials TestimonialRepository
	Contacts     ContactRepository
	CompanyInfo  CompanyInfoRepository
}

// NewPostgresRepositories wires the pgx-backed implementations.
func NewPostgresRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Services:     NewServiceRepository(pool),
		Pricing:      NewPricingRepository(pool),
		Testimonials: NewTestimonialRepository(pool),
		Contacts:     NewContactRepository(pool),
		CompanyInfo:  NewCompanyInfoRepository(pool),
	}
}

// NewMemoryRepositories wires in-process implementations, used when no DSN is configured.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Services:     NewMemoryServiceRepository(),
		Pricing:      NewMemoryPricingRepository(),
		Testimonials: NewMemoryTestimonialRepository(),
		Contacts:     NewMemoryContactRepository(),
		CompanyInfo:  NewMemoryCompanyInfoRepository(),
	}
}
