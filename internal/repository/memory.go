package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/tmhigienizacao/site-api/internal/domain"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

// memoryCollection keeps documents in insertion order behind a mutex.
type memoryCollection[T any] struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]T
}

func newMemoryCollection[T any]() *memoryCollection[T] {
	return &memoryCollection[T]{docs: make(map[string]T)}
}

func (m *memoryCollection[T]) insert(id string, doc T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.docs[id]; !exists {
		m.order = append(m.order, id)
	}
	m.docs[id] = doc
}

func (m *memoryCollection[T]) list(keep func(T) bool) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]T, 0, len(m.order))
	for _, id := range m.order {
		doc := m.docs[id]
		if keep == nil || keep(doc) {
			result = append(result, doc)
		}
	}
	return result
}

func (m *memoryCollection[T]) get(id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return doc, apperrors.ErrNotFound
	}
	return doc, nil
}

func (m *memoryCollection[T]) update(id string, mutate func(*T)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return doc, apperrors.ErrNotFound
	}
	mutate(&doc)
	m.docs[id] = doc
	return doc, nil
}

func (m *memoryCollection[T]) delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.docs, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryCollection[T]) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

type memoryServiceRepository struct {
	docs *memoryCollection[domain.Service]
}

// NewMemoryServiceRepository returns an in-process ServiceRepository.
func NewMemoryServiceRepository() ServiceRepository {
	return &memoryServiceRepository{docs: newMemoryCollection[domain.Service]()}
}

func (r *memoryServiceRepository) List(_ context.Context, activeOnly bool) ([]domain.Service, error) {
	return r.docs.list(func(s domain.Service) bool { return !activeOnly || s.Active }), nil
}

func (r *memoryServiceRepository) GetByID(_ context.Context, id string) (*domain.Service, error) {
	svc, err := r.docs.get(id)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *memoryServiceRepository) Create(_ context.Context, svc *domain.Service) error {
	r.docs.insert(svc.ID, *svc)
	return nil
}

func (r *memoryServiceRepository) Update(_ context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	svc, err := r.docs.update(id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *memoryServiceRepository) Delete(_ context.Context, id string) error {
	return r.docs.delete(id)
}

func (r *memoryServiceRepository) Count(_ context.Context) (int, error) {
	return r.docs.count(), nil
}

type memoryPricingRepository struct {
	docs *memoryCollection[domain.PricingCategory]
}

// NewMemoryPricingRepository returns an in-process PricingRepository.
func NewMemoryPricingRepository() PricingRepository {
	return &memoryPricingRepository{docs: newMemoryCollection[domain.PricingCategory]()}
}

func (r *memoryPricingRepository) List(_ context.Context, activeOnly bool) ([]domain.PricingCategory, error) {
	return r.docs.list(func(c domain.PricingCategory) bool { return !activeOnly || c.Active }), nil
}

func (r *memoryPricingRepository) GetByID(_ context.Context, id string) (*domain.PricingCategory, error) {
	cat, err := r.docs.get(id)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *memoryPricingRepository) Create(_ context.Context, cat *domain.PricingCategory) error {
	r.docs.insert(cat.ID, *cat)
	return nil
}

func (r *memoryPricingRepository) Update(_ context.Context, id string, patch domain.PricingCategoryPatch) (*domain.PricingCategory, error) {
	cat, err := r.docs.update(id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *memoryPricingRepository) Delete(_ context.Context, id string) error {
	return r.docs.delete(id)
}

type memoryTestimonialRepository struct {
	docs *memoryCollection[domain.Testimonial]
}

// NewMemoryTestimonialRepository returns an in-process TestimonialRepository.
func NewMemoryTestimonialRepository() TestimonialRepository {
	return &memoryTestimonialRepository{docs: newMemoryCollection[domain.Testimonial]()}
}

func (r *memoryTestimonialRepository) List(_ context.Context, activeOnly bool) ([]domain.Testimonial, error) {
	return r.docs.list(func(t domain.Testimonial) bool { return !activeOnly || t.Active }), nil
}

func (r *memoryTestimonialRepository) GetByID(_ context.Context, id string) (*domain.Testimonial, error) {
	t, err := r.docs.get(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *memoryTestimonialRepository) Create(_ context.Context, t *domain.Testimonial) error {
	r.docs.insert(t.ID, *t)
	return nil
}

func (r *memoryTestimonialRepository) Update(_ context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	t, err := r.docs.update(id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *memoryTestimonialRepository) Delete(_ context.Context, id string) error {
	return r.docs.delete(id)
}

type memoryContactRepository struct {
	docs *memoryCollection[domain.Contact]
}

// NewMemoryContactRepository returns an in-process ContactRepository.
func NewMemoryContactRepository() ContactRepository {
	return &memoryContactRepository{docs: newMemoryCollection[domain.Contact]()}
}

func (r *memoryContactRepository) Create(_ context.Context, contact *domain.Contact) error {
	r.docs.insert(contact.ID, *contact)
	return nil
}

func (r *memoryContactRepository) ListNewestFirst(_ context.Context) ([]domain.Contact, error) {
	contacts := r.docs.list(nil)
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}

func (r *memoryContactRepository) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	contact, err := r.docs.get(id)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *memoryContactRepository) UpdateStatus(_ context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	contact, err := r.docs.update(id, func(c *domain.Contact) { c.Status = status })
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *memoryContactRepository) Delete(_ context.Context, id string) error {
	return r.docs.delete(id)
}

type memoryCompanyInfoRepository struct {
	mu   sync.RWMutex
	info *domain.CompanyInfo
}

// NewMemoryCompanyInfoRepository returns an in-process CompanyInfoRepository.
func NewMemoryCompanyInfoRepository() CompanyInfoRepository {
	return &memoryCompanyInfoRepository{}
}

func (r *memoryCompanyInfoRepository) Get(_ context.Context) (*domain.CompanyInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.info == nil {
		return nil, apperrors.ErrNotFound
	}
	info := *r.info
	return &info, nil
}

func (r *memoryCompanyInfoRepository) Replace(_ context.Context, info domain.CompanyInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.info = &info
	return nil
}
