package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tmhigienizacao/site-api/internal/domain"
	"github.com/tmhigienizacao/site-api/internal/repository"
)

// SeedDefaults inserts the default site content when the services collection
// is empty. It is a no-op on a populated store.
func SeedDefaults(ctx context.Context, repos *repository.Repositories, logger *zap.Logger) error {
	count, err := repos.Services.Count(ctx)
	if err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		logger.Debug("content already present; skipping seed", zap.Int("services", count))
		return nil
	}

	now := time.Now().UTC()
	for _, svc := range defaultServices(now) {
		svc := svc
		if err := repos.Services.Create(ctx, &svc); err != nil {
			return fmt.Errorf("seed service %s: %w", svc.ID, err)
		}
	}
	for _, cat := range defaultPricing(now) {
		cat := cat
		if err := repos.Pricing.Create(ctx, &cat); err != nil {
			return fmt.Errorf("seed pricing %s: %w", cat.ID, err)
		}
	}
	for _, t := range defaultTestimonials(now) {
		t := t
		if err := repos.Testimonials.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed testimonial %s: %w", t.ID, err)
		}
	}
	if err := repos.CompanyInfo.Replace(ctx, domain.DefaultCompanyInfo()); err != nil {
		return fmt.Errorf("seed company info: %w", err)
	}

	logger.Info("database initialized with default content")
	return nil
}

func defaultServices(now time.Time) []domain.Service {
	return []domain.Service{
		{ID: "1", Title: "Sofás e Poltronas", Description: "Higienização profunda com produtos específicos para cada tipo de tecido", Icon: "Sofa",
			Features: []string{"Remoção de manchas", "Eliminação de odores", "Proteção anti-ácaros"}, Active: true, CreatedAt: now},
		{ID: "2", Title: "Colchões e Travesseiros", Description: "Limpeza especializada para um sono mais saudável", Icon: "Bed",
			Features: []string{"Aspiração profunda", "Sanitização completa", "Secagem rápida"}, Active: true, CreatedAt: now},
		{ID: "3", Title: "Tapetes e Carpetes", Description: "Restauração da beleza original dos seus tapetes", Icon: "Home",
			Features: []string{"Lavagem com shampoo", "Remoção de pelos", "Impermeabilização"}, Active: true, CreatedAt: now},
		{ID: "4", Title: "Bancos Automotivos", Description: "Cuidado especial para o interior do seu veículo", Icon: "Car",
			Features: []string{"Limpeza de couro", "Tecidos automotivos", "Proteção UV"}, Active: true, CreatedAt: now},
		{ID: "5", Title: "Cortinas", Description: "Higienização sem retirar de casa", Icon: "Sun",
			Features: []string{"Limpeza no local", "Todos os tecidos", "Secagem natural"}, Active: true, CreatedAt: now},
	}
}

func defaultPricing(now time.Time) []domain.PricingCategory {
	item := func(name, price string) domain.PricingItem {
		return domain.PricingItem{Name: name, Price: price}
	}
	return []domain.PricingCategory{
		{ID: "1", Category: "Sofás", Active: true, CreatedAt: now, Items: []domain.PricingItem{
			item("Sofá 2 lugares - Tecido comum", "R$ 80"),
			item("Sofá 2 lugares - Couro/Suede", "R$ 100"),
			item("Sofá 3 lugares - Tecido comum", "R$ 120"),
			item("Sofá 3 lugares - Couro/Suede", "R$ 150"),
			item("Sofá de canto - Tecido comum", "R$ 180"),
			item("Sofá de canto - Couro/Suede", "R$ 220"),
		}},
		{ID: "2", Category: "Poltronas e Cadeiras", Active: true, CreatedAt: now, Items: []domain.PricingItem{
			item("Poltrona - Tecido comum", "R$ 50"),
			item("Poltrona - Couro/Suede", "R$ 70"),
			item("Cadeira estofada", "R$ 30"),
			item("Cadeira de couro", "R$ 40"),
		}},
		{ID: "3", Category: "Colchões", Active: true, CreatedAt: now, Items: []domain.PricingItem{
			item("Colchão Solteiro", "R$ 60"),
			item("Colchão Casal", "R$ 80"),
			item("Colchão Queen", "R$ 100"),
			item("Colchão King", "R$ 120"),
			item("Travesseiro (unidade)", "R$ 15"),
		}},
		{ID: "4", Category: "Tapetes e Carpetes", Active: true, CreatedAt: now, Items: []domain.PricingItem{
			item("Tapete pequeno (até 2m²)", "R$ 40"),
			item("Tapete médio (2-4m²)", "R$ 60"),
			item("Tapete grande (4-6m²)", "R$ 80"),
			item("Carpete (por m²)", "R$ 25"),
		}},
		{ID: "5", Category: "Bancos Automotivos", Active: true, CreatedAt: now, Items: []domain.PricingItem{
			item("Banco dianteiro - Tecido", "R$ 40"),
			item("Banco dianteiro - Couro", "R$ 60"),
			item("Banco traseiro - Tecido", "R$ 60"),
			item("Banco traseiro - Couro", "R$ 80"),
			item("Conjunto completo - Tecido", "R$ 150"),
			item("Conjunto completo - Couro", "R$ 200"),
		}},
		{ID: "6", Category: "Cortinas", Active: true, CreatedAt: now, Items: []domain.PricingItem{
			item("Cortina pequena (até 2m)", "R$ 50"),
			item("Cortina média (2-3m)", "R$ 70"),
			item("Cortina grande (3-4m)", "R$ 90"),
			item("Persiana", "R$ 40"),
		}},
	}
}

func defaultTestimonials(now time.Time) []domain.Testimonial {
	return []domain.Testimonial{
		{ID: "1", Name: "Maria Silva", Location: "Bertioga Centro", Rating: 5, Active: true, CreatedAt: now,
			Text: "Serviço impecável! Meu sofá ficou como novo. Super recomendo a TM Higienização!"},
		{ID: "2", Name: "João Santos", Location: "Jardim Esmeralda", Rating: 5, Active: true, CreatedAt: now,
			Text: "Profissionais muito competentes. Fizeram a limpeza dos bancos do meu carro e ficou perfeito."},
		{ID: "3", Name: "Ana Costa", Location: "Vila Itapanhaú", Rating: 5, Active: true, CreatedAt: now,
			Text: "Atendimento excelente e preço justo. Já indiquei para várias amigas!"},
	}
}
