package service

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
)

// CatalogService витрина каталога. Репозиторий передается снаружи: в проде это
// catcache поверх pgrepo, в тестах - мок.
type CatalogService struct {
	catalog CatalogRepository
}

func NewCatalogService(catalog CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.catalog.GetVendors(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return vendors, nil
}

// VendorItems возвращает товары вендора по его имени. Если вендора нет,
// вернется domain.ErrRecordNotFound.
func (s *CatalogService) VendorItems(ctx context.Context, vendorName string) ([]domain.VendorItem, error) {
	vendor, findErr := s.catalog.FindVendorByName(ctx, vendorName)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	items, itemsErr := s.catalog.GetItemsByVendorID(ctx, vendor.ID)
	if itemsErr != nil {
		return nil, itemsErr //nolint:wrapcheck
	}
	return items, nil
}
