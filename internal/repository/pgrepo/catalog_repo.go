package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/pkg/uow"
)

// reservedPaymentVendorID зарезервированный вендор для платежных транзакций,
// в списках каталога не показывается.
const reservedPaymentVendorID int64 = 1

type CatalogRepository struct {
	db uow.DBTX
}

func NewCatalogRepository(db uow.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const itemColumns = `id, vendor_id, name, description, img_link, price`

func (r *CatalogRepository) GetVendors(ctx context.Context) ([]domain.Vendor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description FROM vendors WHERE id > $1 ORDER BY id`,
		reservedPaymentVendorID,
	)
	if err != nil {
		return nil, convertErr(err, "listing vendors")
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		var vendor domain.Vendor
		if scanErr := rows.Scan(&vendor.ID, &vendor.Name, &vendor.Description); scanErr != nil {
			return nil, convertErr(scanErr, "scanning vendor row")
		}
		vendors = append(vendors, vendor)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating vendor rows")
	}
	return vendors, nil
}

func (r *CatalogRepository) FindVendorByName(ctx context.Context, name string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description FROM vendors WHERE name = $1`,
		name,
	).Scan(&vendor.ID, &vendor.Name, &vendor.Description)
	if err != nil {
		return nil, convertErr(err, "finding vendor by name `%s`", name)
	}
	return &vendor, nil
}

func (r *CatalogRepository) GetItemsByVendorID(ctx context.Context, vendorID int64) ([]domain.VendorItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+` FROM vendor_items WHERE vendor_id = $1 ORDER BY id`,
		vendorID,
	)
	if err != nil {
		return nil, convertErr(err, "getting items by vendorID `%d`", vendorID)
	}
	defer rows.Close()
	return collectItems(rows)
}

// GetItemsByIDs возвращает товары по списку идентификаторов. Неизвестные id
// просто отсутствуют в результате: сверка размеров наборов - забота валидатора.
func (r *CatalogRepository) GetItemsByIDs(ctx context.Context, ids []int64) ([]domain.VendorItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+` FROM vendor_items WHERE id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return nil, convertErr(err, "getting items by ids `%v`", ids)
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]domain.VendorItem, error) {
	var items []domain.VendorItem
	for rows.Next() {
		var item domain.VendorItem
		scanErr := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.Name,
			&item.Description,
			&item.ImgLink,
			&item.Price,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning vendor item row")
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating vendor item rows")
	}
	return items, nil
}
