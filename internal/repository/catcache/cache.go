package catcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-store/internal/domain"
)

// Source источник данных каталога (pg репозиторий).
type Source interface {
	GetVendors(ctx context.Context) ([]domain.Vendor, error)
	FindVendorByName(ctx context.Context, name string) (*domain.Vendor, error)
	GetItemsByVendorID(ctx context.Context, vendorID int64) ([]domain.VendorItem, error)
	GetItemsByIDs(ctx context.Context, ids []int64) ([]domain.VendorItem, error)
}

// Cache read-through кеш каталога поверх redis. Каталог неизменяемый, поэтому
// инвалидация не нужна - записи просто живут до истечения TTL.
//
// Кешируются только витринные чтения. GetItemsByIDs (разрешение позиций заказа)
// всегда идет в источник: движку транзакций нужны данные из его же транзакции БД.
type Cache struct {
	source Source
	client *goredis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func New(source Source, client *goredis.Client, ttl time.Duration, log *logrus.Logger) *Cache {
	return &Cache{
		source: source,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

const (
	vendorsKey       = "catalog:vendors"
	vendorNameKeyFmt = "catalog:vendor:%s"
	vendorItemsFmt   = "catalog:vendor_items:%d"
)

func (c *Cache) GetVendors(ctx context.Context) ([]domain.Vendor, error) {
	var vendors []domain.Vendor
	if ok := c.lookup(ctx, vendorsKey, &vendors); ok {
		return vendors, nil
	}
	vendors, err := c.source.GetVendors(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	c.store(ctx, vendorsKey, vendors)
	return vendors, nil
}

func (c *Cache) FindVendorByName(ctx context.Context, name string) (*domain.Vendor, error) {
	key := fmt.Sprintf(vendorNameKeyFmt, name)
	var vendor domain.Vendor
	if ok := c.lookup(ctx, key, &vendor); ok {
		return &vendor, nil
	}
	found, err := c.source.FindVendorByName(ctx, name)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	c.store(ctx, key, found)
	return found, nil
}

func (c *Cache) GetItemsByVendorID(ctx context.Context, vendorID int64) ([]domain.VendorItem, error) {
	key := fmt.Sprintf(vendorItemsFmt, vendorID)
	var items []domain.VendorItem
	if ok := c.lookup(ctx, key, &items); ok {
		return items, nil
	}
	items, err := c.source.GetItemsByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	c.store(ctx, key, items)
	return items, nil
}

// GetItemsByIDs не кешируется, см. комментарий к типу.
func (c *Cache) GetItemsByIDs(ctx context.Context, ids []int64) ([]domain.VendorItem, error) {
	return c.source.GetItemsByIDs(ctx, ids) //nolint:wrapcheck
}

// lookup читает и декодирует значение из redis. Любая ошибка кеша трактуется
// как промах: каталог обязан работать и без redis.
func (c *Cache) lookup(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.WithError(err).WithField("key", key).Warn("catalog cache read failed")
		}
		return false
	}
	if unmarshalErr := json.Unmarshal(payload, dest); unmarshalErr != nil {
		c.log.WithError(unmarshalErr).WithField("key", key).Warn("catalog cache decode failed")
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("catalog cache encode failed")
		return
	}
	if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
		c.log.WithError(setErr).WithField("key", key).Warn("catalog cache write failed")
	}
}
