package catcache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/logger"
	"github.com/fsdevblog/groph-store/internal/service/mocks"
)

type CacheTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSource *mocks.MockCatalogRepository
	redisSrv   *miniredis.Miniredis
	cache      *Cache
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = mocks.NewMockCatalogRepository(s.mockCtrl)
	s.redisSrv = miniredis.RunT(s.T())

	client := goredis.NewClient(&goredis.Options{Addr: s.redisSrv.Addr()})
	s.cache = New(s.mockSource, client, time.Minute, logger.New(os.Stdout))
}

func (s *CacheTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CacheTestSuite) TestGetVendors_ReadThrough() {
	vendors := []domain.Vendor{
		{ID: 2, Name: "Amazing Books", Description: "Paper and electronic books"},
	}

	// источник дергается ровно один раз, второе чтение из кеша.
	s.mockSource.EXPECT().
		GetVendors(gomock.Any()).
		Return(vendors, nil).Times(1)

	first, firstErr := s.cache.GetVendors(context.Background())
	s.Require().NoError(firstErr)
	s.Equal(vendors, first)

	second, secondErr := s.cache.GetVendors(context.Background())
	s.Require().NoError(secondErr)
	s.Equal(vendors, second)
}

func (s *CacheTestSuite) TestGetVendors_TTLExpires() {
	vendors := []domain.Vendor{{ID: 2, Name: "Amazing Books"}}

	s.mockSource.EXPECT().
		GetVendors(gomock.Any()).
		Return(vendors, nil).Times(2)

	_, err := s.cache.GetVendors(context.Background())
	s.Require().NoError(err)

	// по истечении TTL чтение снова идет в источник.
	s.redisSrv.FastForward(2 * time.Minute)

	_, err = s.cache.GetVendors(context.Background())
	s.Require().NoError(err)
}

func (s *CacheTestSuite) TestFindVendorByName() {
	vendor := &domain.Vendor{ID: 3, Name: "Tech Gadgets"}

	s.mockSource.EXPECT().
		FindVendorByName(gomock.Any(), vendor.Name).
		Return(vendor, nil).Times(1)

	for i := 0; i < 2; i++ {
		found, err := s.cache.FindVendorByName(context.Background(), vendor.Name)
		s.Require().NoError(err)
		s.Equal(vendor.ID, found.ID)
	}
}

func (s *CacheTestSuite) TestGetItemsByVendorID() {
	items := []domain.VendorItem{
		{ID: 1, VendorID: 2, Name: "book", Price: decimal.RequireFromString("45.85")},
	}

	s.mockSource.EXPECT().
		GetItemsByVendorID(gomock.Any(), int64(2)).
		Return(items, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := s.cache.GetItemsByVendorID(context.Background(), 2)
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.True(got[0].Price.Equal(items[0].Price))
	}
}

// Разрешение позиций заказа всегда идет мимо кеша.
func (s *CacheTestSuite) TestGetItemsByIDs_Passthrough() {
	items := []domain.VendorItem{{ID: 1, VendorID: 2}}

	s.mockSource.EXPECT().
		GetItemsByIDs(gomock.Any(), []int64{1}).
		Return(items, nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.cache.GetItemsByIDs(context.Background(), []int64{1})
		s.Require().NoError(err)
	}
}

// Недоступный redis не ломает каталог: все чтения уходят в источник.
func (s *CacheTestSuite) TestRedisDownFallsBackToSource() {
	vendors := []domain.Vendor{{ID: 2, Name: "Amazing Books"}}

	s.redisSrv.Close()

	s.mockSource.EXPECT().
		GetVendors(gomock.Any()).
		Return(vendors, nil).Times(2)

	for i := 0; i < 2; i++ {
		got, err := s.cache.GetVendors(context.Background())
		s.Require().NoError(err)
		s.Equal(vendors, got)
	}
}
