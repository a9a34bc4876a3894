package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/internal/service/mocks"
	"github.com/fsdevblog/groph-store/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-store/pkg/uow/mocks"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockCardRepo   *mocks.MockCardRepository
	mockCatalog    *mocks.MockCatalogRepository
	mockLedgerRepo *mocks.MockLedgerRepository
	service        *TransactionService
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockCardRepo = mocks.NewMockCardRepository(s.mockCtrl)
	s.mockCatalog = mocks.NewMockCatalogRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)

	// Do прозрачно выполняет колбек с замоканной транзакцией: откат/коммит
	// в юнит-тестах не эмулируются.
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.CardRepoName)).
		Return(s.mockCardRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.CatalogRepoName)).
		Return(s.mockCatalog, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()

	s.service = NewTransactionService(s.mockUOW)
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TransactionServiceTestSuite) card(limit, balance string) *domain.CreditCard {
	return &domain.CreditCard{
		Number:        1000,
		CustomerID:    123,
		CreditLimit:   decimal.RequireFromString(limit),
		CreditBalance: decimal.RequireFromString(balance),
	}
}

func (s *TransactionServiceTestSuite) TestPlaceOrder_Success() {
	card := s.card("2500", "0")
	items := []domain.OrderItem{{ItemID: 1, Quantity: 2}}
	total := decimal.RequireFromString("91.70") // 2 * 45.85

	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), card.Number).
		Return(card, nil)

	s.mockCatalog.EXPECT().
		GetItemsByIDs(gomock.Any(), []int64{1}).
		Return([]domain.VendorItem{
			{ID: 1, VendorID: 2, Name: "book", Price: decimal.RequireFromString("45.85")},
		}, nil)

	s.mockCardRepo.EXPECT().
		AddToBalance(gomock.Any(), card.Number, decimalMatcher{total}).
		Return(card, nil)

	created := &domain.Transaction{ID: 7, CreatedAt: time.Now(), CardNumber: card.Number, Total: total}
	s.mockLedgerRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(card.Number, args.CardNumber)
			s.True(args.Total.Equal(total))
			return created, nil
		})

	s.mockLedgerRepo.EXPECT().
		CreateDetail(gomock.Any(), repoargs.DetailCreate{TransactionID: 7, ItemID: 1, Quantity: 2}).
		Return(&domain.TransactionDetail{TransactionID: 7, ItemID: 1, Quantity: 2}, nil)

	trans, err := s.service.PlaceOrder(context.Background(), card.CustomerID, card.Number, items)
	s.Require().NoError(err)
	s.Equal(created.ID, trans.ID)
	s.True(trans.Total.Equal(total))
}

func (s *TransactionServiceTestSuite) TestPlaceOrder_CardNotFound() {
	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), int64(9999)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.PlaceOrder(context.Background(), 123, 9999, []domain.OrderItem{{ItemID: 1, Quantity: 1}})
	s.Require().ErrorIs(err, domain.ErrCardNotFound)
}

// Сбой хранилища посреди записи не должен просачиваться наружу как есть:
// вызывающий видит ErrCommitFailed, а вся операция откатывается в uow.Do.
func (s *TransactionServiceTestSuite) TestPlaceOrder_StorageFailureIsCommitFailed() {
	card := s.card("2500", "0")

	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), card.Number).
		Return(card, nil)
	s.mockCatalog.EXPECT().
		GetItemsByIDs(gomock.Any(), []int64{1}).
		Return([]domain.VendorItem{
			{ID: 1, VendorID: 2, Price: decimal.RequireFromString("10.00")},
		}, nil)
	s.mockCardRepo.EXPECT().
		AddToBalance(gomock.Any(), card.Number, gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := s.service.PlaceOrder(context.Background(), card.CustomerID, card.Number, []domain.OrderItem{{ItemID: 1, Quantity: 1}})
	s.Require().ErrorIs(err, domain.ErrCommitFailed)
}

func (s *TransactionServiceTestSuite) TestPlaceOrder_ValidationErrPassesThrough() {
	card := s.card("500", "400")

	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), card.Number).
		Return(card, nil)
	s.mockCatalog.EXPECT().
		GetItemsByIDs(gomock.Any(), []int64{1}).
		Return([]domain.VendorItem{
			// ровно весь доступный кредит, строгая граница отклоняет.
			{ID: 1, VendorID: 2, Price: decimal.RequireFromString("100.00")},
		}, nil)

	_, err := s.service.PlaceOrder(context.Background(), card.CustomerID, card.Number, []domain.OrderItem{{ItemID: 1, Quantity: 1}})
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
	s.NotErrorIs(err, domain.ErrCommitFailed)
}

func (s *TransactionServiceTestSuite) TestMakePayment_Success() {
	card := s.card("2500", "91.70")
	amount := decimal.RequireFromString("91.70")

	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), card.Number).
		Return(card, nil)
	s.mockCardRepo.EXPECT().
		AddToBalance(gomock.Any(), card.Number, decimalMatcher{amount.Neg()}).
		Return(card, nil)
	s.mockLedgerRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			// платеж пишется в журнал с отрицательным итогом.
			s.True(args.Total.Equal(amount.Neg()))
			return &domain.Transaction{ID: 8, CardNumber: card.Number, Total: args.Total}, nil
		})

	trans, err := s.service.MakePayment(context.Background(), card.Number, amount)
	s.Require().NoError(err)
	s.True(trans.Total.Equal(amount.Neg()))
}

// Платеж принимается по любой существующей карте: плательщик может погасить
// долг по чужой карте, знать ее номер достаточно.
func (s *TransactionServiceTestSuite) TestMakePayment_AnyCardAccepted() {
	card := s.card("2500", "100")
	amount := decimal.NewFromInt(10)

	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), card.Number).
		Return(card, nil)
	s.mockCardRepo.EXPECT().
		AddToBalance(gomock.Any(), card.Number, decimalMatcher{amount.Neg()}).
		Return(card, nil)
	s.mockLedgerRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 9, CardNumber: card.Number, Total: amount.Neg()}, nil)

	_, err := s.service.MakePayment(context.Background(), card.Number, amount)
	s.Require().NoError(err)
}

func (s *TransactionServiceTestSuite) TestMakePayment_UnknownCard() {
	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), int64(9999)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.MakePayment(context.Background(), 9999, decimal.NewFromInt(10))
	s.Require().ErrorIs(err, domain.ErrCardNotFound)
}

func (s *TransactionServiceTestSuite) TestMakePayment_NoPaymentRequired() {
	testCases := []struct {
		name    string
		balance string
	}{
		{name: "нулевой баланс", balance: "0"},
		{name: "отрицательный баланс", balance: "-5.00"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			card := s.card("2500", tc.balance)
			s.mockCardRepo.EXPECT().
				FindByNumberForUpdate(gomock.Any(), card.Number).
				Return(card, nil)

			_, err := s.service.MakePayment(context.Background(), card.Number, decimal.NewFromInt(10))
			s.Require().ErrorIs(err, domain.ErrNoPaymentRequired)
		})
	}
}

func (s *TransactionServiceTestSuite) TestMakePayment_AmountBounds() {
	testCases := []struct {
		name    string
		limit   string
		amount  string
		wantErr error
	}{
		{name: "ноль", limit: "2500", amount: "0.00", wantErr: domain.ErrPaymentInvalid},
		{name: "нижняя граница", limit: "2500", amount: "0.01"},
		{name: "верхняя граница", limit: "2500", amount: "2500"},
		{name: "выше верхней границы", limit: "2500", amount: "2500.01", wantErr: domain.ErrPaymentInvalid},
		{name: "отрицательная сумма", limit: "2500", amount: "-10", wantErr: domain.ErrPaymentInvalid},
		{name: "три знака после запятой", limit: "2500", amount: "10.005", wantErr: domain.ErrPaymentInvalid},
		{name: "хвостовые нули", limit: "2500", amount: "10.100"},
		{name: "больше лимита карты", limit: "500", amount: "600", wantErr: domain.ErrPaymentInvalid},
		{name: "ровно лимит карты", limit: "500", amount: "500"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			card := s.card(tc.limit, "100.00")
			amount := decimal.RequireFromString(tc.amount)

			s.mockCardRepo.EXPECT().
				FindByNumberForUpdate(gomock.Any(), card.Number).
				Return(card, nil)

			if tc.wantErr == nil {
				s.mockCardRepo.EXPECT().
					AddToBalance(gomock.Any(), card.Number, decimalMatcher{amount.Neg()}).
					Return(card, nil)
				s.mockLedgerRepo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(&domain.Transaction{ID: 1, CardNumber: card.Number, Total: amount.Neg()}, nil)
			}

			_, err := s.service.MakePayment(context.Background(), card.Number, amount)
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
		})
	}
}

// Переплата разрешена: платеж больше текущего долга уводит баланс в минус,
// сумма сверяется только с лимитом, не с долгом.
func (s *TransactionServiceTestSuite) TestMakePayment_OverpaymentAllowed() {
	card := s.card("2500", "50.00")
	amount := decimal.RequireFromString("200.00")

	s.mockCardRepo.EXPECT().
		FindByNumberForUpdate(gomock.Any(), card.Number).
		Return(card, nil)
	s.mockCardRepo.EXPECT().
		AddToBalance(gomock.Any(), card.Number, decimalMatcher{amount.Neg()}).
		Return(card, nil)
	s.mockLedgerRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 2, CardNumber: card.Number, Total: amount.Neg()}, nil)

	_, err := s.service.MakePayment(context.Background(), card.Number, amount)
	s.Require().NoError(err)
}

// Проверка доступного кредита обязана читать карту, которую внутри той же
// транзакции вернуло чтение под блокировкой строки, а не какой-либо более
// ранний снимок. Здесь заблокированная строка уже отражает конкурентный
// коммит: доступного кредита не хватает, заказ отклоняется до любых мутаций.
// Чтение без блокировки не замокано, так что обход FindByNumberForUpdate
// уронит тест сам по себе.
func (s *TransactionServiceTestSuite) TestPlaceOrder_ValidatesBalanceUnderRowLock() {
	lockedCard := s.card("500", "450")

	gomock.InOrder(
		s.mockCardRepo.EXPECT().
			FindByNumberForUpdate(gomock.Any(), lockedCard.Number).
			Return(lockedCard, nil),
		s.mockCatalog.EXPECT().
			GetItemsByIDs(gomock.Any(), []int64{1}).
			Return([]domain.VendorItem{
				{ID: 1, VendorID: 2, Price: decimal.RequireFromString("60.00")},
			}, nil),
	)

	_, err := s.service.PlaceOrder(
		context.Background(),
		lockedCard.CustomerID,
		lockedCard.Number,
		[]domain.OrderItem{{ItemID: 1, Quantity: 1}},
	)
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

// Мутации платежа идут строго после чтения карты под блокировкой строки.
func (s *TransactionServiceTestSuite) TestMakePayment_MutationFollowsRowLock() {
	card := s.card("2500", "100.00")
	amount := decimal.RequireFromString("50.00")

	gomock.InOrder(
		s.mockCardRepo.EXPECT().
			FindByNumberForUpdate(gomock.Any(), card.Number).
			Return(card, nil),
		s.mockCardRepo.EXPECT().
			AddToBalance(gomock.Any(), card.Number, decimalMatcher{amount.Neg()}).
			Return(card, nil),
		s.mockLedgerRepo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			Return(&domain.Transaction{ID: 3, CardNumber: card.Number, Total: amount.Neg()}, nil),
	)

	_, err := s.service.MakePayment(context.Background(), card.Number, amount)
	s.Require().NoError(err)
}

// decimalMatcher сравнивает decimal по значению: Equal вместо сравнения
// внутренних представлений (1 и 1.00 равны).
type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}
