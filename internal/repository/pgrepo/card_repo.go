package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
)

type CardRepository struct {
	db uow.DBTX
}

func NewCardRepository(db uow.DBTX) *CardRepository {
	return &CardRepository{db: db}
}

const cardColumns = `number, created_at, updated_at, customer_id, credit_limit, credit_balance`

func (r *CardRepository) Create(ctx context.Context, args repoargs.CreateCard) (*domain.CreditCard, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO credit_cards (customer_id, credit_limit)
		VALUES ($1, $2)
		RETURNING `+cardColumns,
		args.CustomerID, args.CreditLimit,
	)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "creating credit card for customer %d", args.CustomerID)
	}
	return card, nil
}

func (r *CardRepository) FindByNumber(ctx context.Context, number int64) (*domain.CreditCard, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+cardColumns+` FROM credit_cards WHERE number = $1`,
		number,
	)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "finding credit card `%d`", number)
	}
	return card, nil
}

// FindByNumberForUpdate читает карту с блокировкой строки (SELECT ... FOR UPDATE).
// Блокировка держится до конца текущей транзакции и сериализует конкурентные
// коммиты по одной карте. Вызывать только внутри uow.Do.
func (r *CardRepository) FindByNumberForUpdate(ctx context.Context, number int64) (*domain.CreditCard, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+cardColumns+` FROM credit_cards WHERE number = $1 FOR UPDATE`,
		number,
	)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "locking credit card `%d`", number)
	}
	return card, nil
}

func (r *CardRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.CreditCard, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+cardColumns+` FROM credit_cards WHERE customer_id = $1 ORDER BY number`,
		customerID,
	)
	if err != nil {
		return nil, convertErr(err, "getting credit cards by customerID `%d`", customerID)
	}
	defer rows.Close()

	var cards []domain.CreditCard
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning credit card row")
		}
		cards = append(cards, *card)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating credit card rows")
	}
	return cards, nil
}

// AddToBalance прибавляет delta к балансу карты (отрицательная delta - платеж).
// Возвращает карту с новым балансом.
func (r *CardRepository) AddToBalance(
	ctx context.Context,
	number int64,
	delta decimal.Decimal,
) (*domain.CreditCard, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE credit_cards
		SET credit_balance = credit_balance + $2, updated_at = now()
		WHERE number = $1
		RETURNING `+cardColumns,
		number, delta,
	)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "updating balance of credit card `%d`", number)
	}
	return card, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.CreditCard, error) {
	var card domain.CreditCard
	err := row.Scan(
		&card.Number,
		&card.CreatedAt,
		&card.UpdatedAt,
		&card.CustomerID,
		&card.CreditLimit,
		&card.CreditBalance,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &card, nil
}
