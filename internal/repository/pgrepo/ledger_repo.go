package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
)

// LedgerRepository журнал транзакций и их деталей. Только вставка и чтение:
// UPDATE/DELETE по зафиксированным записям не существует в принципе.
type LedgerRepository struct {
	db uow.DBTX
}

func NewLedgerRepository(db uow.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) CreateTransaction(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	var trans domain.Transaction
	err := r.db.QueryRow(ctx, `
		INSERT INTO transactions (card_number, total)
		VALUES ($1, $2)
		RETURNING id, created_at, card_number, total`,
		args.CardNumber, args.Total,
	).Scan(&trans.ID, &trans.CreatedAt, &trans.CardNumber, &trans.Total)
	if err != nil {
		return nil, convertErr(err, "creating transaction for card `%d`", args.CardNumber)
	}
	return &trans, nil
}

func (r *LedgerRepository) CreateDetail(
	ctx context.Context,
	args repoargs.DetailCreate,
) (*domain.TransactionDetail, error) {
	var detail domain.TransactionDetail
	err := r.db.QueryRow(ctx, `
		INSERT INTO transaction_details (transaction_id, item_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING transaction_id, item_id, quantity`,
		args.TransactionID, args.ItemID, args.Quantity,
	).Scan(&detail.TransactionID, &detail.ItemID, &detail.Quantity)
	if err != nil {
		return nil, convertErr(err, "creating detail for transaction `%d`", args.TransactionID)
	}
	return &detail, nil
}

// GetByCardNumber возвращает транзакции карты в хронологическом порядке.
func (r *LedgerRepository) GetByCardNumber(ctx context.Context, cardNumber int64) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, created_at, card_number, total
		FROM transactions
		WHERE card_number = $1
		ORDER BY created_at, id`,
		cardNumber,
	)
	if err != nil {
		return nil, convertErr(err, "getting transactions by card `%d`", cardNumber)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var trans domain.Transaction
		if scanErr := rows.Scan(&trans.ID, &trans.CreatedAt, &trans.CardNumber, &trans.Total); scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction row")
		}
		transactions = append(transactions, trans)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating transaction rows")
	}
	return transactions, nil
}

func (r *LedgerRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	var trans domain.Transaction
	err := r.db.QueryRow(ctx, `
		SELECT id, created_at, card_number, total FROM transactions WHERE id = $1`,
		id,
	).Scan(&trans.ID, &trans.CreatedAt, &trans.CardNumber, &trans.Total)
	if err != nil {
		return nil, convertErr(err, "finding transaction `%d`", id)
	}
	return &trans, nil
}

// GetReportItems возвращает детали транзакции, развернутые до товаров каталога.
// Join объявлен здесь явно: никакой ленивой подгрузки на верхних слоях.
func (r *LedgerRepository) GetReportItems(ctx context.Context, transactionID int64) ([]domain.ReportItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT vi.name, vi.description, vi.price, vi.img_link, td.quantity
		FROM transaction_details td
		JOIN vendor_items vi ON vi.id = td.item_id
		WHERE td.transaction_id = $1
		ORDER BY vi.id`,
		transactionID,
	)
	if err != nil {
		return nil, convertErr(err, "getting details of transaction `%d`", transactionID)
	}
	defer rows.Close()

	var items []domain.ReportItem
	for rows.Next() {
		var item domain.ReportItem
		scanErr := rows.Scan(
			&item.ItemName,
			&item.ItemDescription,
			&item.Price,
			&item.ImgLink,
			&item.Quantity,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning report item row")
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating report item rows")
	}
	return items, nil
}

// GetVendorSales возвращает продажи товаров вендора: по строке на каждую
// позицию журнала, с клиентом и номером карты.
func (r *LedgerRepository) GetVendorSales(ctx context.Context, vendorID int64) ([]domain.VendorSale, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.created_at, t.total, c.id, c.first_name, c.last_name, cc.number
		FROM transaction_details td
		JOIN vendor_items vi ON vi.id = td.item_id
		JOIN transactions t ON t.id = td.transaction_id
		JOIN credit_cards cc ON cc.number = t.card_number
		JOIN customers c ON c.id = cc.customer_id
		WHERE vi.vendor_id = $1
		ORDER BY t.created_at, t.id`,
		vendorID,
	)
	if err != nil {
		return nil, convertErr(err, "getting sales of vendor `%d`", vendorID)
	}
	defer rows.Close()

	var sales []domain.VendorSale
	for rows.Next() {
		var sale domain.VendorSale
		scanErr := rows.Scan(
			&sale.TransactionID,
			&sale.CreatedAt,
			&sale.Total,
			&sale.CustomerID,
			&sale.FirstName,
			&sale.LastName,
			&sale.CardNumber,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning vendor sale row")
		}
		sales = append(sales, sale)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating vendor sale rows")
	}
	return sales, nil
}
