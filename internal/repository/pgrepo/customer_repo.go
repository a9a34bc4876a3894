package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
)

type CustomerRepository struct {
	db uow.DBTX
}

func NewCustomerRepository(db uow.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, created_at, updated_at, first_name, last_name, email, password, is_active`

func (r *CustomerRepository) Create(
	ctx context.Context,
	args repoargs.CreateCustomer,
) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO customers (first_name, last_name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING `+customerColumns,
		args.FirstName, args.LastName, args.Email, args.Password,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer with email `%s`", args.Email)
	}
	return customer, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+customerColumns+` FROM customers WHERE email = $1`,
		email,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by email `%s`", email)
	}
	return customer, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+customerColumns+` FROM customers WHERE id = $1`,
		id,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by id `%d`", id)
	}
	return customer, nil
}

// List возвращает всех клиентов, отсортированных по id. Используется админкой.
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing customers")
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning customer row")
		}
		customers = append(customers, *customer)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating customer rows")
	}
	return customers, nil
}

func (r *CustomerRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE customers SET is_active = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+customerColumns,
		id, active,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "setting is_active for customer `%d`", id)
	}
	return customer, nil
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Password,
		&customer.IsActive,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &customer, nil
}
