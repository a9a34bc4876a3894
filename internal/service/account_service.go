package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
)

var (
	emailRegex = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z]+$`)
)

const (
	minPasswordLength = 6
	maxPasswordLength = 16
	minNameLength     = 3
)

// AccountService клиенты и выдача карт: регистрация, вход, заявка на карту,
// админские операции со списком клиентов.
type AccountService struct {
	uow               uow.UOW
	customerRepo      CustomerRepository
	adminPasswordHash string
}

func NewAccountService(u uow.UOW, adminPasswordHash string) (*AccountService, error) {
	customerRepo, customerRepoErr :=
		uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if customerRepoErr != nil {
		return nil, customerRepoErr //nolint:wrapcheck
	}
	return &AccountService{
		uow:               u,
		customerRepo:      customerRepo,
		adminPasswordHash: adminPasswordHash,
	}, nil
}

type RegisterArgs struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register создает клиента. Email приводится к нижнему регистру, имена - к виду
// "Первая заглавная". Невалидные данные - ErrCustomerInvalid, занятый email -
// ErrEmailTaken.
func (s *AccountService) Register(ctx context.Context, args RegisterArgs) (*domain.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(args.Email))

	if !emailRegex.MatchString(email) ||
		len(args.Password) < minPasswordLength || len(args.Password) > maxPasswordLength {
		return nil, domain.ErrCustomerInvalid //nolint:wrapcheck
	}
	if len(args.FirstName) < minNameLength || len(args.LastName) < minNameLength ||
		!nameRegex.MatchString(args.FirstName) || !nameRegex.MatchString(args.LastName) {
		return nil, domain.ErrCustomerInvalid //nolint:wrapcheck
	}

	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering customer: %s", hashErr.Error())
	}

	customer, createErr := s.customerRepo.Create(ctx, repoargs.CreateCustomer{
		FirstName: capitalize(args.FirstName),
		LastName:  capitalize(args.LastName),
		Email:     email,
		Password:  password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil, domain.ErrEmailTaken //nolint:wrapcheck
		}
		return nil, fmt.Errorf("registering customer: %w", createErr)
	}
	return customer, nil
}

// Login проверяет учетные данные и активность аккаунта. Возвращает
// domain.ErrRecordNotFound, domain.ErrPasswordMissMatch или
// domain.ErrCustomerInactive.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	customer, findErr := s.customerRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	if !s.comparePasswords(customer.Password, password) {
		return nil, domain.ErrPasswordMissMatch //nolint:wrapcheck
	}
	if !customer.IsActive {
		return nil, domain.ErrCustomerInactive //nolint:wrapcheck
	}
	return customer, nil
}

// AdminLogin сверяет пароль администратора с хешом из конфигурации.
func (s *AccountService) AdminLogin(password string) error {
	if !s.comparePasswords(s.adminPasswordHash, password) {
		return domain.ErrPasswordMissMatch //nolint:wrapcheck
	}
	return nil
}

// ApplyForCard выдает клиенту новую карту с нулевым балансом. Лимит
// разыгрывается кратным 100 в диапазоне [500, 2500].
func (s *AccountService) ApplyForCard(ctx context.Context, customerID int64) (*domain.CreditCard, error) {
	var card *domain.CreditCard

	limit := decimal.NewFromInt(int64(rand.Intn(21)+5) * 100) //nolint:gosec,mnd

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}
		var createErr error
		card, createErr = cardRepo.Create(c, repoargs.CreateCard{
			CustomerID:  customerID,
			CreditLimit: limit,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("applying for card: %w", txErr)
	}
	return card, nil
}

func (s *AccountService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customers, nil
}

// ToggleActive переключает флаг активности клиента. Чтение и запись выполняются
// в одной транзакции, чтобы два конкурентных переключения не потерялись.
func (s *AccountService) ToggleActive(ctx context.Context, customerID int64) (*domain.Customer, error) {
	var customer *domain.Customer

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		customerRepo, repoErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		current, findErr := customerRepo.FindByID(c, customerID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		var setErr error
		customer, setErr = customerRepo.SetActive(c, customerID, !current.IsActive)
		return setErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("toggling customer activity: %w", txErr)
	}
	return customer, nil
}

func (s *AccountService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *AccountService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}
