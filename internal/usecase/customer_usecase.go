package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPhoneRequired = errors.New("phone required")
	ErrPhoneTaken    = errors.New("phone already registered")
)

// ICustomerUseCase exposes customer CRUD plus the shared-secret gate used by
// the UI before destructive actions.

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	VerifyPassword(secret string) bool
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	auth interfaces.IAuthorizer
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, auth interfaces.IAuthorizer) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, auth: auth}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Phone == "" {
		return entities.Customer{}, ErrPhoneRequired
	}

	if existing, err := u.repo.GetByPhone(ctx, c.Phone); err != nil {
		return entities.Customer{}, err
	} else if existing.ID != "" {
		return entities.Customer{}, ErrPhoneTaken
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	phone := strings.TrimSpace(c.Phone)
	if phone == "" {
		return entities.Customer{}, ErrPhoneRequired
	}
	if phone != existing.Phone {
		if other, err := u.repo.GetByPhone(ctx, phone); err != nil {
			return entities.Customer{}, err
		} else if other.ID != "" && other.ID != existing.ID {
			return entities.Customer{}, ErrPhoneTaken
		}
	}

	existing.Phone = phone
	existing.Name = c.Name
	existing.Email = c.Email
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCustomerNotFound
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCustomerNotFound
	}
	return nil
}

func (u *CustomerUseCase) VerifyPassword(secret string) bool {
	if u.auth == nil {
		return false
	}
	return u.auth.Verify(secret)
}
