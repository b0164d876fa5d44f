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
	ErrRegistrationRequired = errors.New("registration number required")
	ErrRegistrationTaken    = errors.New("registration number already registered")
)

// IVehicleUseCase exposes vehicle CRUD. A vehicle always belongs to an
// existing customer; the loyalty counter is owned by the work order engine.

type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, id string, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.RegistrationNumber = strings.ToUpper(strings.TrimSpace(v.RegistrationNumber))
	if v.RegistrationNumber == "" {
		return entities.Vehicle{}, ErrRegistrationRequired
	}
	v.CustomerID = strings.TrimSpace(v.CustomerID)
	if v.CustomerID == "" {
		return entities.Vehicle{}, ErrCustomerRequired
	}

	owner, err := u.customers.GetByID(ctx, v.CustomerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, ErrCustomerNotFound
	}

	if existing, err := u.repo.GetByRegistrationNumber(ctx, v.RegistrationNumber); err != nil {
		return entities.Vehicle{}, err
	} else if existing.ID != "" {
		return entities.Vehicle{}, ErrRegistrationTaken
	}

	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.ServiceCount = 0
	v.CreatedAt = now
	v.UpdatedAt = now
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrCustomerNotFound
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, v entities.Vehicle) (entities.Vehicle, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	regNo := strings.ToUpper(strings.TrimSpace(v.RegistrationNumber))
	if regNo == "" {
		return entities.Vehicle{}, ErrRegistrationRequired
	}
	if regNo != existing.RegistrationNumber {
		if other, err := u.repo.GetByRegistrationNumber(ctx, regNo); err != nil {
			return entities.Vehicle{}, err
		} else if other.ID != "" && other.ID != existing.ID {
			return entities.Vehicle{}, ErrRegistrationTaken
		}
	}

	// ServiceCount and CustomerID are not editable through this path.
	existing.Model = v.Model
	existing.RegistrationNumber = regNo
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrVehicleNotFound
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVehicleNotFound
	}
	return nil
}
