package usecase

import (
	"context"
	"errors"
	"testing"

	"garagemate/internal/domain/entities"
	mock_interfaces "garagemate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("phone required", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Customer{Phone: "   "})
		if !errors.Is(err, ErrPhoneRequired) {
			t.Fatalf("expected ErrPhoneRequired, got %v", err)
		}
	})

	t.Run("phone taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByPhone(gomock.Any(), "9876543210").Return(entities.Customer{ID: "other"}, nil)

		_, err := uc.Create(context.Background(), entities.Customer{Phone: "9876543210"})
		if !errors.Is(err, ErrPhoneTaken) {
			t.Fatalf("expected ErrPhoneTaken, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByPhone(gomock.Any(), "9876543210").Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Customer{Phone: " 9876543210 ", Name: "Asha"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Phone != "9876543210" {
			t.Fatalf("expected trimmed phone, got %q", res.Phone)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.Update(context.Background(), "cust-1", entities.Customer{Phone: "123"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("new phone already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Phone: "111"}, nil)
		repo.EXPECT().GetByPhone(gomock.Any(), "222").Return(entities.Customer{ID: "cust-2"}, nil)

		_, err := uc.Update(context.Background(), "cust-1", entities.Customer{Phone: "222"})
		if !errors.Is(err, ErrPhoneTaken) {
			t.Fatalf("expected ErrPhoneTaken, got %v", err)
		}
	})

	t.Run("same phone skips uniqueness check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Phone: "111", Name: "Old"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Name != "New" || c.Phone != "111" {
					t.Fatalf("unexpected update: %+v", c)
				}
				return c, nil
			},
		)

		_, err := uc.Update(context.Background(), "cust-1", entities.Customer{Phone: "111", Name: "New"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "cust-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "cust-1"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "cust-1").Return(true, nil)

		if err := uc.Delete(context.Background(), " cust-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_VerifyPassword(t *testing.T) {
	t.Run("no authorizer fails closed", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		if uc.VerifyPassword("anything") {
			t.Fatalf("expected rejection without an authorizer")
		}
	})

	t.Run("delegates to authorizer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAuthorizer(ctrl)
		uc := NewCustomerUseCase(nil, auth)

		auth.EXPECT().Verify("s3cret").Return(true)
		if !uc.VerifyPassword("s3cret") {
			t.Fatalf("expected verification to pass")
		}
	})
}
