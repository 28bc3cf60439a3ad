package paymentmode

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakePaymentModeRepo struct {
	modes         map[uuid.UUID]*entity.PaymentMode
	expenseCounts map[uuid.UUID]int64
}

func newFakePaymentModeRepo(modes ...*entity.PaymentMode) *fakePaymentModeRepo {
	repo := &fakePaymentModeRepo{
		modes:         make(map[uuid.UUID]*entity.PaymentMode),
		expenseCounts: make(map[uuid.UUID]int64),
	}
	for _, mode := range modes {
		repo.modes[mode.ID] = mode
	}
	return repo
}

func (r *fakePaymentModeRepo) Create(_ context.Context, mode *entity.PaymentMode) error {
	r.modes[mode.ID] = mode
	return nil
}

func (r *fakePaymentModeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMode, error) {
	mode, ok := r.modes[id]
	if !ok {
		return nil, domainerror.ErrPaymentModeNotFound
	}
	return mode, nil
}

func (r *fakePaymentModeRepo) FindByName(_ context.Context, name string) (*entity.PaymentMode, error) {
	for _, mode := range r.modes {
		if mode.Name == name {
			return mode, nil
		}
	}
	return nil, domainerror.ErrPaymentModeNotFound
}

func (r *fakePaymentModeRepo) FindAll(_ context.Context) ([]*entity.PaymentMode, error) {
	all := make([]*entity.PaymentMode, 0, len(r.modes))
	for _, mode := range r.modes {
		all = append(all, mode)
	}
	return all, nil
}

func (r *fakePaymentModeRepo) Update(_ context.Context, mode *entity.PaymentMode) error {
	if _, ok := r.modes[mode.ID]; !ok {
		return domainerror.ErrPaymentModeNotFound
	}
	r.modes[mode.ID] = mode
	return nil
}

func (r *fakePaymentModeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.modes[id]; !ok {
		return domainerror.ErrPaymentModeNotFound
	}
	delete(r.modes, id)
	return nil
}

func (r *fakePaymentModeRepo) CountExpenses(_ context.Context, id uuid.UUID) (int64, error) {
	return r.expenseCounts[id], nil
}

type fakeAggregateCache struct {
	invalidations int
}

func (c *fakeAggregateCache) Version(_ context.Context) (int64, error) { return 0, nil }

func (c *fakeAggregateCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return nil
}

func (c *fakeAggregateCache) GetAggregate(_ context.Context, _ int64, _ string, _ any) (bool, error) {
	return false, nil
}

func (c *fakeAggregateCache) SetAggregate(_ context.Context, _ int64, _ string, _ any) error {
	return nil
}

func TestCreatePaymentModeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a mode with display defaults", func(t *testing.T) {
		repo := newFakePaymentModeRepo()
		cache := &fakeAggregateCache{}
		uc := NewCreatePaymentModeUseCase(repo, cache)

		mode, err := uc.Execute(ctx, CreatePaymentModeInput{Name: "Visa", Type: "credit_card"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mode.Icon != entity.DefaultPaymentModeIcon || mode.Color != entity.DefaultPaymentModeColor {
			t.Errorf("expected display defaults, got %q / %q", mode.Icon, mode.Color)
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		existing := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		uc := NewCreatePaymentModeUseCase(newFakePaymentModeRepo(existing), &fakeAggregateCache{})

		_, err := uc.Execute(ctx, CreatePaymentModeInput{Name: "Visa", Type: "debit_card"})

		var modeErr *domainerror.PaymentModeError
		if !errors.As(err, &modeErr) {
			t.Fatalf("expected a payment mode error, got %v", err)
		}
		if modeErr.Code != domainerror.ErrCodePaymentModeNameTaken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePaymentModeNameTaken, modeErr.Code)
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		uc := NewCreatePaymentModeUseCase(newFakePaymentModeRepo(), &fakeAggregateCache{})

		_, err := uc.Execute(ctx, CreatePaymentModeInput{Name: "Visa", Type: "wire"})

		if !errors.Is(err, domainerror.ErrInvalidPaymentModeType) {
			t.Errorf("expected invalid payment mode type error, got %v", err)
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		uc := NewCreatePaymentModeUseCase(newFakePaymentModeRepo(), &fakeAggregateCache{})

		_, err := uc.Execute(ctx, CreatePaymentModeInput{Type: "cash"})

		if !errors.Is(err, domainerror.ErrPaymentModeNameRequired) {
			t.Errorf("expected name required error, got %v", err)
		}
	})
}

func TestDeletePaymentModeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced mode", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		repo := newFakePaymentModeRepo(mode)
		cache := &fakeAggregateCache{}
		uc := NewDeletePaymentModeUseCase(repo, cache)

		if err := uc.Execute(ctx, mode.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.modes) != 0 {
			t.Errorf("expected the mode to be deleted, %d left", len(repo.modes))
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("refuses to orphan expenses", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		repo := newFakePaymentModeRepo(mode)
		repo.expenseCounts[mode.ID] = 3
		uc := NewDeletePaymentModeUseCase(repo, &fakeAggregateCache{})

		err := uc.Execute(ctx, mode.ID)

		var modeErr *domainerror.PaymentModeError
		if !errors.As(err, &modeErr) {
			t.Fatalf("expected a payment mode error, got %v", err)
		}
		if modeErr.Code != domainerror.ErrCodePaymentModeInUse {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePaymentModeInUse, modeErr.Code)
		}
		if len(repo.modes) != 1 {
			t.Error("expected the mode to survive the refused delete")
		}
	})

	t.Run("unknown mode yields a not-found error", func(t *testing.T) {
		uc := NewDeletePaymentModeUseCase(newFakePaymentModeRepo(), &fakeAggregateCache{})

		err := uc.Execute(ctx, uuid.New())

		if !errors.Is(err, domainerror.ErrPaymentModeNotFound) {
			t.Errorf("expected payment mode not found error, got %v", err)
		}
	})
}
