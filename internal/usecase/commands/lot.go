package commands

import (
	"context"

	"parkeaze/internal/domain/lot"
	"parkeaze/internal/domain/user"
	"parkeaze/internal/infra"
	"parkeaze/internal/pkg/errs"
	"parkeaze/internal/pkg/password"
	"parkeaze/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotOwner         = errs.New("actor is not a lot owner")
	ErrNoLotForOwner    = errs.New("owner has no registered lot")
	ErrAadhaarRequired  = errs.New("aadhaar number is required")
	ErrBankDetailsEmpty = errs.New("bank details are incomplete")
)

type SetupLocationInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type ConfigurePricingInput struct {
	TwoWheeler   *float64
	FourWheeler  *float64
	HeavyVehicle *float64
	Staffed      bool
}

type SubmitBankDetailsInput struct {
	BankName      string
	AccountNumber string
	IFSCCode      string
}

type LotCommands interface {
	SetupLocation(ctx context.Context, ownerID uuid.UUID, in SetupLocationInput) (uuid.UUID, error)
	ConfigurePricing(ctx context.Context, ownerID uuid.UUID, in ConfigurePricingInput) error
	SubmitDocuments(ctx context.Context, ownerID uuid.UUID, aadhaarNumber string) error
	SubmitBankDetails(ctx context.Context, ownerID uuid.UUID, in SubmitBankDetailsInput) error
	SetStatus(ctx context.Context, ownerID uuid.UUID, status string) error
}

type lotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewLotCommands(uow shared.UnitOfWork) LotCommands {
	return &lotCommandsImpl{uow: uow}
}

func (c *lotCommandsImpl) requireOwner(ctx context.Context, ownerID uuid.UUID) (*user.User, error) {
	u, err := c.uow.Reads().UserByID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !u.IsOwner() {
		return nil, ErrNotOwner
	}
	return u, nil
}

func (c *lotCommandsImpl) ownedLot(ctx context.Context, reads shared.CommandReads, ownerID uuid.UUID) (*lot.Lot, error) {
	l, err := reads.LotByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoLotForOwner
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return l, nil
}

// SetupLocation creates the owner's lot on first call and updates the
// location details on subsequent calls, so the wizard can be re-entered.
func (c *lotCommandsImpl) SetupLocation(ctx context.Context, ownerID uuid.UUID, in SetupLocationInput) (uuid.UUID, error) {
	if _, err := c.requireOwner(ctx, ownerID); err != nil {
		return uuid.Nil, err
	}

	var lotID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		location := lot.NewLocation(in.Latitude, in.Longitude)

		existing, derr := tx.Reads().LotByOwner(ctx, ownerID)
		switch {
		case derr == nil:
			if uerr := existing.UpdateLocationDetails(in.Name, in.Address, location); uerr != nil {
				return uerr
			}
			if uerr := tx.Lots().Update(ctx, existing); uerr != nil {
				return errs.Mark(uerr, ErrDatabaseOperation)
			}
			lotID = existing.ID()
			return nil
		case infra.IsKind(derr, infra.KindNotFound):
			l, nerr := lot.NewLot(ownerID, in.Name, in.Address, location)
			if nerr != nil {
				return nerr
			}
			if cerr := tx.Lots().Create(ctx, l); cerr != nil {
				return errs.Mark(cerr, ErrDatabaseOperation)
			}
			lotID = l.ID()
			return nil
		default:
			return errs.Mark(derr, ErrDatabaseOperation)
		}
	})
	if err != nil {
		return uuid.Nil, err
	}
	return lotID, nil
}

func (c *lotCommandsImpl) ConfigurePricing(ctx context.Context, ownerID uuid.UUID, in ConfigurePricingInput) error {
	if _, err := c.requireOwner(ctx, ownerID); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := c.ownedLot(ctx, tx.Reads(), ownerID)
		if err != nil {
			return err
		}
		allowList := lot.NewAllowList(in.TwoWheeler != nil, in.FourWheeler != nil, in.HeavyVehicle != nil)
		rates, err := lot.NewRateTable(in.TwoWheeler, in.FourWheeler, in.HeavyVehicle)
		if err != nil {
			return err
		}
		l.ConfigurePricing(allowList, rates, in.Staffed)
		if err := tx.Lots().Update(ctx, l); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

// SubmitDocuments records the owner's identity document. Only a digest of
// the aadhaar number is kept.
func (c *lotCommandsImpl) SubmitDocuments(ctx context.Context, ownerID uuid.UUID, aadhaarNumber string) error {
	u, err := c.requireOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if aadhaarNumber == "" {
		return ErrAadhaarRequired
	}
	digest, err := password.HashPassword(aadhaarNumber)
	if err != nil {
		return errs.Wrap(err, "failed to hash aadhaar number")
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := c.ownedLot(ctx, tx.Reads(), ownerID)
		if err != nil {
			return err
		}
		u.SubmitAadhaar(digest)
		if err := tx.Users().Update(ctx, u); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		l.MarkDocumentsSubmitted()
		if err := tx.Lots().Update(ctx, l); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

func (c *lotCommandsImpl) SubmitBankDetails(ctx context.Context, ownerID uuid.UUID, in SubmitBankDetailsInput) error {
	u, err := c.requireOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if in.BankName == "" || in.AccountNumber == "" || in.IFSCCode == "" {
		return ErrBankDetailsEmpty
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := c.ownedLot(ctx, tx.Reads(), ownerID)
		if err != nil {
			return err
		}
		u.SubmitBankDetails(user.BankDetails{
			BankName:      in.BankName,
			AccountNumber: in.AccountNumber,
			IFSCCode:      in.IFSCCode,
		})
		if err := tx.Users().Update(ctx, u); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		l.MarkBankDetailsSubmitted()
		if err := tx.Lots().Update(ctx, l); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

func (c *lotCommandsImpl) SetStatus(ctx context.Context, ownerID uuid.UUID, status string) error {
	if _, err := c.requireOwner(ctx, ownerID); err != nil {
		return err
	}
	next, err := lot.NewStatus(status)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := c.ownedLot(ctx, tx.Reads(), ownerID)
		if err != nil {
			return err
		}
		if next == lot.StatusOpen && !l.IsVerified() {
			return lot.ErrNotVerified
		}
		l.SetStatus(next)
		if err := tx.Lots().Update(ctx, l); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}
