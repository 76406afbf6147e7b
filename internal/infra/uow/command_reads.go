package uow

import (
	"context"
	"errors"
	"time"

	"parkeaze/internal/domain/lot"
	"parkeaze/internal/domain/user"
	"parkeaze/internal/infra"
	"parkeaze/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// commandReads rehydrates aggregates for command-side validation. Inside a
// transaction it shares the transaction's snapshot.
type commandReads struct {
	uow  *PostgresUoW
	dbtx db.DBTX
}

const userColumns = `
	id, user_name, phone_number, password_hash, role, aadhaar_number,
	bank_name, bank_account_number, bank_ifsc_code, created_at, updated_at
`

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.dbtx.QueryRow(ctx, query, id))
}

func (r *commandReads) UserByPhone(ctx context.Context, phone string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`
	return r.scanUser(r.dbtx.QueryRow(ctx, query, phone))
}

func (r *commandReads) scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                               uuid.UUID
		name, phone, passwordHash, role  string
		aadhaarNumber                    string
		bankName, bankAccount, bankIFSC  *string
		createdAt, updatedAt             time.Time
	)
	err := row.Scan(
		&id, &name, &phone, &passwordHash, &role, &aadhaarNumber,
		&bankName, &bankAccount, &bankIFSC, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.uow.logger, infra.KindNotFound, "user not found", nil)
		}
		return nil, infra.WrapRepoErr(r.uow.logger, infra.KindDBFailure, "failed to find user", err)
	}

	var bank *user.BankDetails
	if bankName != nil && bankAccount != nil && bankIFSC != nil {
		bank = &user.BankDetails{
			BankName:      *bankName,
			AccountNumber: *bankAccount,
			IFSCCode:      *bankIFSC,
		}
	}

	return user.ReconstructUser(
		id,
		user.ReconstructName(name),
		user.ReconstructPhoneNumber(phone),
		passwordHash,
		user.Role(role),
		aadhaarNumber,
		bank,
		createdAt, updatedAt,
	), nil
}

const lotColumns = `
	id, owner_id, name, address, latitude, longitude, staffed, status,
	verification_stage, allow_two_wheeler, allow_four_wheeler,
	allow_heavy_vehicle, rate_two_wheeler, rate_four_wheeler,
	rate_heavy_vehicle, created_at, updated_at
`

func (r *commandReads) LotByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	return r.scanLot(r.dbtx.QueryRow(ctx, query, id))
}

func (r *commandReads) LotByOwner(ctx context.Context, ownerID uuid.UUID) (*lot.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE owner_id = $1`
	return r.scanLot(r.dbtx.QueryRow(ctx, query, ownerID))
}

func (r *commandReads) scanLot(row pgx.Row) (*lot.Lot, error) {
	var (
		id, ownerID                      uuid.UUID
		name, address, status, stage     string
		latitude, longitude              float64
		staffed                          bool
		allowTwo, allowFour, allowHeavy  bool
		rateTwo, rateFour, rateHeavy     *float64
		createdAt, updatedAt             time.Time
	)
	err := row.Scan(
		&id, &ownerID, &name, &address, &latitude, &longitude, &staffed,
		&status, &stage, &allowTwo, &allowFour, &allowHeavy,
		&rateTwo, &rateFour, &rateHeavy, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.uow.logger, infra.KindNotFound, "lot not found", nil)
		}
		return nil, infra.WrapRepoErr(r.uow.logger, infra.KindDBFailure, "failed to find lot", err)
	}

	return lot.ReconstructLot(
		id, ownerID, name, address,
		lot.NewLocation(latitude, longitude),
		staffed,
		lot.Status(status),
		lot.VerificationStage(stage),
		lot.NewAllowList(allowTwo, allowFour, allowHeavy),
		lot.ReconstructRateTable(rateTwo, rateFour, rateHeavy),
		createdAt, updatedAt,
	), nil
}
