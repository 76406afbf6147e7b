package writerepo

import (
	"context"
	"log/slog"

	"parkeaze/internal/domain/user"
	"parkeaze/internal/infra"
	"parkeaze/internal/infra/db"
)

type UserRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserRepository(dbtx db.DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: dbtx, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, user_name, phone_number, password_hash, role, aadhaar_number)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		u.ID(), u.Name().Value(), u.Phone().Value(), u.PasswordHash(),
		u.Role().String(), u.AadhaarNumber(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const query = `
		UPDATE users
		SET user_name = $2,
		    phone_number = $3,
		    password_hash = $4,
		    role = $5,
		    aadhaar_number = $6,
		    bank_name = $7,
		    bank_account_number = $8,
		    bank_ifsc_code = $9,
		    updated_at = now()
		WHERE id = $1
	`
	var bankName, bankAccount, bankIFSC *string
	if bank := u.Bank(); bank != nil {
		bankName = &bank.BankName
		bankAccount = &bank.AccountNumber
		bankIFSC = &bank.IFSCCode
	}

	tag, err := r.db.Exec(ctx, query,
		u.ID(), u.Name().Value(), u.Phone().Value(), u.PasswordHash(),
		u.Role().String(), u.AadhaarNumber(), bankName, bankAccount, bankIFSC,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, kindOf(err), "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}
