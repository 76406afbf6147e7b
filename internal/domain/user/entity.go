package user

import (
	"time"

	"github.com/google/uuid"
)

// User is either a parking seeker or a lot owner. Identity-document and
// bank-detail fields are populated during the owner verification wizard.
type User struct {
	id            uuid.UUID
	name          Name
	phone         PhoneNumber
	passwordHash  string
	role          Role
	aadhaarNumber string
	bank          *BankDetails
	createdAt     time.Time
	updatedAt     time.Time
}

type BankDetails struct {
	BankName      string
	AccountNumber string
	IFSCCode      string
}

func NewUser(name Name, phone PhoneNumber, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name Name,
	phone PhoneNumber,
	passwordHash string,
	role Role,
	aadhaarNumber string,
	bank *BankDetails,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		passwordHash:  passwordHash,
		role:          role,
		aadhaarNumber: aadhaarNumber,
		bank:          bank,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) IsOwner() bool {
	return u.role == RoleOwner
}

func (u *User) UpdateProfile(name *Name, phone *PhoneNumber, role *Role) {
	if name != nil {
		u.name = *name
	}
	if phone != nil {
		u.phone = *phone
	}
	if role != nil {
		u.role = *role
	}
}

func (u *User) ChangePassword(passwordHash string) {
	u.passwordHash = passwordHash
}

// SubmitAadhaar records the hashed identity-document number collected in
// the verification wizard. The images themselves live in media storage.
func (u *User) SubmitAadhaar(hashedNumber string) {
	u.aadhaarNumber = hashedNumber
}

func (u *User) SubmitBankDetails(bank BankDetails) {
	u.bank = &bank
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() Name            { return u.name }
func (u *User) Phone() PhoneNumber    { return u.phone }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) AadhaarNumber() string { return u.aadhaarNumber }
func (u *User) Bank() *BankDetails    { return u.bank }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
