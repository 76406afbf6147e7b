package lot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotVerified = errors.New("lot verification is not completed")
	ErrLotClosed   = errors.New("lot is closed")
)

// Lot is a registered parking location. The booking core reads its rate
// table, allow-list and staffed flag; the registry's wizard mutates it.
type Lot struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	address   string
	location  Location
	staffed   bool
	status    Status
	stage     VerificationStage
	allowList AllowList
	rates     RateTable
	createdAt time.Time
	updatedAt time.Time
}

// NewLot creates a lot from the first wizard step (location details only).
// Pricing, allow-list and the staffed flag arrive in the second step.
func NewLot(ownerID uuid.UUID, name, address string, location Location) (*Lot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyLotName
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	return &Lot{
		id:       uuid.New(),
		ownerID:  ownerID,
		name:     name,
		address:  address,
		location: location,
		status:   StatusClosed,
		stage:    StagePricingPending,
	}, nil
}

func ReconstructLot(
	id, ownerID uuid.UUID,
	name, address string,
	location Location,
	staffed bool,
	status Status,
	stage VerificationStage,
	allowList AllowList,
	rates RateTable,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		address:   address,
		location:  location,
		staffed:   staffed,
		status:    status,
		stage:     stage,
		allowList: allowList,
		rates:     rates,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateLocationDetails re-runs the first wizard step on an existing lot.
func (l *Lot) UpdateLocationDetails(name, address string, location Location) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyLotName
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrEmptyAddress
	}

	l.name = name
	l.address = address
	l.location = location
	return nil
}

// ConfigurePricing applies the second wizard step.
func (l *Lot) ConfigurePricing(allowList AllowList, rates RateTable, staffed bool) {
	l.allowList = allowList
	l.rates = rates
	l.staffed = staffed
	if l.stage == StagePricingPending {
		l.stage = StageDocumentsPending
	}
}

func (l *Lot) MarkDocumentsSubmitted() {
	l.stage = StageBankPending
}

func (l *Lot) MarkBankDetailsSubmitted() {
	l.stage = StageCompleted
}

func (l *Lot) SetStatus(status Status) {
	l.status = status
}

func (l *Lot) IsVerified() bool {
	return l.stage == StageCompleted
}

func (l *Lot) ID() uuid.UUID            { return l.id }
func (l *Lot) OwnerID() uuid.UUID       { return l.ownerID }
func (l *Lot) Name() string             { return l.name }
func (l *Lot) Address() string          { return l.address }
func (l *Lot) Location() Location       { return l.location }
func (l *Lot) Staffed() bool            { return l.staffed }
func (l *Lot) Status() Status           { return l.status }
func (l *Lot) Stage() VerificationStage { return l.stage }
func (l *Lot) AllowList() AllowList     { return l.allowList }
func (l *Lot) Rates() RateTable         { return l.rates }
func (l *Lot) CreatedAt() time.Time     { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time     { return l.updatedAt }
