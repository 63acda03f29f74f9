package booking

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
)

var (
	ErrInvalidDateRange  = errs.New("booking end date must be after start date")
	ErrNotCancellable    = errs.New("only confirmed bookings can be cancelled")
	ErrCancelledAtNeeded = errs.New("cancelled bookings need a cancellation time")
)

const Day = 24 * time.Hour

// Booking occupies its listing on every calendar day in [StartDate, EndDate).
type Booking struct {
	ID          string     `json:"id"`
	ListingID   string     `json:"listingId"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Status      Status     `json:"status"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CustomerID  string     `json:"customerId"`
}

func NewBooking(id, listingID, customerID string, start, end time.Time) (*Booking, error) {
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}
	return &Booking{
		ID:         id,
		ListingID:  listingID,
		StartDate:  start,
		EndDate:    end,
		Status:     StatusConfirmed,
		CustomerID: customerID,
	}, nil
}

func (b *Booking) Cancel(at time.Time) error {
	if b.Status != StatusConfirmed {
		return ErrNotCancellable
	}
	b.Status = StatusCancelled
	b.CancelledAt = &at
	return nil
}

func (b Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Nights is the number of calendar days the booking occupies.
func (b Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate) / Day)
}

// Validate checks the invariants that stored bookings must keep.
func (b Booking) Validate() error {
	if !b.EndDate.After(b.StartDate) {
		return ErrInvalidDateRange
	}
	if !b.Status.IsValid() {
		return errs.New("invalid booking status: " + b.Status.String())
	}
	if b.Status == StatusCancelled && b.CancelledAt == nil {
		return ErrCancelledAtNeeded
	}
	return nil
}
