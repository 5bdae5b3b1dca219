package dto

import (
	"time"

	"lotus/internal/domains/reservation/model"
	"lotus/shared"
	gDto "lotus/shared/dto"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Kind      string `json:"kind"       validate:"omitempty,oneof=main addon"`
	Notes     string `json:"notes"      validate:"omitempty"`
}

// CreateReservationRequest accepts either a set of line items or a single
// legacy service id, never both. Client identity is an existing id or the
// guest fields.
type CreateReservationRequest struct {
	ClientID            string              `json:"client_id"             validate:"omitempty,uuid"`
	GuestName           string              `json:"guest_name"            validate:"required_without=ClientID,omitempty,max=100"`
	GuestEmail          string              `json:"guest_email"           validate:"omitempty,email,max=100"`
	GuestPhone          string              `json:"guest_phone"           validate:"omitempty,max=20"`
	ReservationDate     string              `json:"reservation_date"      validate:"required"`
	StartTime           string              `json:"start_time"            validate:"required"`
	Items               []CreateItemRequest `json:"items"                 validate:"omitempty,dive"`
	ServiceID           string              `json:"service_id"            validate:"required_without=Items,excluded_with=Items"`
	ReferralCode        string              `json:"referral_code"         validate:"omitempty"`
	UseMembershipCredit bool                `json:"use_membership_credit"`
	Status              string              `json:"status"                validate:"omitempty,oneof=draft pending"`
	ClientNotes         string              `json:"client_notes"          validate:"omitempty"`
}

func (c *CreateReservationRequest) ParseSlot() (date, start time.Time, err error) {
	date, err = time.Parse("2006-01-02", c.ReservationDate)
	if err != nil {
		return date, start, err
	}

	start, err = time.Parse("15:04", c.StartTime)
	if err != nil {
		return date, start, err
	}

	return date, start, nil
}

type AddServiceRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Kind      string `json:"kind"       validate:"omitempty,oneof=main addon"`
	Notes     string `json:"notes"      validate:"omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft pending confirmed in_progress completed cancelled no_show"`
}

type UpdateReservationRequest struct {
	GuestName   string `db:"guest_name"   json:"guest_name"   validate:"omitempty,max=100"`
	GuestEmail  string `db:"guest_email"  json:"guest_email"  validate:"omitempty,email,max=100"`
	GuestPhone  string `db:"guest_phone"  json:"guest_phone"  validate:"omitempty,max=20"`
	ClientNotes string `db:"client_notes" json:"client_notes" validate:"omitempty"`
	AdminNotes  string `db:"admin_notes"  json:"admin_notes"  validate:"omitempty"`
}

type ItemResponse struct {
	ID              string  `json:"id"`
	ServiceID       string  `json:"service_id"`
	Kind            string  `json:"kind"`
	UnitPrice       float64 `json:"unit_price"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           string  `json:"notes,omitempty"`
}

func (r *ItemResponse) FromModel(model model.ReservationItem) {
	r.ID = model.ID
	r.ServiceID = model.ServiceID
	r.Kind = model.Kind
	r.UnitPrice = model.UnitPrice
	r.DurationMinutes = model.DurationMinutes
	r.Notes = model.Notes
}

type ReservationResponse struct {
	ID                   string         `json:"id"`
	ClientID             *string        `json:"client_id,omitempty"`
	GuestName            string         `json:"guest_name,omitempty"`
	GuestEmail           string         `json:"guest_email,omitempty"`
	GuestPhone           string         `json:"guest_phone,omitempty"`
	ReservationDate      string         `json:"reservation_date"`
	StartTime            string         `json:"start_time"`
	EndTime              string         `json:"end_time"`
	Status               string         `json:"status"`
	PaymentStatus        string         `json:"payment_status"`
	TotalPrice           float64        `json:"total_price"`
	TotalDurationMinutes int            `json:"total_duration_minutes"`
	ServiceID            *string        `json:"service_id,omitempty"`
	ReferralUsageID      *string        `json:"referral_usage_id,omitempty"`
	MembershipGrantID    *string        `json:"membership_grant_id,omitempty"`
	ClientNotes          string         `json:"client_notes,omitempty"`
	AdminNotes           string         `json:"admin_notes,omitempty"`
	Items                []ItemResponse `json:"items"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation, items []model.ReservationItem) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.ReservationDate = model.ReservationDate.Format("2006-01-02")
	r.StartTime = model.StartTime.Format("15:04")
	r.EndTime = model.EndTime.Format("15:04")
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.TotalPrice = model.TotalPrice
	r.TotalDurationMinutes = model.TotalDurationMinutes
	r.ServiceID = model.ServiceID
	r.ReferralUsageID = model.ReferralUsageID
	r.MembershipGrantID = model.MembershipGrantID
	r.ClientNotes = model.ClientNotes
	r.AdminNotes = model.AdminNotes

	r.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, nil)
	}
}

// NewReservation builds the model for a create request once the slot, totals
// and optional ledger references are resolved.
func NewReservation(req CreateReservationRequest, user string, clientID *string, date, start, end time.Time, status string) model.Reservation {
	var serviceID *string
	if len(req.Items) == 0 && req.ServiceID != "" {
		serviceID = &req.ServiceID
	}

	return model.Reservation{
		ID:              uuid.NewString(),
		ClientID:        clientID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		ReservationDate: date,
		StartTime:       start,
		EndTime:         end,
		Status:          status,
		PaymentStatus:   model.PaymentStatusUnpaid,
		ServiceID:       serviceID,
		ClientNotes:     req.ClientNotes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
