package dto

import (
	"time"

	"lotus/internal/domains/referral/model"
	"lotus/shared"
	gDto "lotus/shared/dto"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"

	"github.com/google/uuid"
)

type CreateCodeRequest struct {
	OwnerClientID   string  `json:"owner_client_id"  validate:"required"`
	DiscountPercent float64 `json:"discount_percent" validate:"required,gt=0,lte=100"`
	MaxUses         *int    `json:"max_uses"         validate:"omitempty,min=1"`
	ExpiresAt       string  `json:"expires_at"       validate:"omitempty"`
}

func (c *CreateCodeRequest) ToModel(user, code string) (model.ReferralCode, error) {
	var expiresAt *time.Time

	if c.ExpiresAt != "" {
		parsed, err := timezone.Parse("2006-01-02", c.ExpiresAt)
		if err != nil {
			return model.ReferralCode{}, err
		}

		expiresAt = &parsed
	}

	return model.ReferralCode{
		ID:              uuid.NewString(),
		Code:            code,
		OwnerClientID:   c.OwnerClientID,
		DiscountPercent: c.DiscountPercent,
		MaxUses:         c.MaxUses,
		CurrentUses:     0,
		Active:          true,
		ExpiresAt:       expiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateCodeRequest struct {
	MaxUses   *int   `db:"max_uses"   json:"max_uses"   validate:"omitempty,min=1"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
	ExpiresAt string `json:"expires_at" validate:"omitempty"`
}

type CodeResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	OwnerClientID   string  `json:"owner_client_id"`
	DiscountPercent float64 `json:"discount_percent"`
	MaxUses         *int    `json:"max_uses"`
	CurrentUses     int     `json:"current_uses"`
	Active          bool    `json:"active"`
	ExpiresAt       string  `json:"expires_at,omitempty"`
	gDto.Metadata
}

func (r *CodeResponse) FromModel(model model.ReferralCode) {
	r.ID = model.ID
	r.Code = model.Code
	r.OwnerClientID = model.OwnerClientID
	r.DiscountPercent = model.DiscountPercent
	r.MaxUses = model.MaxUses
	r.CurrentUses = model.CurrentUses
	r.Active = model.Active

	if model.ExpiresAt != nil {
		r.ExpiresAt = model.ExpiresAt.Format("2006-01-02")
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetCodesResponse struct {
	Codes     []CodeResponse `json:"codes"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetCodesResponse) FromModels(models []model.ReferralCode, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Codes = make([]CodeResponse, len(models))
	for i, mod := range models {
		r.Codes[i].FromModel(mod)
	}
}

type ValidateCodeRequest struct {
	Code     string `json:"code"      validate:"required"`
	ClientID string `json:"client_id" validate:"required"`
}

type ValidationResponse struct {
	Valid           bool    `json:"valid"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	Reason          string  `json:"reason,omitempty"`
}

type UsageResponse struct {
	ID            string  `json:"id"`
	CodeID        string  `json:"code_id"`
	ClientID      string  `json:"client_id"`
	ReservationID *string `json:"reservation_id,omitempty"`
	Amount        float64 `json:"amount"`
	CreatedAt     string  `json:"created_at"`
}

func (r *UsageResponse) FromModel(model model.ReferralUsage) {
	r.ID = model.ID
	r.CodeID = model.CodeID
	r.ClientID = model.ClientID
	r.ReservationID = model.ReservationID
	r.Amount = model.Amount
	r.CreatedAt = model.CreatedAt.Format(time.RFC3339)
}
