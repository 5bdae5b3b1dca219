package dto

import (
	"lotus/internal/domains/membership/model"
	"lotus/shared"
	gDto "lotus/shared/dto"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	Name         string  `json:"name"          validate:"required,max=100"`
	Credits      int     `json:"credits"       validate:"required,min=1"`
	Price        float64 `json:"price"         validate:"required,min=0"`
	DurationDays int     `json:"duration_days" validate:"required,min=1"`
	Active       *bool   `json:"active"        validate:"omitempty"`
}

func (c *CreatePlanRequest) ToModel(user string) model.Plan {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Plan{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Credits:      c.Credits,
		Price:        c.Price,
		DurationDays: c.DurationDays,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PlanResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Credits      int     `json:"credits"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *PlanResponse) FromModel(model model.Plan) {
	r.ID = model.ID
	r.Name = model.Name
	r.Credits = model.Credits
	r.Price = model.Price
	r.DurationDays = model.DurationDays
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPlansResponse struct {
	Plans     []PlanResponse `json:"plans"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPlansResponse) FromModels(models []model.Plan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Plans = make([]PlanResponse, len(models))
	for i, mod := range models {
		r.Plans[i].FromModel(mod)
	}
}

type PurchaseGrantRequest struct {
	ClientID  string `json:"client_id"  validate:"required"`
	PlanID    string `json:"plan_id"    validate:"required"`
	StartDate string `json:"start_date" validate:"omitempty"`
}

func (c *PurchaseGrantRequest) ToModel(user string, plan model.Plan) (model.Grant, error) {
	startDate := timezone.Today()

	if c.StartDate != "" {
		parsed, err := timezone.Parse("2006-01-02", c.StartDate)
		if err != nil {
			return model.Grant{}, err
		}

		startDate = parsed
	}

	return model.Grant{
		ID:           uuid.NewString(),
		ClientID:     c.ClientID,
		PlanID:       c.PlanID,
		StartDate:    startDate,
		EndDate:      startDate.AddDate(0, 0, plan.DurationDays),
		TotalCredits: plan.Credits,
		UsedCredits:  0,
		Status:       model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type GrantResponse struct {
	ID               string `json:"id"`
	ClientID         string `json:"client_id"`
	PlanID           string `json:"plan_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	TotalCredits     int    `json:"total_credits"`
	UsedCredits      int    `json:"used_credits"`
	RemainingCredits int    `json:"remaining_credits"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *GrantResponse) FromModel(model model.Grant) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.PlanID = model.PlanID
	r.StartDate = model.StartDate.Format("2006-01-02")
	r.EndDate = model.EndDate.Format("2006-01-02")
	r.TotalCredits = model.TotalCredits
	r.UsedCredits = model.UsedCredits
	r.RemainingCredits = model.RemainingCredits()
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetGrantsResponse struct {
	Grants    []GrantResponse `json:"grants"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGrantsResponse) FromModels(models []model.Grant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Grants = make([]GrantResponse, len(models))
	for i, mod := range models {
		r.Grants[i].FromModel(mod)
	}
}
