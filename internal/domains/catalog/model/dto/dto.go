package dto

import (
	"mime/multipart"

	"lotus/internal/domains/catalog/model"
	"lotus/shared"
	gDto "lotus/shared/dto"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name            string                `json:"name"             validate:"required,max=100"`
	Description     string                `json:"description"      validate:"omitempty"`
	DurationMinutes int                   `json:"duration_minutes" validate:"required,min=5"`
	Price           float64               `json:"price"            validate:"required,min=0"`
	Image           *multipart.FileHeader `json:"image"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile       multipart.File        `json:"-"`
	Active          *bool                 `json:"active"           validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string, imageURL string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Image:           imageURL,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string                `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string                `db:"description"      json:"description"      validate:"omitempty"`
	DurationMinutes int                   `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=5"`
	Price           *float64              `db:"price"            json:"price"            validate:"omitempty,min=0"`
	Image           *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile       multipart.File        `json:"-"`
	Active          *bool                 `db:"active"           json:"active"           validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
