package catalog

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"lotus/infras/otel"
	"lotus/internal/domains/catalog/model"
	"lotus/internal/domains/catalog/model/dto"
	"lotus/internal/domains/catalog/service"
	"lotus/shared"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	"lotus/shared/validator"
	"lotus/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})
}

// CreateService handles the creation of a new spa service.
// @Summary Create a new spa service
// @Description Create a spa service with name, duration, price and an optional image.
// @Tags Catalog
// @Accept mpfd
// @Produce json
// @Param name formData string true "Service name"
// @Param description formData string false "Service description"
// @Param duration_minutes formData int true "Duration in minutes"
// @Param price formData number true "Price"
// @Param image formData file false "Service image"
// @Success 201 {object} response.Message "Service created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}
	if err := handler.parseServiceForm(r, &req.Name, &req.Description, &req.DurationMinutes, &req.Price, &req.Active, &req.Image, &req.ImageFile); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse service form")

		response.WithError(w, err)

		return
	}

	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create spa service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Spa service created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Service created successfully")
}

// GetServices retrieves spa services with optional filters.
// @Summary Get all spa services
// @Description Retrieve spa services with optional filtering by name and active flag, plus pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetServicesResponse] "List of services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	services, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spa services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Spa services retrieved successfully")

	response.WithJSON(w, http.StatusOK, services)
}

// GetServiceByID retrieves a spa service.
// @Summary Get a spa service by ID
// @Description Retrieve a spa service by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	service, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spa service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Spa service retrieved successfully")

	response.WithJSON(w, http.StatusOK, service)
}

// UpdateService updates a spa service.
// @Summary Update a spa service by ID
// @Description Update a spa service's details and optionally replace its image.
// @Tags Catalog
// @Accept mpfd
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateServiceRequest{}

	var price float64

	priceSet := false
	if err := handler.parseServiceForm(r, &req.Name, &req.Description, &req.DurationMinutes, &price, &req.Active, &req.Image, &req.ImageFile); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse service form")

		response.WithError(w, err)

		return
	}

	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if r.FormValue(model.FieldPrice) != "" {
		priceSet = true
	}

	if priceSet {
		req.Price = &price
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update spa service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Spa service updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService deletes a spa service.
// @Summary Delete a spa service by ID
// @Description Delete a spa service and its stored image.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete spa service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Spa service deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}

// parseServiceForm fills the shared multipart fields of the create and
// update requests. The image file is optional on both.
func (handler *Handler) parseServiceForm(r *http.Request, name, description *string, durationMinutes *int, price *float64, active **bool, image **multipart.FileHeader, imageFile *multipart.File) error {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	*name = r.FormValue(model.FieldName)
	*description = r.FormValue(model.FieldDescription)

	if v := r.FormValue(model.FieldDurationMinutes); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return failure.BadRequestFromString("duration_minutes must be an integer") //nolint:wrapcheck
		}

		*durationMinutes = parsed
	}

	if v := r.FormValue(model.FieldPrice); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return failure.BadRequestFromString("price must be a number") //nolint:wrapcheck
		}

		*price = parsed
	}

	*active = shared.ConvertStringToBool(r.FormValue(model.FieldActive))

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		*image = fileHeader
		*imageFile = file
	}

	return nil
}
