package membership

import (
	"net/http"

	"lotus/infras/otel"
	"lotus/internal/domains/membership/model"
	"lotus/internal/domains/membership/model/dto"
	"lotus/internal/domains/membership/service"
	"lotus/shared"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/validator"
	"lotus/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Membership
	otel    otel.Otel
}

func New(service service.Membership, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/memberships", func(routerGroup chi.Router) {
		routerGroup.Post("/plans", handler.CreatePlan)
		routerGroup.Get("/plans", handler.GetPlans)
		routerGroup.Post("/grants", handler.PurchaseGrant)
		routerGroup.Get("/grants", handler.GetGrants)
		routerGroup.Get("/grants/{id}", handler.GetGrantByID)
		routerGroup.Post("/grants/{id}/cancel", handler.CancelGrant)
		routerGroup.Post("/sweep", handler.SweepExpiredGrants)
	})
}

// CreatePlan creates a membership plan.
// @Summary Create a membership plan
// @Description Define a membership plan with a credit allowance and validity duration.
// @Tags Membership
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Create Plan Request"
// @Success 201 {object} response.Message "Membership plan created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memberships/plans [post]
// @Security BearerAuth
func (handler *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlan")
	defer scope.End()

	req := dto.CreatePlanRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreatePlan(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create membership plan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Membership plan created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Membership plan created successfully")
}

// GetPlans retrieves membership plans.
// @Summary Get all membership plans
// @Description Retrieve membership plans with optional filtering by name and active flag, plus pagination.
// @Tags Membership
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetPlansResponse] "List of membership plans"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memberships/plans [get]
func (handler *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.PlanFieldName)
	active := r.URL.Query().Get(model.PlanFieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.PlanFieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.PlanTableName,
		})
	}

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.PlanFieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(active),
			Table:    model.PlanTableName,
		})
	}

	plans, err := handler.service.GetPlans(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get membership plans")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Membership plans retrieved successfully")

	response.WithJSON(w, http.StatusOK, plans)
}

// PurchaseGrant records a membership purchase for a client.
// @Summary Purchase a membership grant
// @Description Grant a client a membership plan's credits, with validity derived from the plan duration.
// @Tags Membership
// @Accept json
// @Produce json
// @Param request body dto.PurchaseGrantRequest true "Purchase Grant Request"
// @Success 201 {object} response.Data[dto.GrantResponse] "Membership grant created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memberships/grants [post]
// @Security BearerAuth
func (handler *Handler) PurchaseGrant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PurchaseGrant")
	defer scope.End()

	req := dto.PurchaseGrantRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	grant, err := handler.service.Purchase(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to purchase membership grant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Membership grant created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, grant)
}

// GetGrants retrieves membership grants.
// @Summary Get all membership grants
// @Description Retrieve membership grants with optional filtering by client and status, plus pagination.
// @Tags Membership
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param client_id query string false "Filter by client ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetGrantsResponse] "List of membership grants"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memberships/grants [get]
func (handler *Handler) GetGrants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	clientID := r.URL.Query().Get(model.FieldClientID)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if clientID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldClientID,
			Operator: gDto.FilterOperatorEq,
			Value:    clientID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	grants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get membership grants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Membership grants retrieved successfully")

	response.WithJSON(w, http.StatusOK, grants)
}

// GetGrantByID retrieves a membership grant.
// @Summary Get a membership grant by ID
// @Description Retrieve a membership grant and its remaining credits by its unique identifier.
// @Tags Membership
// @Accept json
// @Produce json
// @Param id path string true "Grant ID"
// @Success 200 {object} response.Data[dto.GrantResponse] "Membership grant details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memberships/grants/{id} [get]
func (handler *Handler) GetGrantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrantByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	grant, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get membership grant by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Membership grant retrieved successfully")

	response.WithJSON(w, http.StatusOK, grant)
}

// CancelGrant cancels a membership grant.
// @Summary Cancel a membership grant
// @Description Cancel a membership grant so its remaining credits can no longer be consumed.
// @Tags Membership
// @Accept json
// @Produce json
// @Param id path string true "Grant ID"
// @Success 200 {object} response.Message "Membership grant cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memberships/grants/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelGrant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelGrant")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel membership grant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Membership grant cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Membership grant cancelled successfully")
}

// SweepExpiredGrants expires grants whose validity window has passed.
// @Summary Expire stale membership grants
// @Description Mark every active grant whose end date has passed as expired. Also runs on a schedule.
// @Tags Membership
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Stale membership grants expired"
// @Failure 500 {object} response.Error
// @Router /v1/memberships/sweep [post]
// @Security BearerAuth
func (handler *Handler) SweepExpiredGrants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SweepExpiredGrants")
	defer scope.End()

	expired, err := handler.service.ExpireStaleGrants(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to expire stale membership grants")

		response.WithError(w, err)

		return
	}

	log.Info().Int64("expired", expired).Msg("stale membership grants expired")
	scope.AddEvent("Stale membership grants expired")

	response.WithMessage(w, http.StatusOK, "Stale membership grants expired")
}
