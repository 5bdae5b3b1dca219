package referral

import (
	"net/http"

	"lotus/infras/otel"
	"lotus/internal/domains/referral/model"
	"lotus/internal/domains/referral/model/dto"
	"lotus/internal/domains/referral/service"
	"lotus/shared"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/validator"
	"lotus/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Referral
	otel    otel.Otel
}

func New(service service.Referral, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/referrals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCode)
		routerGroup.Get("/", handler.GetCodes)
		routerGroup.Post("/validate", handler.ValidateCode)
		routerGroup.Get("/{id}", handler.GetCodeByID)
		routerGroup.Patch("/{id}", handler.UpdateCode)
		routerGroup.Get("/{id}/usages", handler.GetCodeUsages)
	})
}

// CreateCode issues a new referral code.
// @Summary Create a referral code
// @Description Issue a referral code for a client, generating the code string when none is provided.
// @Tags Referral
// @Accept json
// @Produce json
// @Param request body dto.CreateCodeRequest true "Create Code Request"
// @Success 201 {object} response.Data[dto.CodeResponse] "Referral code created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/referrals [post]
// @Security BearerAuth
func (handler *Handler) CreateCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCode")
	defer scope.End()

	req := dto.CreateCodeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	code, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create referral code")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Referral code created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, code)
}

// GetCodes retrieves referral codes with optional filters.
// @Summary Get all referral codes
// @Description Retrieve referral codes with optional filtering by code, owner and active flag, plus pagination.
// @Tags Referral
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param code query string false "Filter by code"
// @Param owner_client_id query string false "Filter by owner client ID"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetCodesResponse] "List of referral codes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/referrals [get]
func (handler *Handler) GetCodes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCodes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	code := r.URL.Query().Get(model.FieldCode)
	ownerClientID := r.URL.Query().Get(model.FieldOwnerClientID)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if code != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCode,
			Operator: gDto.FilterOperatorLike,
			Value:    code,
			Table:    model.TableName,
		})
	}

	if ownerClientID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerClientID,
			Operator: gDto.FilterOperatorEq,
			Value:    ownerClientID,
			Table:    model.TableName,
		})
	}

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(active),
			Table:    model.TableName,
		})
	}

	codes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get referral codes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Referral codes retrieved successfully")

	response.WithJSON(w, http.StatusOK, codes)
}

// ValidateCode checks a referral code against a redeeming client without consuming it.
// @Summary Validate a referral code
// @Description Check whether a referral code can be redeemed by a client, returning the discount percent or the rejection reason.
// @Tags Referral
// @Accept json
// @Produce json
// @Param request body dto.ValidateCodeRequest true "Validate Code Request"
// @Success 200 {object} response.Data[dto.ValidationResponse] "Validation result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/referrals/validate [post]
func (handler *Handler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateCode")
	defer scope.End()

	req := dto.ValidateCodeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Validate(ctx, req.Code, req.ClientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate referral code")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Referral code validated")

	response.WithJSON(w, http.StatusOK, result)
}

// GetCodeByID retrieves a referral code.
// @Summary Get a referral code by ID
// @Description Retrieve a referral code by its unique identifier.
// @Tags Referral
// @Accept json
// @Produce json
// @Param id path string true "Referral Code ID"
// @Success 200 {object} response.Data[dto.CodeResponse] "Referral code details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/referrals/{id} [get]
func (handler *Handler) GetCodeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCodeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	code, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get referral code by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Referral code retrieved successfully")

	response.WithJSON(w, http.StatusOK, code)
}

// UpdateCode updates a referral code's limits and active flag.
// @Summary Update a referral code by ID
// @Description Update a referral code's discount, usage limit, expiry and active flag.
// @Tags Referral
// @Accept json
// @Produce json
// @Param id path string true "Referral Code ID"
// @Param request body dto.UpdateCodeRequest true "Update Code Request"
// @Success 200 {object} response.Message "Referral code updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/referrals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCode")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCodeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update referral code")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Referral code updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Referral code updated successfully")
}

// GetCodeUsages lists the redemptions recorded against a referral code.
// @Summary Get usages of a referral code
// @Description Retrieve the redemption history of a referral code.
// @Tags Referral
// @Accept json
// @Produce json
// @Param id path string true "Referral Code ID"
// @Success 200 {object} response.Data[[]dto.UsageResponse] "List of usages"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/referrals/{id}/usages [get]
func (handler *Handler) GetCodeUsages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCodeUsages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	usages, err := handler.service.GetUsages(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get referral code usages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Referral code usages retrieved successfully")

	response.WithJSON(w, http.StatusOK, usages)
}
