package inventory

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"facilio/infras/otel"
	"facilio/internal/domains/inventory/model"
	"facilio/internal/domains/inventory/model/dto"
	"facilio/internal/domains/inventory/service"
	"facilio/shared"
	"facilio/shared/constant"
	gDto "facilio/shared/dto"
	"facilio/shared/validator"
	"facilio/transport/http/response"
)

type Handler struct {
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Get("/{id}/availability", handler.GetItemAvailability)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Post("/{id}/adjust", handler.AdjustItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

// CreateItem handles the creation of a new inventory item.
// @Summary Create a new inventory item
// @Description Create a new rentable inventory item with an initial quantity.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Message "Inventory item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inventory item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory item created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Inventory item created successfully")
}

// GetItems retrieves all inventory items based on query parameters.
// @Summary Get all inventory items
// @Description Retrieve all inventory items with optional filtering and pagination.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param sku query string false "Filter by SKU"
// @Param active query boolean false "Filter by active status"
// @Param low_stock query boolean false "Only items at or below their low stock threshold"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "List of inventory items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [get]
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	sku := r.URL.Query().Get(model.FieldSKU)

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

	if sku != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSKU,
			Operator: gDto.FilterOperatorEq,
			Value:    sku,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	if lowStock := shared.ConvertStringToBool(r.URL.Query().Get("low_stock")); lowStock != nil && *lowStock {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value: fmt.Sprintf("%s.%s <= %s.%s",
				model.TableName, model.FieldQuantity,
				model.TableName, model.FieldLowStockThreshold),
		})
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves an inventory item by its ID.
// @Summary Get an inventory item by ID
// @Description Retrieve an inventory item by its unique identifier.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Inventory item details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [get]
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// GetItemAvailability reports the free and committed quantity of an item.
// @Summary Get inventory item availability
// @Description Report the on-hand quantity against what active reservations have committed.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability breakdown"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id}/availability [get]
func (handler *Handler) GetItemAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	availability, err := handler.service.Availability(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory item availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateItem updates an existing inventory item by its ID.
// @Summary Update an inventory item by ID
// @Description Update the details of an existing inventory item. Quantity changes go through the adjust endpoint.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Message "Inventory item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inventory item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory item updated successfully")
}

// AdjustItem applies a signed quantity correction to an inventory item.
// @Summary Adjust inventory item quantity
// @Description Apply a signed delta to the on-hand quantity, for restocks and write-offs. Deltas that would leave the quantity negative are rejected.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.AdjustItemRequest true "Adjust Item Request"
// @Success 200 {object} response.Message "Inventory item adjusted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id}/adjust [post]
// @Security BearerAuth
func (handler *Handler) AdjustItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdjustItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AdjustItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Adjust(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust inventory item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory item adjusted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory item adjusted successfully")
}

// DeleteItem deletes an inventory item by its ID.
// @Summary Delete an inventory item by ID
// @Description Delete an inventory item using its unique identifier.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message "Inventory item deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inventory item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory item deleted successfully")
}
