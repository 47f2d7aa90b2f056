package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"autolot/internal/delivery/http/response"
	"autolot/internal/serializer"
	"autolot/internal/usecase"
)

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

type storeRequest struct {
	Name          string `json:"name" validate:"required"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       int    `json:"zip_code"`
	Phone         string `json:"phone"`
	AdminClerk    string `json:"admin_clerk"`
	IsPrimaryHub  bool   `json:"is_primary_hub"`
	QBCustomerID  int64  `json:"qb_customer_id"`
}

func (r *storeRequest) toInput() *usecase.StoreInput {
	return &usecase.StoreInput{
		Name:          r.Name,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		Phone:         r.Phone,
		AdminClerk:    r.AdminClerk,
		IsPrimaryHub:  r.IsPrimaryHub,
		QBCustomerID:  r.QBCustomerID,
	}
}

// Create handles POST /stores.
func (h *StoreHandler) Create(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.CreateStore(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.Store(store, serializer.Options{}), "Store created")
}

// Get handles GET /stores/:id.
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	opts, err := parseSerializeOptions(c)
	if err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.GetStore(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Store(store, opts), "")
}

// Update handles PUT /stores/:id.
func (h *StoreHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Store(store, serializer.Options{}), "Store updated")
}

// Delete handles DELETE /stores/:id.
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteStore(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted")
}

// List handles GET /stores.
func (h *StoreHandler) List(c echo.Context) error {
	input, opts, err := parseListQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	stores, err := h.uc.ListStores(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Stores(stores, opts), "")
}
