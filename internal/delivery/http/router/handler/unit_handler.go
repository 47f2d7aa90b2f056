package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"autolot/internal/delivery/http/response"
	"autolot/internal/serializer"
	"autolot/internal/usecase"
)

// UnitHandler holds dependencies for inventory unit handlers.
type UnitHandler struct {
	uc    usecase.UnitUsecase
	sweep usecase.SweepUsecase
}

// NewUnitHandler is the constructor for UnitHandler, injected by Fx.
func NewUnitHandler(uc usecase.UnitUsecase, sweep usecase.SweepUsecase) *UnitHandler {
	return &UnitHandler{uc: uc, sweep: sweep}
}

type unitFieldsRequest struct {
	StockNumber string `json:"stock_number" validate:"required"`

	PurchaseDate *time.Time `json:"purchase_date"`
	ListDate     *time.Time `json:"list_date"`
	SoldDate     *time.Time `json:"sold_date"`
	ExpireDate   *time.Time `json:"expire_date"`

	PurchasePrice          int    `json:"purchase_price"`
	BuyNowPrice            int    `json:"buy_now_price"`
	VehicleAge             int    `json:"vehicle_age"`
	TransportationFee      int    `json:"transportation_fee"`
	TransportationDistance int    `json:"transportation_distance"`
	TransportCompany       string `json:"transport_company"`
	VehicleCost            int    `json:"vehicle_cost"`
	MaxOfferValue          int    `json:"maxoffer_value"`
	MaxOfferClock          int    `json:"maxoffer_clock"`
	CDKDealNumber          int    `json:"cdk_deal_number"`
	RetailWholesale        string `json:"retail_wholesale"`
	RetailFrontGross       int    `json:"retail_front_gross"`
	RetailBackGross        int    `json:"retail_back_gross"`
	WholesaleGross         int    `json:"wholesale_gross"`
	TotalRetailGross       int    `json:"total_retail_gross"`
	ZipCodeLoc             int    `json:"zip_code_loc"`
	DeliveryStatus         string `json:"delivery_status"`
	BuyFee                 int    `json:"buy_fee"`

	SoldStatus bool `json:"sold_status"`
	Purchased  bool `json:"purchased"`

	StoreID     *int64 `json:"store_id"`
	AddedBy     *int64 `json:"added_by"`
	PurchasedBy *int64 `json:"purchased_by"`
}

func (r *unitFieldsRequest) toFields() usecase.UnitFields {
	return usecase.UnitFields{
		StockNumber:            r.StockNumber,
		PurchaseDate:           r.PurchaseDate,
		ListDate:               r.ListDate,
		SoldDate:               r.SoldDate,
		ExpireDate:             r.ExpireDate,
		PurchasePrice:          r.PurchasePrice,
		BuyNowPrice:            r.BuyNowPrice,
		VehicleAge:             r.VehicleAge,
		TransportationFee:      r.TransportationFee,
		TransportationDistance: r.TransportationDistance,
		TransportCompany:       r.TransportCompany,
		VehicleCost:            r.VehicleCost,
		MaxOfferValue:          r.MaxOfferValue,
		MaxOfferClock:          r.MaxOfferClock,
		CDKDealNumber:          r.CDKDealNumber,
		RetailWholesale:        r.RetailWholesale,
		RetailFrontGross:       r.RetailFrontGross,
		RetailBackGross:        r.RetailBackGross,
		WholesaleGross:         r.WholesaleGross,
		TotalRetailGross:       r.TotalRetailGross,
		ZipCodeLoc:             r.ZipCodeLoc,
		DeliveryStatus:         r.DeliveryStatus,
		BuyFee:                 r.BuyFee,
		SoldStatus:             r.SoldStatus,
		Purchased:              r.Purchased,
		StoreID:                r.StoreID,
		AddedBy:                r.AddedBy,
		PurchasedBy:            r.PurchasedBy,
	}
}

type createUnitRequest struct {
	Vehicle vehicleRequest    `json:"vehicle" validate:"required"`
	Unit    unitFieldsRequest `json:"unit" validate:"required"`
}

type updateUnitRequest struct {
	Unit      unitFieldsRequest `json:"unit" validate:"required"`
	IsExpired bool              `json:"is_expired"`
}

// Create handles POST /units: the catalog record and the unit are created in
// one transaction.
func (h *UnitHandler) Create(c echo.Context) error {
	var req createUnitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid unit payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	unit, err := h.uc.CreateUnit(c.Request().Context(), &usecase.CreateUnitInput{
		Vehicle: *req.Vehicle.toInput(),
		Unit:    req.Unit.toFields(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.Unit(unit, serializer.Options{}), "Unit created")
}

// Get handles GET /units/:id.
func (h *UnitHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	opts, err := parseSerializeOptions(c)
	if err != nil {
		return errors.WithStack(err)
	}

	unit, err := h.uc.GetUnit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Unit(unit, opts), "")
}

// Update handles PUT /units/:id.
func (h *UnitHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateUnitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid unit payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	unit, err := h.uc.UpdateUnit(c.Request().Context(), id, &usecase.UpdateUnitInput{
		Unit:      req.Unit.toFields(),
		IsExpired: req.IsExpired,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Unit(unit, serializer.Options{}), "Unit updated")
}

// Delete handles DELETE /units/:id: the unit and its vehicle are removed in
// one transaction.
func (h *UnitHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUnit(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Unit deleted")
}

// List handles GET /units.
func (h *UnitHandler) List(c echo.Context) error {
	input, opts, err := parseListQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	units, err := h.uc.ListUnits(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Units(units, opts), "")
}

// Expire handles POST /units/:id/expire, forcing the unit's expire date to
// now.
func (h *UnitHandler) Expire(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	unit, err := h.uc.ExpireUnit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Unit(unit, serializer.Options{}), "Unit expire date forced")
}

// Sweep handles POST /units/expire, running one expiration pass for external
// schedulers.
func (h *UnitHandler) Sweep(c echo.Context) error {
	changed, err := h.sweep.RunPass(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"changed": changed}, "Sweep pass completed")
}
