package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"autolot/internal/delivery/http/response"
	"autolot/internal/serializer"
	"autolot/internal/usecase"
)

// VehicleHandler holds dependencies for vehicle catalog handlers.
type VehicleHandler struct {
	uc usecase.VehicleUsecase
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

type vehicleRequest struct {
	Year               int    `json:"year" validate:"required"`
	Make               string `json:"make" validate:"required"`
	Model              string `json:"model" validate:"required"`
	Trim               string `json:"trim"`
	VIN                string `json:"vin" validate:"required,len=17"`
	Mileage            int    `json:"mileage"`
	Color              string `json:"color"`
	Drivetrain         string `json:"drivetrain"`
	Transmission       string `json:"transmission"`
	TransmissionType   string `json:"transmission_type"`
	TransmissionSpeeds int    `json:"transmission_speeds"`
	HighwayMileage     int    `json:"highway_mileage"`
	CityMileage        int    `json:"city_mileage"`
	EngineCylinders    int    `json:"engine_cylinders"`
	Category           string `json:"category"`
	MSRP               int    `json:"msrp"`
}

func (r *vehicleRequest) toInput() *usecase.VehicleInput {
	return &usecase.VehicleInput{
		Year:               r.Year,
		Make:               r.Make,
		Model:              r.Model,
		Trim:               r.Trim,
		VIN:                r.VIN,
		Mileage:            r.Mileage,
		Color:              r.Color,
		Drivetrain:         r.Drivetrain,
		Transmission:       r.Transmission,
		TransmissionType:   r.TransmissionType,
		TransmissionSpeeds: r.TransmissionSpeeds,
		HighwayMileage:     r.HighwayMileage,
		CityMileage:        r.CityMileage,
		EngineCylinders:    r.EngineCylinders,
		Category:           r.Category,
		MSRP:               r.MSRP,
	}
}

// Create handles POST /vehicles.
func (h *VehicleHandler) Create(c echo.Context) error {
	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid vehicle payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vehicle, err := h.uc.CreateVehicle(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.Vehicle(vehicle, serializer.Options{}), "Vehicle created")
}

// Get handles GET /vehicles/:id.
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	opts, err := parseSerializeOptions(c)
	if err != nil {
		return errors.WithStack(err)
	}

	vehicle, err := h.uc.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Vehicle(vehicle, opts), "")
}

// Update handles PUT /vehicles/:id.
func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid vehicle payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vehicle, err := h.uc.UpdateVehicle(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Vehicle(vehicle, serializer.Options{}), "Vehicle updated")
}

// Delete handles DELETE /vehicles/:id.
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteVehicle(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vehicle deleted")
}

// List handles GET /vehicles.
func (h *VehicleHandler) List(c echo.Context) error {
	input, opts, err := parseListQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	vehicles, err := h.uc.ListVehicles(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Vehicles(vehicles, opts), "")
}
