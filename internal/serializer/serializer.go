// Package serializer converts domain entities into plain attribute maps for
// transport. Related entities expand only when their relationship name is on
// the caller's include list and the depth budget allows, which bounds graph
// traversal and keeps cross-entity data out of responses by default.
package serializer

import (
	"slices"

	"autolot/internal/domain/entity"
)

// Options controls relationship expansion.
type Options struct {
	// Depth is the remaining expansion budget. At zero, no relationship is
	// expanded regardless of Include.
	Depth int

	// Include lists the relationship names to expand: "store", "users",
	// "units", "vehicle". Unlisted relationships are omitted entirely,
	// never partially populated.
	Include []string
}

func (o Options) expand(relation string) bool {
	return o.Depth > 0 && slices.Contains(o.Include, relation)
}

func (o Options) child() Options {
	return Options{Depth: o.Depth - 1, Include: o.Include}
}

// Store serializes a store and, when requested, its users and units.
func Store(s *entity.Store, opts Options) map[string]any {
	if s == nil {
		return nil
	}

	attrs := map[string]any{
		"id":             s.ID,
		"name":           s.Name,
		"street_address": s.StreetAddress,
		"city":           s.City,
		"state":          s.State,
		"zip_code":       s.ZipCode,
		"phone":          s.Phone,
		"admin_clerk":    s.AdminClerk,
		"is_primary_hub": s.IsPrimaryHub,
		"qb_customer_id": s.QBCustomerID,
		"created_at":     s.CreatedAt,
		"updated_at":     s.UpdatedAt,
	}

	if opts.expand("users") {
		users := make([]map[string]any, 0, len(s.Users))
		for _, u := range s.Users {
			users = append(users, User(u, opts.child()))
		}
		attrs["users"] = users
	}
	if opts.expand("units") {
		units := make([]map[string]any, 0, len(s.Units))
		for _, u := range s.Units {
			units = append(units, Unit(u, opts.child()))
		}
		attrs["units"] = units
	}

	return attrs
}

// User serializes a user. The hashed credential and the transient plaintext
// password are always excluded, regardless of depth or include list.
func User(u *entity.User, opts Options) map[string]any {
	if u == nil {
		return nil
	}

	attrs := map[string]any{
		"id":            u.ID,
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"email":         u.Email,
		"username":      u.Username,
		"phone_number":  u.PhoneNumber,
		"twilio_opt_in": u.TwilioOptIn,
		"is_active":     u.IsActive,
		"is_buyer":      u.IsBuyer,
		"confirmed":     u.Confirmed,
		"is_blocked":    u.IsBlocked,
		"is_admin":      u.IsAdmin,
		"is_superuser":  u.IsSuperuser,
		"store_id":      u.StoreID,
		"created_at":    u.CreatedAt,
		"updated_at":    u.UpdatedAt,
	}

	if opts.expand("store") && u.Store != nil {
		attrs["store"] = Store(u.Store, opts.child())
	}

	return attrs
}

// Vehicle serializes a vehicle and, when requested, its units.
func Vehicle(v *entity.Vehicle, opts Options) map[string]any {
	if v == nil {
		return nil
	}

	attrs := map[string]any{
		"id":                  v.ID,
		"year":                v.Year,
		"make":                v.Make,
		"model":               v.Model,
		"trim":                v.Trim,
		"vin":                 v.VIN,
		"mileage":             v.Mileage,
		"color":               v.Color,
		"drivetrain":          v.Drivetrain,
		"transmission":        v.Transmission,
		"transmission_type":   v.TransmissionType,
		"transmission_speeds": v.TransmissionSpeeds,
		"highway_mileage":     v.HighwayMileage,
		"city_mileage":        v.CityMileage,
		"engine_cylinders":    v.EngineCylinders,
		"category":            v.Category,
		"msrp":                v.MSRP,
		"created_at":          v.CreatedAt,
		"updated_at":          v.UpdatedAt,
	}

	if opts.expand("units") {
		units := make([]map[string]any, 0, len(v.Units))
		for _, u := range v.Units {
			units = append(units, Unit(u, opts.child()))
		}
		attrs["units"] = units
	}

	return attrs
}

// Unit serializes a unit and, when requested, its vehicle and store.
func Unit(u *entity.Unit, opts Options) map[string]any {
	if u == nil {
		return nil
	}

	attrs := map[string]any{
		"id":                      u.ID,
		"stock_number":            u.StockNumber,
		"purchase_date":           u.PurchaseDate,
		"list_date":               u.ListDate,
		"sold_date":               u.SoldDate,
		"expire_date":             u.ExpireDate,
		"purchase_price":          u.PurchasePrice,
		"buy_now_price":           u.BuyNowPrice,
		"vehicle_age":             u.VehicleAge,
		"transportation_fee":      u.TransportationFee,
		"transportation_distance": u.TransportationDistance,
		"transport_company":       u.TransportCompany,
		"vehicle_cost":            u.VehicleCost,
		"maxoffer_value":          u.MaxOfferValue,
		"maxoffer_clock":          u.MaxOfferClock,
		"cdk_deal_number":         u.CDKDealNumber,
		"retail_wholesale":        u.RetailWholesale,
		"retail_front_gross":      u.RetailFrontGross,
		"retail_back_gross":       u.RetailBackGross,
		"wholesale_gross":         u.WholesaleGross,
		"total_retail_gross":      u.TotalRetailGross,
		"zip_code_loc":            u.ZipCodeLoc,
		"delivery_status":         u.DeliveryStatus,
		"buy_fee":                 u.BuyFee,
		"sold_status":             u.SoldStatus,
		"purchased":               u.Purchased,
		"is_expired":              u.IsExpired,
		"vehicle_id":              u.VehicleID,
		"store_id":                u.StoreID,
		"added_by":                u.AddedBy,
		"purchased_by":            u.PurchasedBy,
		"created_at":              u.CreatedAt,
		"updated_at":              u.UpdatedAt,
	}

	if opts.expand("vehicle") && u.Vehicle != nil {
		attrs["vehicle"] = Vehicle(u.Vehicle, opts.child())
	}
	if opts.expand("store") && u.Store != nil {
		attrs["store"] = Store(u.Store, opts.child())
	}

	return attrs
}

// Stores serializes a slice of stores.
func Stores(stores []*entity.Store, opts Options) []map[string]any {
	out := make([]map[string]any, 0, len(stores))
	for _, s := range stores {
		out = append(out, Store(s, opts))
	}

	return out
}

// Users serializes a slice of users.
func Users(users []*entity.User, opts Options) []map[string]any {
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, User(u, opts))
	}

	return out
}

// Vehicles serializes a slice of vehicles.
func Vehicles(vehicles []*entity.Vehicle, opts Options) []map[string]any {
	out := make([]map[string]any, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, Vehicle(v, opts))
	}

	return out
}

// Units serializes a slice of units.
func Units(units []*entity.Unit, opts Options) []map[string]any {
	out := make([]map[string]any, 0, len(units))
	for _, u := range units {
		out = append(out, Unit(u, opts))
	}

	return out
}
