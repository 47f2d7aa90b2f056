package postgres

// Filterable columns per table. Serving both the listed table's filter and
// the joined side of a JoinSpec, so they live here rather than inside each
// repository constructor. users deliberately omits hashed_password: the
// credential hash is not a filter key.
var (
	storeColumns = columnSet(
		"id", "name", "street_address", "city", "state", "zip_code",
		"phone", "admin_clerk", "is_primary_hub", "qb_customer_id",
		"created_at", "updated_at",
	)

	userColumns = columnSet(
		"id", "first_name", "last_name", "email", "username", "phone_number",
		"twilio_opt_in", "is_active", "is_buyer", "confirmed", "is_blocked",
		"is_admin", "is_superuser", "store_id", "created_at", "updated_at",
	)

	vehicleColumns = columnSet(
		"id", "year", "make", "model", "trim", "vin", "mileage", "color",
		"drivetrain", "transmission", "transmission_type", "transmission_speeds",
		"highway_mileage", "city_mileage", "engine_cylinders", "category",
		"msrp", "created_at", "updated_at",
	)

	unitColumns = columnSet(
		"id", "stock_number", "purchase_date", "list_date", "sold_date",
		"expire_date", "purchase_price", "buy_now_price", "vehicle_age",
		"transportation_fee", "transportation_distance", "transport_company",
		"vehicle_cost", "maxoffer_value", "maxoffer_clock", "cdk_deal_number",
		"retail_wholesale", "retail_front_gross", "retail_back_gross",
		"wholesale_gross", "total_retail_gross", "zip_code_loc",
		"delivery_status", "buy_fee", "sold_status", "purchased", "is_expired",
		"vehicle_id", "store_id", "added_by", "purchased_by",
		"created_at", "updated_at",
	)
)
