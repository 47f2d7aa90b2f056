package postgres

import (
	"autolot/internal/domain/entity"
	"autolot/internal/infra/persistence/model"
)

// The mappers below translate between domain entities and GORM models.
// toXxxModel functions never carry associations; writes always address one
// table. toXxxEntity functions map whatever associations the query preloaded,
// and GORM leaves back-references nil, so the mapping always terminates.

func toStoreModel(e *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:            e.ID,
		Name:          e.Name,
		StreetAddress: e.StreetAddress,
		City:          e.City,
		State:         e.State,
		ZipCode:       e.ZipCode,
		Phone:         e.Phone,
		AdminClerk:    e.AdminClerk,
		IsPrimaryHub:  e.IsPrimaryHub,
		QBCustomerID:  e.QBCustomerID,
	}
}

func toStoreEntity(m *model.StoreModel) *entity.Store {
	e := &entity.Store{
		ID:            m.ID,
		Name:          m.Name,
		StreetAddress: m.StreetAddress,
		City:          m.City,
		State:         m.State,
		ZipCode:       m.ZipCode,
		Phone:         m.Phone,
		AdminClerk:    m.AdminClerk,
		IsPrimaryHub:  m.IsPrimaryHub,
		QBCustomerID:  m.QBCustomerID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	for _, u := range m.Users {
		e.Users = append(e.Users, toUserEntity(u))
	}
	for _, u := range m.Units {
		e.Units = append(e.Units, toUnitEntity(u))
	}

	return e
}

func toUserModel(e *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Username:       e.Username,
		HashedPassword: e.HashedPassword,
		PhoneNumber:    e.PhoneNumber,
		TwilioOptIn:    e.TwilioOptIn,
		IsActive:       e.IsActive,
		IsBuyer:        e.IsBuyer,
		Confirmed:      e.Confirmed,
		IsBlocked:      e.IsBlocked,
		IsAdmin:        e.IsAdmin,
		IsSuperuser:    e.IsSuperuser,
		StoreID:        e.StoreID,
	}
}

func toUserEntity(m *model.UserModel) *entity.User {
	e := &entity.User{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Username:       m.Username,
		HashedPassword: m.HashedPassword,
		PhoneNumber:    m.PhoneNumber,
		TwilioOptIn:    m.TwilioOptIn,
		IsActive:       m.IsActive,
		IsBuyer:        m.IsBuyer,
		Confirmed:      m.Confirmed,
		IsBlocked:      m.IsBlocked,
		IsAdmin:        m.IsAdmin,
		IsSuperuser:    m.IsSuperuser,
		StoreID:        m.StoreID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.Store != nil {
		e.Store = toStoreEntity(m.Store)
	}

	return e
}

func toVehicleModel(e *entity.Vehicle) *model.VehicleModel {
	return &model.VehicleModel{
		ID:                 e.ID,
		Year:               e.Year,
		Make:               e.Make,
		Model:              e.Model,
		Trim:               e.Trim,
		VIN:                e.VIN,
		Mileage:            e.Mileage,
		Color:              e.Color,
		Drivetrain:         e.Drivetrain,
		Transmission:       e.Transmission,
		TransmissionType:   e.TransmissionType,
		TransmissionSpeeds: e.TransmissionSpeeds,
		HighwayMileage:     e.HighwayMileage,
		CityMileage:        e.CityMileage,
		EngineCylinders:    e.EngineCylinders,
		Category:           e.Category,
		MSRP:               e.MSRP,
	}
}

func toVehicleEntity(m *model.VehicleModel) *entity.Vehicle {
	e := &entity.Vehicle{
		ID:                 m.ID,
		Year:               m.Year,
		Make:               m.Make,
		Model:              m.Model,
		Trim:               m.Trim,
		VIN:                m.VIN,
		Mileage:            m.Mileage,
		Color:              m.Color,
		Drivetrain:         m.Drivetrain,
		Transmission:       m.Transmission,
		TransmissionType:   m.TransmissionType,
		TransmissionSpeeds: m.TransmissionSpeeds,
		HighwayMileage:     m.HighwayMileage,
		CityMileage:        m.CityMileage,
		EngineCylinders:    m.EngineCylinders,
		Category:           m.Category,
		MSRP:               m.MSRP,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	for _, u := range m.Units {
		e.Units = append(e.Units, toUnitEntity(u))
	}

	return e
}

func toUnitModel(e *entity.Unit) *model.UnitModel {
	return &model.UnitModel{
		ID:                     e.ID,
		StockNumber:            e.StockNumber,
		PurchaseDate:           e.PurchaseDate,
		ListDate:               e.ListDate,
		SoldDate:               e.SoldDate,
		ExpireDate:             e.ExpireDate,
		PurchasePrice:          e.PurchasePrice,
		BuyNowPrice:            e.BuyNowPrice,
		VehicleAge:             e.VehicleAge,
		TransportationFee:      e.TransportationFee,
		TransportationDistance: e.TransportationDistance,
		TransportCompany:       e.TransportCompany,
		VehicleCost:            e.VehicleCost,
		MaxOfferValue:          e.MaxOfferValue,
		MaxOfferClock:          e.MaxOfferClock,
		CDKDealNumber:          e.CDKDealNumber,
		RetailWholesale:        e.RetailWholesale,
		RetailFrontGross:       e.RetailFrontGross,
		RetailBackGross:        e.RetailBackGross,
		WholesaleGross:         e.WholesaleGross,
		TotalRetailGross:       e.TotalRetailGross,
		ZipCodeLoc:             e.ZipCodeLoc,
		DeliveryStatus:         e.DeliveryStatus,
		BuyFee:                 e.BuyFee,
		SoldStatus:             e.SoldStatus,
		Purchased:              e.Purchased,
		IsExpired:              e.IsExpired,
		VehicleID:              e.VehicleID,
		StoreID:                e.StoreID,
		AddedBy:                e.AddedBy,
		PurchasedBy:            e.PurchasedBy,
	}
}

func toUnitEntity(m *model.UnitModel) *entity.Unit {
	e := &entity.Unit{
		ID:                     m.ID,
		StockNumber:            m.StockNumber,
		PurchaseDate:           m.PurchaseDate,
		ListDate:               m.ListDate,
		SoldDate:               m.SoldDate,
		ExpireDate:             m.ExpireDate,
		PurchasePrice:          m.PurchasePrice,
		BuyNowPrice:            m.BuyNowPrice,
		VehicleAge:             m.VehicleAge,
		TransportationFee:      m.TransportationFee,
		TransportationDistance: m.TransportationDistance,
		TransportCompany:       m.TransportCompany,
		VehicleCost:            m.VehicleCost,
		MaxOfferValue:          m.MaxOfferValue,
		MaxOfferClock:          m.MaxOfferClock,
		CDKDealNumber:          m.CDKDealNumber,
		RetailWholesale:        m.RetailWholesale,
		RetailFrontGross:       m.RetailFrontGross,
		RetailBackGross:        m.RetailBackGross,
		WholesaleGross:         m.WholesaleGross,
		TotalRetailGross:       m.TotalRetailGross,
		ZipCodeLoc:             m.ZipCodeLoc,
		DeliveryStatus:         m.DeliveryStatus,
		BuyFee:                 m.BuyFee,
		SoldStatus:             m.SoldStatus,
		Purchased:              m.Purchased,
		IsExpired:              m.IsExpired,
		VehicleID:              m.VehicleID,
		StoreID:                m.StoreID,
		AddedBy:                m.AddedBy,
		PurchasedBy:            m.PurchasedBy,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}

	if m.Vehicle != nil {
		e.Vehicle = toVehicleEntity(m.Vehicle)
	}
	if m.Store != nil {
		e.Store = toStoreEntity(m.Store)
	}

	return e
}
