// Package seed provides the built-in demo data loaded when the stores start
// empty: the service catalog, the monthly expense ledger, and a set of
// appointments spread around the current time so both past and upcoming
// bookings exist out of the box.
package seed

import (
	"time"

	"spa-records/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency applied to seeded services
const DefaultCurrency = "EUR"

// Catalog returns the default service catalog
func Catalog() []models.Service {
	return []models.Service{
		{Name: "classic_bath", Category: "thermal_baths", Price: decimal.NewFromInt(45), Currency: DefaultCurrency, Duration: 60,
			Description: "Traditional hot spring bath with natural minerals."},
		{Name: "aroma_bath", Category: "thermal_baths", Price: decimal.NewFromInt(55), Currency: DefaultCurrency, Duration: 70,
			Description: "Aromatic bath infused with essential oils."},
		{Name: "private_bath", Category: "thermal_baths", Price: decimal.NewFromInt(80), Currency: DefaultCurrency, Duration: 90,
			Description: "Private thermal bath experience in a serene room."},
		{Name: "bamboo_oil", Category: "massages", Price: decimal.NewFromInt(70), Currency: DefaultCurrency, Duration: 45,
			Description: "Deep relaxation bamboo oil massage."},
		{Name: "stone_massage", Category: "massages", Price: decimal.NewFromInt(85), Currency: DefaultCurrency, Duration: 60,
			Description: "Hot stone massage to relieve tension and stress."},
		{Name: "foot_reflex", Category: "massages", Price: decimal.NewFromInt(50), Currency: DefaultCurrency, Duration: 40,
			Description: "Reflexology-based foot massage for energy balance."},
		{Name: "green_tea", Category: "tea_therapy", Price: decimal.NewFromInt(35), Currency: DefaultCurrency, Duration: 30,
			Description: "Green tea ceremony to refresh body and mind."},
		{Name: "flower_tea", Category: "tea_therapy", Price: decimal.NewFromInt(40), Currency: DefaultCurrency, Duration: 45,
			Description: "Floral tea session promoting relaxation and clarity."},
		{Name: "detox_tea", Category: "tea_therapy", Price: decimal.NewFromInt(45), Currency: DefaultCurrency, Duration: 50,
			Description: "Detoxifying tea blend for purification and calm."},
	}
}

// Expenses returns the monthly operational expense ledger
func Expenses() models.ExpenseLedger {
	return models.ExpenseLedger{
		"hot_water":         decimal.NewFromInt(200),
		"tea_supplies":      decimal.NewFromInt(100),
		"cosmetic_supplies": decimal.NewFromInt(200),
		"maintenance":       decimal.NewFromInt(150),
	}
}

// Appointments returns the default appointment book. Times are relative to
// now so the set always spans past and upcoming bookings.
func Appointments(now time.Time) []models.Appointment {
	return []models.Appointment{
		// past
		{PhoneID: 21098432, FirstName: "red", LastName: "fox", ServiceName: "stone_massage",
			DateTime: now.Add(-(15*24 + 2) * time.Hour)},
		{PhoneID: 21745098, FirstName: "steppe", LastName: "eagle", ServiceName: "aroma_bath",
			DateTime: now.Add(-(10*24 + 1) * time.Hour)},
		{PhoneID: 22987541, FirstName: "eurasian", LastName: "badger", ServiceName: "detox_tea",
			DateTime: now.Add(-(5*24 + 3) * time.Hour)},

		// around today
		{PhoneID: 23804503, FirstName: "eastern", LastName: "wolf", ServiceName: "classic_bath",
			DateTime: now.Add(-1 * time.Hour)},
		{PhoneID: 21234789, FirstName: "pale", LastName: "fox", ServiceName: "foot_reflex",
			DateTime: now.Add(1 * time.Hour)},

		// upcoming
		{PhoneID: 25124512, FirstName: "pallas", LastName: "cat", ServiceName: "detox_tea",
			DateTime: now.Add((1*24 + 2) * time.Hour)},
		{PhoneID: 27891234, FirstName: "snow", LastName: "leopard", ServiceName: "bamboo_oil",
			DateTime: now.Add((2*24 + 3) * time.Hour)},
		{PhoneID: 29451872, FirstName: "red", LastName: "panda", ServiceName: "aroma_bath",
			DateTime: now.Add((3*24 + 4) * time.Hour)},
		{PhoneID: 20347689, FirstName: "tibetan", LastName: "fox", ServiceName: "stone_massage",
			DateTime: now.Add((4*24 + 5) * time.Hour)},
		{PhoneID: 24567123, FirstName: "black", LastName: "bear", ServiceName: "green_tea",
			DateTime: now.Add((5*24 + 6) * time.Hour)},
		{PhoneID: 27890156, FirstName: "golden", LastName: "monkey", ServiceName: "flower_tea",
			DateTime: now.Add((6*24 + 7) * time.Hour)},
		{PhoneID: 29873456, FirstName: "eurasian", LastName: "lynx", ServiceName: "private_bath",
			DateTime: now.Add((8*24 + 1) * time.Hour)},
		{PhoneID: 25908345, FirstName: "malayan", LastName: "tapir", ServiceName: "bamboo_oil",
			DateTime: now.Add((10*24 + 2) * time.Hour)},
		{PhoneID: 21789456, FirstName: "giant", LastName: "panda", ServiceName: "classic_bath",
			DateTime: now.Add((12*24 + 3) * time.Hour)},
		{PhoneID: 23456781, FirstName: "siberian", LastName: "tiger", ServiceName: "stone_massage",
			DateTime: now.Add((13*24 + 4) * time.Hour)},
		{PhoneID: 20398476, FirstName: "japanese", LastName: "macaque", ServiceName: "aroma_bath",
			DateTime: now.Add((14*24 + 5) * time.Hour)},
	}
}
