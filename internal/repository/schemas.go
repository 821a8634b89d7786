package repository

import "carsalesweblink/internal/sheets"

// Tab schemas. Column order is load-bearing: it is the physical layout of the
// stored rows. New columns are only ever added, and each addition gets a
// legacy entry so rows written before it still decode correctly.

var dealerSchema = sheets.Schema{
	Name: "dealers",
	Fields: []sheets.Field{
		{Name: "dealerId"},
		{Name: "name"},
		{Name: "status"},
		{Name: "passcodeHash"},
		{Name: "passcode"},
		{Name: "whatsapp"},
		{Name: "logoUrl"},
		{Name: "createdAt"},
		{Name: "updatedAt"},
	},
	Legacy: []sheets.LegacyVersion{
		{
			// Before the plaintext passcode column was inserted after the hash.
			Width: 8,
			Fields: []sheets.Field{
				{Name: "dealerId"},
				{Name: "name"},
				{Name: "status"},
				{Name: "passcodeHash"},
				{Name: "whatsapp"},
				{Name: "logoUrl"},
				{Name: "createdAt"},
				{Name: "updatedAt"},
			},
		},
	},
}

var vehicleSchema = sheets.Schema{
	Name: "vehicles",
	Fields: []sheets.Field{
		{Name: "vehicleId"},
		{Name: "title"},
		{Name: "make"},
		{Name: "model"},
		{Name: "year", Kind: sheets.Int},
		{Name: "price", Kind: sheets.Float},
		{Name: "status"},
		{Name: "notes"},
		{Name: "heroImage"},
		{Name: "heroVideo"},
		{Name: "imagesJson", Kind: sheets.JSONList},
		{Name: "updatedAt"},
	},
	Legacy: []sheets.LegacyVersion{
		{
			// Before heroVideo was inserted after heroImage.
			Width: 11,
			Fields: []sheets.Field{
				{Name: "vehicleId"},
				{Name: "title"},
				{Name: "make"},
				{Name: "model"},
				{Name: "year", Kind: sheets.Int},
				{Name: "price", Kind: sheets.Float},
				{Name: "status"},
				{Name: "notes"},
				{Name: "heroImage"},
				{Name: "imagesJson", Kind: sheets.JSONList},
				{Name: "updatedAt"},
			},
		},
	},
}

var leadSchema = sheets.Schema{
	Name: "leads",
	Fields: []sheets.Field{
		{Name: "createdAt"},
		{Name: "leadId"},
		{Name: "vehicleId"},
		{Name: "type"},
		{Name: "name"},
		{Name: "phone"},
		{Name: "email"},
		{Name: "preferredDate"},
		{Name: "preferredTime"},
		{Name: "notes"},
		{Name: "source"},
		{Name: "status"},
	},
}

var settingsSchema = sheets.Schema{
	Name: "settings",
	Fields: []sheets.Field{
		{Name: "key"},
		{Name: "value"},
		{Name: "updatedAt"},
	},
}
