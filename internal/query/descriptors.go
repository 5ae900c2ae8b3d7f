package query

// Per-entity descriptors. Search field sets, default sort columns and page
// sizes mirror the registry's list screens: smaller pages for the asset
// inventory tables, larger for the operator-management registries.

var Categories = Descriptor{
	Table:          "categories",
	SearchFields:   []string{"name", "description"},
	Sortable:       []string{"id", "name", "description", "created_at"},
	DefaultSort:    "name",
	DefaultPerPage: 5,
}

var Manufacturers = Descriptor{
	Table:          "manufacturers",
	SearchFields:   []string{"name"},
	Sortable:       []string{"id", "name", "url", "support_phone", "support_email", "created_at"},
	DefaultSort:    "name",
	DefaultPerPage: 5,
}

var Locations = Descriptor{
	Table:          "locations",
	SearchFields:   []string{"name", "address"},
	Sortable:       []string{"id", "name", "address", "created_at"},
	DefaultSort:    "name",
	DefaultPerPage: 5,
}

var Assets = Descriptor{
	Table:          "assets",
	SearchFields:   []string{"name"},
	Sortable:       []string{"id", "asset_tag", "name", "serial_number", "model_name", "purchase_date", "purchase_price", "status", "created_at"},
	DefaultSort:    "name",
	DefaultPerPage: 5,
	Preloads:       []string{"Category", "Location", "Manufacturer", "AssignedTo"},
}

var Drivers = Descriptor{
	Table:          "drivers",
	SearchFields:   []string{"driver_fullname", "driver_license_number"},
	Sortable:       []string{"id", "driver_fullname", "driver_license_number", "expiration_date", "created_at"},
	DefaultSort:    "driver_fullname",
	DefaultPerPage: 10,
}

var Motorcycles = Descriptor{
	Table:          "motorcycles",
	SearchFields:   []string{"plate_number", "motor_number", "chassis_number", "make", "year_model"},
	Sortable:       []string{"id", "plate_number", "motor_number", "chassis_number", "make", "year_model", "registered_date", "created_at"},
	DefaultSort:    "plate_number",
	DefaultPerPage: 10,
}

var Todas = Descriptor{
	Table:          "toda",
	SearchFields:   []string{"toda_name", "toda_president"},
	Sortable:       []string{"id", "toda_name", "toda_president", "date_registered", "toda_status", "created_at"},
	DefaultSort:    "toda_name",
	DefaultPerPage: 10,
}

var Operators = Descriptor{
	Table:        "operators",
	SearchFields: []string{"fullname", "mtop_number", "email_address"},
	RelatedSearch: []RelatedSearch{
		{Table: "drivers", ForeignKey: "driver_id", Column: "driver_fullname"},
		{Table: "motorcycles", ForeignKey: "motorcycle_id", Column: "plate_number"},
		{Table: "toda", ForeignKey: "toda_id", Column: "toda_name"},
	},
	Sortable:       []string{"id", "fullname", "email_address", "mtop_number", "date_registered", "date_last_paid", "permit_status", "created_at"},
	DefaultSort:    "fullname",
	DefaultPerPage: 10,
	Preloads:       []string{"Driver", "Motorcycle", "Toda"},
}
