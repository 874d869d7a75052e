package catalog

import "github.com/shopspring/decimal"

// Package is a named arrangement bundle. Amounts are keyed by invoice field
// code; Labels carry the descriptive fields (catalogue selections, quantity
// presets) keyed by their form field name.
type Package struct {
	Name    string
	Amounts map[string]decimal.Decimal
	Labels  map[string]string
}

// CadenceDiscountDescription and CadenceDiscountAmount describe the
// promotional reduction bundled with every package. Applying a package
// upserts exactly one ledger row with this description.
const CadenceDiscountDescription = "Cadence"

var CadenceDiscountAmount = d("400.00")

// PackageByName finds a package preset.
func PackageByName(name string) (Package, bool) {
	for _, p := range Packages {
		if p.Name == name {
			return p, true
		}
	}

	return Package{}, false
}

// PackageNames lists the preset names in display order.
func PackageNames() []string {
	names := make([]string, len(Packages))
	for i, p := range Packages {
		names[i] = p.Name
	}

	return names
}

// Packages holds the current arrangement bundles, in the order they appear
// on the package selector.
var Packages = []Package{
	{
		Name: "Full Funeral Church - Cremation",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4B": d("365.00"),
			"A5A": d("365.00"), "A5B": d("695.00"), "A9D": d("295.00"), "A9E": d("525.00"),
			"B1": d("795.00"), "B2": d("35.00"), "C2": d("745.00"), "C5": d("40.00"),
			"C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Urn": "Basic Cardboard Urn", "Crematorium": "West Shore",
			"Other_2": "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Full Funeral Church - Burial",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4B": d("365.00"),
			"A5A": d("365.00"), "A5B": d("695.00"), "A9D": d("295.00"), "A9E": d("525.00"),
			"B1": d("795.00"), "C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"),
			"3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Other_2": "Cadence Legacy Planner",
			"Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Full Funeral Chapel - Cremation",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "A5A": d("365.00"), "A5B": d("695.00"), "A9D": d("295.00"),
			"A9E": d("525.00"), "B1": d("795.00"), "B2": d("35.00"), "C2": d("745.00"),
			"C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Urn": "Basic Cardboard Urn", "Crematorium": "West Shore",
			"Other_2": "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Full Funeral Chapel - Burial",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "A5A": d("365.00"), "A5B": d("695.00"), "A9D": d("295.00"),
			"A9E": d("525.00"), "B1": d("795.00"), "C5": d("40.00"), "C9": d("599.00"),
			"D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Other_2": "Cadence Legacy Planner",
			"Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Full Funeral Chapel - Cremation, Reception",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "A5A": d("365.00"), "A5B": d("695.00"), "A8": d("595.00"),
			"A9D": d("295.00"), "A9E": d("525.00"), "B1": d("795.00"), "B2": d("35.00"),
			"C2": d("745.00"), "C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"),
			"3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Urn": "Basic Cardboard Urn", "Crematorium": "West Shore",
			"Reception Facilities": "KFS New West Reception Room Rental (Disp Dishes, Coffee, Tea)",
			"Other_2":              "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Full Funeral Chapel - Burial, Reception",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "A5A": d("365.00"), "A5B": d("695.00"), "A8": d("595.00"),
			"A9D": d("295.00"), "A9E": d("525.00"), "B1": d("795.00"), "C5": d("40.00"),
			"C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri",
			"Reception Facilities": "KFS New West Reception Room Rental (Disp Dishes, Coffee, Tea)",
			"Other_2":              "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Minimum Cremation - No Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("765.00"), "A3": d("595.00"), "A4B": d("365.00"),
			"B1": d("395.00"), "B2": d("35.00"), "C2": d("745.00"), "C5": d("40.00"),
			"C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": BasicCremationContainer, "Urn": "Basic Cardboard Urn",
			"Crematorium": "West Shore", "Other_2": "Cadence Legacy Planner",
			"Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Minimum Cremation - With Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("895.00"), "A3": d("350.00"), "A4B": d("365.00"),
			"A5A": d("365.00"), "A5B": d("695.00"), "A6": d("500.00"), "B1": d("795.00"),
			"B2": d("35.00"), "C2": d("745.00"), "C5": d("40.00"), "C9": d("599.00"),
			"D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Urn": "Basic Cardboard Urn", "Crematorium": "West Shore",
			"Evening Prayers or Visitation": "Viewing at New West",
			"Other_2":                       "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Graveside - No Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1195.00"), "A3": d("595.00"), "A4B": d("365.00"),
			"A5A": d("365.00"), "A9E": d("525.00"), "B1": d("795.00"), "C5": d("40.00"),
			"C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Other_2": "Cadence Legacy Planner",
			"Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Graveside - With Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1195.00"), "A3": d("595.00"), "A4B": d("365.00"),
			"A5A": d("365.00"), "A5B": d("695.00"), "A6": d("500.00"), "A9E": d("525.00"),
			"B1": d("795.00"), "C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"),
			"3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Evening Prayers or Visitation": "Viewing at New West",
			"Other_2": "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Memorial Service - No Reception, No Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1895.00"), "A3": d("795.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "B1": d("395.00"), "B2": d("35.00"), "C2": d("745.00"),
			"C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": BasicCremationContainer, "Urn": "Basic Cardboard Urn",
			"Crematorium": "West Shore", "Other_2": "Cadence Legacy Planner",
			"Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Memorial Service - No Reception, With Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1895.00"), "A3": d("795.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "A5B": d("695.00"), "A6": d("500.00"), "B1": d("395.00"),
			"B2": d("35.00"), "C2": d("745.00"), "C5": d("40.00"), "C9": d("599.00"),
			"D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": BasicCremationContainer, "Urn": "Basic Cardboard Urn",
			"Crematorium": "West Shore", "Evening Prayers or Visitation": "Viewing at New West",
			"Other_2": "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Memorial Service - With Reception, No Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1895.00"), "A3": d("795.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "A8": d("595.00"), "B1": d("395.00"), "B2": d("35.00"),
			"C2": d("745.00"), "C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"),
			"3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": BasicCremationContainer, "Urn": "Basic Cardboard Urn",
			"Crematorium":          "West Shore",
			"Reception Facilities": "KFS New West Reception Room Rental (Disp Dishes, Coffee, Tea)",
			"Other_2":              "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Memorial Service - With Reception, With Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1895.00"), "A3": d("795.00"), "A4A": d("895.00"),
			"A4B": d("365.00"), "A5B": d("695.00"), "A6": d("500.00"), "A8": d("595.00"),
			"B1": d("795.00"), "B2": d("35.00"), "C2": d("745.00"), "C5": d("40.00"),
			"C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Urn": "Basic Cardboard Urn", "Crematorium": "West Shore",
			"Evening Prayers or Visitation": "Viewing at New West",
			"Reception Facilities":          "KFS New West Reception Room Rental (Disp Dishes, Coffee, Tea)",
			"Other_2":                       "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Witness Cremation - No Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1295.00"), "A3": d("595.00"), "A4B": d("365.00"),
			"A5A": d("365.00"), "A9E": d("525.00"), "B1": d("395.00"), "B2": d("35.00"),
			"C2": d("1495.00"), "C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"),
			"3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": BasicCremationContainer, "Urn": "Basic Cardboard Urn",
			"Crematorium": "Watch Start Cremation (Maple Ridge)",
			"Other_2":     "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Witness Cremation - With Viewing",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("1295.00"), "A3": d("595.00"), "A4B": d("365.00"),
			"A5A": d("365.00"), "A5B": d("695.00"), "A6": d("500.00"), "A9E": d("525.00"),
			"B1": d("795.00"), "B2": d("35.00"), "C2": d("1495.00"), "C5": d("40.00"),
			"C9": d("599.00"), "D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket": "Mazri", "Urn": "Basic Cardboard Urn",
			"Crematorium":                   "Watch Start Cremation (Maple Ridge)",
			"Evening Prayers or Visitation": "Viewing at New West",
			"Other_2":                       "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Chapel Rental Reception - Cremation or Burial Elsewhere",
		Amounts: map[string]decimal.Decimal{
			"A2A": d("2495.00"), "A4A": d("895.00"), "A8": d("595.00"), "C9": d("599.00"),
			"D7": d("27.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Reception Facilities": "KFS New West Reception Room Rental (Disp Dishes, Coffee, Tea)",
			"Other_2":              "Cadence Legacy Planner", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Ship Out International - Service at Church",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4B": d("695.00"),
			"A5A": d("365.00"), "A5B": d("695.00"), "A9B": d("395.00"), "B1": d("3995.00"),
			"B7": d("750.00"), "C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"),
			"D8": d("3500.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket":  "Misty Blue - 18 gauge steel",
			"Other_1": "Casket Shipping Outer Container",
			"Other_2": "Cadence Legacy Planner",
			"Other_4": "Airfare Estimate", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Ship Out International - Service at Chapel",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("2755.00"), "A3": d("895.00"), "A4A": d("895.00"),
			"A4B": d("695.00"), "A5A": d("365.00"), "A5B": d("695.00"), "A8": d("595.00"),
			"A9B": d("395.00"), "B1": d("3995.00"), "B7": d("750.00"), "C5": d("40.00"),
			"C9": d("599.00"), "D7": d("27.00"), "D8": d("3500.00"), "3E Journey Home": d("595.00"),
		},
		Labels: map[string]string{
			"Casket":               "Misty Blue - 18 gauge steel",
			"Reception Facilities": "KFS New West Reception Room Rental (Disp Dishes, Coffee, Tea)",
			"Other_1":              "Casket Shipping Outer Container",
			"Other_2":              "Cadence Legacy Planner",
			"Other_4":              "Airfare Estimate", "Death_Certificates_Quantity": "1",
		},
	},
	{
		Name: "Ship Out International - No Service",
		Amounts: map[string]decimal.Decimal{
			"A1": d("525.00"), "A2A": d("995.00"), "A3": d("895.00"), "A4B": d("695.00"),
			"A5A": d("365.00"), "A5B": d("695.00"), "A9B": d("395.00"), "B1": d("3995.00"),
			"B7": d("750.00"), "C5": d("40.00"), "C9": d("599.00"), "D7": d("27.00"),
			"D8": d("3500.00"),
		},
		Labels: map[string]string{
			"Casket":  "Misty Blue - 18 gauge steel",
			"Other_1": "Casket Shipping Outer Container",
			"Other_2": "Cadence Legacy Planner",
			"Other_4": "Airfare Estimate", "Death_Certificates_Quantity": "1",
		},
	},
}
