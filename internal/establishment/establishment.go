// Package establishment holds the Kearney locations an arrangement is
// written under. The selected location's contact block is printed on every
// form.
package establishment

// Establishment is one Kearney location.
type Establishment struct {
	Key        string // selector label, includes the short code
	Name       string // printed name
	Email      string
	Phone      string
	Address    string
	City       string
	Province   string
	PostalCode string
}

// Establishments lists the locations in selector order.
var Establishments = []Establishment{
	{
		Key:        "Kearney Funeral Services (KFS)",
		Name:       "Kearney Funeral Services (KFS)",
		Email:      "Vancouver.Chapel@KearneyFS.com",
		Phone:      "604-736-2668",
		Address:    "450 W 2nd Ave",
		City:       "Vancouver",
		Province:   "BC",
		PostalCode: "V5Y 1E2",
	},
	{
		Key:        "Kearney Burnaby Chapel (KBC)",
		Name:       "Kearney Burnaby Chapel",
		Email:      "Burnaby@KearneyFS.com",
		Phone:      "604-299-6889",
		Address:    "4715 Hastings St",
		City:       "Burnaby",
		Province:   "BC",
		PostalCode: "V5C 2K8",
	},
	{
		Key:        "Kearney Burquitlam Funeral Home (BFH)",
		Name:       "Kearney Burquitlam Funeral Home",
		Email:      "Info@BurquitlamFuneralHome.ca",
		Phone:      "604-936-9987",
		Address:    "102-200 Bernatchey St",
		City:       "Coquitlam",
		Province:   "BC",
		PostalCode: "V3K 0H8",
	},
	{
		Key:        "Kearney Columbia-Bowell Chapel (CBC)",
		Name:       "Kearney Columbia-Bowell Chapel",
		Email:      "Columbia-Bowell@KearneyFS.com",
		Phone:      "604-521-4881",
		Address:    "219 6th Street",
		City:       "New Westminster",
		Province:   "BC",
		PostalCode: "V3L 3A3",
	},
	{
		Key:        "Kearney Cloverdale & South Surrey (CLO)",
		Name:       "Kearney Clovedale & South Surrey",
		Email:      "Cloverdale@KearneyFS.com",
		Phone:      "604-574-2603",
		Address:    "17667 57th Ave",
		City:       "Surrey",
		Province:   "BC",
		PostalCode: "V3S 1H1",
	},
}

// Keys returns the selector labels in order.
func Keys() []string {
	keys := make([]string, len(Establishments))
	for i, e := range Establishments {
		keys[i] = e.Key
	}

	return keys
}

// ByKey finds a location by its selector label.
func ByKey(key string) (Establishment, bool) {
	for _, e := range Establishments {
		if e.Key == key {
			return e, true
		}
	}

	return Establishment{}, false
}
