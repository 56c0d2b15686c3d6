package shop

// Branch is one physical store. Branches are matched by name or postcode
// substring in catalog order, not by distance.
type Branch struct {
	Name     string
	Address  string
	Postcode string
	Phone    string
}

// StoreInfo holds the free-text store information used for FAQ answers and
// the AI fallback context. Loaded once at startup, read-only afterwards.
type StoreInfo struct {
	DeliveryPolicy     string
	DeliverySchedule   string
	Contact            string
	CustomerService    string
	HalalCertification string
	OpeningHours       string
	About              string
	Branches           []Branch
	// HeadOffice is the fallback address when no branch matches a message.
	HeadOffice Branch
}

// DefaultStoreInfo returns the built-in store information.
func DefaultStoreInfo() *StoreInfo {
	wembley := Branch{Name: "Wembley", Address: "259 Water Road", Postcode: "HA0 1HX", Phone: "0208 908 9440"}

	return &StoreInfo{
		DeliveryPolicy: "No delivery to Isle of Man, Isle of Wight, Jersey.\n\n" +
			"Mainland UK delivery 7 days a week.\n\n" +
			"Orders under £100: £9.99 delivery fee.\n\n" +
			"Orders £100+: Free delivery.\n\n" +
			"Delivered in insulated boxes with ice packs.\n\n" +
			"Orders placed before 9am (Mon-Sun) are delivered next day.\n\n" +
			"Click & Collect (after 5pm next day if ordered before 1pm).",
		DeliverySchedule: "Monday before 9am: Arrives Tuesday\n" +
			"Tuesday before 9am: Arrives Wednesday\n" +
			"Wednesday before 9am: Arrives Thursday\n" +
			"Thursday before 9am: Arrives Friday\n" +
			"Friday before 9am: Arrives Saturday\n" +
			"Saturday before 9am: Arrives Sunday\n" +
			"Sunday before 9am: Arrives Monday",
		Contact: "sales@tariqhalalmeats.com | 0208 908 9440",
		CustomerService: "Complaints reviewed in 1-2 working days.\n" +
			"Email support: info@tariqhalalmeats.com\n" +
			"No returns due to perishable nature of goods.",
		HalalCertification: "All products certified Halal by reputable bodies.",
		OpeningHours:       "Open Mon-Sun 9am-9pm, all branches.",
		About: "Tariq Halal Meats has served the UK's halal community for over 50 years,\n" +
			"growing from a single Wembley butcher shop to 19 branches across the country.\n" +
			"All products certified Halal by reputable bodies.",
		Branches: []Branch{
			{Name: "Cardiff", Address: "104-106 Albany Road", Postcode: "CF24 3RT", Phone: "02920 485 569"},
			{Name: "Crawley", Address: "33 Queensway", Postcode: "RH10 1EG", Phone: "01293 522189"},
			{Name: "Croydon", Address: "89 London Road", Postcode: "CR0 2RF", Phone: "0208 686 8846"},
			{Name: "Finsbury Park", Address: "258 Seven Sisters Road", Postcode: "N4 2HY", Phone: "0207 281 5450"},
			{Name: "Forest Gate", Address: "11 Woodgrange Road", Postcode: "E7 8BA", Phone: "0208 555 6508"},
			{Name: "Fulham", Address: "431 North End Road", Postcode: "SW6 1NY", Phone: "0207 381 4252"},
			{Name: "Green Street", Address: "252 Green St", Postcode: "E7 8LF", Phone: "0203 649 5332"},
			{Name: "Hammersmith", Address: "120-124 King Street", Postcode: "W6 0QT", Phone: "0208 741 6655"},
			{Name: "Hounslow", Address: "9 High Street", Postcode: "TW3 1RH", Phone: "0203 302 4330"},
			{Name: "Ilford", Address: "48 Ilford Lane", Postcode: "IG1 2JY", Phone: "0208 911 8201"},
			{Name: "Leyton", Address: "794 High Road", Postcode: "E10 6AE", Phone: "0208 539 6200"},
			{Name: "Slough", Address: "251 Farnham Road", Postcode: "SL2 1DE", Phone: "01753 571609"},
			{Name: "South Harrow", Address: "387 Northolt Road", Postcode: "HA2 8JD", Phone: "0208 423 4975"},
			{Name: "Southall", Address: "126 The Broadway", Postcode: "UB1 1QF", Phone: "0203 337 8794"},
			{Name: "St Johns Wood", Address: "10 Lodge Road", Postcode: "NW8 7JA", Phone: "0207 483 2938"},
			{Name: "Stratford", Address: "Unit 47/48 The Mall", Postcode: "E15 1XE", Phone: "0204 506 5693"},
			{Name: "Streatham", Address: "14 Leighham Parade", Postcode: "SW16 1DR", Phone: "0208 664 7045"},
			{Name: "Wealdstone", Address: "14-20 High Street", Postcode: "HA3 7HA", Phone: "0208 863 1353"},
			wembley,
		},
		HeadOffice: wembley,
	}
}
