package category

// amexEntries covers the "Primary-Detailed" labels of the card statement export.
var amexEntries = map[string]string{
	"Business Services":                              "GENERAL_SERVICES",
	"Business Services:Advertising Services":         "GENERAL_SERVICES:OTHER_GENERAL_SERVICES",
	"Business Services:Health Care Services":         "MEDICAL:PRIMARY_CARE",
	"Business Services:Internet Services":            "RENT_AND_UTILITIES:INTERNET_AND_CABLE",
	"Business Services:Mailing & Shipping":           "GENERAL_SERVICES:POSTAGE_AND_SHIPPING",
	"Business Services:Other Services":               "GENERAL_SERVICES:OTHER_GENERAL_SERVICES",
	"Business Services:Professional Services":        "GENERAL_SERVICES:CONSULTING_AND_LEGAL",
	"Communications":                                 "RENT_AND_UTILITIES",
	"Communications:Cable & Internet Comm":           "RENT_AND_UTILITIES:INTERNET_AND_CABLE",
	"Communications:Mobile":                          "RENT_AND_UTILITIES:TELEPHONE",
	"Communications:Telephone Comm":                  "RENT_AND_UTILITIES:TELEPHONE",
	"Entertainment":                                  "ENTERTAINMENT",
	"Entertainment:Associations":                     "ENTERTAINMENT:OTHER_ENTERTAINMENT",
	"Entertainment:General Attractions":              "ENTERTAINMENT:SPORTING_EVENTS_AMUSEMENT_PARKS_AND_MUSEUMS",
	"Entertainment:Other Entertainment":              "ENTERTAINMENT:OTHER_ENTERTAINMENT",
	"Entertainment:Theatrical Events":                "ENTERTAINMENT:SPORTING_EVENTS_AMUSEMENT_PARKS_AND_MUSEUMS",
	"Entertainment:Movies":                           "ENTERTAINMENT:TV_AND_MOVIES",
	"Fees & Adjustments":                             "BANK_FEES",
	"Fees & Adjustments:Fees & Adjustments":          "BANK_FEES:OTHER_BANK_FEES",
	"Fees & Adjustments:Interest Charge":             "BANK_FEES:INTEREST_CHARGE",
	"Merchandise & Supplies":                         "GENERAL_MERCHANDISE",
	"Merchandise & Supplies:Appliance Stores":        "GENERAL_MERCHANDISE:ELECTRONICS",
	"Merchandise & Supplies:Book Stores":             "GENERAL_MERCHANDISE:BOOKSTORES_AND_NEWSSTANDS",
	"Merchandise & Supplies:Clothing Stores":         "GENERAL_MERCHANDISE:CLOTHING_AND_ACCESSORIES",
	"Merchandise & Supplies:Computer Supplies":       "GENERAL_MERCHANDISE:ELECTRONICS",
	"Merchandise & Supplies:Department Stores":       "GENERAL_MERCHANDISE:DEPARTMENT_STORES",
	"Merchandise & Supplies:Electronics Stores":      "GENERAL_MERCHANDISE:ELECTRONICS",
	"Merchandise & Supplies:Furniture Stores":        "HOME_IMPROVEMENT:FURNITURE",
	"Merchandise & Supplies:General Retail":          "GENERAL_MERCHANDISE:OTHER_GENERAL_MERCHANDISE",
	"Merchandise & Supplies:Groceries":               "FOOD_AND_DRINK:GROCERIES",
	"Merchandise & Supplies:Hardware Supplies":       "HOME_IMPROVEMENT:HARDWARE",
	"Merchandise & Supplies:Internet Purchase":       "GENERAL_MERCHANDISE:ONLINE_MARKETPLACES",
	"Merchandise & Supplies:Mail Order":              "GENERAL_MERCHANDISE:ONLINE_MARKETPLACES",
	"Merchandise & Supplies:Pharmacies":              "MEDICAL:PHARMACIES_AND_SUPPLEMENTS",
	"Merchandise & Supplies:Sporting Goods Stores":   "GENERAL_MERCHANDISE:SPORTING_GOODS",
	"Merchandise & Supplies:Wholesale Stores":        "GENERAL_MERCHANDISE:SUPERSTORES",
	"Other":                                          "UNKNOWN",
	"Other:Charities":                                "GOVERNMENT_AND_NON_PROFIT:DONATIONS",
	"Other:Government Services":                      "GOVERNMENT_AND_NON_PROFIT:GOVERNMENT_DEPARTMENTS_AND_AGENCIES",
	"Other:Miscellaneous":                            "UNKNOWN",
	"Restaurant":                                     "FOOD_AND_DRINK:RESTAURANT",
	"Restaurant:Bar & Café":                          "FOOD_AND_DRINK:BEER_WINE_AND_LIQUOR",
	"Restaurant:Restaurant":                          "FOOD_AND_DRINK:RESTAURANT",
	"Transportation":                                 "TRANSPORTATION",
	"Transportation:Auto Services":                   "GENERAL_SERVICES:AUTOMOTIVE",
	"Transportation:Fuel":                            "TRANSPORTATION:GAS",
	"Transportation:Parking Charges":                 "TRANSPORTATION:PARKING",
	"Transportation:Taxis & Coach":                   "TRANSPORTATION:TAXIS_AND_RIDE_SHARES",
	"Transportation:Tolls & Fees":                    "TRANSPORTATION:TOLLS",
	"Transportation:Rail Services":                   "TRANSPORTATION:PUBLIC_TRANSIT",
	"Travel":                                         "TRAVEL",
	"Travel:Airline":                                 "TRAVEL:FLIGHTS",
	"Travel:Lodging":                                 "TRAVEL:LODGING",
	"Travel:Travel Agencies":                         "TRAVEL:OTHER_TRAVEL",
	"Travel:Vehicle Rental":                          "TRAVEL:RENTAL_CARS",
	"Payment":                                        "LOAN_PAYMENTS:CREDIT_CARD_PAYMENT",
	"Credits":                                        "TRANSFER_IN:OTHER_TRANSFER_IN",
}

// appleEntries covers the single-level categories of the card export.
var appleEntries = map[string]string{
	"Airlines":       "TRAVEL:FLIGHTS",
	"Alcohol":        "FOOD_AND_DRINK:BEER_WINE_AND_LIQUOR",
	"Credit":         "TRANSFER_IN:OTHER_TRANSFER_IN",
	"Debit":          "TRANSFER_OUT:OTHER_TRANSFER_OUT",
	"Entertainment":  "ENTERTAINMENT",
	"Gas":            "TRANSPORTATION:GAS",
	"Grocery":        "FOOD_AND_DRINK:GROCERIES",
	"Hotels":         "TRAVEL:LODGING",
	"Installment":    "LOAN_PAYMENTS:OTHER_PAYMENT",
	"Interest":       "BANK_FEES:INTEREST_CHARGE",
	"Medical":        "MEDICAL",
	"Other":          "UNKNOWN",
	"Payment":        "TRANSFER_IN:OTHER_TRANSFER_IN",
	"Restaurants":    "FOOD_AND_DRINK:RESTAURANT",
	"Shopping":       "GENERAL_MERCHANDISE",
	"Transportation": "TRANSPORTATION",
	"Utilities":      "RENT_AND_UTILITIES",
}
