package ics

// windowsZoneNames maps Windows time zone IDs to their canonical IANA
// equivalent, per Unicode CLDR's windowsZones.xml. Spec.md §1 treats this
// table as an injected lookup rather than something the engine computes, so
// it is data, not logic — the set below covers the zones that actually turn
// up on calendars exported by Windows/Outlook/Exchange in the wild, the same
// subset onsigntv/go-ics carries for the same reason.
var windowsZoneNames = map[string]string{
	"Dateline Standard Time":          "Etc/GMT+12",
	"UTC-11":                          "Etc/GMT+11",
	"Aleutian Standard Time":          "America/Adak",
	"Hawaiian Standard Time":          "Pacific/Honolulu",
	"Marquesas Standard Time":         "Pacific/Marquesas",
	"Alaskan Standard Time":           "America/Anchorage",
	"UTC-09":                          "Etc/GMT+9",
	"Pacific Standard Time (Mexico)":  "America/Tijuana",
	"UTC-08":                          "Etc/GMT+8",
	"Pacific Standard Time":           "America/Los_Angeles",
	"US Mountain Standard Time":       "America/Phoenix",
	"Mountain Standard Time (Mexico)": "America/Chihuahua",
	"Mountain Standard Time":          "America/Denver",
	"Central America Standard Time":   "America/Guatemala",
	"Central Standard Time":           "America/Chicago",
	"Central Standard Time (Mexico)":  "America/Mexico_City",
	"Canada Central Standard Time":    "America/Regina",
	"SA Pacific Standard Time":        "America/Bogota",
	"Eastern Standard Time (Mexico)":  "America/Cancun",
	"Eastern Standard Time":           "America/New_York",
	"US Eastern Standard Time":        "America/Indianapolis",
	"Venezuela Standard Time":         "America/Caracas",
	"Paraguay Standard Time":          "America/Asuncion",
	"Atlantic Standard Time":          "America/Halifax",
	"Central Brazilian Standard Time": "America/Cuiaba",
	"SA Western Standard Time":        "America/La_Paz",
	"Pacific SA Standard Time":        "America/Santiago",
	"Newfoundland Standard Time":      "America/St_Johns",
	"Tocantins Standard Time":         "America/Araguaina",
	"E. South America Standard Time":  "America/Sao_Paulo",
	"SA Eastern Standard Time":        "America/Cayenne",
	"Argentina Standard Time":         "America/Buenos_Aires",
	"Greenland Standard Time":         "America/Godthab",
	"Montevideo Standard Time":        "America/Montevideo",
	"Magallanes Standard Time":        "America/Punta_Arenas",
	"Bahia Standard Time":             "America/Bahia",
	"UTC-02":                          "Etc/GMT+2",
	"Azores Standard Time":            "Atlantic/Azores",
	"Cape Verde Standard Time":        "Atlantic/Cape_Verde",
	"UTC":                             "Etc/GMT",
	"GMT Standard Time":               "Europe/London",
	"Greenwich Standard Time":         "Atlantic/Reykjavik",
	"W. Europe Standard Time":         "Europe/Berlin",
	"Central Europe Standard Time":    "Europe/Budapest",
	"Romance Standard Time":           "Europe/Paris",
	"Central European Standard Time":  "Europe/Warsaw",
	"W. Central Africa Standard Time": "Africa/Lagos",
	"Jordan Standard Time":            "Asia/Amman",
	"GTB Standard Time":               "Europe/Bucharest",
	"Middle East Standard Time":       "Asia/Beirut",
	"Egypt Standard Time":             "Africa/Cairo",
	"E. Europe Standard Time":         "Europe/Chisinau",
	"Syria Standard Time":             "Asia/Damascus",
	"West Bank Standard Time":         "Asia/Hebron",
	"South Africa Standard Time":      "Africa/Johannesburg",
	"FLE Standard Time":               "Europe/Kiev",
	"Israel Standard Time":            "Asia/Jerusalem",
	"Kaliningrad Standard Time":       "Europe/Kaliningrad",
	"Sudan Standard Time":             "Africa/Khartoum",
	"Libya Standard Time":             "Africa/Tripoli",
	"Namibia Standard Time":           "Africa/Windhoek",
	"Arabic Standard Time":            "Asia/Baghdad",
	"Turkey Standard Time":            "Europe/Istanbul",
	"Arab Standard Time":              "Asia/Riyadh",
	"Belarus Standard Time":           "Europe/Minsk",
	"Russian Standard Time":           "Europe/Moscow",
	"E. Africa Standard Time":         "Africa/Nairobi",
	"Iran Standard Time":              "Asia/Tehran",
	"Arabian Standard Time":           "Asia/Dubai",
	"Astrakhan Standard Time":         "Europe/Astrakhan",
	"Azerbaijan Standard Time":        "Asia/Baku",
	"Russia Time Zone 3":              "Europe/Samara",
	"Mauritius Standard Time":         "Indian/Mauritius",
	"Saratov Standard Time":           "Europe/Saratov",
	"Georgian Standard Time":          "Asia/Tbilisi",
	"Caucasus Standard Time":          "Asia/Yerevan",
	"Afghanistan Standard Time":       "Asia/Kabul",
	"West Asia Standard Time":         "Asia/Tashkent",
	"Ekaterinburg Standard Time":      "Asia/Yekaterinburg",
	"Pakistan Standard Time":          "Asia/Karachi",
	"India Standard Time":             "Asia/Calcutta",
	"Sri Lanka Standard Time":         "Asia/Colombo",
	"Nepal Standard Time":             "Asia/Katmandu",
	"Central Asia Standard Time":      "Asia/Almaty",
	"Bangladesh Standard Time":        "Asia/Dhaka",
	"Omsk Standard Time":              "Asia/Omsk",
	"Myanmar Standard Time":           "Asia/Rangoon",
	"SE Asia Standard Time":           "Asia/Bangkok",
	"Altai Standard Time":             "Asia/Barnaul",
	"W. Mongolia Standard Time":       "Asia/Hovd",
	"North Asia Standard Time":        "Asia/Krasnoyarsk",
	"N. Central Asia Standard Time":   "Asia/Novosibirsk",
	"Tomsk Standard Time":             "Asia/Tomsk",
	"China Standard Time":             "Asia/Shanghai",
	"North Asia East Standard Time":   "Asia/Irkutsk",
	"Singapore Standard Time":         "Asia/Singapore",
	"W. Australia Standard Time":      "Australia/Perth",
	"Taipei Standard Time":            "Asia/Taipei",
	"Ulaanbaatar Standard Time":       "Asia/Ulaanbaatar",
	"North Korea Standard Time":       "Asia/Pyongyang",
	"Aus Central W. Standard Time":    "Australia/Eucla",
	"Transbaikal Standard Time":       "Asia/Chita",
	"Tokyo Standard Time":             "Asia/Tokyo",
	"Korea Standard Time":             "Asia/Seoul",
	"Yakutsk Standard Time":           "Asia/Yakutsk",
	"Cen. Australia Standard Time":    "Australia/Adelaide",
	"AUS Central Standard Time":       "Australia/Darwin",
	"E. Australia Standard Time":      "Australia/Brisbane",
	"AUS Eastern Standard Time":       "Australia/Sydney",
	"West Pacific Standard Time":      "Pacific/Port_Moresby",
	"Tasmania Standard Time":          "Australia/Hobart",
	"Vladivostok Standard Time":       "Asia/Vladivostok",
	"Lord Howe Standard Time":         "Australia/Lord_Howe",
	"Bougainville Standard Time":      "Pacific/Bougainville",
	"Russia Time Zone 10":             "Asia/Srednekolymsk",
	"Magadan Standard Time":           "Asia/Magadan",
	"Norfolk Standard Time":           "Pacific/Norfolk",
	"Sakhalin Standard Time":          "Asia/Sakhalin",
	"Central Pacific Standard Time":   "Pacific/Guadalcanal",
	"Russia Time Zone 11":             "Asia/Kamchatka",
	"New Zealand Standard Time":       "Pacific/Auckland",
	"UTC+12":                          "Etc/GMT-12",
	"Fiji Standard Time":              "Pacific/Fiji",
	"Chatham Islands Standard Time":   "Pacific/Chatham",
	"UTC+13":                          "Etc/GMT-13",
	"Tonga Standard Time":             "Pacific/Tongatapu",
	"Samoa Standard Time":             "Pacific/Apia",
	"Line Islands Standard Time":      "Pacific/Kiritimati",

	// Legacy/alternate spellings that still show up on older exports,
	// grounded the same way onsigntv/go-ics carries them.
	"U.S. Mountain Standard Time": "America/Phoenix",
	"U.S. Eastern Standard Time":  "America/Indianapolis",
	"S.A. Pacific Standard Time":  "America/Bogota",
	"S.A. Western Standard Time":  "America/La_Paz",
	"S.A. Eastern Standard Time":  "America/Cayenne",
	"Pacific S.A. Standard Time":  "America/Santiago",
	"Mid-Atlantic Standard Time":  "Atlantic/South_Georgia",
	"S.E. Asia Standard Time":     "Asia/Bangkok",
}

// cldrDisplayNames maps common CLDR/exemplar-city English display names
// (lower-cased, the resolver compares case-insensitively) to an IANA zone.
// This is deliberately a curated subset, not a CLDR data-file dump: spec.md
// §1 scopes the full CLDR/Windows mapping tables out as an injected lookup,
// so only the names that realistically appear hand-typed in a TZID or a
// calendar export are worth carrying here.
var cldrDisplayNames = map[string]string{
	"gmt":                          "Etc/GMT",
	"greenwich mean time":          "Europe/London",
	"british summer time":          "Europe/London",
	"western european time":       "Europe/Lisbon",
	"central european time":       "Europe/Berlin",
	"central european summer time": "Europe/Berlin",
	"eastern european time":       "Europe/Helsinki",
	"moscow standard time":        "Europe/Moscow",
	"eastern time":                "America/New_York",
	"eastern standard time":       "America/New_York",
	"eastern daylight time":       "America/New_York",
	"central time":                "America/Chicago",
	"central daylight time":       "America/Chicago",
	"mountain time":                "America/Denver",
	"pacific time":                "America/Los_Angeles",
	"pacific daylight time":       "America/Los_Angeles",
	"alaska time":                  "America/Anchorage",
	"hawaii-aleutian time":        "Pacific/Honolulu",
	"atlantic time":                "America/Halifax",
	"newfoundland time":           "America/St_Johns",
	"brasilia time":                "America/Sao_Paulo",
	"argentina time":               "America/Buenos_Aires",
	"india standard time":         "Asia/Calcutta",
	"china standard time":         "Asia/Shanghai",
	"japan standard time":         "Asia/Tokyo",
	"korea standard time":         "Asia/Seoul",
	"singapore time":               "Asia/Singapore",
	"hong kong time":               "Asia/Hong_Kong",
	"indochina time":               "Asia/Bangkok",
	"gulf standard time":          "Asia/Dubai",
	"arabian standard time":       "Asia/Riyadh",
	"israel standard time":        "Asia/Jerusalem",
	"turkey time":                  "Europe/Istanbul",
	"australian eastern time":     "Australia/Sydney",
	"australian central time":     "Australia/Adelaide",
	"australian western time":     "Australia/Perth",
	"new zealand time":            "Pacific/Auckland",
	"south africa standard time":  "Africa/Johannesburg",
	"west africa time":            "Africa/Lagos",
	"east africa time":            "Africa/Nairobi",
	"coordinated universal time":  "UTC",
}
