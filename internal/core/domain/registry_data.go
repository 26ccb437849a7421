package domain

type registryEntry struct {
	code       string
	name       string
	symbol     string
	decimals   int
	countries  []string
	locale     string
	perUSD     float64 // approximate units of this currency per US dollar
	volatility RiskLevel
}

// registryData is the supported currency set. Rates here are rough long-run
// approximations used only for synthetic fallback rates.
var registryData = []registryEntry{
	{"USD", "US Dollar", "$", 2, []string{"US", "EC", "SV", "PR", "GU", "TL"}, "en-US", 1, RiskLow},
	{"EUR", "Euro", "€", 2, []string{"DE", "FR", "IT", "ES", "NL", "BE", "AT", "PT", "IE", "FI", "GR", "LU", "SK", "SI", "EE", "LV", "LT", "CY", "MT", "HR", "MC", "SM", "VA", "AD", "ME", "XK"}, "de-DE", 0.92, RiskLow},
	{"GBP", "Pound Sterling", "£", 2, []string{"GB", "IM", "JE", "GG"}, "en-GB", 0.79, RiskLow},
	{"JPY", "Japanese Yen", "¥", 0, []string{"JP"}, "ja-JP", 150, RiskLow},
	{"CHF", "Swiss Franc", "CHF", 2, []string{"CH", "LI"}, "de-CH", 0.88, RiskLow},
	{"CAD", "Canadian Dollar", "$", 2, []string{"CA"}, "en-CA", 1.36, RiskLow},
	{"AUD", "Australian Dollar", "$", 2, []string{"AU", "KI", "NR", "TV"}, "en-AU", 1.52, RiskMedium},
	{"NZD", "New Zealand Dollar", "$", 2, []string{"NZ", "CK", "NU"}, "en-NZ", 1.65, RiskMedium},
	{"CNY", "Chinese Yuan", "¥", 2, []string{"CN"}, "zh-CN", 7.2, RiskLow},
	{"HKD", "Hong Kong Dollar", "$", 2, []string{"HK"}, "zh-HK", 7.8, RiskLow},
	{"SGD", "Singapore Dollar", "$", 2, []string{"SG"}, "en-SG", 1.34, RiskLow},
	{"TWD", "New Taiwan Dollar", "NT$", 2, []string{"TW"}, "zh-TW", 32, RiskLow},
	{"INR", "Indian Rupee", "₹", 2, []string{"IN", "BT"}, "hi-IN", 83, RiskMedium},
	{"KRW", "South Korean Won", "₩", 0, []string{"KR"}, "ko-KR", 1350, RiskMedium},
	{"SEK", "Swedish Krona", "kr", 2, []string{"SE"}, "sv-SE", 10.5, RiskMedium},
	{"NOK", "Norwegian Krone", "kr", 2, []string{"NO", "SJ"}, "nb-NO", 10.6, RiskMedium},
	{"DKK", "Danish Krone", "kr", 2, []string{"DK", "GL", "FO"}, "da-DK", 6.9, RiskLow},
	{"ISK", "Icelandic Krona", "kr", 0, []string{"IS"}, "is-IS", 138, RiskMedium},
	{"PLN", "Polish Zloty", "zł", 2, []string{"PL"}, "pl-PL", 4.0, RiskMedium},
	{"CZK", "Czech Koruna", "Kč", 2, []string{"CZ"}, "cs-CZ", 23, RiskMedium},
	{"HUF", "Hungarian Forint", "Ft", 2, []string{"HU"}, "hu-HU", 360, RiskMedium},
	{"RON", "Romanian Leu", "lei", 2, []string{"RO"}, "ro-RO", 4.6, RiskMedium},
	{"BGN", "Bulgarian Lev", "лв", 2, []string{"BG"}, "bg-BG", 1.8, RiskLow},
	{"RSD", "Serbian Dinar", "дин.", 2, []string{"RS"}, "sr-RS", 108, RiskMedium},
	{"MKD", "Macedonian Denar", "ден", 2, []string{"MK"}, "mk-MK", 57, RiskMedium},
	{"ALL", "Albanian Lek", "L", 2, []string{"AL"}, "sq-AL", 93, RiskMedium},
	{"BAM", "Convertible Mark", "KM", 2, []string{"BA"}, "bs-BA", 1.8, RiskLow},
	{"MDL", "Moldovan Leu", "L", 2, []string{"MD"}, "ro-MD", 17.7, RiskMedium},
	{"UAH", "Ukrainian Hryvnia", "₴", 2, []string{"UA"}, "uk-UA", 39, RiskHigh},
	{"BYN", "Belarusian Ruble", "Br", 2, []string{"BY"}, "be-BY", 3.3, RiskHigh},
	{"RUB", "Russian Ruble", "₽", 2, []string{"RU"}, "ru-RU", 92, RiskHigh},
	{"TRY", "Turkish Lira", "₺", 2, []string{"TR"}, "tr-TR", 32, RiskHigh},
	{"GEL", "Georgian Lari", "₾", 2, []string{"GE"}, "ka-GE", 2.7, RiskMedium},
	{"AMD", "Armenian Dram", "֏", 2, []string{"AM"}, "hy-AM", 390, RiskMedium},
	{"AZN", "Azerbaijani Manat", "₼", 2, []string{"AZ"}, "az-AZ", 1.7, RiskMedium},
	{"KZT", "Kazakhstani Tenge", "₸", 2, []string{"KZ"}, "kk-KZ", 450, RiskHigh},
	{"UZS", "Uzbekistani Som", "so'm", 2, []string{"UZ"}, "uz-UZ", 12600, RiskHigh},
	{"MNT", "Mongolian Tugrik", "₮", 2, []string{"MN"}, "mn-MN", 3400, RiskMedium},
	{"ILS", "Israeli New Shekel", "₪", 2, []string{"IL", "PS"}, "he-IL", 3.7, RiskMedium},
	{"AED", "UAE Dirham", "د.إ", 2, []string{"AE"}, "ar-AE", 3.67, RiskLow},
	{"SAR", "Saudi Riyal", "﷼", 2, []string{"SA"}, "ar-SA", 3.75, RiskLow},
	{"QAR", "Qatari Riyal", "﷼", 2, []string{"QA"}, "ar-QA", 3.64, RiskLow},
	{"KWD", "Kuwaiti Dinar", "د.ك", 3, []string{"KW"}, "ar-KW", 0.31, RiskLow},
	{"BHD", "Bahraini Dinar", "BD", 3, []string{"BH"}, "ar-BH", 0.376, RiskLow},
	{"OMR", "Omani Rial", "﷼", 3, []string{"OM"}, "ar-OM", 0.385, RiskLow},
	{"JOD", "Jordanian Dinar", "JD", 3, []string{"JO"}, "ar-JO", 0.709, RiskLow},
	{"IQD", "Iraqi Dinar", "ع.د", 3, []string{"IQ"}, "ar-IQ", 1310, RiskHigh},
	{"IRR", "Iranian Rial", "﷼", 2, []string{"IR"}, "fa-IR", 42000, RiskHigh},
	{"LBP", "Lebanese Pound", "ل.ل", 2, []string{"LB"}, "ar-LB", 89500, RiskHigh},
	{"EGP", "Egyptian Pound", "E£", 2, []string{"EG"}, "ar-EG", 48, RiskHigh},
	{"MAD", "Moroccan Dirham", "MAD", 2, []string{"MA", "EH"}, "ar-MA", 10, RiskMedium},
	{"DZD", "Algerian Dinar", "دج", 2, []string{"DZ"}, "ar-DZ", 134, RiskMedium},
	{"TND", "Tunisian Dinar", "DT", 3, []string{"TN"}, "ar-TN", 3.1, RiskMedium},
	{"NGN", "Nigerian Naira", "₦", 2, []string{"NG"}, "en-NG", 1500, RiskHigh},
	{"GHS", "Ghanaian Cedi", "₵", 2, []string{"GH"}, "en-GH", 14, RiskHigh},
	{"KES", "Kenyan Shilling", "KSh", 2, []string{"KE"}, "sw-KE", 130, RiskMedium},
	{"TZS", "Tanzanian Shilling", "TSh", 2, []string{"TZ"}, "sw-TZ", 2600, RiskMedium},
	{"UGX", "Ugandan Shilling", "USh", 0, []string{"UG"}, "en-UG", 3800, RiskMedium},
	{"RWF", "Rwandan Franc", "FRw", 0, []string{"RW"}, "rw-RW", 1300, RiskMedium},
	{"ETB", "Ethiopian Birr", "Br", 2, []string{"ET"}, "am-ET", 57, RiskHigh},
	{"ZAR", "South African Rand", "R", 2, []string{"ZA", "LS", "NA"}, "en-ZA", 18.5, RiskHigh},
	{"BWP", "Botswana Pula", "P", 2, []string{"BW"}, "en-BW", 13.6, RiskMedium},
	{"ZMW", "Zambian Kwacha", "ZK", 2, []string{"ZM"}, "en-ZM", 26, RiskHigh},
	{"MUR", "Mauritian Rupee", "₨", 2, []string{"MU"}, "en-MU", 46, RiskMedium},
	{"XOF", "West African CFA Franc", "CFA", 0, []string{"SN", "CI", "ML", "BF", "NE", "TG", "BJ", "GW"}, "fr-SN", 605, RiskLow},
	{"XAF", "Central African CFA Franc", "FCFA", 0, []string{"CM", "GA", "CG", "TD", "CF", "GQ"}, "fr-CM", 605, RiskLow},
	{"PKR", "Pakistani Rupee", "₨", 2, []string{"PK"}, "ur-PK", 278, RiskHigh},
	{"BDT", "Bangladeshi Taka", "৳", 2, []string{"BD"}, "bn-BD", 110, RiskMedium},
	{"LKR", "Sri Lankan Rupee", "Rs", 2, []string{"LK"}, "si-LK", 300, RiskHigh},
	{"NPR", "Nepalese Rupee", "₨", 2, []string{"NP"}, "ne-NP", 133, RiskMedium},
	{"THB", "Thai Baht", "฿", 2, []string{"TH"}, "th-TH", 36, RiskMedium},
	{"MYR", "Malaysian Ringgit", "RM", 2, []string{"MY"}, "ms-MY", 4.7, RiskMedium},
	{"IDR", "Indonesian Rupiah", "Rp", 2, []string{"ID"}, "id-ID", 15800, RiskMedium},
	{"PHP", "Philippine Peso", "₱", 2, []string{"PH"}, "fil-PH", 56, RiskMedium},
	{"VND", "Vietnamese Dong", "₫", 0, []string{"VN"}, "vi-VN", 25000, RiskMedium},
	{"KHR", "Cambodian Riel", "៛", 2, []string{"KH"}, "km-KH", 4100, RiskMedium},
	{"LAK", "Lao Kip", "₭", 2, []string{"LA"}, "lo-LA", 21000, RiskHigh},
	{"MMK", "Myanmar Kyat", "K", 2, []string{"MM"}, "my-MM", 2100, RiskHigh},
	{"MXN", "Mexican Peso", "$", 2, []string{"MX"}, "es-MX", 17, RiskMedium},
	{"BRL", "Brazilian Real", "R$", 2, []string{"BR"}, "pt-BR", 5.0, RiskHigh},
	{"ARS", "Argentine Peso", "$", 2, []string{"AR"}, "es-AR", 870, RiskHigh},
	{"CLP", "Chilean Peso", "$", 0, []string{"CL"}, "es-CL", 930, RiskMedium},
	{"COP", "Colombian Peso", "$", 2, []string{"CO"}, "es-CO", 3900, RiskMedium},
	{"PEN", "Peruvian Sol", "S/", 2, []string{"PE"}, "es-PE", 3.7, RiskMedium},
	{"UYU", "Uruguayan Peso", "$U", 2, []string{"UY"}, "es-UY", 39, RiskMedium},
	{"PYG", "Paraguayan Guarani", "₲", 0, []string{"PY"}, "es-PY", 7400, RiskMedium},
	{"BOB", "Bolivian Boliviano", "Bs", 2, []string{"BO"}, "es-BO", 6.9, RiskMedium},
	{"VES", "Venezuelan Bolivar", "Bs.S", 2, []string{"VE"}, "es-VE", 36, RiskHigh},
	{"CRC", "Costa Rican Colon", "₡", 2, []string{"CR"}, "es-CR", 510, RiskMedium},
	{"GTQ", "Guatemalan Quetzal", "Q", 2, []string{"GT"}, "es-GT", 7.8, RiskLow},
	{"DOP", "Dominican Peso", "RD$", 2, []string{"DO"}, "es-DO", 59, RiskMedium},
	{"JMD", "Jamaican Dollar", "J$", 2, []string{"JM"}, "en-JM", 156, RiskMedium},
	{"TTD", "Trinidad and Tobago Dollar", "TT$", 2, []string{"TT"}, "en-TT", 6.8, RiskLow},
	{"FJD", "Fijian Dollar", "$", 2, []string{"FJ"}, "en-FJ", 2.25, RiskMedium},
	{"XPF", "CFP Franc", "₣", 0, []string{"PF", "NC", "WF"}, "fr-PF", 110, RiskLow},
}
