package lead

// Country is a dial-code choice offered by the form.
type Country struct {
	Code string
	Name string
	Flag string
}

// DefaultCountryCode is preselected on a new form.
const DefaultCountryCode = "+20"

// Countries lists the selectable dial codes, default first.
var Countries = []Country{
	{Code: "+20", Name: "Egypt", Flag: "🇪🇬"},
	{Code: "+966", Name: "Saudi Arabia", Flag: "🇸🇦"},
	{Code: "+971", Name: "United Arab Emirates", Flag: "🇦🇪"},
	{Code: "+965", Name: "Kuwait", Flag: "🇰🇼"},
	{Code: "+974", Name: "Qatar", Flag: "🇶🇦"},
	{Code: "+973", Name: "Bahrain", Flag: "🇧🇭"},
	{Code: "+968", Name: "Oman", Flag: "🇴🇲"},
	{Code: "+962", Name: "Jordan", Flag: "🇯🇴"},
	{Code: "+964", Name: "Iraq", Flag: "🇮🇶"},
	{Code: "+961", Name: "Lebanon", Flag: "🇱🇧"},
	{Code: "+212", Name: "Morocco", Flag: "🇲🇦"},
	{Code: "+213", Name: "Algeria", Flag: "🇩🇿"},
	{Code: "+216", Name: "Tunisia", Flag: "🇹🇳"},
	{Code: "+249", Name: "Sudan", Flag: "🇸🇩"},
	{Code: "+218", Name: "Libya", Flag: "🇱🇾"},
	{Code: "+967", Name: "Yemen", Flag: "🇾🇪"},
	{Code: "+970", Name: "Palestine", Flag: "🇵🇸"},
	{Code: "+963", Name: "Syria", Flag: "🇸🇾"},
}

// CountryIndex returns the position of code in Countries, or 0 when absent.
func CountryIndex(code string) int {
	for i, c := range Countries {
		if c.Code == code {
			return i
		}
	}
	return 0
}

// NextCountry returns the dial code after code, wrapping around. A negative
// step moves backwards.
func NextCountry(code string, step int) string {
	n := len(Countries)
	i := ((CountryIndex(code)+step)%n + n) % n
	return Countries[i].Code
}
