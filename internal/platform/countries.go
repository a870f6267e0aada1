package platform

import "strings"

// Banderas por país para la vista de clientes. La comparación es
// insensible a mayúsculas, igual que el selector del frontend.
var countryFlags = map[string]string{
	"argentina":            "🇦🇷",
	"bolivia":              "🇧🇴",
	"brazil":               "🇧🇷",
	"canada":               "🇨🇦",
	"chile":                "🇨🇱",
	"colombia":             "🇨🇴",
	"costa rica":           "🇨🇷",
	"cuba":                 "🇨🇺",
	"dominican republic":   "🇩🇴",
	"ecuador":              "🇪🇨",
	"el salvador":          "🇸🇻",
	"guatemala":            "🇬🇹",
	"honduras":             "🇭🇳",
	"italy":                "🇮🇹",
	"mexico":               "🇲🇽",
	"nicaragua":            "🇳🇮",
	"panama":               "🇵🇦",
	"paraguay":             "🇵🇾",
	"peru":                 "🇵🇪",
	"portugal":             "🇵🇹",
	"spain":                "🇪🇸",
	"united states":        "🇺🇸",
	"uruguay":              "🇺🇾",
	"venezuela":            "🇻🇪",
}

// FlagEmoji devuelve la bandera del país o una bandera blanca si no se conoce.
func FlagEmoji(country string) string {
	if country == "" {
		return "🏳️"
	}
	if flag, ok := countryFlags[strings.ToLower(country)]; ok {
		return flag
	}
	return "🏳️"
}
