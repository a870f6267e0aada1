package platform

// Platform identifica una plataforma de intercambio P2P soportada.
type Platform string

const (
	ApoloPay Platform = "Apolo Pay"
	Binance  Platform = "Binance"
	Bitget   Platform = "Bitget"
	Bybit    Platform = "Bybit"
	Dorado   Platform = "Dorado"
	Kucoin   Platform = "Kucoin"
	Paxful   Platform = "Paxful"
	Otro     Platform = "Otro"
)

// Info contiene los datos de referencia de una plataforma:
// la comisión por defecto (en puntos porcentuales) y el icono asociado.
type Info struct {
	DefaultFee float64 `json:"default_fee"`
	Icon       string  `json:"icon"`
}

// Tabla de plataformas con sus comisiones por defecto.
// La comisión se puede sobrescribir al crear la transacción.
var platforms = map[Platform]Info{
	ApoloPay: {DefaultFee: 0.2, Icon: "/platforms/apolo-pay.png"},
	Binance:  {DefaultFee: 0.28, Icon: "/platforms/binance.png"},
	Bitget:   {DefaultFee: 0, Icon: "/platforms/bitget.png"},
	Bybit:    {DefaultFee: 0, Icon: "/platforms/bybit.png"},
	Dorado:   {DefaultFee: 0.3, Icon: "/platforms/dorado.png"},
	Kucoin:   {DefaultFee: 0, Icon: "/platforms/kucoin.png"},
	Paxful:   {DefaultFee: 0, Icon: "/platforms/paxful.png"},
	Otro:     {DefaultFee: 0, Icon: ""},
}

// Orden fijo para listados en la UI.
var platformOrder = []Platform{ApoloPay, Binance, Bitget, Bybit, Dorado, Kucoin, Paxful, Otro}

// IsValid verifica que la etiqueta corresponda a una plataforma conocida.
// Las etiquetas desconocidas se rechazan en la validación de entrada en lugar
// de aplicar silenciosamente una comisión de cero.
func IsValid(label string) bool {
	_, ok := platforms[Platform(label)]
	return ok
}

// DefaultFee devuelve la comisión por defecto de la plataforma.
func DefaultFee(p Platform) float64 {
	return platforms[p].DefaultFee
}

// Icon devuelve la ruta del icono de la plataforma.
func Icon(p Platform) string {
	return platforms[p].Icon
}

// All devuelve las plataformas en orden de listado.
func All() []Platform {
	out := make([]Platform, len(platformOrder))
	copy(out, platformOrder)
	return out
}
