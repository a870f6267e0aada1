package platform

// Métodos de pago soportados con sus iconos.
var paymentMethods = map[string]string{
	"Banesco":    "/payment-methods/banesco.png",
	"BOA":        "/payment-methods/boa.png",
	"Chase":      "/payment-methods/chase.png",
	"Facebank":   "/payment-methods/facebank.png",
	"Mercantil":  "/payment-methods/mercantil.png",
	"Mony":       "/payment-methods/mony.png",
	"Paypal":     "/payment-methods/paypal.png",
	"Zelle":      "/payment-methods/zelle.png",
	"Zinli":      "/payment-methods/zinli.png",
	"Wally Tech": "/payment-methods/wally-tech.png",
	"Otro":       "/payment-methods/otro.png",
}

var paymentMethodOrder = []string{
	"Banesco", "BOA", "Chase", "Facebank", "Mercantil",
	"Mony", "Paypal", "Zelle", "Zinli", "Wally Tech", "Otro",
}

// IsValidPaymentMethod verifica que el método de pago sea conocido.
func IsValidPaymentMethod(label string) bool {
	_, ok := paymentMethods[label]
	return ok
}

// PaymentMethodIcon devuelve la ruta del icono del método de pago.
func PaymentMethodIcon(label string) string {
	return paymentMethods[label]
}

// PaymentMethods devuelve los métodos de pago en orden de listado.
func PaymentMethods() []string {
	out := make([]string, len(paymentMethodOrder))
	copy(out, paymentMethodOrder)
	return out
}
