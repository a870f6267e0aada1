package platform

import "testing"

func TestDefaultFee(t *testing.T) {
	cases := []struct {
		platform Platform
		want     float64
	}{
		{Dorado, 0.3},
		{ApoloPay, 0.2},
		{Binance, 0.28},
		{Bitget, 0},
		{Bybit, 0},
		{Kucoin, 0},
		{Paxful, 0},
		{Otro, 0},
	}

	for _, tc := range cases {
		if got := DefaultFee(tc.platform); got != tc.want {
			t.Errorf("DefaultFee(%s) = %v, esperado %v", tc.platform, got, tc.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, p := range All() {
		if !IsValid(string(p)) {
			t.Errorf("IsValid(%s) = false, es una plataforma conocida", p)
		}
	}

	unknown := []string{"", "binance", "LocalBitcoins", "Apolo"}
	for _, label := range unknown {
		if IsValid(label) {
			t.Errorf("IsValid(%q) = true, esperado rechazo", label)
		}
	}
}

func TestAllOrden(t *testing.T) {
	all := All()
	if len(all) != 8 {
		t.Fatalf("len(All()) = %d, esperado 8", len(all))
	}
	if all[0] != ApoloPay || all[len(all)-1] != Otro {
		t.Errorf("orden de listado inesperado: %v", all)
	}

	// La copia devuelta no comparte memoria con el orden interno
	all[0] = "Modificada"
	if All()[0] != ApoloPay {
		t.Error("All() devolvió un slice compartido")
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods() {
		if !IsValidPaymentMethod(m) {
			t.Errorf("IsValidPaymentMethod(%s) = false, es un método conocido", m)
		}
	}

	unknown := []string{"", "zelle", "Efectivo"}
	for _, label := range unknown {
		if IsValidPaymentMethod(label) {
			t.Errorf("IsValidPaymentMethod(%q) = true, esperado rechazo", label)
		}
	}
}

func TestPaymentMethodIcon(t *testing.T) {
	if got := PaymentMethodIcon("Zelle"); got != "/payment-methods/zelle.png" {
		t.Errorf("icono de Zelle = %q", got)
	}
	if got := PaymentMethodIcon("desconocido"); got != "" {
		t.Errorf("icono de método desconocido = %q, esperado vacío", got)
	}
}

func TestFlagEmoji(t *testing.T) {
	cases := []struct {
		country string
		want    string
	}{
		{"Venezuela", "🇻🇪"},
		{"venezuela", "🇻🇪"},
		{"Argentina", "🇦🇷"},
		{"Atlántida", "🏳️"},
		{"", "🏳️"},
	}

	for _, tc := range cases {
		if got := FlagEmoji(tc.country); got != tc.want {
			t.Errorf("FlagEmoji(%q) = %q, esperado %q", tc.country, got, tc.want)
		}
	}
}
