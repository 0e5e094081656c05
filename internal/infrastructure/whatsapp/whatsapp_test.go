package whatsapp

import (
	"net/url"
	"testing"

	"github.com/DRSN-tech/botstore-backend/internal/cfg"
	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() *Gateway {
	return NewGateway(&cfg.CheckoutCfg{
		PhoneNumber: "+51985116690",
		BaseURL:     "https://wa.me",
	})
}

func TestOrderLink(t *testing.T) {
	items := []domain.CartItem{
		*domain.NewCartItem(domain.Product{ID: "1", Name: "Kit de Robot Avanzado", Price: 75000}, 2),
		*domain.NewCartItem(domain.Product{ID: "3", Name: "Sensor Ultrasónico de Distancia", Price: 4000}, 1),
	}

	link, err := newTestGateway().OrderLink(items, 154000)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/51985116690", u.Path) // номер без "+"

	want := "Hola BotStore, estoy interesado en los siguientes productos:\n" +
		"- Kit de Robot Avanzado (Cantidad: 2) - S/. 1500.00\n" +
		"- Sensor Ultrasónico de Distancia (Cantidad: 1) - S/. 40.00\n" +
		"\nTotal del pedido: S/. 1540.00"
	assert.Equal(t, want, u.Query().Get("text"))
}

func TestOrderLinkEmptyItems(t *testing.T) {
	link, err := newTestGateway().OrderLink(nil, 0)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Total del pedido: S/. 0.00")
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "750.00", FormatCents(75000))
	assert.Equal(t, "0.01", FormatCents(1))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "120.50", FormatCents(12050))
}
