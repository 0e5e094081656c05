package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/DRSN-tech/botstore-backend/internal/cfg"
	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// Gateway строит deep link в WhatsApp с предзаполненным текстом заказа.
// Ссылку открывает потребитель; ни подтверждения, ни записи заказа нет.
type Gateway struct {
	cfg *cfg.CheckoutCfg
}

func NewGateway(cfg *cfg.CheckoutCfg) *Gateway {
	return &Gateway{cfg: cfg}
}

// OrderLink формирует ссылку вида https://wa.me/<телефон>?text=<сводка заказа>.
// Сводка: строка на позицию `- {имя} (Cantidad: {кол-во}) - S/. {сумма}`
// и итоговая строка заказа.
func (g *Gateway) OrderLink(items []domain.CartItem, total int64) (string, error) {
	var b strings.Builder
	b.WriteString("Hola BotStore, estoy interesado en los siguientes productos:\n")
	for i := range items {
		b.WriteString(fmt.Sprintf("- %s (Cantidad: %d) - S/. %s\n",
			items[i].Name, items[i].Quantity, FormatCents(items[i].LineTotal())))
	}
	b.WriteString(fmt.Sprintf("\nTotal del pedido: S/. %s", FormatCents(total)))

	u, err := url.Parse(g.cfg.BaseURL)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	u.Path = "/" + strings.TrimPrefix(g.cfg.PhoneNumber, "+")

	query := url.Values{}
	query.Set("text", b.String())
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// FormatCents выводит сумму в сентимо как строку с двумя знаками ("750.00").
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
