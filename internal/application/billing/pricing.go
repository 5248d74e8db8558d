package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
)

// PricedLine es una línea ya valorizada: precio unitario tomado del track al
// momento de la invocación (snapshot) y subtotal exacto en decimal.
type PricedLine struct {
	Track     *entity.Track
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// PriceLine valoriza una línea. El precio unitario SIEMPRE sale del precio
// persistido del track, nunca del request: eso impide manipular precios desde
// el payload. La aritmética es decimal de punto fijo, sin float binario.
func PriceLine(track *entity.Track, quantity int) (PricedLine, error) {
	if quantity < 1 {
		return PricedLine{}, fmt.Errorf("cantidad %d: %w", quantity, domain.ErrInvalidQuantity)
	}
	unitPrice := track.UnitPrice
	return PricedLine{
		Track:     track,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// PriceOrder suma los subtotales de todas las líneas. La suma decimal es
// asociativa: el orden de las líneas no altera el total.
func PriceOrder(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal)
	}
	return total
}
