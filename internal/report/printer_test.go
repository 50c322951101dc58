package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestPrinter_PlainOutputWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.SessionStarted()
	p.CheckingSymbol()
	p.SymbolValidated(true)
	p.CheckingLastPrice()
	p.LastPrice(decimal.NewNullDecimal(decimal.RequireFromString("1234.5")))
	p.CheckingBid()
	p.BidPrice(decimal.NewNullDecimal(decimal.RequireFromString("180.25")))
	p.SubmittingOrder(decimal.RequireFromString("180.24"))
	p.SessionClosed()

	assert.Equal(t, []string{
		"Iniciando sesión en Remarkets",
		"Consultando símbolo",
		"Símbolo validado",
		"Consultando el último precio",
		"Último precio operado: $1,234,50",
		"Consultando BID",
		"Precio de BID: $180,25",
		"Ingresando orden a $180,24",
		"Cerrando sesión en Remarkets",
	}, lines(&buf))
}

func TestPrinter_AbsentValues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.SymbolValidated(false)
	p.LastPrice(decimal.NullDecimal{})
	p.BidPrice(decimal.NullDecimal{})
	p.AuthenticationFailed()

	assert.Equal(t, []string{
		"Símbolo no validado",
		"Último precio operado: No hay datos disponibles",
		"No hay BIDs activos",
		"La autenticación falló. Credenciales incorrectas",
	}, lines(&buf))
}
