// Package report prints the human-readable status lines of a run.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const (
	msgSessionStarted  = "Iniciando sesión en Remarkets"
	msgAuthFailed      = "La autenticación falló. Credenciales incorrectas"
	msgSessionClosed   = "Cerrando sesión en Remarkets"
	msgCheckingSymbol  = "Consultando símbolo"
	msgSymbolValid     = "Símbolo validado"
	msgSymbolInvalid   = "Símbolo no validado"
	msgCheckingLast    = "Consultando el último precio"
	msgLastPrice       = "Último precio operado: %s"
	msgNoData          = "No hay datos disponibles"
	msgCheckingBid     = "Consultando BID"
	msgBidPrice        = "Precio de BID: %s"
	msgNoBids          = "No hay BIDs activos"
	msgSubmittingOrder = "Ingresando orden a %s"
)

// Printer writes status lines to an output stream. Colors are only used
// when the stream is a terminal.
type Printer struct {
	w io.Writer

	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
}

// NewPrinter creates a printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		info:    r.NewStyle(),
		success: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}),
		warn:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C48A00", Dark: "#F5C542"}),
		fail:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func (p *Printer) println(style lipgloss.Style, msg string) {
	fmt.Fprintln(p.w, style.Render(msg))
}

func (p *Printer) SessionStarted() { p.println(p.success, msgSessionStarted) }

func (p *Printer) AuthenticationFailed() { p.println(p.fail, msgAuthFailed) }

func (p *Printer) SessionClosed() { p.println(p.info, msgSessionClosed) }

func (p *Printer) CheckingSymbol() { p.println(p.info, msgCheckingSymbol) }

// SymbolValidated reports the outcome of the symbol check.
func (p *Printer) SymbolValidated(ok bool) {
	if ok {
		p.println(p.success, msgSymbolValid)
		return
	}
	p.println(p.warn, msgSymbolInvalid)
}

func (p *Printer) CheckingLastPrice() { p.println(p.info, msgCheckingLast) }

// LastPrice prints the last traded price or that there is none.
func (p *Printer) LastPrice(last decimal.NullDecimal) {
	if !last.Valid {
		p.println(p.warn, fmt.Sprintf(msgLastPrice, msgNoData))
		return
	}
	p.println(p.info, fmt.Sprintf(msgLastPrice, FormatPrice(last.Decimal)))
}

func (p *Printer) CheckingBid() { p.println(p.info, msgCheckingBid) }

// BidPrice prints the best bid or that there are no bids.
func (p *Printer) BidPrice(bid decimal.NullDecimal) {
	if !bid.Valid {
		p.println(p.warn, msgNoBids)
		return
	}
	p.println(p.info, fmt.Sprintf(msgBidPrice, FormatPrice(bid.Decimal)))
}

// SubmittingOrder prints the price an order is about to be sent at.
func (p *Printer) SubmittingOrder(price decimal.Decimal) {
	p.println(p.success, fmt.Sprintf(msgSubmittingOrder, FormatPrice(price)))
}
