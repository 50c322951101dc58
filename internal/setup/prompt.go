package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// matba rofex blue on white
var (
	muted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	brand = lipgloss.AdaptiveColor{Light: "#0B3D91", Dark: "#1E5BB8"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(brand).
			Padding(0, 3).
			Bold(true).
			MarginBottom(1)
)

// Interactive reports whether stdin is a terminal.
func Interactive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// PromptArgs asks for the four positional arguments and returns them in
// command line order: symbol, user, password, account.
func PromptArgs() ([]string, error) {
	var symbol, user, password, account string

	fmt.Println(headerStyle.Render("REMARKETS"))
	fmt.Println(lipgloss.NewStyle().Foreground(muted).Render("Orden de compra a un centavo del BID\n"))

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Símbolo").
				Description("Ticker del instrumento, ej. DOEne21").
				Value(&symbol).
				Validate(notEmpty("el símbolo")),
			huh.NewInput().
				Title("Usuario").
				Value(&user).
				Validate(notEmpty("el usuario")),
			huh.NewInput().
				Title("Contraseña").
				Value(&password).
				EchoMode(huh.EchoModePassword),
			huh.NewInput().
				Title("Cuenta").
				Value(&account).
				Validate(notEmpty("la cuenta")),
		),
	).Run()
	if err != nil {
		return nil, err
	}

	return []string{strings.TrimSpace(symbol), strings.TrimSpace(user), password, strings.TrimSpace(account)}, nil
}

func notEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s no puede estar vacío", what)
		}
		return nil
	}
}
