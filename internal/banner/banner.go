package banner

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

func PrintBanner() {
	myFigure := figure.NewColorFigure("NETEXPO", "doom", "cyan", true)
	myFigure.Print()

	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	_, _ = cyan.Println("════════════════════════════════════════════════")
	_, _ = yellow.Println("    Network exposure scanner | scan only networks you are authorized to test")
	_, _ = cyan.Println("════════════════════════════════════════════════")
}
