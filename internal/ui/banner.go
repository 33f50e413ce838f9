package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

const bannerText = `
▄▄███▄▄· █████╗ ██╗      █████╗ ██████╗ ██╗   ██╗    ██████╗  █████╗ ▄▄███▄▄·██╗  ██╗
██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝    ██╔══██╗██╔══██╗██╔════╝██║  ██║
███████╗███████║██║     ███████║██████╔╝ ╚████╔╝     ██║  ██║███████║███████╗███████║
╚════██║██╔══██║██║     ██╔══██║██╔══██╗  ╚██╔╝      ██║  ██║██╔══██║╚════██║██╔══██║
███████║██║  ██║███████╗██║  ██║██║  ██║   ██║       ██████╔╝██║  ██║███████║██║  ██║
╚═▀▀▀══╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝       ╚═════╝ ╚═╝  ╚═╝╚═▀▀▀══╝╚═╝  ╚═╝
 data jobs salary dashboard
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	strs := strings.Split(text, "")
	half := len(strs) / 2
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, s := range strs {
		b.WriteString(startColor.Fade(0, float32(len(strs)), float32(i%half), firstPoint).Sprint(s))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// ColorizeSalary formats a USD amount and colors it by salary band
func ColorizeSalary(usd float64) string {
	formatted := utils.FormatUSD(usd)

	switch {
	case usd >= 200000:
		return pterm.Green(formatted)
	case usd >= 150000:
		return pterm.LightGreen(formatted)
	case usd >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
