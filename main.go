package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/liquid-button/internal/blob"
	"github.com/iburimskiy/liquid-button/internal/config"
	"github.com/iburimskiy/liquid-button/internal/game"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("liquid: ")

	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Print(err)
	}

	switch {
	case cfg.ListSchemes:
		listSchemes(os.Stdout)
	case cfg.ExportDir != "":
		n, err := export(cfg)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d frames to %s", n, cfg.ExportDir)
	default:
		if err := run(cfg); err != nil {
			log.Print(err)
			_ = zenity.Error(err.Error(), zenity.Title("Liquid Buttons"))
			os.Exit(1)
		}
	}
}

func run(cfg *config.Config) error {
	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(g.Size())
	ebiten.SetWindowTitle("Liquid Buttons - M: mute, O: open sound, Esc/Q: quit")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Width(10)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
)

func listSchemes(w io.Writer) {
	for _, name := range blob.SchemeNames() {
		sc, _ := blob.LookupScheme(name)
		line := nameStyle.Render(sc.Name)
		for _, c := range []struct {
			label string
			rgb   blob.RGB
		}{
			{"main", sc.Main},
			{"light", sc.Light},
			{"dark", sc.Dark},
			{"glow", sc.Glow},
		} {
			hex := hexOf(c.rgb)
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
			line += " " + swatch + " " + labelStyle.Render(c.label+" "+hex)
		}
		fmt.Fprintln(w, line)
	}
}

func hexOf(c blob.RGB) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
