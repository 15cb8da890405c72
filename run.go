package dial

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ClearColor    Color
	// ShowValue prints the current value and pressed state in the corner.
	ShowValue bool
	// ShowFPS appends the current FPS and TPS to the corner overlay.
	ShowFPS bool
}

type game struct {
	widget *Widget
	cfg    RunConfig
}

func (g *game) Update() error {
	g.widget.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.widget.Draw(screen)
	if text := overlayText(g.widget.Engine(), g.cfg); text != "" {
		ebitenutil.DebugPrint(screen, text)
	}
}

// overlayText builds the corner overlay for the enabled RunConfig options.
func overlayText(e *Engine, cfg RunConfig) string {
	var lines []string
	if cfg.ShowValue {
		lines = append(lines, fmt.Sprintf("value: %.2f", e.Value()), fmt.Sprintf("pressed: %v", e.Pressed()))
	}
	if cfg.ShowFPS {
		lines = append(lines, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()))
	}
	return strings.Join(lines, "\n")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the widget until the window is closed.
// The widget is mounted first if it is not already.
func Run(w *Widget, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("dial: run: window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if !w.Mounted() {
		w.Mount()
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{widget: w, cfg: cfg})
}
