package systems

import (
	"image/color"
	"math"

	"github.com/automoto/foldmenu/components"
	cfg "github.com/automoto/foldmenu/config"
	"github.com/automoto/foldmenu/fonts"
	"github.com/automoto/foldmenu/shared/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2 for RTL shaping
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Rects thinner than this are skipped; a fully folded icon has no area.
const minVisible = 0.5

// DrawMenu renders the icon column, the labels and the status line.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	entry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(entry)
	col := menu.Layout

	components.Item.Each(e.World, func(ie *donburi.Entry) {
		item := components.Item.Get(ie)
		drawIcon(screen, col, item)
		drawLabel(screen, col, item)
	})

	drawStatus(screen, menu)
}

func drawIcon(screen *ebiten.Image, col layout.Column, item *components.ItemData) {
	r := layout.Project(col.Icon(item.Index), item.Icon)
	if r.W < minVisible || r.H < minVisible {
		return
	}

	base := cfg.Menu.IconColor
	if item.Index == 0 {
		base = cfg.Menu.AnchorColor
	}
	// Darken as the face turns away.
	sx, sy := item.Icon.Scale()
	shade := 0.4 + 0.6*math.Min(sx, sy)
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), scale(base, shade), false)

	// Inner badge keeps the fold readable on flat colors.
	inset := 0.3
	vector.FillRect(screen,
		float32(r.X+r.W*inset), float32(r.Y+r.H*inset),
		float32(r.W*(1-2*inset)), float32(r.H*(1-2*inset)),
		scale(cfg.Menu.LabelColor, 0.25*shade), false)

	if item.Divider {
		vector.FillRect(screen, float32(r.X), float32(r.Y+r.H-1), float32(r.W), 1, cfg.Menu.DividerColor, false)
	}
}

func drawLabel(screen *ebiten.Image, col layout.Column, item *components.ItemData) {
	alpha := item.Label.Alpha
	if alpha <= 0 {
		return
	}
	face := fonts.Label.Get()
	bounds := text.BoundString(face, item.Text)
	x := col.TextX(item.Index, float64(bounds.Dx()), item.Label)

	row := col.Label(item.Index)
	baseline := row.Y + (row.H+float64(bounds.Dy()))/2
	text.Draw(screen, item.Text, face, int(x), int(baseline), scale(cfg.Menu.LabelColor, alpha))
}

func drawStatus(screen *ebiten.Image, menu *components.MenuData) {
	face := fonts.Status.Get()
	height := screen.Bounds().Dy()

	status := menu.Catalog.GetWithData(menu.Status, menu.StatusData)
	text.Draw(screen, status, face, int(cfg.Menu.MarginX), height-28, cfg.Menu.StatusColor)
	text.Draw(screen, menu.Catalog.Get("hint"), face, int(cfg.Menu.MarginX), height-10, scale(cfg.Menu.StatusColor, 0.6))
}

// scale multiplies a premultiplied color, fading it toward transparent.
func scale(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
