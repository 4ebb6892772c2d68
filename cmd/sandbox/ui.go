package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// panelUI is the tuning panel in the top right corner.
type panelUI struct {
	ui     *ebitenui.UI
	game   *Game
	face   *text.Face
	config *widget.Label

	debugBtn  *widget.Button
	oneWayBtn *widget.Button
}

func newPanelUI(g *Game) *panelUI {
	p := &panelUI{game: g}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal(err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	p.face = &fontFace
	theme := newSandboxTheme(p.face)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)

	p.config = widget.NewLabel(widget.LabelOpts.Text("", p.face, theme.LabelTheme.Color))
	panel.AddChild(p.config)

	p.debugBtn = p.button(theme, debugLabel(g.opts.Debug), func() {
		g.toggleDebug()
	})
	p.oneWayBtn = p.button(theme, oneWayLabel(g.ignoreDrop), func() {
		g.toggleOneWay()
	})
	panel.AddChild(p.debugBtn)
	panel.AddChild(p.oneWayBtn)

	rays := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		widget.RowLayoutOpts.Spacing(6),
	)))
	rays.AddChild(p.button(theme, "Rays -", func() { g.adjustRays(-1) }))
	rays.AddChild(p.button(theme, "Rays +", func() { g.adjustRays(1) }))
	panel.AddChild(rays)

	panel.AddChild(p.button(theme, "Next level (L)", g.nextLevel))
	panel.AddChild(p.button(theme, "Respawn (R)", g.respawn))
	panel.AddChild(p.button(theme, "Copy config (C)", g.copySnapshot))

	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
	)))
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root, PrimaryTheme: theme}
	p.refresh()
	return p
}

func (p *panelUI) button(theme *widget.Theme, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, p.face, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.TextPadding(theme.ButtonTheme.TextPadding),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (p *panelUI) refresh() {
	cfg := p.game.ctrl.Config()
	p.config.Label = fmt.Sprintf("rays h=%d v=%d\nskin %.3f\nslope %.0f / down %.0f",
		cfg.HorizontalRays, cfg.VerticalRays, cfg.SkinWidth, cfg.MaxSlope, cfg.MaxDownwardSlope)
	p.debugBtn.SetText(debugLabel(p.game.opts.Debug))
	p.oneWayBtn.SetText(oneWayLabel(p.game.ignoreDrop))
}

func (p *panelUI) Update() {
	p.refresh()
	p.ui.Update()
}

func (p *panelUI) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

func debugLabel(on bool) string {
	if on {
		return "Debug rays: on (F1)"
	}
	return "Debug rays: off (F1)"
}

func oneWayLabel(ignore bool) string {
	if ignore {
		return "One-way: ignored (O)"
	}
	return "One-way: solid (O)"
}
