package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newSandboxTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		DefaultFace:      fontFace,
		DefaultTextColor: color.White,
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.RGBA{40, 40, 40, 220}),
		},
		LabelTheme: &widget.LabelParams{
			Face: fontFace,
			Color: &widget.LabelColor{
				Idle:     color.White,
				Disabled: color.Gray{Y: 128},
			},
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
			TextPadding: widget.NewInsetsSimple(4),
		},
	}
}
