package ui

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// BarHeight is the height of the controls bar under the court
const BarHeight = 60

// Controls is the bar with the start and reset buttons and both scores.
type Controls struct {
	ui            *ebitenui.UI
	playerScore   *widget.Text
	opponentScore *widget.Text
}

type NewControlsOptions struct {
	// Top is the y coordinate where the bar starts.
	Top int
	// OnStart is called when the start button is clicked.
	OnStart func()
	// OnReset is called when the reset button is clicked.
	OnReset func()
}

var _ game.ScoreSink = &Controls{}

func NewControls(opts NewControlsOptions) *Controls {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 0x29, G: 0x80, B: 0xb9, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 0x1f, G: 0x61, B: 0x8d, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
	fontFace := fonts.MPlusNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:  opts.Top + 12,
				Left: 20,
			}),
		)),
	)

	newButton := func(label string, onClick func()) *widget.Button {
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   30,
				Right:  30,
				Top:    5,
				Bottom: 5,
			}),
		)
		button.ClickedEvent.AddHandler(func(args interface{}) {
			if onClick != nil {
				onClick()
			}
		})
		return button
	}
	rootContainer.AddChild(newButton("Start", opts.OnStart))
	rootContainer.AddChild(newButton("Reset", opts.OnReset))

	newScore := func(clr color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", fontFace, clr),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		)
	}
	c := &Controls{
		playerScore:   newScore(constants.PlayerColor),
		opponentScore: newScore(constants.OpponentColor),
	}
	rootContainer.AddChild(c.playerScore)
	rootContainer.AddChild(c.opponentScore)
	c.SetScores(0, 0)

	c.ui = &ebitenui.UI{
		Container: rootContainer,
	}

	return c
}

func (c *Controls) SetScores(player, opponent int) {
	c.playerScore.Label = fmt.Sprintf("Player: %d", player)
	c.opponentScore.Label = fmt.Sprintf("Computer: %d", opponent)
}

func (c *Controls) Update() {
	c.ui.Update()
}

func (c *Controls) Draw(screen *ebiten.Image) {
	c.ui.Draw(screen)
}
