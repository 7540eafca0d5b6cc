package game

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// Draw renders the current state onto surface.
func (s *Session) Draw(surface Surface) {
	w, h := s.cfg.SurfaceWidth, s.cfg.SurfaceHeight

	surface.FillRect(0, 0, w, h, constants.BackgroundColor)
	surface.StrokeDashedLine(w/2, 0, w/2, h, constants.CenterLineDash, constants.CenterLineGap, constants.CenterLineColor)

	for _, obj := range s.court.Bodies() {
		clr := constants.BallColor
		switch {
		case obj.HasTags(types.CollisionSpaceTagPlayer):
			clr = constants.PlayerColor
		case obj.HasTags(types.CollisionSpaceTagOpponent):
			clr = constants.OpponentColor
		}
		surface.FillRect(obj.Position.X, obj.Position.Y, obj.Size.X, obj.Size.Y, clr)
	}

	if s.state.Winner != types.WinnerNone {
		s.drawWinOverlay(surface)
	}
}

func (s *Session) drawWinOverlay(surface Surface) {
	cx, cy := s.cfg.SurfaceWidth/2, s.cfg.SurfaceHeight/2
	surface.FillRect(cx-constants.OverlayWidth/2, cy-constants.OverlayHeight/2, constants.OverlayWidth, constants.OverlayHeight, constants.OverlayColor)

	message := constants.OpponentWinMessage
	if s.state.Winner == types.WinnerPlayer {
		message = constants.PlayerWinMessage
	}
	surface.FillText(message, cx, cy, TextSizeLarge, constants.TextColor)
	surface.FillText(constants.ResetHintMessage, cx, cy+30, TextSizeSmall, constants.TextColor)
}
