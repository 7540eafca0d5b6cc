package collisions

import (
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/solarlune/resolv"
)

// CellSize is the side of a court space cell.
const CellSize = 16

// Court mirrors the session bodies into a resolv.Space so renderers and debug tools
// can walk them by tag. The session record stays the source of truth.
type Court struct {
	space    *resolv.Space
	player   *resolv.Object
	opponent *resolv.Object
	ball     *resolv.Object
}

func NewCourt(cfg types.Config) *Court {
	space := resolv.NewSpace(int(cfg.SurfaceWidth), int(cfg.SurfaceHeight), CellSize, CellSize)
	c := &Court{
		space:    space,
		player:   resolv.NewObject(0, 0, cfg.PaddleWidth, cfg.PaddleHeight, types.CollisionSpaceTagPaddle, types.CollisionSpaceTagPlayer),
		opponent: resolv.NewObject(cfg.OpponentX(), 0, cfg.PaddleWidth, cfg.PaddleHeight, types.CollisionSpaceTagPaddle, types.CollisionSpaceTagOpponent),
		ball:     resolv.NewObject(0, 0, cfg.BallSize, cfg.BallSize, types.CollisionSpaceTagBall),
	}
	space.Add(c.player, c.opponent, c.ball)
	c.Sync(types.NewSessionState(cfg))
	return c
}

// Sync moves the court objects to the positions in state.
func (c *Court) Sync(state types.SessionState) {
	c.player.Position.Y = state.PlayerY
	c.player.Update()

	c.opponent.Position.Y = state.OpponentY
	c.opponent.Update()

	c.ball.Position.X = state.Ball.X
	c.ball.Position.Y = state.Ball.Y
	c.ball.Update()
}

// Bodies returns the paddles and the ball in draw order.
func (c *Court) Bodies() []*resolv.Object {
	return []*resolv.Object{c.player, c.opponent, c.ball}
}

// BallContacts returns the tags of the paddles sharing cells with the ball.
// It is a broad-phase hint for debugging, not the contact rule of the simulation.
func (c *Court) BallContacts() []string {
	collision := c.ball.Check(0, 0, types.CollisionSpaceTagPaddle)
	if collision == nil {
		return nil
	}
	var tags []string
	for _, obj := range collision.Objects {
		switch {
		case obj.HasTags(types.CollisionSpaceTagPlayer):
			tags = append(tags, types.CollisionSpaceTagPlayer)
		case obj.HasTags(types.CollisionSpaceTagOpponent):
			tags = append(tags, types.CollisionSpaceTagOpponent)
		}
	}
	return tags
}

// Space exposes the underlying resolv space.
func (c *Court) Space() *resolv.Space {
	return c.space
}
