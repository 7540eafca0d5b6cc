package collisions

import (
	"testing"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourt(t *testing.T) {
	cfg := types.DefaultConfig()
	court := NewCourt(cfg)

	bodies := court.Bodies()
	require.Len(t, bodies, 3)
	assert.True(t, bodies[0].HasTags(types.CollisionSpaceTagPlayer))
	assert.True(t, bodies[1].HasTags(types.CollisionSpaceTagOpponent))
	assert.True(t, bodies[2].HasTags(types.CollisionSpaceTagBall))

	assert.Equal(t, 0.0, bodies[0].Position.X)
	assert.Equal(t, 150.0, bodies[0].Position.Y)
	assert.Equal(t, cfg.SurfaceWidth-cfg.PaddleWidth, bodies[1].Position.X)
	assert.Equal(t, 400.0, bodies[2].Position.X)
	assert.Equal(t, 200.0, bodies[2].Position.Y)
}

func TestCourt_Sync(t *testing.T) {
	cfg := types.DefaultConfig()
	court := NewCourt(cfg)

	state := types.NewSessionState(cfg)
	state.PlayerY = 0
	state.OpponentY = 300
	state.Ball = kinematic.Vector{X: 17, Y: 40}
	court.Sync(state)

	bodies := court.Bodies()
	assert.Equal(t, 0.0, bodies[0].Position.Y)
	assert.Equal(t, 300.0, bodies[1].Position.Y)
	assert.Equal(t, 17.0, bodies[2].Position.X)
	assert.Equal(t, 40.0, bodies[2].Position.Y)
}

func TestCourt_BallContacts(t *testing.T) {
	cfg := types.DefaultConfig()
	court := NewCourt(cfg)

	assert.Empty(t, court.BallContacts())

	state := types.NewSessionState(cfg)
	state.PlayerY = 0
	state.Ball = kinematic.Vector{X: 10, Y: 20}
	court.Sync(state)
	assert.Equal(t, []string{types.CollisionSpaceTagPlayer}, court.BallContacts())

	// a ball off the court is ignored by the space
	state.Ball = kinematic.Vector{X: -200, Y: 20}
	court.Sync(state)
	assert.Empty(t, court.BallContacts())
}
