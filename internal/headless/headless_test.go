package headless

import (
	"context"
	"math"
	"testing"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIntercept(t *testing.T) {
	// Ракета падает вертикально над средней башней.
	r := component.Rocket{
		Position: component.Position{X: 400, Y: 100},
		Speed:    1,
		Angle:    math.Pi / 2,
	}
	aim := Intercept(component.Position{X: 400, Y: 550}, r)

	// (550 - y) / 5.5 = y - 100
	assert.InDelta(t, 400, aim.X, 1e-9)
	assert.InDelta(t, 1100.0/6.5, aim.Y, 0.5)
}

func TestInterceptClampsToField(t *testing.T) {
	r := component.Rocket{
		Position: component.Position{X: 795, Y: 300},
		Speed:    1.5,
		Angle:    0,
	}
	aim := Intercept(component.Position{X: 60, Y: 550}, r)
	assert.Equal(t, 800.0, aim.X)
}

func TestAutopilotFiresOncePerRocket(t *testing.T) {
	game := app.NewGame(utils.NewPRNGService(1))
	pilot := NewAutopilot(game)

	assert.False(t, pilot.Act(), "not playing yet")

	require.NoError(t, game.Start())
	game.World.HasSpawned = true
	game.World.Rockets = append(game.World.Rockets, &component.Rocket{
		ID:       game.World.NewEntity(),
		Position: component.Position{X: 400, Y: 100},
		Target:   component.Position{X: 400, Y: 550},
		Speed:    1,
		Angle:    math.Pi / 2,
	})

	assert.True(t, pilot.Act())
	require.Len(t, game.World.Missiles, 1)
	assert.Equal(t, 39, game.World.Turrets[1].Ammo)

	for i := 0; i < ReactionSteps+5; i++ {
		assert.False(t, pilot.Act())
	}
	assert.Len(t, game.World.Missiles, 1)
}

func TestRunnerCompletesRuns(t *testing.T) {
	runner := NewRunner(Options{Runs: 4, Workers: 2, MaxSteps: 600, Seed: 7}, zap.NewNop())
	records, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i, rec := range records {
		assert.Equal(t, int64(7+i), rec.Seed)
		assert.LessOrEqual(t, rec.Steps, 600)
		assert.Positive(t, rec.Steps)
		assert.Positive(t, rec.RocketsSpawned)
		assert.Len(t, rec.Fingerprint, 16)
		assert.NotEmpty(t, rec.RunID)
		assert.Equal(t, rec.Score, rec.RocketsKilled*20)
	}
}

func TestRunnerIsDeterministic(t *testing.T) {
	opts := Options{Runs: 3, Workers: 3, MaxSteps: 900, Seed: 42}

	first, err := NewRunner(opts, nil).Run(context.Background())
	require.NoError(t, err)
	second, err := NewRunner(opts, nil).Run(context.Background())
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Fingerprint, second[i].Fingerprint)
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.NotEqual(t, first[i].RunID, second[i].RunID)
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(Options{Runs: 2, Workers: 1, MaxSteps: 100, Seed: 1}, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
