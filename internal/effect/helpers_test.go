package effect

import (
	"testing"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

// newTestState creates a state with vertical gravity g.
func newTestState(t *testing.T, g float64, assets asset.Registry) *world.State {
	t.Helper()
	return world.NewState(geom.V(0, g), assets, world.WithMatchID("test"))
}

// spawnTestUnit adds a 100 HP unit at pos and returns it.
func spawnTestUnit(t *testing.T, st *world.State, name string, pos geom.Vec2) *model.Unit {
	t.Helper()
	u := model.NewUnit(model.NoID, name, pos, 100)
	st.SpawnUnit(u)
	return u
}

func testAnimation() *asset.Animation {
	return &asset.Animation{
		Name:     "arrow",
		Frames:   []string{"arrow_0", "arrow_1"},
		Scale:    geom.V(1, 1),
		Duration: 0.2,
		Loop:     true,
	}
}

func healTemplate() *asset.Template {
	return &asset.Template{
		Name:      "heal",
		Frames:    []string{"heal_0", "heal_1", "heal_2", "heal_3"},
		FrameTime: 0.1,
	}
}
