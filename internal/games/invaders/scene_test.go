package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestMenuEffectsBounce(t *testing.T) {
	fx := NewMenuEffects(5, 0.5)

	sawFadeIn, sawShrink := false, false
	prevOpacity, prevSize := fx.Opacity, fx.SizeMod
	for range 1000 {
		fx.Update(1)
		if fx.Opacity < minOpacity-5 || fx.Opacity > maxOpacity+5 {
			t.Fatalf("Opacity = %v out of range", fx.Opacity)
		}
		if fx.SizeMod < minSizeMod-0.5 || fx.SizeMod > maxSizeMod+0.5 {
			t.Fatalf("SizeMod = %v out of range", fx.SizeMod)
		}
		if fx.Opacity > prevOpacity {
			sawFadeIn = true
		}
		if fx.SizeMod < prevSize {
			sawShrink = true
		}
		prevOpacity, prevSize = fx.Opacity, fx.SizeMod
	}

	if !sawFadeIn {
		t.Error("opacity never turned around")
	}
	if !sawShrink {
		t.Error("size never turned around")
	}
}

func TestSceneKindString(t *testing.T) {
	tests := []struct {
		kind SceneKind
		want string
	}{
		{SceneWelcome, "welcome"},
		{SceneMain, "main"},
		{ScenePause, "pause"},
		{SceneDeath, "death"},
		{SceneKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("SceneKind(%d).String() = %q, expected %q", tt.kind, got, tt.want)
		}
	}
}

func TestPauseOverlayKeepsMainScene(t *testing.T) {
	g := newTestGame(t)
	m := startGame(t, g)

	press(g, core.KeyEscape)
	g.Tick(core.FrameDuration)

	o, ok := g.Scene().(*OverlayScene)
	if !ok {
		t.Fatalf("Scene() = %T, expected *OverlayScene", g.Scene())
	}
	if o.Interrupted() != Scene(m) {
		t.Error("pause overlay should wrap the interrupted main scene")
	}
	// Gameplay input is not delivered while paused
	press(g, core.KeySpace)
	g.Tick(core.FrameDuration)
	if len(m.pending)+len(m.lasers) != 0 {
		t.Error("fire key reached the player while paused")
	}
}
