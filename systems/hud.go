package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/fonts"
)

const hudMargin = 10

// DrawHUD renders the health pips and the pickup counter, plus the respawn
// prompt while the player is dead.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	pip := float32(cfg.UI.HealthPipSize)
	margin := float32(cfg.UI.HealthPipMargin)
	for i := 0; i < hp.Max; i++ {
		x := float32(hudMargin) + float32(i)*(pip+margin)
		clr := cfg.UI.HealthBgColor
		if i < hp.Current {
			clr = cfg.UI.HealthFgColor
		}
		vector.DrawFilledRect(screen, x, hudMargin, pip, pip, clr, false)
	}

	counter := fmt.Sprintf("x%d", player.Collected)
	text.Draw(screen, counter, fonts.Text.Get(),
		hudMargin, hudMargin+int(cfg.UI.HealthPipSize)+18, cfg.White)

	if playerEntry.HasComponent(components.Death) &&
		components.Animation.Get(playerEntry).Finished() {
		prompt := "Press jump to respawn"
		text.Draw(screen, prompt, fonts.Text.Get(),
			cfg.C.Width/2-70, cfg.C.Height/2, cfg.LightRed)
	}
}
