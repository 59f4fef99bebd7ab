package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/fonts"
)

// NewDrawGameOver renders the game over screen with the final pickup count.
func NewDrawGameOver(collected int) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := screen.Bounds().Dx()
		height := screen.Bounds().Dy()

		vector.DrawFilledRect(screen, 0, 0,
			float32(width), float32(height),
			cfg.GameOver.BackgroundColor, false)

		title := "GAME OVER"
		text.Draw(screen, title, fonts.Title.Get(),
			(width-len(title)*16)/2, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

		score := fmt.Sprintf("Collected: %d", collected)
		text.Draw(screen, score, fonts.Text.Get(),
			(width-len(score)*7)/2, int(cfg.GameOver.TitleY)+30, cfg.GameOver.TextColor)

		hint := "Press select to return to the menu"
		text.Draw(screen, hint, fonts.Text.Get(),
			(width-len(hint)*7)/2, int(cfg.GameOver.HintY), cfg.GameOver.TextColor)
	}
}
