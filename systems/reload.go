package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/logging"
)

// NewUpdateAssetReload drains the registry's change notifications each frame
// and rebinds the animation sets of every entity using a reloaded sheet, so
// sprite edits show up without restarting.
func NewUpdateAssetReload(registry *assets.Registry) ecs.System {
	return func(e *ecs.ECS) {
		for _, path := range registry.Poll() {
			rebindSheet(e, registry, path)
		}
	}
}

func rebindSheet(e *ecs.ECS, registry *assets.Registry, path string) {
	sheet, err := registry.Sheet(path)
	if err != nil {
		return
	}

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.SheetPath != path {
			return
		}
		set, err := assets.BindAnimations(sheet, bindingFor(entry))
		if err != nil {
			logging.L().WithFields(logrus.Fields{
				"sheet": path,
				"error": err,
			}).Warn("rebind after reload failed")
			return
		}
		anim.Set = set
		anim.Cursor = set.NewCursor(anim.CurrentState)
	})
}

func bindingFor(entry *donburi.Entry) cfg.AnimationBinding {
	switch {
	case entry.HasComponent(components.Player):
		return cfg.PlayerBinding
	case entry.HasComponent(components.Enemy):
		return cfg.AssassinBinding
	case entry.HasComponent(components.Chest):
		return cfg.ChestBinding
	default:
		return cfg.CollectibleBinding
	}
}
