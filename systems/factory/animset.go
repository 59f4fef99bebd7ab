package factory

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/assets/aseprite"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/logging"
)

// loadAnimationSet resolves a sheet and binds it to an entity's states. A
// broken or missing sheet falls back to a placeholder set so bad content
// never prevents the entity from existing, but a sheet that cannot supply
// the binding's baseline animation is a configuration error and fails the
// spawn.
func loadAnimationSet(registry *assets.Registry, sheetPath string, binding cfg.AnimationBinding, w, h int) (*assets.AnimationSet, error) {
	if registry == nil {
		return assets.PlaceholderSet(binding, w, h), nil
	}
	sheet, err := registry.Sheet(sheetPath)
	if err != nil {
		logging.L().WithFields(logrus.Fields{
			"sheet":  sheetPath,
			"entity": binding.Entity,
			"error":  err,
		}).Warn("sheet unavailable, using placeholder")
		return assets.PlaceholderSet(binding, w, h), nil
	}
	return bindSheet(sheet, sheetPath, binding, w, h)
}

func bindSheet(sheet *aseprite.Sheet, sheetPath string, binding cfg.AnimationBinding, w, h int) (*assets.AnimationSet, error) {
	set, err := assets.BindAnimations(sheet, binding)
	if err == nil {
		return set, nil
	}
	if errors.Is(err, assets.ErrBaselineMissing) {
		return nil, fmt.Errorf("bind %s: %w", sheetPath, err)
	}
	logging.L().WithFields(logrus.Fields{
		"sheet":  sheetPath,
		"entity": binding.Entity,
		"error":  err,
	}).Warn("binding failed, using placeholder")
	return assets.PlaceholderSet(binding, w, h), nil
}
