package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	"github.com/automoto/darkvania/logging"
)

// SavedProgress is the run record stored on disk.
type SavedProgress struct {
	BestCollected int     `json:"bestCollected"`
	Deaths        int     `json:"deaths"`
	SpawnX        float64 `json:"spawnX"`
	SpawnY        float64 `json:"spawnY"`
}

// SavedSettings holds display options restored at startup.
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store. Failure is non-fatal; saving just
// becomes a no-op.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "darkvania",
	})
	if err != nil {
		logging.L().WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress reads the saved run record, nil when none exists.
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		logging.L().WithError(err).Warn("could not load progress")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		logging.L().WithError(err).Warn("could not parse saved progress")
		return nil, err
	}
	return &progress, nil
}

// SaveProgress writes the run record to disk.
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		logging.L().WithError(err).Warn("could not save progress")
		return err
	}
	return nil
}

// LoadSettings reads the saved display options, defaults when none exist.
func LoadSettings() SavedSettings {
	var settings SavedSettings
	if !gdataInitialized || gdataManager == nil {
		return settings
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil || len(data) == 0 {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.L().WithError(err).Warn("could not parse saved settings")
	}
	return settings
}

// SaveSettings writes the display options to disk.
func SaveSettings(s SavedSettings) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		logging.L().WithError(err).Warn("could not save settings")
	}
}

// SaveCurrentProgress snapshots the live player state, keeping the best
// pickup count seen across runs.
func SaveCurrentProgress(e *ecs.ECS, deaths int) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	best := player.Collected
	if prev, _ := LoadProgress(); prev != nil && prev.BestCollected > best {
		best = prev.BestCollected
	}

	_ = SaveProgress(&SavedProgress{
		BestCollected: best,
		Deaths:        deaths,
		SpawnX:        player.SpawnX,
		SpawnY:        player.SpawnY,
	})
}
