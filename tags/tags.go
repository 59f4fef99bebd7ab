package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Enemy            = donburi.NewTag().SetName("Enemy")
	Hitbox           = donburi.NewTag().SetName("Hitbox")
	Wall             = donburi.NewTag().SetName("Wall")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Collectible      = donburi.NewTag().SetName("Collectible")
	Chest            = donburi.NewTag().SetName("Chest")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlatform    = "platform"
	ResolvDamage      = "damage"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvHitbox      = "Hitbox"
	ResolvCollectible = "Collectible"
	ResolvChest       = "Chest"
)
