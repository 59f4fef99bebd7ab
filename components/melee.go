package components

import "github.com/yohamta/donburi"

type MeleeAttackData struct {
	ComboStep        int  // 0: none, 1: slash 1, 2: slash 2
	BufferedAttack   bool // attack pressed during the current swing
	HasSpawnedHitbox bool // prevents multiple hitboxes per swing
	ActiveHitbox     *donburi.Entry
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
