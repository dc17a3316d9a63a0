package player

const (
	InitialHealth = 100
	InitialMana   = 100
	// level at which a revived player gets a mana pool
	MinManaLevel = 10
)

// Player is a character with health, an optional mana pool and a level.
// Mana is nil when the player has no mana pool at all.
type Player struct {
	Health int
	Mana   *int
	Level  int
}

// Revive returns a restored copy of a dead player.
// Health goes back to InitialHealth; the mana pool is refilled only from MinManaLevel up
// and removed below it. ok is false if the player is still alive.
func (p Player) Revive() (Player, bool) {
	if p.Health != 0 {
		return Player{}, false
	}
	revived := Player{Health: InitialHealth, Level: p.Level}
	if p.Level >= MinManaLevel {
		mana := InitialMana
		revived.Mana = &mana
	}
	return revived, true
}

// CastSpell spends cost mana and returns the damage dealt (twice the cost).
//   - not enough mana: nothing happens, 0 damage
//   - no mana pool: the cost is paid in health instead (never below 0), 0 damage
//
// A negative cost is not a spell; it changes nothing and deals 0.
func (p *Player) CastSpell(cost int) int {
	if cost < 0 {
		return 0
	}
	if p.Mana == nil {
		p.Health -= min(cost, p.Health)
		return 0
	}
	if *p.Mana < cost {
		return 0
	}
	mana := *p.Mana - cost
	p.Mana = &mana
	return 2 * cost
}
