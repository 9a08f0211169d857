package resolver

import (
	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/output"
)

// CombatResolver applies damage, healing, and status-flag Modifiers, and
// resolves FireWeapon Commands into WeaponFired events. It has no
// dedicated projectile-spawning or ammunition logic: firing a weapon is
// recorded as telemetry only, which is this module's resolution of
// whether the combat resolver should itself spawn projectiles (it does
// not; see DESIGN.md).
type CombatResolver struct {
	weaponFired *EventLog
}

// NewCombatResolver creates a CombatResolver with its own WeaponFired
// log.
func NewCombatResolver() *CombatResolver {
	return &CombatResolver{weaponFired: NewEventLog()}
}

// WeaponFiredEvents returns the resolver's own WeaponFired log.
func (r *CombatResolver) WeaponFiredEvents() *EventLog {
	return r.weaponFired
}

// HandledKinds implements Resolver.
func (r *CombatResolver) HandledKinds() []output.Kind {
	return []output.Kind{output.KindModifier, output.KindCommand}
}

// Resolve implements Resolver. Non-FireWeapon commands are ignored;
// modifiers targeting entities without combat state (platforms,
// projectiles) are silently dropped.
func (r *CombatResolver) Resolve(envelopes []output.Envelope, current, next *arena.Arena) {
	for _, env := range envelopes {
		switch o := env.Output.(type) {
		case output.ApplyDamage:
			e, ok := next.Get(o.Target)
			if !ok {
				continue
			}
			c, ok := e.Combat()
			if !ok {
				continue
			}
			c.HP -= o.Amount
			if c.HP <= 0 {
				c.HP = 0
				c.StatusFlags = c.StatusFlags.Insert(entity.StatusDead)
			}
			e.SetCombat(c)
		case output.ApplyHealing:
			e, ok := next.Get(o.Target)
			if !ok {
				continue
			}
			c, ok := e.Combat()
			if !ok {
				continue
			}
			c.HP += o.Amount
			if c.HP > c.MaxHP {
				c.HP = c.MaxHP
			}
			e.SetCombat(c)
		case output.SetStatusFlag:
			e, ok := next.Get(o.Target)
			if !ok {
				continue
			}
			c, ok := e.Combat()
			if !ok {
				continue
			}
			if o.Value {
				c.StatusFlags = c.StatusFlags.Insert(o.Flag)
			} else {
				c.StatusFlags = c.StatusFlags.Remove(o.Flag)
			}
			e.SetCombat(c)
		case output.ModifyStat:
			// Not implemented in MVP.
		case output.FireWeapon:
			r.weaponFired.Append(output.WeaponFired{Source: o.Source, Slot: o.Slot})
		}
	}
}
