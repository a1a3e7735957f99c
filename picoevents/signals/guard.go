package signals

// DisableGuard keeps a signal disabled until Restore. Guards nest: each one
// restores the state it saw when it was taken.
//
//	defer signals.Disable(s).Restore()
type DisableGuard struct {
	toggle   Toggle
	previous bool
	restored bool
}

func Disable(toggle Toggle) *DisableGuard {
	g := &DisableGuard{
		toggle:   toggle,
		previous: toggle.IsEnabled(),
	}
	toggle.SetEnabled(false)
	return g
}

// Restore puts back the enabled state seen by Disable. Only the first call
// has an effect.
func (g *DisableGuard) Restore() {
	if g.restored {
		return
	}
	g.restored = true
	g.toggle.SetEnabled(g.previous)
}
