package plugin

// Refresher is an optional module operation. The host invokes Refresh on
// every live instance of an implementing module on each panel tick, so a
// module can redraw without owning its own timer.
type Refresher interface {
	Refresh(inst *Instance)
}
