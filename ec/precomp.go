package ec

// PreCompInfo is an opaque, caller-owned cache of precomputed values
// attached to a Point for scalar-multiplication use (spec.md §3, §5,
// §9). The core never inspects its contents; it only guarantees the
// cache is invalidated (reset to nil) whenever a new Point is produced
// and can be replaced atomically by the caller via Point.SetPreComp.
//
// Producer is an opaque tag identifying which ECPointMultiplier wrote
// Data, so a multiplier can tell its own cache apart from a stale one
// left by a different multiplier implementation.
type PreCompInfo struct {
	Producer any
	Data     any
}
