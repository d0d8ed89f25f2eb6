package verbal

import "sync/atomic"

var debugMode atomic.Bool

// SetDebugMode enables or disables debug checks. When enabled, placing
// objects logs a warning through Logger when a container grows past 1000
// members or the tree gets deeper than 32 levels.
func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

// DebugMode reports whether debug checks are enabled.
func DebugMode() bool {
	return debugMode.Load()
}

const (
	debugMaxTreeDepth   = 32
	debugMaxMemberCount = 1000
)

// debugCheckContainer runs the tree-shape warnings for a container that
// just gained members.
func debugCheckContainer(c *Object) {
	if !debugMode.Load() {
		return
	}
	if n := c.Size(); n > debugMaxMemberCount {
		Logger().Warn("container has too many members",
			"name", c.Name, "kind", c.container.String(), "members", n, "threshold", debugMaxMemberCount)
	}
	depth := 0
	for p := c; p != nil; p = p.parent {
		depth++
	}
	// Members sit one level below the container.
	if depth+1 > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"name", c.Name, "depth", depth+1, "threshold", debugMaxTreeDepth)
	}
}
