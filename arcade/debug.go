package arcade

// DebugState holds global debug flags that persist across restarts
type DebugState struct {
	ShowHitboxes bool // Outline every hitbox
	ShowStats    bool // Show TPS and entity counts
}

// Global debug state instance (persists across restarts)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
