package game

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowHitboxes bool // Stroke player and asteroid hitboxes (F1)
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
