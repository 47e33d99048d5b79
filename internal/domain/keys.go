package domain

import "fmt"

const CanvasKeyPrefix = "canvas:"

// CanvasKey builds the canonical storage key for a session's canvas bounds
func CanvasKey(sessionID string) string {
	return fmt.Sprintf("%s%s", CanvasKeyPrefix, sessionID)
}
