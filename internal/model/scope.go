package model

// Scope carries per-caller identity through the interpreter pipeline.
// Every chat exchange is resolved against the caller's own session —
// conversation state is never held as ambient global state.
type Scope struct {
	SessionID string
}
