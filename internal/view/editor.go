package view

// EditorState is the funnel editor's lifecycle state.
type EditorState int

const (
	// EditorClosed means no draft exists; the applied funnel is active.
	EditorClosed EditorState = iota
	// EditorOpen means a draft is being edited; the applied funnel stays
	// active until Apply.
	EditorOpen
)

// FunnelEditor implements the draft/commit interaction for funnel filters:
// opening loads the previously applied set as an editable draft (not a reset
// to empty), applying replaces the active funnel, and cancelling discards the
// draft leaving the active funnel untouched. This is deliberately distinct
// from the immediate-apply search and category inputs, which have no
// draft/commit step.
type FunnelEditor struct {
	state EditorState
	draft Funnel
}

// State returns the current editor state.
func (e *FunnelEditor) State() EditorState {
	return e.state
}

// Open starts an editing session seeded with a copy of the currently applied
// funnel. No-op if already open.
func (e *FunnelEditor) Open(applied Funnel) {
	if e.state == EditorOpen {
		return
	}
	e.draft = applied.Clone()
	if e.draft == nil {
		e.draft = Funnel{}
	}
	e.state = EditorOpen
}

// Draft returns the editable draft. Nil when the editor is closed.
func (e *FunnelEditor) Draft() Funnel {
	if e.state != EditorOpen {
		return nil
	}
	return e.draft
}

// Set stages a constraint for a column key in the draft.
func (e *FunnelEditor) Set(key string, c Constraint) {
	if e.state != EditorOpen {
		return
	}
	e.draft[key] = c
}

// Clear removes a staged constraint from the draft.
func (e *FunnelEditor) Clear(key string) {
	if e.state != EditorOpen {
		return
	}
	delete(e.draft, key)
}

// Apply commits the draft and closes the editor, returning the funnel to
// install as the active filter. Returns nil if the editor was not open.
func (e *FunnelEditor) Apply() Funnel {
	if e.state != EditorOpen {
		return nil
	}
	applied := e.draft
	e.draft = nil
	e.state = EditorClosed
	return applied
}

// Cancel discards the draft and closes the editor. The previously applied
// funnel is untouched.
func (e *FunnelEditor) Cancel() {
	e.draft = nil
	e.state = EditorClosed
}
