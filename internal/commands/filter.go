package commands

// FilterState is the current filter and the choices available.
type FilterState struct {
	Current    string
	Categories []string
}

// Filter reports the effective filter and the known categories.
func Filter(ws *Workspace) FilterState {
	return FilterState{
		Current:    ws.Repo.Filter(),
		Categories: ws.Repo.Categories(),
	}
}

// SetFilter persists value as the filter.
func SetFilter(ws *Workspace, value string) error {
	return ws.Repo.SetFilter(value)
}
