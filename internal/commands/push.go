package commands

import (
	"context"
)

// Push sends the whole collection to the remote once.
func Push(ctx context.Context, ws *Workspace) (int, error) {
	result, err := ws.Engine(nil).Push(ctx)
	if err != nil {
		return 0, err
	}
	return result.Sent, nil
}
