package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-monster/internal/player"
)

// ConnectionManager hands accepted connections to the session layer. Both
// listeners funnel through it so transport details stay out of the game.
type ConnectionManager struct {
	sm *player.SessionManager
}

func NewConnectionManager(sm *player.SessionManager) *ConnectionManager {
	return &ConnectionManager{
		sm: sm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.sm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "caretaker session", "error", err)
	}
}
