package player

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-monster/internal/commands"
	"github.com/pixil98/go-monster/internal/game"
)

// Rearmer restarts the paused tick schedule after an in-game reset.
type Rearmer interface {
	Rearm()
}

// SessionManager runs the per-connection loop: it attaches a game session,
// shuttles input lines into the command handler, and drains the session's
// output queue back to the connection.
type SessionManager struct {
	world   *game.World
	handler *commands.Handler
	ticks   Rearmer
}

func NewSessionManager(world *game.World, handler *commands.Handler, ticks Rearmer) *SessionManager {
	return &SessionManager{
		world:   world,
		handler: handler,
		ticks:   ticks,
	}
}

// RunSession services one connection until it closes, the session quits, or
// the context is canceled. The session and its actor are detached on every
// exit path.
func (m *SessionManager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	sess := m.world.AttachSession()
	defer m.world.DetachSession(sess)

	// Canceling on return releases the reader goroutine even when the
	// parent context outlives this session.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reader goroutine: the scanner blocks on the connection, so it can't
	// live in the select loop. Channel close signals EOF or a read error.
	inputCh := make(chan string)
	inputErrCh := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			select {
			case inputCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrCh <- scanner.Err()
		close(inputCh)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-sess.Messages():
			if !ok {
				// Session was detached elsewhere (world shutdown).
				return nil
			}
			if err := writeLine(conn, msg); err != nil {
				return err
			}

		case line, ok := <-inputCh:
			if !ok {
				// Flush whatever is queued before dropping the connection.
				m.drain(conn, sess)
				select {
				case err := <-inputErrCh:
					return err
				default:
					return nil
				}
			}

			res := m.handler.Handle(sess, line)
			if res.Has(commands.FlagReset) {
				slog.InfoContext(ctx, "world reset, re-arming tick driver", "session", sess.Id())
				if m.ticks != nil {
					m.ticks.Rearm()
				}
			}
			if res.Has(commands.FlagQuit) {
				// Drain anything already queued (the goodbye line) before
				// dropping the connection.
				m.drain(conn, sess)
				return nil
			}
		}
	}
}

func (m *SessionManager) drain(conn io.Writer, sess *game.Session) {
	for {
		select {
		case msg, ok := <-sess.Messages():
			if !ok {
				return
			}
			if err := writeLine(conn, msg); err != nil {
				return
			}
		default:
			return
		}
	}
}

func writeLine(w io.Writer, msg []byte) error {
	_, err := w.Write(append(msg, '\n'))
	return err
}
