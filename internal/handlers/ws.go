package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-canvas/internal/input"
	"github.com/vancomm/minesweeper-canvas/internal/mines"
	"github.com/vancomm/minesweeper-canvas/internal/render"
	"github.com/vancomm/minesweeper-canvas/internal/repository"
)

type wsCommand string

const (
	wsNoop      wsCommand = "g"
	wsPrimary   wsCommand = "o"
	wsSecondary wsCommand = "f"
)

const maxMessageSize = 4096

type gameExecutor struct {
	logger  *slog.Logger
	session *repository.GameSession
	canvas  *render.Canvas
	input   *input.Adapter
	hits    []mines.Position
}

func newGameExecutor(
	logger *slog.Logger, session *repository.GameSession, cellSize int,
) *gameExecutor {
	game := &gameExecutor{
		logger:  logger,
		session: session,
		canvas:  render.NewCanvas(cellSize),
	}
	game.input = input.New(session.Board, game.canvas, cellSize, game.mineRevealed)
	return game
}

func (game *gameExecutor) mineRevealed(p mines.Position) {
	game.session.RecordMineRevealed(p)
	game.hits = append(game.hits, p)
	game.logger.Info("mine revealed", slog.Int("row", p.Row), slog.Int("col", p.Col))
}

func (game *gameExecutor) execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	switch cmd {
	case wsNoop:
		return nil
	case wsPrimary, wsSecondary:
		px, py, err := parseXY(args)
		if err != nil {
			return err
		}
		if cmd == wsPrimary {
			return game.input.Primary(px, py)
		}
		return game.input.Secondary(px, py)
	default:
		return fmt.Errorf("unknown command %q", tokens[0])
	}
}

func (game *gameExecutor) hello() frameDTO {
	game.session.Lock()
	defer game.session.Unlock()

	board := game.session.Board
	render.DrawBoard(game.canvas, game.canvas.CellSize, board)
	for _, p := range game.session.MinesRevealed {
		game.canvas.DrawMine(render.Origin(p, game.canvas.CellSize))
	}
	return frameDTO{
		Type:          frameHello,
		GameSessionId: game.session.GameSessionId.String(),
		Rows:          board.Rows,
		Cols:          board.Cols,
		MineCount:     board.MineCount,
		CellSize:      game.canvas.CellSize,
		Ops:           game.canvas.Flush(),
	}
}

// apply runs every command of one message against the board and reports what
// needs redrawing. Clicks outside the board are ignored; any other bad command
// stops the batch and yields an error frame carrying the ops drawn so far.
func (game *gameExecutor) apply(message string) frameDTO {
	game.session.Lock()
	defer game.session.Unlock()

	game.hits = nil
	frame := frameDTO{Type: frameUpdate}
	for _, line := range strings.Split(message, "\n") {
		err := game.execute(strings.TrimSpace(line))
		if errors.Is(err, mines.ErrOutOfBounds) {
			game.logger.Debug("click outside board", slog.String("command", line))
			continue
		}
		if err != nil {
			frame.Type = frameError
			frame.Error = err.Error()
			break
		}
	}
	frame.Ops = game.canvas.Flush()
	frame.MinesRevealed = game.hits
	return frame
}

func (game *gameExecutor) runLoop(ctx context.Context, conn *websocket.Conn) error {
	conn.SetReadLimit(maxMessageSize)
	if err := conn.WriteJSON(game.hello()); err != nil {
		return fmt.Errorf("unable to write hello: %w", err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}
		frame := game.apply(strings.TrimSpace(string(buf)))
		if err := conn.WriteJSON(frame); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

// Connect starts a new game and plays it over a websocket until the page goes
// away.
func (g GameHandler) Connect(w http.ResponseWriter, r *http.Request) {
	board, err := mines.NewBoard(mines.DefaultParams, g.newRand())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", slog.Any("error", err))
		return
	}

	session, err := g.repo.CreateGameSession(r.Context(), board)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", slog.Any("error", err))
		return
	}
	defer g.repo.DeleteGameSession(session.GameSessionId)

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	logger := g.logger.With(slog.String("gameSessionId", session.GameSessionId.String()))
	logger.Debug("established WS connection")

	game := newGameExecutor(logger, session, g.cellSize)
	err = game.runLoop(r.Context(), conn)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		logger.Warn("error in ws loop", slog.Any("error", err))
		return
	}
	logger.Debug("closed WS connection")
}

func parseXY(args []string) (x float64, y float64, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("expected two coordinates, got %d", len(args))
		return
	}
	if x, err = strconv.ParseFloat(args[0], 64); err != nil {
		err = fmt.Errorf("first argument must be a number")
		return
	}
	if y, err = strconv.ParseFloat(args[1], 64); err != nil {
		err = fmt.Errorf("second argument must be a number")
		return
	}
	return
}
