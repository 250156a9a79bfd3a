package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-canvas/internal/config"
	"github.com/vancomm/minesweeper-canvas/internal/mines"
	"github.com/vancomm/minesweeper-canvas/internal/render"
	"github.com/vancomm/minesweeper-canvas/internal/repository"
)

type testServer struct {
	*httptest.Server
	repo *repository.Queries
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	t.Setenv("DEVELOPMENT", "1")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.New()
	game := NewGameHandler(logger, repo, config.NewWebSocket(), func() *rand.Rand {
		return rand.New(rand.NewPCG(1, 2))
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", Status)
	mux.HandleFunc("GET /game/connect", game.Connect)
	mux.HandleFunc("GET /game/{id}", game.Fetch)
	mux.HandleFunc("GET /game/{id}/board.png", game.Snapshot)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, repo: repo}
}

func (s *testServer) dial(t *testing.T) (*websocket.Conn, frameDTO) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(s.URL, "http") + "/game/connect"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var hello frameDTO
	require.NoError(t, conn.ReadJSON(&hello))
	return conn, hello
}

func send(t *testing.T, conn *websocket.Conn, message string) frameDTO {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(message)))
	var frame frameDTO
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestStatus(t *testing.T) {
	srv := newTestServer(t)
	res, err := http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, `"ok"`, string(body))
}

func TestConnectHello(t *testing.T) {
	srv := newTestServer(t)
	_, hello := srv.dial(t)

	assert.Equal(t, frameHello, hello.Type)
	assert.Equal(t, mines.DefaultRows, hello.Rows)
	assert.Equal(t, mines.DefaultCols, hello.Cols)
	assert.Equal(t, mines.DefaultMineCount, hello.MineCount)
	assert.Equal(t, render.DefaultCellSize, hello.CellSize)
	assert.Len(t, hello.Ops, mines.DefaultRows*mines.DefaultCols)
	assert.Equal(t, 1, srv.repo.CountGameSessions())
}

// safeAndMine finds a numbered cell and a mine on the session's board.
func safeAndMine(t *testing.T, srv *testServer, id string) (safe, mine mines.Position) {
	t.Helper()
	res, err := http.Get(srv.URL + "/game/" + id)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var dto GameSessionDTO
	require.NoError(t, json.NewDecoder(res.Body).Decode(&dto))
	assert.Equal(t, mines.DefaultRows*mines.DefaultCols, len(dto.Grid))

	// the board is generated from PCG(1, 2); rebuild it to learn the layout
	board, err := mines.NewBoard(mines.DefaultParams, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	foundSafe, foundMine := false, false
	for c := range board.Cells() {
		if c.Mine && !foundMine {
			mine, foundMine = mines.Position{Row: c.Row, Col: c.Col}, true
		}
		if !c.Mine && c.Adjacent > 0 && !foundSafe {
			safe, foundSafe = mines.Position{Row: c.Row, Col: c.Col}, true
		}
	}
	require.True(t, foundSafe && foundMine)
	return safe, mine
}

func click(cmd string, p mines.Position) string {
	size := render.DefaultCellSize
	return fmt.Sprintf("%s %d %d", cmd, p.Col*size+1, p.Row*size+1)
}

func TestConnectMoves(t *testing.T) {
	srv := newTestServer(t)
	conn, hello := srv.dial(t)
	safe, mine := safeAndMine(t, srv, hello.GameSessionId)

	frame := send(t, conn, click("o", safe))
	assert.Equal(t, frameUpdate, frame.Type)
	require.Len(t, frame.Ops, 1)
	assert.NotEmpty(t, frame.Ops[0].Text)

	frame = send(t, conn, click("o", safe))
	assert.Empty(t, frame.Ops)

	frame = send(t, conn, click("f", mine)+"\n"+click("f", mine))
	assert.Len(t, frame.Ops, 2)

	frame = send(t, conn, click("o", mine))
	assert.Equal(t, []mines.Position{mine}, frame.MinesRevealed)
	require.Len(t, frame.Ops, 1)
	assert.Equal(t, "#000000", frame.Ops[0].Fill)

	frame = send(t, conn, "o -10 -10\ng\no 100000 3")
	assert.Equal(t, frameUpdate, frame.Type)
	assert.Empty(t, frame.Ops)

	frame = send(t, conn, "x 1 1")
	assert.Equal(t, frameError, frame.Type)
	assert.Contains(t, frame.Error, "unknown command")

	frame = send(t, conn, "o one 1")
	assert.Equal(t, frameError, frame.Type)

	res, err := http.Get(srv.URL + "/game/" + hello.GameSessionId)
	require.NoError(t, err)
	defer res.Body.Close()
	var dto GameSessionDTO
	require.NoError(t, json.NewDecoder(res.Body).Decode(&dto))
	assert.Equal(t, []mines.Position{mine}, dto.MinesRevealed)
	assert.NotEqual(t, " ", dto.Grid[safe.Row*dto.Cols+safe.Col])
}

func TestSessionRemovedOnClose(t *testing.T) {
	srv := newTestServer(t)
	conn, hello := srv.dial(t)
	require.NoError(t, conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	))
	conn.Close()

	assert.Eventually(t, func() bool {
		return srv.repo.CountGameSessions() == 0
	}, time.Second, 10*time.Millisecond)

	res, err := http.Get(srv.URL + "/game/" + hello.GameSessionId)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestOversizedMessageClosesSession(t *testing.T) {
	srv := newTestServer(t)
	conn, _ := srv.dial(t)

	huge := strings.Repeat("o 1 1\n", maxMessageSize)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(huge)))

	_, _, err := conn.ReadMessage()
	require.Error(t, err)

	assert.Eventually(t, func() bool {
		return srv.repo.CountGameSessions() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestSnapshot(t *testing.T) {
	srv := newTestServer(t)
	_, hello := srv.dial(t)

	res, err := http.Get(srv.URL + "/game/" + hello.GameSessionId + "/board.png?scale=2")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))

	img, err := png.Decode(res.Body)
	require.NoError(t, err)
	assert.Equal(t, mines.DefaultCols*render.DefaultCellSize*2, img.Bounds().Dx())
	assert.Equal(t, mines.DefaultRows*render.DefaultCellSize*2, img.Bounds().Dy())
}

func TestSnapshotBadRequests(t *testing.T) {
	srv := newTestServer(t)
	_, hello := srv.dial(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/game/not-a-uuid/board.png", http.StatusBadRequest},
		{"/game/" + hello.GameSessionId + "/board.png?scale=0", http.StatusBadRequest},
		{"/game/" + hello.GameSessionId + "/board.png?scale=big", http.StatusBadRequest},
		{"/game/00000000-0000-0000-0000-000000000001/board.png", http.StatusNotFound},
		{"/game/00000000-0000-0000-0000-000000000001", http.StatusNotFound},
	}
	for _, test := range tests {
		res, err := http.Get(srv.URL + test.path)
		require.NoError(t, err)
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		assert.Equal(t, test.status, res.StatusCode, test.path)
		assert.True(t, bytes.Contains(body, []byte(`"error"`)), test.path)
	}
}

func TestParseSnapshotDTO(t *testing.T) {
	dto, err := ParseSnapshotDTO(map[string][]string{})
	require.NoError(t, err)
	assert.Equal(t, defaultSnapshotScale, dto.Scale)

	dto, err = ParseSnapshotDTO(map[string][]string{"scale": {"16"}, "other": {"x"}})
	require.NoError(t, err)
	assert.Equal(t, 16, dto.Scale)

	_, err = ParseSnapshotDTO(map[string][]string{"scale": {"17"}})
	assert.Error(t, err)
}
