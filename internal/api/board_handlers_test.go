package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neocare/neocare-server/internal/domain"
)

func TestListBoardsReturnsSeededBoard(t *testing.T) {
	ts := setupTestServer(t)

	header := ts.registerAndLogin(t, "ana@example.com")

	resp := ts.api.Get("/boards/", header)
	require.Equal(t, http.StatusOK, resp.Code)

	var boards []BoardResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &boards))
	require.Len(t, boards, 1)
	assert.Equal(t, domain.DefaultBoardName, boards[0].Name)
}

func TestListBoardsRequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/boards/")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestPingEchoesEmail(t *testing.T) {
	ts := setupTestServer(t)

	header := ts.registerAndLogin(t, "ana@example.com")

	resp := ts.api.Get("/boards/ping", header)
	require.Equal(t, http.StatusOK, resp.Code)

	var ping PingResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ping))
	assert.Equal(t, "pong", ping.Message)
	assert.Equal(t, "ana@example.com", ping.Email)
}

func TestListListsReturnsSeededColumns(t *testing.T) {
	ts := setupTestServer(t)

	header := ts.registerAndLogin(t, "ana@example.com")
	boardID := ts.mainBoardID(t, header)

	resp := ts.api.Get("/lists/?board_id="+itoa(boardID), header)
	require.Equal(t, http.StatusOK, resp.Code)

	var lists []ListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &lists))
	require.Len(t, lists, 3)
	assert.Equal(t, domain.ListNameTodo, lists[0].Name)
	assert.Equal(t, domain.ListNameInProgress, lists[1].Name)
	assert.Equal(t, domain.ListNameDone, lists[2].Name)
}

func TestListListsForeignBoardIsForbidden(t *testing.T) {
	ts := setupTestServer(t)

	anaHeader := ts.registerAndLogin(t, "ana@example.com")
	bobHeader := ts.registerAndLogin(t, "bob@example.com")
	anaBoard := ts.mainBoardID(t, anaHeader)

	resp := ts.api.Get("/lists/?board_id="+itoa(anaBoard), bobHeader)
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, resp.Body.Bytes()).Code)

	// A board that does not exist reports not found before ownership.
	resp = ts.api.Get("/lists/?board_id=99999", bobHeader)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
