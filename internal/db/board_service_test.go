package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwise/writertools/internal/models"
)

func TestCreateBoardDefaults(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	board, err := CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "Act One"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPerRow, board.PerRow)
}

func TestCreateBoardPerRowBounds(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	_, err := CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "Too wide", PerRow: 33})
	assert.Error(t, err)

	_, err = CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "Negative", PerRow: -1})
	assert.Error(t, err)
}

func TestDeleteSequenceOrphansCards(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	board, err := CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "Board"})
	require.NoError(t, err)
	seq, err := AddSequence(user.ID, board.ID, "Opening", "")
	require.NoError(t, err)
	card, err := AddCard(user.ID, board.ID, &seq.ID, "Inciting incident", "", "")
	require.NoError(t, err)

	require.NoError(t, DeleteSequence(user.ID, seq.ID))

	// The card survives, back on the board without a sequence.
	reloaded, err := GetCard(user.ID, card.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.SequenceID)
	assert.Equal(t, board.ID, reloaded.BoardID)
}

func TestAddCardAppendsToSequence(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	board, err := CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "Board"})
	require.NoError(t, err)
	seq, err := AddSequence(user.ID, board.ID, "Opening", "")
	require.NoError(t, err)

	first, err := AddCard(user.ID, board.ID, &seq.ID, "one", "", "")
	require.NoError(t, err)
	second, err := AddCard(user.ID, board.ID, &seq.ID, "two", "", "")
	require.NoError(t, err)

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
}

func TestMoveCardReordersSequence(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	board, err := CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "Board"})
	require.NoError(t, err)
	seq, err := AddSequence(user.ID, board.ID, "Opening", "")
	require.NoError(t, err)

	var cards []*models.Card
	for _, name := range []string{"a", "b", "c"} {
		card, err := AddCard(user.ID, board.ID, &seq.ID, name, "", "")
		require.NoError(t, err)
		cards = append(cards, card)
	}

	// Move "c" to the front.
	require.NoError(t, MoveCard(user.ID, cards[2].ID, 0))

	loaded, err := GetBoard(user.ID, board.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Sequences, 1)
	got := loaded.Sequences[0].Cards
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "a", got[1].Name)
	assert.Equal(t, "b", got[2].Name)
}

func TestBoardOwnership(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	mallory := createTestUser(t, "mallory")

	board, err := CreateBoard(CreateBoardRequest{OwnerID: alice.ID, Name: "Private"})
	require.NoError(t, err)

	_, err = GetBoard(mallory.ID, board.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = AddSequence(mallory.ID, board.ID, "Intrusion", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCardRejectsForeignSequence(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	board1, err := CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "One"})
	require.NoError(t, err)
	board2, err := CreateBoard(CreateBoardRequest{OwnerID: user.ID, Name: "Two"})
	require.NoError(t, err)
	seq, err := AddSequence(user.ID, board2.ID, "Elsewhere", "")
	require.NoError(t, err)

	// A sequence on another board cannot hold this board's card.
	_, err = AddCard(user.ID, board1.ID, &seq.ID, "lost", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}
