package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/inkwise/writertools/internal/models"
)

// CreateBoardRequest holds the data needed to create a new board
type CreateBoardRequest struct {
	OwnerID     uint
	Name        string
	Description string
	PerRow      int
}

// CreateBoard creates a plot board owned by the user.
func CreateBoard(req CreateBoardRequest) (*models.Board, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("board name is required")
	}

	perRow := req.PerRow
	if perRow == 0 {
		perRow = models.DefaultPerRow
	}
	if perRow < models.MinPerRow || perRow > models.MaxPerRow {
		return nil, fmt.Errorf("sequences per row must be between %d and %d", models.MinPerRow, models.MaxPerRow)
	}

	board := models.Board{
		OwnerID:     req.OwnerID,
		Name:        name,
		Description: req.Description,
		PerRow:      perRow,
	}
	if err := DB.Create(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// ListBoards returns the user's boards, newest first.
func ListBoards(ownerID uint) ([]models.Board, error) {
	var boards []models.Board
	err := DB.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoard retrieves one of the user's boards with its sequences and cards.
// Cards are ordered by their position within each sequence.
func GetBoard(ownerID, boardID uint) (*models.Board, error) {
	var board models.Board
	err := DB.Where("owner_id = ?", ownerID).
		Preload("Sequences").
		Preload("Sequences.Cards", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("Cards", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		First(&board, boardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("board #%d: %w", boardID, ErrNotFound)
		}
		return nil, err
	}
	return &board, nil
}

// AddSequence appends a sequence to a board.
func AddSequence(ownerID, boardID uint, name, description string) (*models.Sequence, error) {
	board, err := GetBoard(ownerID, boardID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("sequence name is required")
	}

	seq := models.Sequence{
		BoardID:     board.ID,
		Name:        name,
		Description: description,
	}
	if err := DB.Create(&seq).Error; err != nil {
		return nil, err
	}
	return &seq, nil
}

// DeleteSequence removes a sequence, orphaning its cards back onto the board.
// Cards are never deleted along with their sequence.
func DeleteSequence(ownerID, sequenceID uint) error {
	seq, err := getUserSequence(ownerID, sequenceID)
	if err != nil {
		return err
	}

	err = DB.Model(&models.Card{}).Where("sequence_id = ?", seq.ID).Update("sequence_id", nil).Error
	if err != nil {
		return err
	}
	return DB.Delete(seq).Error
}

// AddCard creates a card on a board, optionally inside one of its sequences.
// New cards go to the end of their sequence.
func AddCard(ownerID, boardID uint, sequenceID *uint, name, description, content string) (*models.Card, error) {
	board, err := GetBoard(ownerID, boardID)
	if err != nil {
		return nil, err
	}

	card := models.Card{
		BoardID:     board.ID,
		Name:        name,
		Description: description,
		Content:     content,
	}

	if sequenceID != nil {
		seq, err := getUserSequence(ownerID, *sequenceID)
		if err != nil {
			return nil, err
		}
		if seq.BoardID != board.ID {
			return nil, fmt.Errorf("sequence #%d: %w", *sequenceID, ErrNotFound)
		}
		card.SequenceID = &seq.ID

		var maxPos int
		row := DB.Model(&models.Card{}).Where("sequence_id = ?", seq.ID).Select("COALESCE(MAX(position), -1)").Row()
		if err := row.Scan(&maxPos); err != nil {
			return nil, err
		}
		card.Position = maxPos + 1
	}

	if err := DB.Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// GetCard retrieves a card on one of the user's boards.
func GetCard(ownerID, cardID uint) (*models.Card, error) {
	var card models.Card
	err := DB.Joins("JOIN boards ON boards.id = cards.board_id").
		Where("boards.owner_id = ? AND cards.id = ?", ownerID, cardID).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("card #%d: %w", cardID, ErrNotFound)
		}
		return nil, err
	}
	return &card, nil
}

// MoveCard repositions a card within its sequence. Positions of the other
// cards in the sequence are renumbered to stay dense.
func MoveCard(ownerID, cardID uint, position int) error {
	card, err := GetCard(ownerID, cardID)
	if err != nil {
		return err
	}
	if card.SequenceID == nil {
		return fmt.Errorf("card #%d is not in a sequence", cardID)
	}

	var siblings []models.Card
	err = DB.Where("sequence_id = ? AND id != ?", *card.SequenceID, card.ID).
		Order("position ASC").
		Find(&siblings).Error
	if err != nil {
		return err
	}

	if position < 0 {
		position = 0
	}
	if position > len(siblings) {
		position = len(siblings)
	}

	ordered := make([]models.Card, 0, len(siblings)+1)
	ordered = append(ordered, siblings[:position]...)
	ordered = append(ordered, *card)
	ordered = append(ordered, siblings[position:]...)

	return DB.Transaction(func(tx *gorm.DB) error {
		for i := range ordered {
			err := tx.Model(&models.Card{}).Where("id = ?", ordered[i].ID).Update("position", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func getUserSequence(ownerID, sequenceID uint) (*models.Sequence, error) {
	var seq models.Sequence
	err := DB.Joins("JOIN boards ON boards.id = sequences.board_id").
		Where("boards.owner_id = ? AND sequences.id = ?", ownerID, sequenceID).
		First(&seq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sequence #%d: %w", sequenceID, ErrNotFound)
		}
		return nil, err
	}
	return &seq, nil
}
