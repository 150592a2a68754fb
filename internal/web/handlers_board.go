package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/models"
)

func (s *Server) handleBoardList(c *gin.Context) {
	user := currentUser(c)

	boards, err := db.ListBoards(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "board_list.html", gin.H{
		"user":   user,
		"boards": boards,
	})
}

func (s *Server) handleBoardCreate(c *gin.Context) {
	user := currentUser(c)

	perRow := models.DefaultPerRow
	if perRowStr := c.PostForm("per_row"); perRowStr != "" {
		n, err := strconv.Atoi(perRowStr)
		if err != nil {
			c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "sequences per row must be a whole number"})
			return
		}
		perRow = n
	}

	// The owner is always the requesting user, whatever the form says.
	board, err := db.CreateBoard(db.CreateBoardRequest{
		OwnerID:     user.ID,
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		PerRow:      perRow,
	})
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, boardURL(board.ID))
}

func (s *Server) handleBoardDetail(c *gin.Context) {
	user := currentUser(c)

	boardID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Board not found"})
		return
	}

	board, err := db.GetBoard(user.ID, uint(boardID))
	if err != nil {
		s.renderLookupError(c, err)
		return
	}

	// Cards not assigned to any sequence are shown in their own column.
	var unsequenced []models.Card
	for _, card := range board.Cards {
		if card.SequenceID == nil {
			unsequenced = append(unsequenced, card)
		}
	}

	c.HTML(http.StatusOK, "board_detail.html", gin.H{
		"user":        user,
		"board":       board,
		"unsequenced": unsequenced,
	})
}

func (s *Server) handleSequenceCreate(c *gin.Context) {
	user := currentUser(c)

	boardID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Board not found"})
		return
	}

	_, err = db.AddSequence(user.ID, uint(boardID), c.PostForm("name"), c.PostForm("description"))
	if err != nil {
		s.renderLookupError(c, err)
		return
	}

	c.Redirect(http.StatusFound, boardURL(uint(boardID)))
}

func (s *Server) handleSequenceDelete(c *gin.Context) {
	user := currentUser(c)

	sequenceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Sequence not found"})
		return
	}

	boardID := c.PostForm("board")
	if err := db.DeleteSequence(user.ID, uint(sequenceID)); err != nil {
		s.renderLookupError(c, err)
		return
	}

	if boardID != "" {
		c.Redirect(http.StatusFound, "/plot/boards/"+boardID+"/")
		return
	}
	c.Redirect(http.StatusFound, "/plot/")
}

func (s *Server) handleCardCreate(c *gin.Context) {
	user := currentUser(c)

	boardID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Board not found"})
		return
	}

	var sequenceID *uint
	if seqStr := c.PostForm("sequence"); seqStr != "" {
		n, err := strconv.ParseUint(seqStr, 10, 32)
		if err != nil {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Sequence not found"})
			return
		}
		id := uint(n)
		sequenceID = &id
	}

	_, err = db.AddCard(user.ID, uint(boardID), sequenceID,
		c.PostForm("name"), c.PostForm("description"), c.PostForm("content"))
	if err != nil {
		s.renderLookupError(c, err)
		return
	}

	c.Redirect(http.StatusFound, boardURL(uint(boardID)))
}

func (s *Server) handleCardDetail(c *gin.Context) {
	user := currentUser(c)

	cardID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Card not found"})
		return
	}

	card, err := db.GetCard(user.ID, uint(cardID))
	if err != nil {
		s.renderLookupError(c, err)
		return
	}

	c.HTML(http.StatusOK, "card_detail.html", gin.H{
		"user": user,
		"card": card,
	})
}

func (s *Server) handleCardMove(c *gin.Context) {
	user := currentUser(c)

	cardID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Card not found"})
		return
	}

	position, err := strconv.Atoi(c.PostForm("position"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "position must be a whole number"})
		return
	}

	if err := db.MoveCard(user.ID, uint(cardID), position); err != nil {
		s.renderLookupError(c, err)
		return
	}

	card, err := db.GetCard(user.ID, uint(cardID))
	if err != nil {
		s.renderLookupError(c, err)
		return
	}
	c.Redirect(http.StatusFound, boardURL(card.BoardID))
}

func boardURL(id uint) string {
	return "/plot/boards/" + strconv.FormatUint(uint64(id), 10) + "/"
}
