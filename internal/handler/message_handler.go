package handler

import (
	"net/http"

	"github.com/abcsitio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetMessages returns one page of the contact inbox with the counters the
// admin list view shows.
func (a *API) GetMessages(c *gin.Context) {
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	pageSize := parsePositiveInt(c.DefaultQuery("page_size", "10"), service.DefaultMessagePageSize)

	result, err := a.inbox.List(page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// ToggleMessageRead flips the read flag of one message.
func (a *API) ToggleMessageRead(c *gin.Context) {
	row, err := a.inbox.ToggleRead(c.Param("id"))
	if err != nil {
		if err == service.ErrMessageNotFound {
			respondError(c, http.StatusNotFound, "Mensaje no encontrado")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": row.ID, "is_read": row.IsRead})
}

// DeleteMessage removes one message. Deleting an id that is already gone
// still succeeds.
func (a *API) DeleteMessage(c *gin.Context) {
	if err := a.inbox.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
