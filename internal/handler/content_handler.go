package handler

import (
	"net/http"

	"github.com/abcsitio/internal/service"
	"github.com/gin-gonic/gin"
)

// collectionRoutes maps a collection to the public routes that render it.
func collectionRoutes(col service.Collection) []string {
	switch col {
	case service.CollectionServices:
		return servicesRoutes
	case service.CollectionHighlights:
		return highlightsRoutes
	case service.CollectionValues:
		return valuesRoutes
	default:
		return nil
	}
}

// GetContent returns the items of one collection for the admin editors.
func (a *API) GetContent(col service.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := a.content.List(col)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// CreateContent inserts a new collection item. Data-layer errors surface
// verbatim so the operator can debug their own content.
func (a *API) CreateContent(col service.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item service.ContentItem
		if !bindJSON(c, &item, "Datos inválidos") {
			return
		}

		saved, err := a.content.Save(col, item, true)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		a.invalidate(collectionRoutes(col))
		c.JSON(http.StatusCreated, gin.H{"item": saved})
	}
}

// UpdateContent updates the item matching the path id.
func (a *API) UpdateContent(col service.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item service.ContentItem
		if !bindJSON(c, &item, "Datos inválidos") {
			return
		}
		item.ID = c.Param("id")

		saved, err := a.content.Save(col, item, false)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		a.invalidate(collectionRoutes(col))
		c.JSON(http.StatusOK, gin.H{"item": saved})
	}
}

// DeleteContent hard-deletes the item matching the path id. Deleting an id
// that is already gone still succeeds.
func (a *API) DeleteContent(col service.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.content.Delete(col, c.Param("id")); err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		a.invalidate(collectionRoutes(col))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// SaveSettingsBatch applies a batch of settings value updates. The batch is
// best effort: entries apply independently and the first failure aborts the
// rest, so a retry after a partial failure is safe.
func (a *API) SaveSettingsBatch(c *gin.Context) {
	var payload struct {
		Settings []service.SettingUpdate `json:"settings"`
	}
	if !bindJSON(c, &payload, "Datos inválidos") {
		return
	}

	if err := a.settings.SaveSettings(payload.Settings); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	a.invalidate(settingsRoutes)
	c.JSON(http.StatusOK, gin.H{"saved": true})
}
