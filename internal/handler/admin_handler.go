package handler

import (
	"log"
	"net/http"

	"github.com/abcsitio/internal/db"
	"github.com/abcsitio/internal/service"
	"github.com/abcsitio/internal/view"
	"github.com/gin-gonic/gin"
)

// settingsGroupView groups settings rows for the editing UI.
type settingsGroupView struct {
	Group   string
	Title   string
	Entries []db.SiteSetting
}

var settingsGroupTitles = map[string]string{
	db.SettingGroupHome:    "Inicio / Hero",
	db.SettingGroupAbout:   "Nosotros",
	db.SettingGroupContact: "Contacto",
	db.SettingGroupFooter:  "Pie de Página",
}

// ShowDashboard renders the admin overview with content and inbox counters.
func (a *API) ShowDashboard(c *gin.Context) {
	serviceCount, _ := a.content.Count(service.CollectionServices)
	highlightCount, _ := a.content.Count(service.CollectionHighlights)
	valueCount, _ := a.content.Count(service.CollectionValues)
	messageCount, _ := a.inbox.TotalCount()
	unreadCount, _ := a.inbox.UnreadCount()

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":          "Panel de administración",
		"serviceCount":   serviceCount,
		"highlightCount": highlightCount,
		"valueCount":     valueCount,
		"messageCount":   messageCount,
		"unreadCount":    unreadCount,
	})
}

// ShowSettingsAdmin renders the settings editor grouped by section.
func (a *API) ShowSettingsAdmin(c *gin.Context) {
	entries, err := a.settings.ListEntries()
	if err != nil {
		log.Printf("list settings: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_settings.html", gin.H{
			"title": "Configuración del sitio",
			"error": "No se pudieron cargar las configuraciones",
		})
		return
	}

	order := []string{db.SettingGroupHome, db.SettingGroupAbout, db.SettingGroupContact, db.SettingGroupFooter}
	grouped := make([]settingsGroupView, 0, len(order))
	for _, group := range order {
		groupView := settingsGroupView{Group: group, Title: settingsGroupTitles[group]}
		for _, entry := range entries {
			if entry.Group == group {
				groupView.Entries = append(groupView.Entries, entry)
			}
		}
		if len(groupView.Entries) > 0 {
			grouped = append(grouped, groupView)
		}
	}

	c.HTML(http.StatusOK, "admin_settings.html", gin.H{
		"title":  "Configuración del sitio",
		"groups": grouped,
	})
}

// ShowServicesAdmin renders the service collection editor.
func (a *API) ShowServicesAdmin(c *gin.Context) {
	items, err := a.content.List(service.CollectionServices)
	if err != nil {
		log.Printf("list services: %v", err)
	}

	c.HTML(http.StatusOK, "admin_services.html", gin.H{
		"title": "Servicios",
		"items": items,
		"icons": view.IconOptions(),
	})
}

// ShowHighlightsAdmin renders the tabbed highlights/values editor.
func (a *API) ShowHighlightsAdmin(c *gin.Context) {
	highlights, err := a.content.List(service.CollectionHighlights)
	if err != nil {
		log.Printf("list highlights: %v", err)
	}
	companyValues, err := a.content.List(service.CollectionValues)
	if err != nil {
		log.Printf("list company values: %v", err)
	}

	c.HTML(http.StatusOK, "admin_highlights.html", gin.H{
		"title":      "Destacados y Valores",
		"highlights": highlights,
		"values":     companyValues,
		"icons":      view.IconOptions(),
	})
}

// ShowMessagesAdmin renders the paginated contact inbox.
func (a *API) ShowMessagesAdmin(c *gin.Context) {
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	result, err := a.inbox.List(page, service.DefaultMessagePageSize)
	if err != nil {
		log.Printf("list messages: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_messages.html", gin.H{
			"title": "Mensajes de contacto",
			"error": "No se pudieron cargar los mensajes",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_messages.html", gin.H{
		"title":       "Mensajes de contacto",
		"messages":    result.Items,
		"page":        result.Page,
		"totalPages":  result.TotalPages,
		"totalCount":  result.TotalCount,
		"unreadCount": result.UnreadCount,
	})
}
