package handler

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/abcsitio/internal/db"
	"github.com/abcsitio/internal/service"
	"github.com/abcsitio/internal/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const msgContactSubmitFailed = "Ocurrió un error al enviar el mensaje. Por favor intente más tarde."
const msgContactFieldsRequired = "Todos los campos son obligatorios."
const msgContactThanks = "Gracias por su mensaje. Nos pondremos en contacto pronto."

// contentView is a ContentItem prepared for templates, with the icon
// identifier resolved to inline SVG.
type contentView struct {
	Title       string
	Description string
	Icon        template.HTML
}

func toContentViews(items []service.ContentItem) []contentView {
	views := make([]contentView, 0, len(items))
	for _, item := range items {
		views = append(views, contentView{
			Title:       item.Title,
			Description: item.Description,
			Icon:        template.HTML(view.IconSVG(item.IconName)),
		})
	}
	return views
}

// renderMarkdown converts long-form setting text to sanitized HTML.
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// footerText resolves the footer copy shared by every public page.
func (a *API) footerText() string {
	values, err := a.settings.GetSettings(db.SettingGroupFooter)
	if err != nil {
		log.Printf("load footer settings: %v", err)
		values = map[string]string{}
	}
	return service.Resolve(values, db.SettingKeyFooterText)
}

// ShowHome renders the landing page: hero settings, highlights and the
// featured active services preview.
func (a *API) ShowHome(c *gin.Context) {
	values, err := a.settings.GetSettings(db.SettingGroupHome)
	if err != nil {
		log.Printf("load home settings: %v", err)
		values = map[string]string{}
	}

	highlights, err := a.content.List(service.CollectionHighlights)
	if err != nil {
		log.Printf("load highlights: %v", err)
	}

	active, featured := true, true
	featuredServices, err := a.content.ListServices(service.ServiceFilter{Active: &active, Featured: &featured})
	if err != nil {
		log.Printf("load featured services: %v", err)
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":        service.Resolve(values, db.SettingKeyHeroTitle),
		"heroTitle":    service.Resolve(values, db.SettingKeyHeroTitle),
		"heroSubtitle": service.Resolve(values, db.SettingKeyHeroSubtitle),
		"highlights":   toContentViews(highlights),
		"services":     toContentViews(featuredServices),
		"footerText":   a.footerText(),
	})
}

// ShowServices renders the full portfolio of active services.
func (a *API) ShowServices(c *gin.Context) {
	active := true
	items, err := a.content.ListServices(service.ServiceFilter{Active: &active})
	if err != nil {
		log.Printf("load services: %v", err)
	}

	c.HTML(http.StatusOK, "services.html", gin.H{
		"title":      "Nuestros Servicios",
		"services":   toContentViews(items),
		"footerText": a.footerText(),
	})
}

// ShowAbout renders the company page: header, mission, vision and values.
func (a *API) ShowAbout(c *gin.Context) {
	values, err := a.settings.GetSettings(db.SettingGroupAbout)
	if err != nil {
		log.Printf("load about settings: %v", err)
		values = map[string]string{}
	}

	companyValues, err := a.content.List(service.CollectionValues)
	if err != nil {
		log.Printf("load company values: %v", err)
	}

	c.HTML(http.StatusOK, "about.html", gin.H{
		"title":          service.Resolve(values, db.SettingKeyAboutTitle),
		"headerTitle":    service.Resolve(values, db.SettingKeyAboutTitle),
		"headerSubtitle": service.Resolve(values, db.SettingKeyAboutSubtitle),
		"missionTitle":   service.Resolve(values, db.SettingKeyMissionTitle),
		"missionContent": renderMarkdown(service.Resolve(values, db.SettingKeyMissionContent)),
		"visionTitle":    service.Resolve(values, db.SettingKeyVisionTitle),
		"visionContent":  renderMarkdown(service.Resolve(values, db.SettingKeyVisionContent)),
		"values":         toContentViews(companyValues),
		"footerText":     a.footerText(),
	})
}

// ShowContact renders the contact page with the contact settings and form.
func (a *API) ShowContact(c *gin.Context) {
	values, err := a.settings.GetSettings(db.SettingGroupContact)
	if err != nil {
		log.Printf("load contact settings: %v", err)
		values = map[string]string{}
	}

	session := sessions.Default(c)
	flashes := session.Flashes()
	session.Save()

	var notice string
	if len(flashes) > 0 {
		if text, ok := flashes[0].(string); ok {
			notice = text
		}
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title":      "Contacto",
		"address":    service.Resolve(values, db.SettingKeyContactAddress),
		"phone1":     service.Resolve(values, db.SettingKeyContactPhone1),
		"phone2":     service.Resolve(values, db.SettingKeyContactPhone2),
		"email":      service.Resolve(values, db.SettingKeyContactEmail),
		"hours":      service.Resolve(values, db.SettingKeyAttentionHours),
		"notice":     notice,
		"footerText": a.footerText(),
	})
}

// SubmitContact stores a contact form submission. Validation failures get a
// specific message; data-layer failures are logged in full and reported with
// a generic message that never leaks internal detail to the public caller.
func (a *API) SubmitContact(c *gin.Context) {
	input := service.ContactInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	session := sessions.Default(c)
	if _, err := a.inbox.Submit(input); err != nil {
		if err == service.ErrFieldsRequired {
			session.AddFlash(msgContactFieldsRequired)
		} else {
			log.Printf("contact submission failed: %v", err)
			session.AddFlash(msgContactSubmitFailed)
		}
		session.Save()
		c.Redirect(http.StatusFound, "/contacto")
		return
	}

	session.AddFlash(msgContactThanks)
	session.Save()
	c.Redirect(http.StatusFound, "/contacto")
}
