package handler

import (
	"github.com/abcsitio/internal/cache"
	"github.com/abcsitio/internal/config"
	"github.com/abcsitio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	cfg      config.AppConfig
	settings *service.SettingService
	content  *service.ContentService
	inbox    *service.ContactService
	pages    *cache.PageCache
}

// Route sets invalidated after a successful mutation, mirroring which public
// pages read which data.
var (
	settingsRoutes   = []string{"/", "/servicios", "/nosotros", "/contacto"}
	servicesRoutes   = []string{"/", "/servicios"}
	highlightsRoutes = []string{"/", "/nosotros"}
	valuesRoutes     = []string{"/", "/nosotros"}
)

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig, pages *cache.PageCache) *API {
	return &API{
		db:       gdb,
		cfg:      cfg,
		settings: service.NewSettingService(gdb),
		content:  service.NewContentService(gdb),
		inbox:    service.NewContactService(gdb),
		pages:    pages,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// invalidate drops cached renders of the given routes. Fire-and-forget: the
// mutation that triggered it has already succeeded.
func (a *API) invalidate(routes []string) {
	if a.pages == nil {
		return
	}
	go a.pages.Invalidate(routes...)
}
