package service

import (
	"fmt"

	"github.com/abcsitio/internal/db"
	"gorm.io/gorm"
)

// Defaults holds the fallback copy for every settings key. Public pages
// resolve absent or empty values against this table at the call site so the
// fallbacks stay in one testable place instead of scattered through
// templates.
var Defaults = map[string]string{
	db.SettingKeyHeroTitle:      "Su Patrimonio en las Mejores Manos",
	db.SettingKeyHeroSubtitle:   "Gestión profesional de propiedad horizontal en Colombia. Garantizamos transparencia, seguridad y valorización para su conjunto residencial o edificio corporativo.",
	db.SettingKeyAboutTitle:     "Nuestra Empresa",
	db.SettingKeyAboutSubtitle:  "Somos una empresa joven y dinámica, con 9 años de experiencia dedicados a transformar la administración de propiedad horizontal en Colombia.",
	db.SettingKeyMissionTitle:   "Misión",
	db.SettingKeyMissionContent: "Prestar servicios especializados en la administración integral de propiedad horizontal, garantizando el buen funcionamiento, la conservación y la valorización del patrimonio, bajo indicadores de gestión y una vocación de servicio social y ambiental.",
	db.SettingKeyVisionTitle:    "Visión (2030)",
	db.SettingKeyVisionContent:  "Ser reconocidos a nivel nacional como líderes en el manejo integral de propiedad horizontal, destacándonos por la idoneidad de nuestro talento humano, la eficiencia de nuestros procesos y nuestro firme compromiso con la sostenibilidad.",
	db.SettingKeyContactAddress: "Av. Calle 34 # 24 – 05 Of 206, Bogotá, Colombia",
	db.SettingKeyContactPhone1:  "310 297 1834",
	db.SettingKeyContactPhone2:  "",
	db.SettingKeyContactEmail:   "gerencia@abcpropiedadhorizontal.com",
	db.SettingKeyAttentionHours: "Lunes a Viernes: 8:00 AM - 5:00 PM | Sábados: 8:00 AM - 12:00 PM",
	db.SettingKeyFooterText:     "Grupo ABC Propiedad Horizontal SAS BIC. Todos los derechos reservados.",
}

// Resolve returns the stored value for key, falling back to the defaults
// table when the key is absent or empty.
func Resolve(values map[string]string, key string) string {
	if v, ok := values[key]; ok && v != "" {
		return v
	}
	return Defaults[key]
}

// SettingUpdate is one key/value pair of a batch save.
type SettingUpdate struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SettingService reads and updates the site settings store.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService returns a new SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// GetSettings returns a key→value mapping for the given groups, or for every
// group when none is given. Keys without a stored row are simply absent from
// the result; an empty store yields an empty map, never an error.
func (s *SettingService) GetSettings(groups ...string) (map[string]string, error) {
	query := s.db.Model(&db.SiteSetting{})
	if len(groups) > 0 {
		query = query.Where("group_name IN ?", groups)
	}

	var rows []db.SiteSetting
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load site settings: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// ListEntries returns the full settings rows ordered by group then key for
// the admin editing UI.
func (s *SettingService) ListEntries() ([]db.SiteSetting, error) {
	var rows []db.SiteSetting
	if err := s.db.Order("group_name ASC, key ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list site settings: %w", err)
	}
	return rows, nil
}

// SaveSettings applies a batch of value updates as independent single-row
// writes: best effort, first error wins. There is deliberately no
// transaction around the batch, so a failure mid-sequence leaves earlier
// entries applied; each write is idempotent so retrying is safe. Keys
// without a stored row update zero rows and are silent no-ops, never
// created.
func (s *SettingService) SaveSettings(entries []SettingUpdate) error {
	for _, entry := range entries {
		err := s.db.Model(&db.SiteSetting{}).
			Where("key = ?", entry.Key).
			Update("value", entry.Value).Error
		if err != nil {
			return fmt.Errorf("save setting %s: %w", entry.Key, err)
		}
	}
	return nil
}
