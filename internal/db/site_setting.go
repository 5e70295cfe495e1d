package db

import "time"

// SiteSetting stores one editable text fragment shown on the public pages.
// Rows are seeded at startup; the admin UI only ever updates Value.
// Group partitions entries for the editing UI and carries no access-control
// meaning.
type SiteSetting struct {
	ID        string `gorm:"primaryKey;size:36"`
	Key       string `gorm:"size:100;uniqueIndex;not null"`
	Value     string `gorm:"type:text"`
	Label     string `gorm:"size:150;not null"`
	Group     string `gorm:"size:50;not null;column:group_name;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name aligned with the hosted schema.
func (SiteSetting) TableName() string {
	return "site_settings"
}

// Setting groups.
const (
	SettingGroupHome    = "home"
	SettingGroupAbout   = "about"
	SettingGroupContact = "contact"
	SettingGroupFooter  = "footer"
)

// Setting keys.
const (
	SettingKeyHeroTitle      = "hero_title"
	SettingKeyHeroSubtitle   = "hero_subtitle"
	SettingKeyAboutTitle     = "about_header_title"
	SettingKeyAboutSubtitle  = "about_header_subtitle"
	SettingKeyMissionTitle   = "mission_title"
	SettingKeyMissionContent = "mission_content"
	SettingKeyVisionTitle    = "vision_title"
	SettingKeyVisionContent  = "vision_content"
	SettingKeyContactAddress = "contact_address"
	SettingKeyContactPhone1  = "contact_phone_1"
	SettingKeyContactPhone2  = "contact_phone_2"
	SettingKeyContactEmail   = "contact_email"
	SettingKeyAttentionHours = "attention_hours"
	SettingKeyFooterText     = "footer_text"
)

// SettingDefinition describes a seedable settings row.
type SettingDefinition struct {
	Key   string
	Label string
	Group string
}

// SettingDefinitions lists every settings row the site knows about, in the
// order the admin UI presents them.
var SettingDefinitions = []SettingDefinition{
	{Key: SettingKeyHeroTitle, Label: "Título principal (Hero)", Group: SettingGroupHome},
	{Key: SettingKeyHeroSubtitle, Label: "Subtítulo principal (Hero)", Group: SettingGroupHome},
	{Key: SettingKeyAboutTitle, Label: "Título de la página Nosotros", Group: SettingGroupAbout},
	{Key: SettingKeyAboutSubtitle, Label: "Subtítulo de la página Nosotros", Group: SettingGroupAbout},
	{Key: SettingKeyMissionTitle, Label: "Título de la Misión", Group: SettingGroupAbout},
	{Key: SettingKeyMissionContent, Label: "Texto de la Misión", Group: SettingGroupAbout},
	{Key: SettingKeyVisionTitle, Label: "Título de la Visión", Group: SettingGroupAbout},
	{Key: SettingKeyVisionContent, Label: "Texto de la Visión", Group: SettingGroupAbout},
	{Key: SettingKeyContactAddress, Label: "Dirección", Group: SettingGroupContact},
	{Key: SettingKeyContactPhone1, Label: "Teléfono principal", Group: SettingGroupContact},
	{Key: SettingKeyContactPhone2, Label: "Teléfono secundario", Group: SettingGroupContact},
	{Key: SettingKeyContactEmail, Label: "Correo de contacto", Group: SettingGroupContact},
	{Key: SettingKeyAttentionHours, Label: "Horario de atención", Group: SettingGroupContact},
	{Key: SettingKeyFooterText, Label: "Texto del pie de página", Group: SettingGroupFooter},
}
