package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/ytget/qr-gallery/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyEnterText           = "enter_text"
	KeyExportHeader        = "export_header"
	KeySave                = "save"
	KeySettings            = "settings"
	KeyInfo                = "info"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyOpen                = "open"
	KeyOK                  = "ok"
	KeyExporting           = "exporting"
	KeyTextTooLong         = "text_too_long"
	KeyErrorTitle          = "error_title"
	KeyMissingReference    = "missing_reference"
	KeyAccessDeniedTitle   = "access_denied_title"
	KeyAccessDenied        = "access_denied"
	KeySuccessTitle        = "success_title"
	KeySaved               = "saved"
	KeySaveFailed          = "save_failed"
	KeyPermissionTitle     = "permission_title"
	KeyPermissionPrompt    = "permission_prompt"
	KeyPermissionAllow     = "permission_allow"
	KeyPermissionDontAllow = "permission_dont_allow"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage returns the two letter code of the OS locale
func systemLanguage() string {
	locale := strings.ToLower(lang.SystemLocale().LanguageString())
	if len(locale) >= 2 {
		return locale[:2]
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// NoticeText returns the dialog title and message for an export notice
func (l *Localization) NoticeText(kind model.NoticeKind) (title, message string) {
	switch kind {
	case model.NoticeMissingReference:
		return l.GetText(KeyErrorTitle), l.GetText(KeyMissingReference)
	case model.NoticePermissionDenied:
		return l.GetText(KeyAccessDeniedTitle), l.GetText(KeyAccessDenied)
	case model.NoticeSuccess:
		return l.GetText(KeySuccessTitle), l.GetText(KeySaved)
	default:
		return l.GetText(KeyErrorTitle), l.GetText(KeySaveFailed)
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "QR Gallery",
		KeyEnterText:           "Enter here your Text...",
		KeyExportHeader:        "Export",
		KeySave:                "Save",
		KeySettings:            "Settings",
		KeyInfo:                "Info",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyOpen:                "Open",
		KeyOK:                  "OK",
		KeyExporting:           "Saving QR code...",
		KeyTextTooLong:         "Text is too long for a QR code",
		KeyErrorTitle:          "Error",
		KeyMissingReference:    "QR code reference not found.",
		KeyAccessDeniedTitle:   "Access denied",
		KeyAccessDenied:        "Access to the media library denied!",
		KeySuccessTitle:        "Success",
		KeySaved:               "QR code was saved to the gallery!",
		KeySaveFailed:          "QR code could not be saved.",
		KeyPermissionTitle:     "Media library",
		KeyPermissionPrompt:    "Allow QR Gallery to save images to your photo gallery?",
		KeyPermissionAllow:     "Allow",
		KeyPermissionDontAllow: "Don't allow",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:            "QR Galerie",
		KeyEnterText:           "Text hier eingeben...",
		KeyExportHeader:        "Export",
		KeySave:                "Speichern",
		KeySettings:            "Einstellungen",
		KeyInfo:                "Info",
		KeyFile:                "Datei",
		KeyLanguage:            "Sprache",
		KeyOpen:                "Öffnen",
		KeyOK:                  "OK",
		KeyExporting:           "QR-Code wird gespeichert...",
		KeyTextTooLong:         "Text ist zu lang für einen QR-Code",
		KeyErrorTitle:          "Fehler",
		KeyMissingReference:    "QR-Code-Referenz nicht gefunden.",
		KeyAccessDeniedTitle:   "Zugang verweigert",
		KeyAccessDenied:        "Zugriff auf die Mediathek verweigert!",
		KeySuccessTitle:        "Erfolg",
		KeySaved:               "QR-Code wurde in der Galerie gespeichert!",
		KeySaveFailed:          "QR-Code konnte nicht gespeichert werden.",
		KeyPermissionTitle:     "Mediathek",
		KeyPermissionPrompt:    "Darf QR Galerie Bilder in Ihrer Galerie speichern?",
		KeyPermissionAllow:     "Erlauben",
		KeyPermissionDontAllow: "Nicht erlauben",
	}
}
