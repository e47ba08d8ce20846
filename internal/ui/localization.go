package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyFeed           = "feed"
	KeySaved          = "saved"
	KeyCart           = "cart"
	KeySettings       = "settings"
	KeyTheme          = "theme"
	KeySignOut        = "sign_out"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyComments       = "comments"
	KeyAddComment     = "add_comment"
	KeyPost           = "post"
	KeyVisitStore     = "visit_store"
	KeyAddToCart      = "add_to_cart"
	KeyAddedToCart    = "added_to_cart"
	KeyClearCart      = "clear_cart"
	KeyClearSaved     = "clear_saved"
	KeyClearProfile   = "clear_profile"
	KeyShareLink      = "share_link"
	KeyCopyLink       = "copy_link"
	KeyFeedEmpty      = "feed_empty"
	KeyFeedLoadFailed = "feed_load_failed"
	KeySaveOffline    = "save_offline"
	KeyMore           = "more"
	KeyLess           = "less"
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
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"hi": "हिन्दी",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "ReelBite",
		KeyFeed:           "Feed",
		KeySaved:          "Saved",
		KeyCart:           "Cart",
		KeySettings:       "Settings",
		KeyTheme:          "Theme",
		KeySignOut:        "Sign out",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyComments:       "Comments",
		KeyAddComment:     "Add a comment...",
		KeyPost:           "Post",
		KeyVisitStore:     "Visit store",
		KeyAddToCart:      "Add to cart",
		KeyAddedToCart:    "Added to cart",
		KeyClearCart:      "Clear cart",
		KeyClearSaved:     "Clear saved reels",
		KeyClearProfile:   "Clear profile",
		KeyShareLink:      "Share this reel",
		KeyCopyLink:       "Copy link",
		KeyFeedEmpty:      "No reels yet. Pull to refresh.",
		KeyFeedLoadFailed: "Could not load the feed",
		KeySaveOffline:    "Keep offline",
		KeyMore:           "more",
		KeyLess:           "less",
	}

	// Hindi texts
	l.texts["hi"] = map[string]string{
		KeyAppTitle:       "ReelBite",
		KeyFeed:           "फ़ीड",
		KeySaved:          "सहेजे गए",
		KeyCart:           "कार्ट",
		KeySettings:       "सेटिंग्स",
		KeyTheme:          "थीम",
		KeySignOut:        "साइन आउट",
		KeySave:           "सहेजें",
		KeyCancel:         "रद्द करें",
		KeyComments:       "टिप्पणियाँ",
		KeyAddComment:     "टिप्पणी जोड़ें...",
		KeyPost:           "पोस्ट",
		KeyVisitStore:     "स्टोर देखें",
		KeyAddToCart:      "कार्ट में डालें",
		KeyAddedToCart:    "कार्ट में जोड़ा गया",
		KeyClearCart:      "कार्ट खाली करें",
		KeyClearSaved:     "सहेजे गए रील हटाएँ",
		KeyClearProfile:   "प्रोफ़ाइल हटाएँ",
		KeyShareLink:      "यह रील साझा करें",
		KeyCopyLink:       "लिंक कॉपी करें",
		KeyFeedEmpty:      "अभी कोई रील नहीं। रीफ़्रेश करें।",
		KeyFeedLoadFailed: "फ़ीड लोड नहीं हो सकी",
		KeySaveOffline:    "ऑफ़लाइन रखें",
		KeyMore:           "और",
		KeyLess:           "कम",
	}
}
