package model

// LocalizedText is one translation of a push payload.
type LocalizedText struct {
	Title string
	Body  string
}

// PushNotification targets one user when UserID is set, otherwise every user.
// Localizations is keyed by BCP 47 language code.
type PushNotification struct {
	UserID        string
	Localizations map[string]LocalizedText
	Data          map[string]string
}

type PushReceipt struct {
	Success     bool
	Message     string
	SentCount   int
	FailedCount int
}
