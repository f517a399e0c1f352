package model

import "time"

// Settings holds the email delivery credentials. At most one record exists.
// Empty strings mean the value is not set.
type Settings struct {
	ID                string    `json:"id"`
	ResendAPIKey      string    `json:"resendApiKey"`
	NotificationEmail string    `json:"notificationEmail"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NotificationsEnabled reports whether both the API key and recipient are set.
func (s *Settings) NotificationsEnabled() bool {
	return s != nil && s.ResendAPIKey != "" && s.NotificationEmail != ""
}

// SettingsInput is the writable part of Settings.
type SettingsInput struct {
	ResendAPIKey      string `json:"resendApiKey"`
	NotificationEmail string `json:"notificationEmail" validate:"omitempty,email"`
}
