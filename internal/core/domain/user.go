package domain

// NotificationPreferences are the channels a user has opted into.
type NotificationPreferences struct {
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
	Email    bool `json:"email"`
}

// User is a read-only projection of a marketplace user (tenant or owner).
type User struct {
	UserID      string                  `json:"userID"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone"`
	Preferences NotificationPreferences `json:"notificationPreferences"`
}
