package domain

import "time"

// UserProfile is per-user state, independent of any conversation. It is
// created lazily on first write and overwritten field-by-field as the
// bug-report flow completes. A nil CallbackTime means "not yet supplied".
type UserProfile struct {
	Name         string     `json:"name,omitempty"          mapstructure:"name"`
	Description  string     `json:"description,omitempty"   mapstructure:"description"`
	CallbackTime *time.Time `json:"callback_time,omitempty" mapstructure:"callback_time"`
	PhoneNumber  string     `json:"phone_number,omitempty"  mapstructure:"phone_number"`
	Bug          string     `json:"bug,omitempty"           mapstructure:"bug"`
}
