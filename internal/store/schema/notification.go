package schema

import "time"

// Notification represents the notifications table. Rows are mutable only on
// the is_read false-to-true transition.
type Notification struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RecipientWallet is the lower-cased wallet of the recipient
	RecipientWallet string `gorm:"column:recipient_wallet;not null;type:text;index:idx_notifications_recipient"`
	// Title is a short human-readable headline
	Title string `gorm:"column:title;not null;type:text"`
	// Message is the notification body
	Message string `gorm:"column:message;type:text"`
	// Type classifies the notification (e.g. "access_granted", "profile_update")
	Type string `gorm:"column:type;not null;type:text"`
	// RelatedRecordID links the notification to a record when applicable
	RelatedRecordID *uint64 `gorm:"column:related_record_id"`
	// IsRead transitions false to true exactly once
	IsRead bool `gorm:"column:is_read;not null;default:false"`
	// CreatedAt is the creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
