package schema

import "time"

// AccessLog represents the access_logs table - an append-only audit trail of
// who touched which record. Rows are write-once and never consulted for
// authorization decisions. Keys are ULIDs so the log sorts by insertion time.
type AccessLog struct {
	// ID is a ULID assigned at append time
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// RecordID is the record that was accessed; 0 for record-independent
	// actions such as search
	RecordID uint64 `gorm:"column:record_id;index:idx_access_logs_record"`
	// AccessorWallet is the lower-cased wallet of the accessor
	AccessorWallet string `gorm:"column:accessor_wallet;not null;type:text;index:idx_access_logs_accessor"`
	// AccessorRole is the accessor's role at the time of access
	AccessorRole string `gorm:"column:accessor_role;type:text"`
	// Action is what happened: "view", "search", "upload", "grant", "revoke"
	Action string `gorm:"column:action;not null;type:text"`
	// Origin records where the access came from (client IP or service name)
	Origin string `gorm:"column:origin;type:text"`
	// CreatedAt is the append timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AccessLog model
func (AccessLog) TableName() string {
	return "access_logs"
}
