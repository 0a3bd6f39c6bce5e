package schema

import "time"

// User represents the users table - the cached identity binding a wallet
// address to a role and a role-scoped numeric identifier. The ledger is
// authoritative for this binding; rows here are a derived copy plus the email
// captured at registration. Role and numeric identifier are immutable after
// creation.
type User struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the lower-cased wallet address (wallet identity is case-insensitive)
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:text"`
	// Email is captured at registration; it has no ledger representation
	Email string `gorm:"column:email;type:text"`
	// Role is the identity's namespace: patient, doctor or diagnostic
	Role string `gorm:"column:role;not null;type:text;uniqueIndex:udx_users_role_numeric,priority:1"`
	// NumericID is the human-facing identifier, unique within the role namespace only
	NumericID uint64 `gorm:"column:numeric_id;not null;uniqueIndex:udx_users_role_numeric,priority:2"`
	// IsActive indicates whether the identity may authenticate
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is when this identity was first registered or synced
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
