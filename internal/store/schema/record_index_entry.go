package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RecordIndexEntry represents the record_index_entries table - the searchable
// projection of a medical record registered on the ledger. Only metadata and
// the content identifier are mirrored; the clinical payload stays in the
// content store. Entries are immutable once created except for the searchable
// projection, which may be recomputed.
type RecordIndexEntry struct {
	// RecordID is the ledger-assigned record identifier
	RecordID uint64 `gorm:"column:record_id;primaryKey"`
	// PatientWallet is the lower-cased wallet of the record's subject
	PatientWallet string `gorm:"column:patient_wallet;not null;type:text;index:idx_record_index_patient"`
	// PatientNumericID is the subject's numeric identifier, nil when the
	// patient was not yet cached at indexing time
	PatientNumericID *uint64 `gorm:"column:patient_numeric_id"`
	// CreatorWallet is the wallet that registered the record on the ledger
	CreatorWallet string `gorm:"column:creator_wallet;not null;type:text;index:idx_record_index_creator"`
	// CID is the content identifier addressing the encrypted payload
	CID string `gorm:"column:cid;not null;type:text"`
	// RecordType classifies the record (e.g. "lab-report", "prescription")
	RecordType string `gorm:"column:record_type;not null;default:'general';type:text"`
	// Metadata is the structured metadata document registered with the record
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// SearchableText is derived deterministically from Metadata
	SearchableText string `gorm:"column:searchable_text;type:text;index:idx_record_index_search"`
	// CreatedAt is the ledger-side registration time
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
	// IndexedAt is when this entry was mirrored into the cache
	IndexedAt time.Time `gorm:"column:indexed_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RecordIndexEntry model
func (RecordIndexEntry) TableName() string {
	return "record_index_entries"
}
