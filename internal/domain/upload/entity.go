package upload

import "time"

// Kind of stored file. Photos appear in property listings, documents are
// lease paperwork.
const (
	KindPhoto    = "photo"
	KindDocument = "document"
)

// Upload is a file stored on local disk. Properties and leases reference
// uploads by ID.
type Upload struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	UserID       int64     `gorm:"column:user_id;index" json:"user_id"`
	PropertyID   *int64    `gorm:"column:property_id;index" json:"property_id,omitempty"`
	Kind         string    `gorm:"column:kind" json:"kind"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	FilePath     string    `gorm:"column:file_path" json:"-"`
	FileURL      string    `gorm:"column:file_url" json:"url"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	Size         int64     `gorm:"column:size" json:"size"`
	// Document review: a manager signs off lease paperwork uploaded by a
	// tenant. Always false for photos.
	Approved   bool       `gorm:"column:approved" json:"approved"`
	ApprovedAt *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Upload) TableName() string { return "uploads" }
