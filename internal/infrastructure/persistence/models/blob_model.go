package models

import (
	"time"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"
)

// BlobModel is the GORM database model for sealed blobs (infrastructure concern)
type BlobModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	PlainSize       int64     `gorm:"not null"`
	CipherSize      int64     `gorm:"not null"`
	Algorithm       string    `gorm:"not null;type:varchar(20)"`
	Mode            string    `gorm:"not null;type:varchar(32)"`
	Ciphertext      []byte    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BlobModel) TableName() string {
	return "sealed_blobs"
}

// ToDomain converts GORM model to domain entity
func (m *BlobModel) ToDomain() *blobs.BlobMeta {
	return &blobs.BlobMeta{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		Name:            m.Name,
		PlainSize:       m.PlainSize,
		CipherSize:      m.CipherSize,
		Algorithm:       m.Algorithm,
		Mode:            m.Mode,
	}
}

// FromDomain converts domain entity and ciphertext to GORM model
func (m *BlobModel) FromDomain(b *blobs.BlobMeta, ciphertext []byte) {
	m.ID = b.ID
	m.DateTimeCreated = b.DateTimeCreated
	m.Name = b.Name
	m.PlainSize = b.PlainSize
	m.CipherSize = b.CipherSize
	m.Algorithm = b.Algorithm
	m.Mode = b.Mode
	m.Ciphertext = ciphertext
}
