// Package setup holds the seed-data records written by the one-time
// bootstrap.
package setup

import (
	"context"
	"strings"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
)

// FixtureRecord is one seeded reference record (an item group, a territory,
// a unit of measure, ...). Doctype + name is unique.
type FixtureRecord struct {
	shared.BaseEntity
	Doctype string `gorm:"type:varchar(140);not null;uniqueIndex:idx_fixture_doctype_name,priority:1"`
	Name    string `gorm:"type:varchar(140);not null;uniqueIndex:idx_fixture_doctype_name,priority:2"`
}

// TableName returns the table name for GORM
func (FixtureRecord) TableName() string {
	return "fixture_records"
}

// NewFixtureRecord creates a new fixture record
func NewFixtureRecord(doctype, name string) (*FixtureRecord, error) {
	doctype = strings.TrimSpace(doctype)
	name = strings.TrimSpace(name)
	if doctype == "" || name == "" {
		return nil, shared.NewDomainError("INVALID_FIXTURE", "Fixture doctype and name are required")
	}
	return &FixtureRecord{
		BaseEntity: shared.NewBaseEntity(),
		Doctype:    doctype,
		Name:       name,
	}, nil
}

// FixtureRepository defines the persistence interface for fixture records
type FixtureRepository interface {
	Exists(ctx context.Context, doctype, name string) (bool, error)
	Save(ctx context.Context, record *FixtureRecord) error
	FindByDoctype(ctx context.Context, doctype string) ([]FixtureRecord, error)
	// DeleteByDoctype removes all records of a doctype and returns how many
	// were removed
	DeleteByDoctype(ctx context.Context, doctype string) (int64, error)
}
