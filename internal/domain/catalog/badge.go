package catalog

import (
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
)

// Badge sources. Automatic badges are managed by the recompute job; manual
// badges are set by users and never touched by automation.
const (
	BadgeSourceAuto   = "Auto"
	BadgeSourceManual = "Manual"
)

// Automatic badge types
const (
	BadgeTypeNew        = "New"
	BadgeTypeBestseller = "Bestseller"
	BadgeTypeOnSale     = "On Sale"
	BadgeTypeLowStock   = "Low Stock"
)

// AutoBadgeTypes returns all badge types managed by the recompute job
func AutoBadgeTypes() []string {
	return []string{BadgeTypeNew, BadgeTypeBestseller, BadgeTypeOnSale, BadgeTypeLowStock}
}

// ItemBadge is a badge row on an Item, shown on product cards.
type ItemBadge struct {
	shared.BaseEntity
	ItemCode  string     `gorm:"type:varchar(140);not null;index"`
	BadgeType string     `gorm:"type:varchar(140);not null"`
	Source    string     `gorm:"type:varchar(20);not null;default:'Manual'"`
	ValidFrom *time.Time `gorm:"type:date"`
	ValidUpto *time.Time `gorm:"type:date"`
	Idx       int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ItemBadge) TableName() string {
	return "item_badges"
}

// NewAutoBadge creates an automatic badge row
func NewAutoBadge(itemCode, badgeType string, idx int) ItemBadge {
	return ItemBadge{
		BaseEntity: shared.NewBaseEntity(),
		ItemCode:   itemCode,
		BadgeType:  badgeType,
		Source:     BadgeSourceAuto,
		Idx:        idx,
	}
}

// NewManualBadge creates a user-managed badge row with an optional validity window
func NewManualBadge(itemCode, badgeType string, validFrom, validUpto *time.Time, idx int) ItemBadge {
	return ItemBadge{
		BaseEntity: shared.NewBaseEntity(),
		ItemCode:   itemCode,
		BadgeType:  badgeType,
		Source:     BadgeSourceManual,
		ValidFrom:  validFrom,
		ValidUpto:  validUpto,
		Idx:        idx,
	}
}

// IsActiveOn reports whether the badge is active on the given date.
// Each bound of the validity window is optional.
func (b ItemBadge) IsActiveOn(on time.Time) bool {
	day := on.Truncate(24 * time.Hour)
	if b.ValidFrom != nil && day.Before(b.ValidFrom.Truncate(24*time.Hour)) {
		return false
	}
	if b.ValidUpto != nil && day.After(b.ValidUpto.Truncate(24*time.Hour)) {
		return false
	}
	return true
}
