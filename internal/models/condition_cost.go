package models

import "time"

// ConditionCost holds the configurable repair unit cost per condition type,
// used by the analytics cost estimate. Values are currency-agnostic units.
type ConditionCost struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ConditionType ConditionType `gorm:"size:50;not null;uniqueIndex" json:"condition_type"`
	UnitCost      int64         `gorm:"not null" json:"unit_cost"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (ConditionCost) TableName() string {
	return "condition_costs"
}

// DefaultUnitCost is applied to condition types without a configured row.
const DefaultUnitCost int64 = 5000

// DefaultConditionCosts seeds the cost table on first boot.
var DefaultConditionCosts = map[ConditionType]int64{
	ConditionPothole:         5000,
	ConditionDamagedPavement: 10000,
	ConditionFlooding:        15000,
	ConditionPoorDrainage:    20000,
	ConditionDebris:          2000,
}
