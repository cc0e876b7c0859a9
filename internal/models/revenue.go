package models

// Revenue is a standalone fact table keyed by month code ("Jan".."Dec").
// It has no relation to invoices.
type Revenue struct {
	Month   string `gorm:"size:4;primaryKey" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}

func (Revenue) TableName() string {
	return "revenue"
}
