package postgres

import "time"

// VisitModel is one unique visitor hit; the (ip, date) unique index is the
// per-day deduplication.
type VisitModel struct {
	Id        uint   `gorm:"primaryKey"`
	VisitorIp string `gorm:"size:45;not null;uniqueIndex:idx_visits_ip_date"`
	VisitDate string `gorm:"size:10;not null;uniqueIndex:idx_visits_ip_date"`
	UserAgent string `gorm:"size:500"`
	Referer   string `gorm:"size:500"`
	CreatedAt time.Time
}

func (VisitModel) TableName() string {
	return "visitor_stats"
}
