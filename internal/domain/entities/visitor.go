package entities

import "time"

// Visit is one unique visitor hit: the same IP on the same calendar day is
// recorded at most once.
type Visit struct {
	Id        uint
	VisitorIp string
	VisitDate string // YYYY-MM-DD
	UserAgent string
	Referer   string
	CreatedAt time.Time
}

func NewVisit(ip, userAgent, referer string, at time.Time) *Visit {
	return &Visit{
		VisitorIp: ip,
		VisitDate: at.Format("2006-01-02"),
		UserAgent: userAgent,
		Referer:   referer,
		CreatedAt: at,
	}
}
