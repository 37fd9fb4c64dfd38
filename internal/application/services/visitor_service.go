package services

import (
	"context"
	"time"

	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/application/query"
	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"github.com/thehfpv/backend/internal/logging"
)

type VisitorService struct {
	visitRepo repositories.VisitRepository
	log       logging.Logger
}

func NewVisitorService(visitRepo repositories.VisitRepository, log logging.Logger) interfaces.VisitorService {
	return &VisitorService{visitRepo: visitRepo, log: log}
}

// Track records the visit; repeat hits from the same IP on the same day are
// silently ignored.
func (s *VisitorService) Track(ctx context.Context, ip, userAgent, referer string) error {
	visit := entities.NewVisit(ip, userAgent, referer, time.Now())
	recorded, err := s.visitRepo.Record(visit)
	if err != nil {
		return err
	}
	if recorded {
		s.log.Info(ctx, "new unique visitor", "ip", ip, "date", visit.VisitDate)
	}
	return nil
}

func (s *VisitorService) Stats(ctx context.Context) (*query.VisitorStatsResult, error) {
	today := time.Now().Format("2006-01-02")

	todayCount, err := s.visitRepo.CountByDate(today)
	if err != nil {
		return nil, err
	}
	totalCount, err := s.visitRepo.CountTotal()
	if err != nil {
		return nil, err
	}

	return &query.VisitorStatsResult{
		TodayVisitors: todayCount,
		TotalVisitors: totalCount,
	}, nil
}
