package postgres

import (
	"errors"

	"github.com/thehfpv/backend/internal/domain/entities"
	"github.com/thehfpv/backend/internal/domain/repositories"
	"gorm.io/gorm"
)

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) repositories.VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Record(visit *entities.Visit) (bool, error) {
	model := VisitModel{
		VisitorIp: visit.VisitorIp,
		VisitDate: visit.VisitDate,
		UserAgent: visit.UserAgent,
		Referer:   visit.Referer,
		CreatedAt: visit.CreatedAt,
	}

	if err := r.db.Create(&model).Error; err != nil {
		// A repeat visit from the same IP on the same day is not an error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *VisitRepository) CountByDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&VisitModel{}).Where("visit_date = ?", date).Count(&count).Error
	return count, err
}

func (r *VisitRepository) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&VisitModel{}).Distinct("visitor_ip").Count(&count).Error
	return count, err
}
