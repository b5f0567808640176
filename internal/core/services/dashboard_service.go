package services

import (
	"context"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService aggregates the counts behind the dashboard charts
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// StatusCount represents a count grouped by one enumerated value
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthCount represents loans registered in one month
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// DashboardData represents dashboard data
type DashboardData struct {
	TotalMaterials int64 `json:"total_materials"`
	TotalUsers     int64 `json:"total_users"`
	TotalLoans     int64 `json:"total_loans"`
	ActiveLoans    int64 `json:"active_loans"`
	OverdueLoans   int64 `json:"overdue_loans"`
	ReturnedLoans  int64 `json:"returned_loans"`

	MaterialsByStatus []StatusCount `json:"materials_by_status"`
	UsersByType       []StatusCount `json:"users_by_type"`
	LoansByStatus     []StatusCount `json:"loans_by_status"`
	LoansPerMonth     []MonthCount  `json:"loans_per_month"`
}

// GetDashboard builds the aggregate view consumed by the charts
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Material{}).Count(&data.TotalMaterials).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Count(&data.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Loan{}).Count(&data.TotalLoans).Error; err != nil {
		return nil, err
	}

	db.Model(&models.Loan{}).Where("loan_status = ?", domain.LoanActive).Count(&data.ActiveLoans)
	db.Model(&models.Loan{}).Where("loan_status = ?", domain.LoanOverdue).Count(&data.OverdueLoans)
	db.Model(&models.Loan{}).Where("loan_status = ?", domain.LoanReturned).Count(&data.ReturnedLoans)

	if err := db.Model(&models.Material{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&data.MaterialsByStatus).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.User{}).
		Select("user_type as status, COUNT(*) as count").
		Group("user_type").
		Scan(&data.UsersByType).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Loan{}).
		Select("loan_status as status, COUNT(*) as count").
		Group("loan_status").
		Scan(&data.LoansByStatus).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Loan{}).
		Select("DATE_FORMAT(loan_date, '%Y-%m') as month, COUNT(*) as count").
		Group("month").
		Order("month").
		Scan(&data.LoansPerMonth).Error; err != nil {
		return nil, err
	}

	return data, nil
}
