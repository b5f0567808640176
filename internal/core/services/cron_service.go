package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled jobs: the nightly sweep that marks
// Active loans past their return date as Overdue.
type CronService struct {
	cron        *cron.Cron
	loanService *LoanService
}

// NewCronService creates a new cron service
func NewCronService(loanService *LoanService) *CronService {
	return &CronService{
		cron:        cron.New(),
		loanService: loanService,
	}
}

// Start schedules and launches the cron jobs
func (s *CronService) Start() {
	// Overdue sweep runs daily at 00:05
	_, err := s.cron.AddFunc("5 0 * * *", s.sweepOverdue)
	if err != nil {
		log.Printf("❌ Failed to schedule overdue sweep: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 CronService started (overdue sweep at 00:05 daily)")
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) sweepOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	affected, err := s.loanService.MarkOverdue(ctx)
	if err != nil {
		log.Printf("❌ Overdue sweep error: %v", err)
		return
	}

	if affected > 0 {
		log.Printf("⏰ Marked %d loans as overdue", affected)
	}
}
