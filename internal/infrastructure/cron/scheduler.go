package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"gamification-service/internal/domain/service"
	infraredis "gamification-service/internal/infrastructure/redis"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

// eveningHour mirrors the notifier's risk window; the guard is only claimed
// once a scan can actually emit
const eveningHour = 20

// Scheduler runs the recurring gamification jobs: seeding the daily challenge
// catalog and scanning for streaks at risk.
type Scheduler struct {
	gamificationService service.GamificationService
	reminderGuard       *infraredis.ReminderGuard
	cron                *cron.Cron
	challengeSpec       string
	reminderSpec        string
}

// NewScheduler creates a new scheduler. Cron specs use the standard 5-field
// format, e.g. "5 0 * * *" for challenge seeding and "0 * * * *" for the
// hourly risk scan.
func NewScheduler(
	gamificationService service.GamificationService,
	reminderGuard *infraredis.ReminderGuard,
	challengeSpec, reminderSpec string,
) *Scheduler {
	return &Scheduler{
		gamificationService: gamificationService,
		reminderGuard:       reminderGuard,
		cron:                cron.New(),
		challengeSpec:       challengeSpec,
		reminderSpec:        reminderSpec,
	}
}

// Start registers the jobs and starts the scheduler
func (s *Scheduler) Start() error {
	log.Printf("Starting scheduler (challenges: %q, reminders: %q)", s.challengeSpec, s.reminderSpec)

	if _, err := s.cron.AddFunc(s.challengeSpec, s.seedDailyChallenges); err != nil {
		return fmt.Errorf("failed to add challenge job: %w", err)
	}

	if _, err := s.cron.AddFunc(s.reminderSpec, s.scanStreaksAtRisk); err != nil {
		return fmt.Errorf("failed to add reminder job: %w", err)
	}

	s.cron.Start()
	log.Println("Scheduler started successfully")

	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

// seedDailyChallenges makes sure today's challenge instances exist
func (s *Scheduler) seedDailyChallenges() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	challenges, err := s.gamificationService.EnsureDailyChallenges(ctx)
	if err != nil {
		log.Printf("Error seeding daily challenges: %v", err)
		return
	}

	log.Printf("Daily challenges ready (%d for today)", len(challenges))
}

// scanStreaksAtRisk runs the evening streak-risk scan. The notifier emits on
// every call, so the redis guard limits the scan to once per day.
func (s *Scheduler) scanStreaksAtRisk() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	now := time.Now().UTC()
	if now.Hour() < eveningHour {
		return
	}

	if s.reminderGuard != nil {
		claimed, err := s.reminderGuard.ClaimScan(ctx, now)
		if err != nil {
			log.Printf("Error claiming risk scan: %v", err)
			return
		}
		if !claimed {
			return
		}
	}

	notifications, err := s.gamificationService.NotifyStreaksAtRisk(ctx)
	if err != nil {
		log.Printf("Error scanning streaks at risk: %v", err)
		if s.reminderGuard != nil {
			if relErr := s.reminderGuard.ReleaseScan(ctx, now); relErr != nil {
				log.Printf("Error releasing risk scan: %v", relErr)
			}
		}
		return
	}

	log.Printf("Risk scan complete, created %d streak reminders", len(notifications))
}
