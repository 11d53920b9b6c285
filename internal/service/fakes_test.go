package service

import (
	"context"
	"sort"
	"time"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests.

type fakeHabitRepo struct {
	habits map[uuid.UUID]*entity.Habit
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: make(map[uuid.UUID]*entity.Habit)}
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	r.habits[habit.ID] = habit
	return nil
}

func (r *fakeHabitRepo) GetByID(_ context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	return r.habits[habitID], nil
}

func (r *fakeHabitRepo) GetByIDAndUserID(_ context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, ok := r.habits[habitID]
	if !ok || habit.UserID != userID {
		return nil, nil
	}
	return habit, nil
}

func (r *fakeHabitRepo) GetByUserID(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for _, h := range r.habits {
		if h.UserID != userID {
			continue
		}
		if activeOnly && !h.IsActive {
			continue
		}
		habits = append(habits, h)
	}
	return habits, nil
}

func (r *fakeHabitRepo) GetActiveWithStreak(_ context.Context) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for _, h := range r.habits {
		if h.IsActive && h.CurrentStreak > 0 {
			habits = append(habits, h)
		}
	}
	return habits, nil
}

func (r *fakeHabitRepo) UpdateStreaks(_ context.Context, habitID uuid.UUID, currentStreak, longestStreak int32) error {
	habit := r.habits[habitID]
	habit.CurrentStreak = currentStreak
	if longestStreak > habit.LongestStreak {
		habit.LongestStreak = longestStreak
	}
	return nil
}

func (r *fakeHabitRepo) IncrementCompletions(_ context.Context, habitID uuid.UUID, delta int32) error {
	r.habits[habitID].TotalCompletions += delta
	return nil
}

type fakeCompletionRepo struct {
	completions []*entity.HabitCompletion
}

func (r *fakeCompletionRepo) Create(_ context.Context, completion *entity.HabitCompletion) error {
	r.completions = append(r.completions, completion)
	return nil
}

func (r *fakeCompletionRepo) GetByHabitIDSince(_ context.Context, habitID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error) {
	var result []*entity.HabitCompletion
	for _, c := range r.completions {
		if c.HabitID == habitID && !c.CompletedAt.Before(since) {
			result = append(result, c)
		}
	}
	sortCompletions(result)
	return result, nil
}

func (r *fakeCompletionRepo) GetByUserIDSince(_ context.Context, userID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error) {
	var result []*entity.HabitCompletion
	for _, c := range r.completions {
		if c.UserID == userID && !c.CompletedAt.Before(since) {
			result = append(result, c)
		}
	}
	sortCompletions(result)
	return result, nil
}

func (r *fakeCompletionRepo) ExistsForHabitBetween(_ context.Context, habitID uuid.UUID, from, to time.Time) (bool, error) {
	for _, c := range r.completions {
		if c.HabitID == habitID && !c.CompletedAt.Before(from) && c.CompletedAt.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompletionRepo) CountByHabitID(_ context.Context, habitID uuid.UUID) (int32, error) {
	var count int32
	for _, c := range r.completions {
		if c.HabitID == habitID {
			count++
		}
	}
	return count, nil
}

func sortCompletions(completions []*entity.HabitCompletion) {
	sort.Slice(completions, func(i, j int) bool {
		return completions[i].CompletedAt.Before(completions[j].CompletedAt)
	})
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uuid.UUID) (*entity.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	// Return a copy so callers observe persisted state, not shared memory
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) AddPoints(_ context.Context, userID uuid.UUID, delta int32) error {
	r.users[userID].TotalPoints += delta
	return nil
}

func (r *fakeUserRepo) UpdateLevel(_ context.Context, userID uuid.UUID, level int32) error {
	r.users[userID].Level = level
	return nil
}

type fakeBadgeRepo struct {
	catalog    map[string]*entity.Badge
	userBadges []*entity.UserBadge
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{catalog: make(map[string]*entity.Badge)}
}

func (r *fakeBadgeRepo) FindOrCreateByName(_ context.Context, badge *entity.Badge) (*entity.Badge, error) {
	if existing, ok := r.catalog[badge.Name]; ok {
		return existing, nil
	}
	copied := *badge
	r.catalog[badge.Name] = &copied
	return &copied, nil
}

func (r *fakeBadgeRepo) UserHasBadge(_ context.Context, userID uuid.UUID, name string) (bool, error) {
	badge, ok := r.catalog[name]
	if !ok {
		return false, nil
	}
	for _, ub := range r.userBadges {
		if ub.UserID == userID && ub.BadgeID == badge.ID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBadgeRepo) CreateUserBadge(_ context.Context, userBadge *entity.UserBadge) (bool, error) {
	for _, ub := range r.userBadges {
		if ub.UserID == userBadge.UserID && ub.BadgeID == userBadge.BadgeID {
			return false, nil
		}
	}
	r.userBadges = append(r.userBadges, userBadge)
	return true, nil
}

func (r *fakeBadgeRepo) GetUserBadges(_ context.Context, userID uuid.UUID) ([]*entity.UserBadge, error) {
	var result []*entity.UserBadge
	for _, ub := range r.userBadges {
		if ub.UserID == userID {
			result = append(result, ub)
		}
	}
	return result, nil
}

type fakeChallengeRepo struct {
	challenges []*entity.DailyChallenge
}

func (r *fakeChallengeRepo) Create(_ context.Context, challenge *entity.DailyChallenge) error {
	r.challenges = append(r.challenges, challenge)
	return nil
}

func (r *fakeChallengeRepo) GetByDateRange(_ context.Context, from, to time.Time) ([]*entity.DailyChallenge, error) {
	var result []*entity.DailyChallenge
	for _, c := range r.challenges {
		if !c.Date.Before(from) && c.Date.Before(to) {
			result = append(result, c)
		}
	}
	return result, nil
}

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.created = append(r.created, notification)
	return nil
}

func (r *fakeNotificationRepo) byType(t entity.NotificationType) []*entity.Notification {
	var result []*entity.Notification
	for _, n := range r.created {
		if n.Type == t {
			result = append(result, n)
		}
	}
	return result
}

// fixture wires a service against in-memory repositories with a fixed clock
type fixture struct {
	habits        *fakeHabitRepo
	completions   *fakeCompletionRepo
	users         *fakeUserRepo
	badges        *fakeBadgeRepo
	challenges    *fakeChallengeRepo
	notifications *fakeNotificationRepo
	svc           *gamificationService
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		habits:        newFakeHabitRepo(),
		completions:   &fakeCompletionRepo{},
		users:         newFakeUserRepo(),
		badges:        newFakeBadgeRepo(),
		challenges:    &fakeChallengeRepo{},
		notifications: &fakeNotificationRepo{},
	}

	svc := NewGamificationService(
		f.habits, f.completions, f.users, f.badges, f.challenges, f.notifications,
	).(*gamificationService)
	svc.now = func() time.Time { return now }

	f.svc = svc
	return f
}

func (f *fixture) setNow(now time.Time) {
	f.svc.now = func() time.Time { return now }
}

func (f *fixture) addUser(points, level int32) *entity.User {
	user := &entity.User{
		ID:          uuid.New(),
		Username:    "tester",
		TotalPoints: points,
		Level:       level,
	}
	f.users.users[user.ID] = user
	return user
}

func (f *fixture) addHabit(userID uuid.UUID, points int32) *entity.Habit {
	habit := &entity.Habit{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "Morning run",
		Points:   points,
		IsActive: true,
	}
	f.habits.habits[habit.ID] = habit
	return habit
}

func (f *fixture) addCompletion(habit *entity.Habit, at time.Time) *entity.HabitCompletion {
	completion := &entity.HabitCompletion{
		ID:          uuid.New(),
		HabitID:     habit.ID,
		UserID:      habit.UserID,
		CompletedAt: at,
		CreatedAt:   at,
	}
	f.completions.completions = append(f.completions.completions, completion)
	return completion
}
