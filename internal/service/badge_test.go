package service

import (
	"context"
	"testing"
	"time"

	"gamification-service/internal/domain/entity"

	"github.com/google/uuid"
)

func TestEvaluateBadges_AwardsEarlyBird(t *testing.T) {
	f := newFixture(testNow)
	user := f.addUser(0, 1)
	habit := f.addHabit(user.ID, 10)

	// 6 AM yesterday, inside the trailing week
	earlyMorning := time.Date(2026, 3, 3, 6, 15, 0, 0, time.UTC)
	f.addCompletion(habit, earlyMorning)

	awarded, err := f.svc.EvaluateBadges(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("EvaluateBadges failed: %v", err)
	}

	if len(awarded) != 1 || awarded[0].Name != "Early Bird" {
		t.Fatalf("expected only the Early Bird badge, got %+v", awarded)
	}

	stored := f.users.users[user.ID]
	if stored.TotalPoints != awarded[0].Points {
		t.Errorf("expected %d bonus points, got %d", awarded[0].Points, stored.TotalPoints)
	}

	notifications := f.notifications.byType(entity.NotificationTypeBadgeEarned)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 badge notification, got %d", len(notifications))
	}

	if notifications[0].Data["badgeName"] != "Early Bird" {
		t.Errorf("expected badge name in payload, got %v", notifications[0].Data)
	}
}

func TestEvaluateBadges_SecondCallIsNoOp(t *testing.T) {
	f := newFixture(testNow)
	user := f.addUser(0, 1)
	habit := f.addHabit(user.ID, 10)
	f.addCompletion(habit, time.Date(2026, 3, 3, 6, 0, 0, 0, time.UTC))

	first, err := f.svc.EvaluateBadges(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("first EvaluateBadges failed: %v", err)
	}

	if len(first) != 1 {
		t.Fatalf("expected 1 badge on first call, got %d", len(first))
	}

	pointsAfterFirst := f.users.users[user.ID].TotalPoints

	second, err := f.svc.EvaluateBadges(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("second EvaluateBadges failed: %v", err)
	}

	if len(second) != 0 {
		t.Errorf("expected no new badges on second call, got %d", len(second))
	}

	if got := f.users.users[user.ID].TotalPoints; got != pointsAfterFirst {
		t.Errorf("points changed on no-op call: %d -> %d", pointsAfterFirst, got)
	}

	userBadges, _ := f.badges.GetUserBadges(context.Background(), user.ID)
	if len(userBadges) != 1 {
		t.Errorf("expected 1 user badge row, got %d", len(userBadges))
	}
}

func TestEvaluateBadges_CatalogRowSharedBetweenUsers(t *testing.T) {
	f := newFixture(testNow)

	alice := f.addUser(0, 1)
	aliceHabit := f.addHabit(alice.ID, 10)
	f.addCompletion(aliceHabit, time.Date(2026, 3, 3, 6, 0, 0, 0, time.UTC))

	bob := f.addUser(0, 1)
	bobHabit := f.addHabit(bob.ID, 10)
	f.addCompletion(bobHabit, time.Date(2026, 3, 2, 5, 30, 0, 0, time.UTC))

	if _, err := f.svc.EvaluateBadges(context.Background(), alice.ID); err != nil {
		t.Fatalf("EvaluateBadges for alice failed: %v", err)
	}
	if _, err := f.svc.EvaluateBadges(context.Background(), bob.ID); err != nil {
		t.Fatalf("EvaluateBadges for bob failed: %v", err)
	}

	if len(f.badges.catalog) != 1 {
		t.Errorf("expected a single catalog row, got %d", len(f.badges.catalog))
	}

	if len(f.badges.userBadges) != 2 {
		t.Errorf("expected one award per user, got %d", len(f.badges.userBadges))
	}
}

func TestEvaluateBadges_ConsistencyKing(t *testing.T) {
	f := newFixture(testNow)
	user := f.addUser(0, 1)
	habit := f.addHabit(user.ID, 10)
	habit.CurrentStreak = 30

	awarded, err := f.svc.EvaluateBadges(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("EvaluateBadges failed: %v", err)
	}

	if len(awarded) != 1 || awarded[0].Name != "Consistency King" {
		t.Fatalf("expected only the Consistency King badge, got %+v", awarded)
	}
}

func TestEvaluateBadges_PointMaster(t *testing.T) {
	f := newFixture(testNow)
	user := f.addUser(1000, 1)

	awarded, err := f.svc.EvaluateBadges(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("EvaluateBadges failed: %v", err)
	}

	if len(awarded) != 1 || awarded[0].Name != "Point Master" {
		t.Fatalf("expected only the Point Master badge, got %+v", awarded)
	}
}

func TestEvaluateBadges_WeekendWarrior(t *testing.T) {
	f := newFixture(testNow)
	user := f.addUser(0, 1)
	habit := f.addHabit(user.ID, 10)

	// Saturday morning within the trailing week, mid-morning so Early Bird
	// does not fire too
	saturday := time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC)
	if saturday.Weekday() != time.Saturday {
		t.Fatalf("test clock mismatch: %s is %s", saturday, saturday.Weekday())
	}
	f.addCompletion(habit, saturday)

	awarded, err := f.svc.EvaluateBadges(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("EvaluateBadges failed: %v", err)
	}

	if len(awarded) != 1 || awarded[0].Name != "Weekend Warrior" {
		t.Fatalf("expected only the Weekend Warrior badge, got %+v", awarded)
	}
}

func TestEvaluateBadges_OldCompletionsIgnored(t *testing.T) {
	f := newFixture(testNow)
	user := f.addUser(0, 1)
	habit := f.addHabit(user.ID, 10)

	// Early completion just outside the 7-day window
	f.addCompletion(habit, time.Date(2026, 2, 24, 6, 0, 0, 0, time.UTC))

	awarded, err := f.svc.EvaluateBadges(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("EvaluateBadges failed: %v", err)
	}

	if len(awarded) != 0 {
		t.Errorf("expected no badges, got %+v", awarded)
	}
}

func TestEvaluateBadges_UnknownUserReturnsNothing(t *testing.T) {
	f := newFixture(testNow)

	awarded, err := f.svc.EvaluateBadges(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("EvaluateBadges failed: %v", err)
	}

	if len(awarded) != 0 {
		t.Errorf("expected no badges for unknown user, got %+v", awarded)
	}
}
