package service

import (
	"context"
	"testing"
)

func TestEnsureDailyChallenges_SeedsCatalogForToday(t *testing.T) {
	f := newFixture(testNow)

	challenges, err := f.svc.EnsureDailyChallenges(context.Background())
	if err != nil {
		t.Fatalf("EnsureDailyChallenges failed: %v", err)
	}

	if len(challenges) != len(challengeTemplates) {
		t.Fatalf("expected %d challenges, got %d", len(challengeTemplates), len(challenges))
	}

	today := truncateToDay(testNow)
	for _, c := range challenges {
		if !c.Date.Equal(today) {
			t.Errorf("challenge %q stamped with %s, want %s", c.Title, c.Date, today)
		}
	}
}

func TestEnsureDailyChallenges_IdempotentWithinDay(t *testing.T) {
	f := newFixture(testNow)

	first, err := f.svc.EnsureDailyChallenges(context.Background())
	if err != nil {
		t.Fatalf("first EnsureDailyChallenges failed: %v", err)
	}

	second, err := f.svc.EnsureDailyChallenges(context.Background())
	if err != nil {
		t.Fatalf("second EnsureDailyChallenges failed: %v", err)
	}

	if len(f.challenges.challenges) != len(challengeTemplates) {
		t.Errorf("expected no duplicate rows, store holds %d", len(f.challenges.challenges))
	}

	if len(first) != len(second) {
		t.Fatalf("result sets differ in size: %d vs %d", len(first), len(second))
	}

	seen := make(map[string]bool, len(first))
	for _, c := range first {
		seen[c.ID.String()] = true
	}
	for _, c := range second {
		if !seen[c.ID.String()] {
			t.Errorf("second call returned unseeded challenge %q", c.Title)
		}
	}
}

func TestEnsureDailyChallenges_NewDayReseeds(t *testing.T) {
	f := newFixture(testNow)

	if _, err := f.svc.EnsureDailyChallenges(context.Background()); err != nil {
		t.Fatalf("EnsureDailyChallenges failed: %v", err)
	}

	f.setNow(testNow.AddDate(0, 0, 1))

	next, err := f.svc.EnsureDailyChallenges(context.Background())
	if err != nil {
		t.Fatalf("next-day EnsureDailyChallenges failed: %v", err)
	}

	if len(next) != len(challengeTemplates) {
		t.Fatalf("expected a fresh set of %d challenges, got %d", len(challengeTemplates), len(next))
	}

	tomorrow := truncateToDay(testNow.AddDate(0, 0, 1))
	for _, c := range next {
		if !c.Date.Equal(tomorrow) {
			t.Errorf("challenge %q stamped with %s, want %s", c.Title, c.Date, tomorrow)
		}
	}

	if total := len(f.challenges.challenges); total != 2*len(challengeTemplates) {
		t.Errorf("expected %d rows across both days, got %d", 2*len(challengeTemplates), total)
	}
}
