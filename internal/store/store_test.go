package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oselot/stitchpath/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"learners",
		"user_progresses",
		"content_masteries",
		"path_progresses",
		"session_events",
		"mastery_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestRegisterAndExists(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	exists, err := repo.UserExists(ctx, "ada")
	if err != nil {
		t.Fatalf("exists (empty): %v", err)
	}
	if exists {
		t.Fatal("expected user to not exist before registration")
	}

	if err := repo.RegisterUser(ctx, "ada"); err != nil {
		t.Fatalf("register: %v", err)
	}

	exists, err = repo.UserExists(ctx, "ada")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected user to exist after registration")
	}

	err = repo.RegisterUser(ctx, "ada")
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("second register error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestUserProgressRoundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	up, err := repo.GetUserProgress(ctx, "ada")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if up != nil {
		t.Fatal("expected nil progress when none stored")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.SaveUserProgress(ctx, &mastery.UserProgress{
		UserID:            "ada",
		OverallCompletion: 0.25,
		PerPathCompletion: map[string]float64{"addition": 0.5},
		MasteredItemCount: 1,
		TotalItemCount:    4,
		LastUpdate:        now,
	})
	if err != nil {
		t.Fatalf("save (create): %v", err)
	}

	up, err = repo.GetUserProgress(ctx, "ada")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if up.OverallCompletion != 0.25 {
		t.Errorf("overall = %v, want 0.25", up.OverallCompletion)
	}
	if up.PerPathCompletion["addition"] != 0.5 {
		t.Errorf("per-path addition = %v, want 0.5", up.PerPathCompletion["addition"])
	}
	if up.MasteredItemCount != 1 || up.TotalItemCount != 4 {
		t.Errorf("counts = %d/%d, want 1/4", up.MasteredItemCount, up.TotalItemCount)
	}

	// Saving again updates the existing row rather than creating another.
	up.OverallCompletion = 0.75
	up.MasteredItemCount = 3
	if err := repo.SaveUserProgress(ctx, up); err != nil {
		t.Fatalf("save (update): %v", err)
	}

	count, err := s.Client().UserProgress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("user progress rows = %d, want 1", count)
	}

	up, err = repo.GetUserProgress(ctx, "ada")
	if err != nil {
		t.Fatalf("get (after update): %v", err)
	}
	if up.OverallCompletion != 0.75 || up.MasteredItemCount != 3 {
		t.Errorf("updated progress = %v/%d, want 0.75/3",
			up.OverallCompletion, up.MasteredItemCount)
	}
}

func TestContentMasteryRoundtripAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	cm, err := repo.GetContentMastery(ctx, "ada", "add-ones")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if cm != nil {
		t.Fatal("expected nil mastery when none stored")
	}

	now := time.Now().UTC().Truncate(time.Second)
	rows := []*mastery.ContentMastery{
		{ContentID: "add-ones"},
		{ContentID: "add-tens"},
		{ContentID: "sub-ones"},
	}
	if err := repo.CreateContentMasteries(ctx, "ada", rows); err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	err = repo.SaveContentMastery(ctx, "ada", &mastery.ContentMastery{
		ContentID:       "add-ones",
		MasteryLevel:    0.3,
		AttemptCount:    1,
		LastAttemptTime: now,
		NextReviewTime:  now.AddDate(0, 0, 3),
	})
	if err != nil {
		t.Fatalf("save (update): %v", err)
	}

	cm, err = repo.GetContentMastery(ctx, "ada", "add-ones")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cm.MasteryLevel != 0.3 || cm.AttemptCount != 1 {
		t.Errorf("mastery = %v/%d, want 0.3/1", cm.MasteryLevel, cm.AttemptCount)
	}
	if !cm.NextReviewTime.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("next review = %v, want %v", cm.NextReviewTime, now.AddDate(0, 0, 3))
	}

	all, err := repo.ListContentMastery(ctx, "ada", nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("list all = %d rows, want 3", len(all))
	}

	subset, err := repo.ListContentMastery(ctx, "ada", []string{"add-ones", "sub-ones"})
	if err != nil {
		t.Fatalf("list subset: %v", err)
	}
	if len(subset) != 2 {
		t.Errorf("list subset = %d rows, want 2", len(subset))
	}
	if _, ok := subset["add-tens"]; ok {
		t.Error("subset should not contain add-tens")
	}

	// Rows belong to their user.
	other, err := repo.ListContentMastery(ctx, "grace", nil)
	if err != nil {
		t.Fatalf("list other user: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other user rows = %d, want 0", len(other))
	}
}

func TestPathProgressRoundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	pp, err := repo.GetPathProgress(ctx, "ada", "addition")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if pp != nil {
		t.Fatal("expected nil path progress when none stored")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.SavePathProgress(ctx, "ada", &mastery.PathProgressDetails{
		PathID:     "addition",
		Completion: 0.5,
		PerItemState: map[string]mastery.ItemState{
			"add-ones": {MasteryLevel: 0.83, AttemptCount: 5, Position: 0},
			"add-tens": {MasteryLevel: 0.3, AttemptCount: 1, Position: 1},
		},
		MasteredCount: 1,
		LastUpdate:    now,
	})
	if err != nil {
		t.Fatalf("save (create): %v", err)
	}

	pp, err = repo.GetPathProgress(ctx, "ada", "addition")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if pp.Completion != 0.5 || pp.MasteredCount != 1 {
		t.Errorf("path progress = %v/%d, want 0.5/1", pp.Completion, pp.MasteredCount)
	}
	st, ok := pp.PerItemState["add-tens"]
	if !ok {
		t.Fatal("missing add-tens item state")
	}
	if st.MasteryLevel != 0.3 || st.AttemptCount != 1 || st.Position != 1 {
		t.Errorf("add-tens state = %+v, want {0.3 1 1}", st)
	}

	pp.Completion = 1.0
	pp.MasteredCount = 2
	if err := repo.SavePathProgress(ctx, "ada", pp); err != nil {
		t.Fatalf("save (update): %v", err)
	}

	count, err := s.Client().PathProgress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("path progress rows = %d, want 1", count)
	}
}

func TestDeleteUserRemovesEverything(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	events := s.EventRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.RegisterUser(ctx, "ada"); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := repo.SaveUserProgress(ctx, &mastery.UserProgress{
		UserID:     "ada",
		LastUpdate: now,
	})
	if err != nil {
		t.Fatalf("save progress: %v", err)
	}
	err = repo.CreateContentMasteries(ctx, "ada", []*mastery.ContentMastery{
		{ContentID: "add-ones"},
	})
	if err != nil {
		t.Fatalf("create masteries: %v", err)
	}
	err = repo.SavePathProgress(ctx, "ada", &mastery.PathProgressDetails{
		PathID:     "addition",
		LastUpdate: now,
	})
	if err != nil {
		t.Fatalf("save path progress: %v", err)
	}
	err = events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "ada", PathID: "addition", ContentID: "add-ones",
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}
	err = events.AppendMasteryEvent(ctx, MasteryEventData{
		UserID: "ada", ContentID: "add-ones", PathID: "addition",
		FromBand: "new", ToBand: "learning",
	})
	if err != nil {
		t.Fatalf("append mastery event: %v", err)
	}

	if err := repo.DeleteUser(ctx, "ada"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	exists, err := repo.UserExists(ctx, "ada")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("user still exists after delete")
	}
	up, err := repo.GetUserProgress(ctx, "ada")
	if err != nil || up != nil {
		t.Errorf("progress after delete = %v, %v, want nil, nil", up, err)
	}
	rows, err := repo.ListContentMastery(ctx, "ada", nil)
	if err != nil || len(rows) != 0 {
		t.Errorf("mastery rows after delete = %d, %v, want 0, nil", len(rows), err)
	}
	sessions, err := events.RecentSessions(ctx, "ada", QueryOpts{})
	if err != nil || len(sessions) != 0 {
		t.Errorf("sessions after delete = %d, %v, want 0, nil", len(sessions), err)
	}
	transitions, err := events.MasteryTransitions(ctx, "ada", QueryOpts{})
	if err != nil || len(transitions) != 0 {
		t.Errorf("transitions after delete = %d, %v, want 0, nil", len(transitions), err)
	}

	// Deleting an unknown user is a no-op.
	if err := repo.DeleteUser(ctx, "ada"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestSessionEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"s1", "s2", "s3"} {
		err := events.AppendSessionEvent(ctx, SessionEventData{
			SessionID:     id,
			UserID:        "ada",
			PathID:        "addition",
			ContentID:     "add-ones",
			QuestionCount: 10,
			FTCCount:      8 + i/2,
			TotalPoints:   60,
			MasteryAfter:  0.3,
			DayStreak:     1,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	err := events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sx", UserID: "grace", PathID: "addition", ContentID: "add-ones",
	})
	if err != nil {
		t.Fatalf("append other user: %v", err)
	}

	records, err := events.RecentSessions(ctx, "ada", QueryOpts{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[0].SessionID != "s3" || records[2].SessionID != "s1" {
		t.Errorf("order = [%s %s %s], want [s3 s2 s1]",
			records[0].SessionID, records[1].SessionID, records[2].SessionID)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequence not descending: %d then %d",
			records[0].Sequence, records[1].Sequence)
	}
	if records[2].QuestionCount != 10 || records[2].TotalPoints != 60 {
		t.Errorf("record fields = %d/%d, want 10/60",
			records[2].QuestionCount, records[2].TotalPoints)
	}

	limited, err := events.RecentSessions(ctx, "ada", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 2 || limited[0].SessionID != "s3" {
		t.Errorf("limited = %d records starting %s, want 2 starting s3",
			len(limited), limited[0].SessionID)
	}
}

func TestMasteryTransitionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	transitions := []MasteryEventData{
		{UserID: "ada", ContentID: "add-ones", PathID: "addition",
			FromBand: "new", ToBand: "learning", MasteryLevel: 0.3, SessionID: "s1"},
		{UserID: "ada", ContentID: "add-ones", PathID: "addition",
			FromBand: "practicing", ToBand: "mastered", MasteryLevel: 0.83, SessionID: "s5"},
	}
	for i, tr := range transitions {
		if err := events.AppendMasteryEvent(ctx, tr); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := events.MasteryTransitions(ctx, "ada", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].ToBand != "mastered" || records[1].ToBand != "learning" {
		t.Errorf("order = [%s %s], want [mastered learning]",
			records[0].ToBand, records[1].ToBand)
	}
	if records[0].SessionID != "s5" {
		t.Errorf("session id = %s, want s5", records[0].SessionID)
	}
}

func TestDayStreak(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	// No history: the completing session alone is a one-day streak.
	streak, err := events.DayStreak(ctx, "ada", now)
	if err != nil {
		t.Fatalf("streak (empty): %v", err)
	}
	if streak != 1 {
		t.Errorf("streak = %d, want 1", streak)
	}

	// Practice on the two days before, twice on one of them, plus an
	// older day separated by a gap and a different user's day.
	backdated := []struct {
		user string
		ts   time.Time
	}{
		{"ada", time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)},
		{"ada", time.Date(2025, 6, 9, 20, 0, 0, 0, time.UTC)},
		{"ada", time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)},
		{"ada", time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)},
		{"grace", time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)},
	}
	for i, e := range backdated {
		_, err := s.Client().SessionEvent.Create().
			SetSequence(int64(1000 + i)).
			SetTimestamp(e.ts).
			SetSessionID("s-back").
			SetUserID(e.user).
			SetPathID("addition").
			SetContentID("add-ones").
			Save(ctx)
		if err != nil {
			t.Fatalf("backdated insert %d: %v", i, err)
		}
	}

	streak, err = events.DayStreak(ctx, "ada", now)
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}

	// A session earlier today does not change today's streak.
	_, err = s.Client().SessionEvent.Create().
		SetSequence(2000).
		SetTimestamp(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)).
		SetSessionID("s-today").
		SetUserID("ada").
		SetPathID("addition").
		SetContentID("add-ones").
		Save(ctx)
	if err != nil {
		t.Fatalf("insert today: %v", err)
	}
	streak, err = events.DayStreak(ctx, "ada", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("streak (after today): %v", err)
	}
	if streak != 3 {
		t.Errorf("streak after same-day session = %d, want 3", streak)
	}
}
