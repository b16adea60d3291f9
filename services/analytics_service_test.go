package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
)

func TestProductivityScore(t *testing.T) {
	cases := []struct {
		name                                   string
		approvalRate, onTimeRate, completionRate float64
		want                                   int
	}{
		{"all zero", 0, 0, 0, 0},
		{"perfect", 1, 1, 1, 100},
		{"approval only", 1, 0, 0, 50},
		{"on-time only", 0, 1, 0, 30},
		{"completion only", 0, 0, 1, 20},
		{"half rates", 0.5, 0.5, 0.5, 50},
		{"rounds half up", 0.75, 0.5, 1.0, 73}, // 37.5 + 15 + 20 = 72.5 -> 73
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProductivityScore(tc.approvalRate, tc.onTimeRate, tc.completionRate)
			if got != tc.want {
				t.Errorf("ProductivityScore(%v, %v, %v) = %d, want %d",
					tc.approvalRate, tc.onTimeRate, tc.completionRate, got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d outside [0,100]", got)
			}
		})
	}
}

func TestRoundedPercent(t *testing.T) {
	cases := []struct {
		part, whole int64
		want        int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := roundedPercent(tc.part, tc.whole); got != tc.want {
			t.Errorf("roundedPercent(%d, %d) = %d, want %d", tc.part, tc.whole, got, tc.want)
		}
	}
}

func TestProductivityCountsUnknownIntern(t *testing.T) {
	steps := []*queryStep{
		{kind: kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .users. WHERE id = \? AND role = \?`),
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewAnalyticsService(db)
	_, err := svc.Productivity(999)
	assertKind(t, err, KindNotFound)

	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestProductivityReport(t *testing.T) {
	countPattern := regexp.MustCompile(`SELECT count\(\*\) FROM`)

	// exists, total subs, approved, on-time, total projects, completed
	counts := []int64{1, 4, 3, 2, 2, 1}
	steps := make([]*queryStep, 0, len(counts))
	for _, n := range counts {
		steps = append(steps, &queryStep{
			kind:    kindQuery,
			pattern: countPattern,
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{n}},
		})
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewAnalyticsService(db)
	report, err := svc.Productivity(3)
	if err != nil {
		t.Fatalf("Productivity returned error: %v", err)
	}

	if report.ApprovalRate != 0.75 {
		t.Errorf("approval rate = %v, want 0.75", report.ApprovalRate)
	}
	if report.OnTimeRate != 0.5 {
		t.Errorf("on-time rate = %v, want 0.5", report.OnTimeRate)
	}
	if report.CompletionRate != 0.5 {
		t.Errorf("completion rate = %v, want 0.5", report.CompletionRate)
	}
	// 50*0.75 + 30*0.5 + 20*0.5 = 62.5 -> 63
	if report.ProductivityScore != 63 {
		t.Errorf("score = %d, want 63", report.ProductivityScore)
	}

	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}
