package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"internship-management-api/models"
)

var (
	findInternPattern    = regexp.MustCompile(`SELECT .* FROM .users. WHERE id = \? AND role = \?`)
	countOngoingPattern  = regexp.MustCompile(`SELECT count\(\*\) FROM .projects. WHERE intern_id = \? AND status = \?`)
	insertProjectPattern = regexp.MustCompile(`INSERT INTO .projects.`)
	userColumns          = []string{"id", "name", "email", "role"}
)

func internRow(id uint, name string) []driver.Value {
	return []driver.Value{int64(id), name, name + "@example.com", models.RoleIntern}
}

func TestCreateProjectAssignsOngoing(t *testing.T) {
	steps := []*queryStep{
		{kind: kindQuery, pattern: findInternPattern,
			columns: userColumns,
			rows:    [][]driver.Value{internRow(3, "Alice")}},
		{kind: kindQuery, pattern: countOngoingPattern, args: []driver.Value{int64(3), models.ProjectOngoing},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}}},
		{kind: kindExec, pattern: insertProjectPattern, result: scriptedResult{lastInsertID: 7, rowsAffected: 1}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	notifier := &recordingNotifier{}
	svc := NewProjectService(db, notifier)

	project, err := svc.Create(CreateProjectInput{
		Title:      "Inventory service",
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Deadline:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		InternID:   3,
		TeamLeadID: 12,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if project.Status != models.ProjectOngoing {
		t.Errorf("status = %q, want Ongoing", project.Status)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}

	calls := notifier.Calls()
	if len(calls) != 1 || calls[0].UserID != 3 || calls[0].Kind != models.KindProjectAssigned {
		t.Errorf("unexpected notifications %+v", calls)
	}
}

func TestCreateProjectConflictsOnSecondOngoing(t *testing.T) {
	steps := []*queryStep{
		{kind: kindQuery, pattern: findInternPattern,
			columns: userColumns,
			rows:    [][]driver.Value{internRow(3, "Alice")}},
		{kind: kindQuery, pattern: countOngoingPattern,
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(1)}}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	notifier := &recordingNotifier{}
	svc := NewProjectService(db, notifier)

	_, err := svc.Create(CreateProjectInput{
		Title:      "Second project",
		Deadline:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		InternID:   3,
		TeamLeadID: 12,
	})
	assertKind(t, err, KindConflict)

	// No insert happened and no notification went out.
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
	if len(notifier.Calls()) != 0 {
		t.Error("notification sent for conflicting creation")
	}
}

func TestCreateProjectUnknownIntern(t *testing.T) {
	steps := []*queryStep{
		{kind: kindQuery, pattern: findInternPattern,
			columns: userColumns, rows: nil},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewProjectService(db, &recordingNotifier{})
	_, err := svc.Create(CreateProjectInput{
		Title:      "Orphan project",
		Deadline:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		InternID:   42,
		TeamLeadID: 12,
	})
	assertKind(t, err, KindNotFound)

	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestCompleteDeniedForForeignProject(t *testing.T) {
	deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	steps := []*queryStep{
		{kind: kindQuery, pattern: regexp.MustCompile(`SELECT .* FROM .projects. WHERE id = \?`),
			columns: projectColumns,
			rows:    [][]driver.Value{projectRow(7, 3, 99, deadline, models.ProjectOngoing)}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewProjectService(db, &recordingNotifier{})
	_, err := svc.Complete(7, 12)
	assertKind(t, err, KindPermissionDenied)

	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}
