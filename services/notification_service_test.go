package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
)

func TestMarkReadUnknownNotification(t *testing.T) {
	steps := []*queryStep{
		{kind: kindExec,
			pattern: regexp.MustCompile(`UPDATE .notifications. SET .is_read.`),
			result:  scriptedResult{rowsAffected: 0}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	err := svc.MarkRead(3, 999)
	assertKind(t, err, KindNotFound)

	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestUnreadCount(t *testing.T) {
	steps := []*queryStep{
		{kind: kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .notifications. WHERE user_id = \? AND is_read = \?`),
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(4)}}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	count, err := svc.UnreadCount(3)
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if count != 4 {
		t.Errorf("unread = %d, want 4", count)
	}

	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}
