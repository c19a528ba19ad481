package repos

import (
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"bubblycrochet/internal/domain"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := EnsureSchema(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestNotificationFeedIsCapped(t *testing.T) {
	db := testDB(t)
	repo := NewNotificationRepo(db)

	for i := 0; i < notificationCap+25; i++ {
		err := repo.Append(domain.Notification{
			ID:          fmt.Sprintf("n-%04d", i),
			RecipientID: "u1",
			Message:     fmt.Sprintf("message %d", i),
			Type:        domain.NotifInfo,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	// another recipient's feed must not be touched by the pruning
	if err := repo.Append(domain.Notification{
		ID: "other-1", RecipientID: "u2", Message: "hi", Type: domain.NotifInfo,
	}); err != nil {
		t.Fatal(err)
	}

	feed, err := repo.ListByRecipient("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != notificationCap {
		t.Fatalf("want %d rows after prune, got %d", notificationCap, len(feed))
	}
	// newest first, oldest dropped
	if feed[0].ID != fmt.Sprintf("n-%04d", notificationCap+24) {
		t.Fatalf("newest should survive, got %s", feed[0].ID)
	}
	for _, n := range feed {
		if n.ID == "n-0000" {
			t.Fatal("oldest row should have been pruned")
		}
	}

	other, err := repo.ListByRecipient("u2")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 1 {
		t.Fatalf("unrelated feed changed: %d rows", len(other))
	}
}

func TestMarkReadChecksRecipient(t *testing.T) {
	db := testDB(t)
	repo := NewNotificationRepo(db)

	if err := repo.Append(domain.Notification{
		ID: "n1", RecipientID: "u1", Message: "yours", Type: domain.NotifInfo,
	}); err != nil {
		t.Fatal(err)
	}

	// wrong recipient cannot flip someone else's flag
	ok, err := repo.MarkRead("n1", "u2")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("foreign recipient must not mark the row")
	}

	ok, err = repo.MarkRead("n1", "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("owner should mark the row")
	}
	feed, err := repo.ListByRecipient("u1")
	if err != nil {
		t.Fatal(err)
	}
	if !feed[0].Read {
		t.Fatal("read flag should persist")
	}

	ok, err = repo.MarkRead("ghost", "u1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unknown id should report not found")
	}
}
