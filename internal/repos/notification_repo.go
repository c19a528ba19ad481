package repos

import (
	"bubblycrochet/internal/domain"

	"github.com/jmoiron/sqlx"
)

// Feeds are pruned to this many rows per recipient on every insert, so the
// table cannot grow without bound.
const notificationCap = 200

type NotificationRepo struct{ db *sqlx.DB }

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo { return &NotificationRepo{db: db} }

func appendNotificationTx(tx *sqlx.Tx, n domain.Notification) error {
	if _, err := tx.Exec(`
	  INSERT INTO notifications(id,recipient_id,message,type,read)
	  VALUES(?,?,?,?,0)
	`, n.ID, n.RecipientID, n.Message, n.Type); err != nil {
		return err
	}
	_, err := tx.Exec(`
	  DELETE FROM notifications
	  WHERE recipient_id = ? AND id NOT IN (
	    SELECT id FROM notifications WHERE recipient_id = ?
	    ORDER BY created_at DESC, rowid DESC LIMIT ?
	  )
	`, n.RecipientID, n.RecipientID, notificationCap)
	return err
}

func (r *NotificationRepo) Append(n domain.Notification) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err := appendNotificationTx(tx, n); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *NotificationRepo) ListByRecipient(recipientID string) ([]domain.Notification, error) {
	out := []domain.Notification{}
	err := r.db.Select(&out, `
	  SELECT id, recipient_id, message, type, read, created_at
	  FROM notifications WHERE recipient_id = ?
	  ORDER BY created_at DESC, rowid DESC
	`, recipientID)
	return out, err
}

// MarkRead flips the read flag; the recipient check keeps users out of each
// other's feeds.
func (r *NotificationRepo) MarkRead(id, recipientID string) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE notifications SET read=1 WHERE id=? AND recipient_id=?
	`, id, recipientID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
