package repos

import (
	"database/sql"

	"bubblycrochet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, user_id, user_name, contact_email, shipping_address, total_amount,
    shipping_total, special_request, status, created_at, COALESCE(updated_at,'') AS updated_at`

// CreateWithNotifications writes the order header, its frozen line items and
// the fan-out notifications in one transaction, so a crash can never leave a
// notified-but-missing (or silent) order behind.
func (r *OrderRepo) CreateWithNotifications(o *domain.Order, notifs []domain.Notification) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id,user_id,user_name,contact_email,shipping_address,total_amount,shipping_total,special_request,status)
	  VALUES(?,?,?,?,?,?,?,?,?)
	`, o.ID, o.UserID, o.UserName, o.ContactEmail, o.ShippingAddress, o.TotalAmount, o.ShippingTotal, o.SpecialRequest, o.Status); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id,product_id,name,price,quantity,shipping_cost,days_to_make)
		  VALUES(?,?,?,?,?,?,?)
		`, o.ID, it.ProductID, it.Name, it.Price, it.Quantity, it.ShippingCost, it.DaysToMake); err != nil {
			return err
		}
	}
	for _, n := range notifs {
		if err := appendNotificationTx(tx, n); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateStatusWithNotifications flips the status and appends the fan-out in
// one transaction. The WHERE clause re-checks the previous status so two
// concurrent admin updates cannot silently overwrite each other.
func (r *OrderRepo) UpdateStatusWithNotifications(id string, from, to domain.OrderStatus, notifs []domain.Notification) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  UPDATE orders SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=? AND status=?
	`, to, id, from)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return false, nil
	}
	for _, nt := range notifs {
		if err := appendNotificationTx(tx, nt); err != nil {
			return false, err
		}
	}

	return true, tx.Commit()
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id = ?`, id); err != nil {
		return domain.Order{}, err
	}
	if err := r.attachItems(&o); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT `+orderCols+` FROM orders WHERE user_id = ?
	  ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return out, r.attachItemsAll(out)
}

// ListAll returns every order, optionally filtered by status.
func (r *OrderRepo) ListAll(status domain.OrderStatus) ([]domain.Order, error) {
	out := []domain.Order{}
	var err error
	if status != "" {
		err = r.db.Select(&out, `
		  SELECT `+orderCols+` FROM orders WHERE status = ?
		  ORDER BY created_at DESC, rowid DESC
		`, status)
	} else {
		err = r.db.Select(&out, `
		  SELECT `+orderCols+` FROM orders
		  ORDER BY created_at DESC, rowid DESC
		`)
	}
	if err != nil {
		return nil, err
	}
	return out, r.attachItemsAll(out)
}

func (r *OrderRepo) attachItems(o *domain.Order) error {
	o.Items = []domain.OrderItem{}
	err := r.db.Select(&o.Items, `
	  SELECT order_id, product_id, name, price, quantity, shipping_cost, days_to_make
	  FROM order_items WHERE order_id = ? ORDER BY name
	`, o.ID)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	return nil
}

func (r *OrderRepo) attachItemsAll(orders []domain.Order) error {
	for i := range orders {
		if err := r.attachItems(&orders[i]); err != nil {
			return err
		}
	}
	return nil
}
