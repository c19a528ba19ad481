package repos

import (
	"bubblycrochet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

const reviewCols = `id, product_id, user_id, user_name, rating, comment, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ReviewRepo) Get(id string) (domain.Review, error) {
	var rev domain.Review
	err := r.db.Get(&rev, `SELECT `+reviewCols+` FROM reviews WHERE id = ?`, id)
	return rev, err
}

func (r *ReviewRepo) ListByProduct(productID string) ([]domain.Review, error) {
	out := []domain.Review{}
	err := r.db.Select(&out, `
	  SELECT `+reviewCols+` FROM reviews WHERE product_id = ?
	  ORDER BY created_at DESC, rowid DESC
	`, productID)
	return out, err
}

// Exists reports whether the user already reviewed the product.
func (r *ReviewRepo) Exists(productID, userID string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM reviews WHERE product_id=? AND user_id=?`, productID, userID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ReviewRepo) Create(rev *domain.Review) error {
	_, err := r.db.Exec(`
	  INSERT INTO reviews(id,product_id,user_id,user_name,rating,comment)
	  VALUES(?,?,?,?,?,?)
	`, rev.ID, rev.ProductID, rev.UserID, rev.UserName, rev.Rating, rev.Comment)
	return err
}

func (r *ReviewRepo) Update(id string, rating int, comment string) error {
	_, err := r.db.Exec(`
	  UPDATE reviews SET rating=?, comment=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, rating, comment, id)
	return err
}

func (r *ReviewRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM reviews WHERE id=?`, id)
	return err
}
