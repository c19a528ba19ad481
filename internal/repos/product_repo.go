package repos

import (
	"bubblycrochet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, description, price, category, images_json, in_stock,
    discount, days_to_make, shipping_cost, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// List filters by category and/or a name/description substring match.
func (r *ProductRepo) List(search, category string) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if search != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, category)
	}

	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE `+where+`
	  ORDER BY created_at DESC, rowid DESC
	`, args...)
	return out, err
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,name,description,price,category,images_json,in_stock,discount,days_to_make,shipping_cost)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImagesJSON, p.InStock, p.Discount, p.DaysToMake, p.ShippingCost)
	return err
}

func (r *ProductRepo) Update(p *domain.Product) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products SET name=?, description=?, price=?, category=?, images_json=?, in_stock=?,
	    discount=?, days_to_make=?, shipping_cost=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.Name, p.Description, p.Price, p.Category, p.ImagesJSON, p.InStock, p.Discount, p.DaysToMake, p.ShippingCost, p.ID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Delete removes the product only; placed orders keep their frozen snapshots.
func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
