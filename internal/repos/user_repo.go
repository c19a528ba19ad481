package repos

import (
	"bubblycrochet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,email,name,password_hash,role,avatar,address,country,country_code,phone,bio,interests_json,is_active,created_at,COALESCE(updated_at,'') AS updated_at`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`
	  INSERT INTO users(id,email,name,password_hash,role,avatar,address,country,country_code,phone,bio,interests_json)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?)
	`, u.ID, u.Email, u.Name, u.Hash, u.Role, u.Avatar, u.Address, u.Country, u.CountryCode, u.Phone, u.Bio, u.InterestsJSON)
	return err
}

func (r *UserRepo) UpdateProfile(u *domain.User) error {
	_, err := r.DB.Exec(`
	  UPDATE users SET name=?, avatar=?, address=?, country=?, country_code=?, phone=?, bio=?, interests_json=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, u.Name, u.Avatar, u.Address, u.Country, u.CountryCode, u.Phone, u.Bio, u.InterestsJSON, u.ID)
	return err
}

func (r *UserRepo) UpdatePassword(id, hash string) error {
	_, err := r.DB.Exec(`UPDATE users SET password_hash=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, hash, id)
	return err
}

// DeleteUserCascade removes the account: non-terminal orders are cancelled but
// retained for audit (they carry a denormalized buyer snapshot), reviews and
// notifications are deleted, then the user row goes.
func (r *UserRepo) DeleteUserCascade(userID, email string) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  UPDATE orders SET status='CANCELLED', updated_at=CURRENT_TIMESTAMP
	  WHERE user_id=? AND status NOT IN ('COMPLETED','CANCELLED')
	`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM reviews WHERE user_id=?`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM notifications WHERE recipient_id IN (?,?)`, userID, email); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM users WHERE id=?`, userID); err != nil {
		return err
	}

	return tx.Commit()
}
