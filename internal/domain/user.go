package domain

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID            string   `db:"id" json:"id"`
	Email         string   `db:"email" json:"email"`
	Name          string   `db:"name" json:"name"`
	Hash          string   `db:"password_hash" json:"-"`
	Role          string   `db:"role" json:"role"` // client | admin
	Avatar        string   `db:"avatar" json:"avatar,omitempty"`
	Address       string   `db:"address" json:"address,omitempty"`
	Country       string   `db:"country" json:"country,omitempty"`
	CountryCode   string   `db:"country_code" json:"countryCode,omitempty"`
	Phone         string   `db:"phone" json:"phone,omitempty"`
	Bio           string   `db:"bio" json:"bio,omitempty"`
	InterestsJSON string   `db:"interests_json" json:"-"`
	Interests     []string `db:"-" json:"interests"`
	Active        bool     `db:"is_active" json:"isActive"`
	CreatedAt     string   `db:"created_at" json:"createdAt"`
	UpdatedAt     string   `db:"updated_at" json:"updatedAt,omitempty"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
