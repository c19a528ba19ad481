package repos

import (
	"database/sql"

	"bubblycrochet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SettingsRepo struct{ db *sqlx.DB }

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo { return &SettingsRepo{db: db} }

const settingsCols = `store_name, owner_name, contact_email, contact_phone, shop_location,
    logo_url, instagram_url, tiktok_url, youtube_url, copyright_text, COALESCE(updated_at,'') AS updated_at`

// Get returns the singleton row, lazily creating it with the store defaults
// on first read.
func (r *SettingsRepo) Get() (domain.Settings, error) {
	var s domain.Settings
	err := r.db.Get(&s, `SELECT `+settingsCols+` FROM settings WHERE id = 1`)
	if err == sql.ErrNoRows {
		s = domain.DefaultSettings()
		if err := r.Upsert(&s); err != nil {
			return domain.Settings{}, err
		}
		return s, nil
	}
	return s, err
}

// Upsert replaces the single settings row wholesale.
func (r *SettingsRepo) Upsert(s *domain.Settings) error {
	_, err := r.db.Exec(`
	  INSERT INTO settings(id,store_name,owner_name,contact_email,contact_phone,shop_location,logo_url,instagram_url,tiktok_url,youtube_url,copyright_text,updated_at)
	  VALUES(1,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    store_name=excluded.store_name, owner_name=excluded.owner_name,
	    contact_email=excluded.contact_email, contact_phone=excluded.contact_phone,
	    shop_location=excluded.shop_location, logo_url=excluded.logo_url,
	    instagram_url=excluded.instagram_url, tiktok_url=excluded.tiktok_url,
	    youtube_url=excluded.youtube_url, copyright_text=excluded.copyright_text,
	    updated_at=CURRENT_TIMESTAMP
	`, s.StoreName, s.OwnerName, s.ContactEmail, s.ContactPhone, s.ShopLocation,
		s.LogoURL, s.InstagramURL, s.TiktokURL, s.YoutubeURL, s.CopyrightText)
	return err
}
