package repos

import (
	"bubblycrochet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type JourneyRepo struct{ db *sqlx.DB }

func NewJourneyRepo(db *sqlx.DB) *JourneyRepo { return &JourneyRepo{db: db} }

const journeyCols = `id, title, description, url, thumbnail_url, category, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *JourneyRepo) Get(id string) (domain.JourneyResource, error) {
	var j domain.JourneyResource
	err := r.db.Get(&j, `SELECT `+journeyCols+` FROM journey_resources WHERE id = ?`, id)
	return j, err
}

func (r *JourneyRepo) List(category string) ([]domain.JourneyResource, error) {
	out := []domain.JourneyResource{}
	var err error
	if category != "" {
		err = r.db.Select(&out, `
		  SELECT `+journeyCols+` FROM journey_resources WHERE category = ?
		  ORDER BY created_at DESC, rowid DESC
		`, category)
	} else {
		err = r.db.Select(&out, `
		  SELECT `+journeyCols+` FROM journey_resources
		  ORDER BY created_at DESC, rowid DESC
		`)
	}
	return out, err
}

func (r *JourneyRepo) Create(j *domain.JourneyResource) error {
	_, err := r.db.Exec(`
	  INSERT INTO journey_resources(id,title,description,url,thumbnail_url,category)
	  VALUES(?,?,?,?,?,?)
	`, j.ID, j.Title, j.Description, j.URL, j.ThumbnailURL, j.Category)
	return err
}

func (r *JourneyRepo) Update(j *domain.JourneyResource) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE journey_resources SET title=?, description=?, url=?, thumbnail_url=?, category=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, j.Title, j.Description, j.URL, j.ThumbnailURL, j.Category, j.ID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *JourneyRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM journey_resources WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
