package models

import "blog/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Title       string `gorm:"type:varchar(200)"`
	Description string `gorm:"type:text"`
}

// GroupCreate is the administrative surface for defining topics.
// There is no public route for it; groups are seeded out of band.
func GroupCreate(slug, title, description string) (g Group, err error) {
	g.Slug = slug
	g.Title = title
	g.Description = description
	return g, db.Instance.Create(&g).Error
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

func GroupsAll() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return
}

// GroupDelete removes a group; dependent posts keep their text and author,
// their group reference is set to NULL by the FK rule.
func GroupDelete(id uint64) error {
	return db.Instance.Delete(&Group{}, id).Error
}
