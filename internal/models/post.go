package models

import (
	"time"
)

type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DateCreated  time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
	DateModified time.Time `gorm:"column:date_modified;autoUpdateTime" json:"date_modified"`
	Title        string    `gorm:"size:250;not null" json:"title"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	AuthorID     uint      `gorm:"not null;index" json:"author_id"`
	Author       User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (p *Post) ToDict() map[string]any {
	return map[string]any{
		"id":            p.ID,
		"date_created":  p.DateCreated.Format(timeLayout),
		"date_modified": p.DateModified.Format(timeLayout),
		"title":         p.Title,
		"body":          p.Body,
	}
}

func (p *Post) SetAttr(name string, value any) error {
	switch name {
	case "title":
		s, ok := value.(string)
		if !ok {
			return &InvalidValueError{Name: name}
		}
		p.Title = s
	case "body":
		s, ok := value.(string)
		if !ok {
			return &InvalidValueError{Name: name}
		}
		p.Body = s
	case "author_id":
		id, ok := toUint(value)
		if !ok {
			return &InvalidValueError{Name: name}
		}
		p.AuthorID = id
	default:
		return &InvalidAttributeError{Name: name}
	}
	return nil
}

func (p *Post) AttrKind(name string) (AttrKind, bool) {
	switch name {
	case "id", "date_created", "date_modified", "title", "body", "author_id":
		return AttrScalar, true
	case "author":
		return AttrEntity, true
	case "replies":
		return AttrCollection, true
	}
	return 0, false
}
