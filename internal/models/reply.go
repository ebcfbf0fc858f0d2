package models

import (
	"time"
)

type Reply struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DateCreated  time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
	DateModified time.Time `gorm:"column:date_modified;autoUpdateTime" json:"date_modified"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	AuthorID     uint      `gorm:"not null;index" json:"author_id"`
	Author       User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PostID       uint      `gorm:"not null;index" json:"post_id"`
	Post         Post      `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (r *Reply) ToDict() map[string]any {
	return map[string]any{
		"id":            r.ID,
		"date_created":  r.DateCreated.Format(timeLayout),
		"date_modified": r.DateModified.Format(timeLayout),
		"message":       r.Message,
	}
}

func (r *Reply) SetAttr(name string, value any) error {
	switch name {
	case "message":
		s, ok := value.(string)
		if !ok {
			return &InvalidValueError{Name: name}
		}
		r.Message = s
	case "author_id":
		id, ok := toUint(value)
		if !ok {
			return &InvalidValueError{Name: name}
		}
		r.AuthorID = id
	case "post_id":
		id, ok := toUint(value)
		if !ok {
			return &InvalidValueError{Name: name}
		}
		r.PostID = id
	default:
		return &InvalidAttributeError{Name: name}
	}
	return nil
}

func (r *Reply) AttrKind(name string) (AttrKind, bool) {
	switch name {
	case "id", "date_created", "date_modified", "message", "author_id", "post_id":
		return AttrScalar, true
	case "author", "post":
		return AttrEntity, true
	}
	return 0, false
}
