package models

import (
	"time"
)

// Layout for serialized timestamps, MM-DD-YYYY HH:MM.
const timeLayout = "01-02-2006 15:04"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DateCreated  time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
	DateModified time.Time `gorm:"column:date_modified;autoUpdateTime" json:"date_modified"`
	Username     string    `gorm:"size:24;uniqueIndex;not null" json:"username"`
}

// ToDict is the serialization contract: identity, timestamps and the
// entity's own data fields. Relationships are never embedded; they are
// read through the property endpoints.
func (u *User) ToDict() map[string]any {
	return map[string]any{
		"id":            u.ID,
		"date_created":  u.DateCreated.Format(timeLayout),
		"date_modified": u.DateModified.Format(timeLayout),
		"username":      u.Username,
	}
}

// SetAttr assigns one patchable field. ID and timestamps are immutable.
func (u *User) SetAttr(name string, value any) error {
	switch name {
	case "username":
		s, ok := value.(string)
		if !ok {
			return &InvalidValueError{Name: name}
		}
		u.Username = s
	default:
		return &InvalidAttributeError{Name: name}
	}
	return nil
}

func (u *User) AttrKind(name string) (AttrKind, bool) {
	switch name {
	case "id", "date_created", "date_modified", "username":
		return AttrScalar, true
	case "posts", "replies":
		return AttrCollection, true
	}
	return 0, false
}
