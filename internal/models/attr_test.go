package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPatch(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]any
		wantAttrErr string
		wantValErr  string
	}{
		{
			name:   "valid field",
			fields: map[string]any{"username": "bob"},
		},
		{
			name:        "unknown field",
			fields:      map[string]any{"nonexistent_field": "x"},
			wantAttrErr: "nonexistent_field",
		},
		{
			name:        "immutable id",
			fields:      map[string]any{"id": float64(7)},
			wantAttrErr: "id",
		},
		{
			name:        "immutable timestamp",
			fields:      map[string]any{"date_created": "01-01-2020 00:00"},
			wantAttrErr: "date_created",
		},
		{
			name:       "wrong value type",
			fields:     map[string]any{"username": float64(42)},
			wantValErr: "username",
		},
		{
			name:   "empty map is a no-op",
			fields: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{ID: 1, Username: "alice"}
			err := ApplyPatch(u, tt.fields)

			switch {
			case tt.wantAttrErr != "":
				var attrErr *InvalidAttributeError
				require.ErrorAs(t, err, &attrErr)
				assert.Equal(t, tt.wantAttrErr, attrErr.Name)
			case tt.wantValErr != "":
				var valErr *InvalidValueError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, tt.wantValErr, valErr.Name)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestPostSetAttrForeignKey(t *testing.T) {
	p := &Post{}

	// JSON numbers arrive as float64.
	require.NoError(t, p.SetAttr("author_id", float64(3)))
	assert.Equal(t, uint(3), p.AuthorID)

	var valErr *InvalidValueError
	err := p.SetAttr("author_id", float64(-1))
	require.ErrorAs(t, err, &valErr)
	err = p.SetAttr("author_id", float64(1.5))
	require.ErrorAs(t, err, &valErr)
	err = p.SetAttr("author_id", "3")
	require.ErrorAs(t, err, &valErr)
}

func TestReplySetAttr(t *testing.T) {
	r := &Reply{}
	require.NoError(t, r.SetAttr("message", "hi"))
	require.NoError(t, r.SetAttr("post_id", float64(2)))
	assert.Equal(t, "hi", r.Message)
	assert.Equal(t, uint(2), r.PostID)

	err := r.SetAttr("banana", "x")
	var attrErr *InvalidAttributeError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "banana", attrErr.Name)
}

func TestToDictTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	modified := time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)

	u := &User{ID: 1, DateCreated: created, DateModified: modified, Username: "alice"}
	doc := u.ToDict()

	assert.Equal(t, "03-09-2024 14:05", doc["date_created"])
	// date_modified serializes from its own field, not date_created.
	assert.Equal(t, "04-01-2024 09:30", doc["date_modified"])
	assert.Equal(t, "alice", doc["username"])
	assert.NotContains(t, doc, "posts")
}

func TestToDictOmitsRelationships(t *testing.T) {
	p := &Post{ID: 2, Title: "T", Body: "B", AuthorID: 1}
	doc := p.ToDict()
	assert.Equal(t, "T", doc["title"])
	assert.Equal(t, "B", doc["body"])
	assert.NotContains(t, doc, "author")
	assert.NotContains(t, doc, "replies")

	r := &Reply{ID: 3, Message: "M", AuthorID: 1, PostID: 2}
	rdoc := r.ToDict()
	assert.Equal(t, "M", rdoc["message"])
	assert.NotContains(t, rdoc, "post")
}

func TestAttrKind(t *testing.T) {
	var (
		u User
		p Post
		r Reply
	)

	kind, ok := p.AttrKind("author")
	require.True(t, ok)
	assert.Equal(t, AttrEntity, kind)

	kind, ok = u.AttrKind("posts")
	require.True(t, ok)
	assert.Equal(t, AttrCollection, kind)

	kind, ok = r.AttrKind("post")
	require.True(t, ok)
	assert.Equal(t, AttrEntity, kind)

	// Attributes that exist on other entity types are still unknown here.
	_, ok = u.AttrKind("author")
	assert.False(t, ok)
	_, ok = p.AttrKind("message")
	assert.False(t, ok)

	kind, ok = r.AttrKind("message")
	require.True(t, ok)
	assert.Equal(t, AttrScalar, kind)
}

func TestApplyPatchStopsAtFirstBadKey(t *testing.T) {
	// A single-entry map makes the short-circuit observable regardless of
	// iteration order.
	u := &User{Username: "alice"}
	err := ApplyPatch(u, map[string]any{"nonexistent_field": "x"})
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*InvalidAttributeError)))
	assert.Equal(t, "alice", u.Username)
}
