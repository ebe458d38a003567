package models

import (
	"time"
)

// Post is owned by a user. Name and Avatar are copied from the owner at
// creation time so the post stays renderable after the owner is deleted;
// UserID intentionally has no foreign-key constraint for the same reason.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// Like records one user liking one post. The composite unique index is the
// at-most-one-like-per-user invariant; concurrent double-likes race to a
// constraint violation instead of a lost update.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user"`
	CreatedAt time.Time `json:"-"`
}

// Comment belongs to a post and is owned by a user. Name and Avatar are
// denormalized from the author at creation time, like on Post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"-"`
	UserID    uint      `gorm:"not null" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}
