package models

import (
	"time"
)

// Profile holds a user's extended attributes. Exactly one profile may exist
// per user; the unique index on UserID backs the upsert path.
type Profile struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"uniqueIndex;not null" json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `gorm:"type:text" json:"bio,omitempty"`
	Status         string       `gorm:"not null" json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experiences    []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	// OwnerName and OwnerAvatar are not persisted; joined from users at query time.
	OwnerName   string    `gorm:"->" json:"name,omitempty"`
	OwnerAvatar string    `gorm:"->" json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"date"`
	UpdatedAt   time.Time `json:"-"`
}

// SocialLinks maps platform names to URLs. Every platform is optional.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a work-history entry on a profile, addressable by id.
// Dates are carried as opaque strings, matching the wire contract.
type Experience struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"index;not null" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Company     string    `gorm:"not null" json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `gorm:"not null" json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// Education is a schooling entry on a profile, addressable by id.
type Education struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"index;not null" json:"-"`
	School       string    `gorm:"not null" json:"school"`
	Degree       string    `gorm:"not null" json:"degree"`
	FieldOfStudy string    `gorm:"not null" json:"fieldofstudy"`
	From         string    `gorm:"not null" json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `json:"-"`
}
