package content

import (
	"time"
)

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:64;not null"`
}

type Article struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	Image      string    `json:"image,omitempty"`
	CategoryID uint      `json:"categoryId"`
	UserID     uint      `json:"userId"` // author, set at creation, never reassigned
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Comments   []Comment `json:"-" gorm:"foreignKey:ArticleID"`
}

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	ArticleID uint      `json:"articleId"` // immutable
	UserID    uint      `json:"userId"`    // author, immutable
	CreatedAt time.Time `json:"createdAt"`
}

// AuthoredBy reports whether the article belongs to the given user.
func (a *Article) AuthoredBy(userID uint) bool {
	return a.UserID == userID
}

// AuthoredBy reports whether the comment belongs to the given user.
func (c *Comment) AuthoredBy(userID uint) bool {
	return c.UserID == userID
}
