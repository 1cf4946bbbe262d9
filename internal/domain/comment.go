package domain

import "time"

// Comment is a reply to an article, authored by a user.
type Comment struct {
	ID        int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment builds a comment ready for insertion.
func NewComment(articleID int64, author, body string) *Comment {
	return &Comment{
		ArticleID: articleID,
		Body:      body,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
}
