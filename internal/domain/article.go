package domain

import "time"

// DefaultArticleImgURL is applied when an article is created without an
// image URL. The articles table declares the column NOT NULL, so the
// default has to be filled in before insert.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a content item belonging to a topic and authored by a user.
//
// CommentCount is derived at query time from the comments table and is
// never stored. Writes re-fetch the article after the INSERT or UPDATE
// so their responses carry it too.
type Article struct {
	ID            int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// NewArticle builds an article ready for insertion, applying the image
// URL default and the zero vote count.
func NewArticle(title, topic, author, body, imgURL string) *Article {
	if imgURL == "" {
		imgURL = DefaultArticleImgURL
	}
	return &Article{
		Title:         title,
		Topic:         topic,
		Author:        author,
		Body:          body,
		CreatedAt:     time.Now().UTC(),
		Votes:         0,
		ArticleImgURL: imgURL,
	}
}
