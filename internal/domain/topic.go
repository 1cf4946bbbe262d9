package domain

// Topic is a category tag for articles, identified by a unique slug.
// Topics are created via the API but never updated or deleted.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}
