package models

// Post represents a blog post. CreatedAt is set once at creation and never
// changes; EditedAt is only set when Edited flips to true on the first update.
type Post struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Author    string `json:"author" gorm:"type:varchar(255)"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	Edited    bool   `json:"edited"`
	EditedAt  string `json:"edited_at"`
}

// PostRequest is the body of POST /posts and PUT /posts/:id. The author is
// never client-supplied; it is taken from the authenticated claims.
type PostRequest struct {
	Title string `json:"title" validate:"required,min=1"`
	Text  string `json:"text" validate:"required,min=1"`
}
