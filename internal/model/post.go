package model

import "time"

// PostMaxLen is the hard content limit; longer input is truncated
// server-side, never rejected.
const PostMaxLen = 280

// Post is a short feed entry. Readable by anyone, created by an
// authenticated student, deleted through the admin panel.
type Post struct {
	Model
	Content    string `gorm:"type:varchar(280);not null" json:"content"`
	AuthorName string `gorm:"type:varchar(120);not null" json:"authorName"`
	RegNo      string `gorm:"type:varchar(30)" json:"regNo"`
	Likes      int    `gorm:"default:0;not null" json:"likes"`
}

// PostDTO is the wire shape of a post: store timestamps converted to
// portable RFC3339 strings, with the legacy duplicate timestamp/createdAt
// pair kept intact.
type PostDTO struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	AuthorName string `json:"authorName"`
	RegNo      string `json:"regNo"`
	Likes      int    `json:"likes"`
	Timestamp  string `json:"timestamp"`
	CreatedAt  string `json:"createdAt"`
}

func (p *Post) DTO() PostDTO {
	ts := p.CreatedAt.UTC().Format(time.RFC3339)
	return PostDTO{
		ID:         p.ID,
		Content:    p.Content,
		AuthorName: p.AuthorName,
		RegNo:      p.RegNo,
		Likes:      p.Likes,
		Timestamp:  ts,
		CreatedAt:  ts,
	}
}
