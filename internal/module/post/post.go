package post

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/feed"
	"student-portal-system/internal/global/response"
	"student-portal-system/internal/global/store"
	"student-portal-system/internal/model"
)

const defaultFeedLimit = 20

type createReq struct {
	Content    string `json:"content"`
	AuthorName string `json:"authorName"`
	RegNo      string `json:"regNo"`
}

func feedLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return defaultFeedLimit
	}
	return limit
}

func loadFeed(limit int) ([]model.PostDTO, error) {
	posts, err := store.AllOrdered[model.Post]("created_at", true, limit)
	if err != nil {
		return nil, err
	}
	dtos := make([]model.PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, posts[i].DTO())
	}
	return dtos, nil
}

// List returns the most recent posts, newest first, timestamps as portable
// date strings.
func List(c *gin.Context) {
	dtos, err := loadFeed(feedLimit(c))
	if err != nil {
		log.Error("post list failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, dtos)
}

// Create inserts a post. Content and author are required non-empty; content
// longer than the limit is truncated silently rather than rejected, even
// when the browser-side guard was bypassed.
func Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Post content is required"))
		return
	}
	authorName := strings.TrimSpace(req.AuthorName)
	if authorName == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Author name is required"))
		return
	}

	if runes := []rune(content); len(runes) > model.PostMaxLen {
		content = string(runes[:model.PostMaxLen])
	}

	post := model.Post{
		Content:    content,
		AuthorName: authorName,
		RegNo:      strings.ToUpper(strings.TrimSpace(req.RegNo)),
		Likes:      0,
	}

	if err := store.Insert(&post); err != nil {
		log.Error("post create failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	feed.Publish(c.Request.Context(), log)
	response.Created(c, "Post created", post.DTO())
}

// Delete removes a post unconditionally; there is no ownership check and a
// missing id deletes as a no-op.
func Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Post ID required"))
		return
	}

	if err := store.DeleteByID[model.Post](id); err != nil {
		log.Error("post delete failed", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	feed.Publish(c.Request.Context(), log)
	response.Message(c, "Post deleted")
}
