package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brianbaso/Social-Blog-App/internal/models"
	"github.com/google/uuid"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostCreateFailed = errors.New("failed to create post")
	ErrPostUpdateFailed = errors.New("failed to update post")
	ErrPostDeleteFailed = errors.New("failed to delete post")
)

type PostService struct {
	db *Database
}

func NewPostService(db *Database) *PostService {
	return &PostService{db: db}
}

// CreatePost inserts a new post and returns it with its generated ID
// and creation time set. Title and body are stored as given; there is
// no business-rule validation here, an empty title is accepted. A nil
// author stores the post without an owner.
func (ps *PostService) CreatePost(title, body string, author *models.User) (*models.Post, error) {
	post := &models.Post{
		ID:      uuid.NewString(),
		Title:   title,
		Body:    body,
		Created: time.Now(),
	}

	var authorID sql.NullString
	if author != nil {
		post.AuthorID = author.ID
		post.AuthorName = author.Username
		authorID = sql.NullString{String: author.ID, Valid: true}
	}

	query := `INSERT INTO posts (id, title, body, created, author_id, author_name)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err := ps.db.DBConn.Exec(query, post.ID, post.Title, post.Body,
		post.Created, authorID, post.AuthorName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostCreateFailed, err)
	}

	return post, nil
}

// GetPost fetches a single post by ID.
func (ps *PostService) GetPost(id string) (*models.Post, error) {
	query := `SELECT id, title, body, created, author_id, author_name
			  FROM posts WHERE id = ?`

	var post models.Post
	var authorID sql.NullString
	err := ps.db.DBConn.QueryRow(query, id).Scan(
		&post.ID, &post.Title, &post.Body, &post.Created,
		&authorID, &post.AuthorName)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.AuthorID = authorID.String
	return &post, nil
}

// GetAllPosts returns every post, newest first.
func (ps *PostService) GetAllPosts() ([]*models.Post, error) {
	query := `SELECT id, title, body, created, author_id, author_name
			  FROM posts ORDER BY created DESC`

	rows, err := ps.db.DBConn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		var authorID sql.NullString
		err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.Created,
			&authorID, &post.AuthorName)
		if err != nil {
			return nil, err
		}
		post.AuthorID = authorID.String
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// UpdatePost replaces the title and body of an existing post. The
// creation time and author reference are never touched.
func (ps *PostService) UpdatePost(id, title, body string) error {
	query := `UPDATE posts SET title = ?, body = ? WHERE id = ?`
	result, err := ps.db.DBConn.Exec(query, title, body, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostUpdateFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post. Deleting an ID that is already gone is
// not an error; callers redirect to the same place either way.
func (ps *PostService) DeletePost(id string) error {
	query := `DELETE FROM posts WHERE id = ?`
	if _, err := ps.db.DBConn.Exec(query, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPostDeleteFailed, err)
	}
	return nil
}
