package services

import (
	"encoding/json"
	"errors"
	"log"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/pkg/timefmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrForbidden is returned when an authenticated user tries to mutate a post
// they do not own.
var ErrForbidden = errors.New("not the post owner")

// EventPublisher publishes post lifecycle events. *rabbitmq.Client satisfies
// this; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// PostService handles business logic related to posts.
type PostService struct {
	postRepo  repositories.PostRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, publisher EventPublisher) *PostService {
	return &PostService{
		postRepo:  postRepo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// GetAllPosts retrieves all posts.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

// GetPostByID retrieves a single post by its ID.
func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost creates a new post. The author comes from the authenticated
// claims, never from the request body.
func (s *PostService) CreatePost(author string, req *models.PostRequest) (*models.Post, error) {
	post := &models.Post{
		Author:    author,
		Title:     req.Title,
		Text:      req.Text,
		CreatedAt: timefmt.Now(),
		Edited:    false,
		EditedAt:  "",
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	s.publishEvent("post.created", post)
	return post, nil
}

// UpdatePost replaces the title and text of an existing post. Only the owner
// may update; ID, author and creation timestamp are preserved from the stored
// record, and the post is flagged as edited. The checks run in a fixed order:
// the post must exist, then the input must validate, then the requester must
// own it.
func (s *PostService) UpdatePost(id uint, requester string, req *models.PostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	if post.Author != requester {
		return nil, ErrForbidden
	}

	updated := &models.Post{
		ID:        post.ID,
		Author:    post.Author,
		Title:     req.Title,
		Text:      req.Text,
		CreatedAt: post.CreatedAt,
		Edited:    true,
		EditedAt:  timefmt.Now(),
	}

	if err := s.postRepo.Update(updated); err != nil {
		return nil, err
	}

	s.publishEvent("post.updated", updated)
	return updated, nil
}

// DeletePost removes a post. Only the owner may delete.
func (s *PostService) DeletePost(id uint, requester string) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if post.Author != requester {
		return ErrForbidden
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("post.deleted", post)
	return nil
}

// publishEvent emits a post lifecycle event. Publishing is best-effort: a
// failure is logged and never fails the request that triggered it.
func (s *PostService) publishEvent(eventType string, post *models.Post) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event_id": uuid.New().String(),
		"type":     eventType,
		"post_id":  post.ID,
		"author":   post.Author,
		"at":       timefmt.Now(),
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for post %d: %v", eventType, post.ID, err)
		return
	}

	if err := s.publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for post %d: %v", eventType, post.ID, err)
	}
}
