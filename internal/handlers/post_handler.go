package handlers

import (
	"errors"
	"log"
	"strconv"

	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	postService *services.PostService
	validate    *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the post routes. The caller is expected to pass a
// router group already wrapped by the auth middleware; every post route,
// reads included, sits behind the same gate.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Get("/:id", h.HandleGetPost)
	postRoutes.Put("/:id", h.HandleUpdatePost)
	postRoutes.Delete("/:id", h.HandleDeletePost)
}

// HandleGetPosts retrieves all posts.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.postService.GetAllPosts()
	if err != nil {
		log.Printf("Error getting all posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
		})
	}
	return c.JSON(posts)
}

// HandleGetPost retrieves a single post by its ID.
func (h *PostHandler) HandleGetPost(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post id",
		})
	}

	post, err := h.postService.GetPostByID(id)
	if err != nil {
		return postErrorResponse(c, id, err)
	}
	return c.JSON(post)
}

// HandleCreatePost creates a new post authored by the authenticated user.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req models.PostRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create post body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token",
		})
	}

	post, err := h.postService.CreatePost(claims.Name, &req)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create post",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost replaces the title and text of a post owned by the
// authenticated user.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post id",
		})
	}

	var req models.PostRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update post body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token",
		})
	}

	// Input validation happens inside the service, after the existence
	// check: a bad body against a missing post is still a 404.
	post, err := h.postService.UpdatePost(id, claims.Name, &req)
	if err != nil {
		return postErrorResponse(c, id, err)
	}
	return c.JSON(post)
}

// HandleDeletePost deletes a post owned by the authenticated user.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post id",
		})
	}

	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token",
		})
	}

	if err := h.postService.DeletePost(id, claims.Name); err != nil {
		return postErrorResponse(c, id, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parsePostID reads the :id path parameter.
func parsePostID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// postErrorResponse maps post service errors onto HTTP statuses. Store errors
// were classified at the store boundary and are not re-interpreted here.
func postErrorResponse(c *fiber.Ctx, id uint, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return validationErrorResponse(c, err)
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only modify your own posts",
		})
	default:
		log.Printf("Error handling post %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not process post",
		})
	}
}
