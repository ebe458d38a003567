package server

import (
	"devconnector/internal/models"
	"devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

const postNotFoundMsg = "No post having this id"

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID: callerID(c),
		Text:   req.Text,
	})
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(post)
}

// GetPosts handles GET /api/posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", fiber.StatusBadRequest, postNotFoundMsg)
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Only the author may delete.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", fiber.StatusBadRequest, postNotFoundMsg)
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), postID, callerID(c)); err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(fiber.Map{"msg": "Successfully deleted"})
}

// LikePost handles PUT /api/posts/:id/like and returns the updated likes list.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", fiber.StatusBadRequest, postNotFoundMsg)
	if err != nil {
		return nil
	}

	likes, err := s.postService.LikePost(c.UserContext(), postID, callerID(c))
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/:id/unlike.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", fiber.StatusBadRequest, postNotFoundMsg)
	if err != nil {
		return nil
	}

	likes, err := s.postService.UnlikePost(c.UserContext(), postID, callerID(c))
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(likes)
}

// AddComment handles POST /api/posts/:id/comment and returns the updated
// comment list, newest first.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", fiber.StatusBadRequest, postNotFoundMsg)
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.postService.AddComment(c.UserContext(), service.AddCommentInput{
		UserID: callerID(c),
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/:id/comment/:commentId. Only the
// comment's author may delete it.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", fiber.StatusBadRequest, postNotFoundMsg)
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "commentId", fiber.StatusNotFound, "No comment found with this id")
	if err != nil {
		return nil
	}

	comments, err := s.postService.DeleteComment(c.UserContext(), postID, commentID, callerID(c))
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(comments)
}
