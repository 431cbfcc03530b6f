package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/output"
)

// codeBadRequest is reported for requests that carry no usable encoding.
const codeBadRequest = "bad_request"

// ParseRequest is the body of POST /api/parse.
type ParseRequest struct {
	FEN string `json:"fen"`
}

// StatsResponse is the body of GET /api/stats. Positions are counted once
// per distinct placement, side, castling and en passant target.
type StatsResponse struct {
	Unique    int  `json:"unique"`
	Repeated  int  `json:"repeated"`
	Saturated bool `json:"saturated"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) parse(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  codeBadRequest,
		})
	}
	if req.FEN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "fen is required",
			Code:  codeBadRequest,
		})
	}

	pos, err := s.decoder.Decode(req.FEN)
	if err != nil {
		return s.decodeFailed(c, err)
	}
	s.seen.CheckAndAdd(pos)
	return c.JSON(output.PositionToJSON(pos, req.FEN))
}

func (s *Server) render(c *fiber.Ctx) error {
	encoding := c.Query("fen")
	if encoding == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "fen query parameter is required",
			Code:  codeBadRequest,
		})
	}

	pos, err := s.decoder.Decode(encoding)
	if err != nil {
		return s.decodeFailed(c, err)
	}
	s.seen.CheckAndAdd(pos)

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(s.renderer.Render(pos))
}

func (s *Server) stats(c *fiber.Ctx) error {
	return c.JSON(StatsResponse{
		Unique:    s.seen.UniqueCount(),
		Repeated:  s.seen.DuplicateCount(),
		Saturated: s.seen.IsFull(),
	})
}

func (s *Server) decodeFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Error: err.Error(),
		Code:  errors.Code(err),
	})
}
