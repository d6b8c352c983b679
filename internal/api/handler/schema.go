package handler

import "github.com/bookstore/catalog-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
	AdminKey string `json:"adminKey"`
}

// loginRequest carries no validation tags: empty fields fail in the service
// with the same opaque error as a wrong password.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Books ---

type createBookRequest struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author" validate:"required"`
}

type updateBookRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author" validate:"required"`
}

type deleteBookResponse struct {
	Message string       `json:"message"`
	Book    *domain.Book `json:"book"`
}
