package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/catalog-api/internal/api/metrics"
	"github.com/bookstore/catalog-api/internal/core/ports"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books.
//
// @Summary      List books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Book
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.ListBooks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Get handles GET /books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  domain.Book
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Create handles POST /books.
//
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  domain.Book
// @Header       201   {string}  Location  "/books/{id}"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.service.CreateBook(c.Request().Context(), ports.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		return err
	}

	metrics.BookMutationsTotal.WithLabelValues("create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/books/"+book.ID)
	return c.JSON(http.StatusCreated, book)
}

// Update handles PUT /books/:id. The id in the body must match the path.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Book id"
// @Param        body  body      updateBookRequest  true  "Book details"
// @Success      200   {object}  domain.Book
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.service.UpdateBook(c.Request().Context(), ports.UpdateBookInput{
		PathID: c.Param("id"),
		BodyID: req.ID,
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		return err
	}

	metrics.BookMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /books/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  deleteBookResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	book, err := h.service.DeleteBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.BookMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deleteBookResponse{
		Message: "Book deleted successfully",
		Book:    book,
	})
}
