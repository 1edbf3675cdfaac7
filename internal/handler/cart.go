package handler

import (
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/service"
	"github.com/campushq/academy-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// CartHandler serves the current cart endpoint.
type CartHandler struct {
	Handler
	cart *service.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(s *server.Server, cart *service.CartService) *CartHandler {
	return &CartHandler{
		Handler: NewHandler(s),
		cart:    cart,
	}
}

// GetCartRequest has no parameters; the endpoint takes nothing.
type GetCartRequest struct{}

func (r *GetCartRequest) Validate() error {
	return validation.Check(r)
}

// GetCurrentCart returns the caller's cart. The route is registered
// with HandleShaped, so the service.Cart result is re-validated
// against its declared shape before serialization: only the three
// declared fields ever leave, and a missing one is a loud 500.
func (h *CartHandler) GetCurrentCart(c echo.Context, req *GetCartRequest) (service.Cart, error) {
	return h.cart.Current(), nil
}
