package service

// Cart is the shopping cart payload returned by the cart endpoint.
//
// The validator tags double as the declared response shape: the
// handler pipeline re-validates the cart before serializing it, so a
// missing required field fails loudly server-side instead of producing
// malformed output.
type Cart struct {
	Items              []string `json:"items" validate:"required"`
	TotalPrice         int      `json:"totalPrice"`
	PromotionsAttached bool     `json:"promotionsAttached"`
}

// CartService serves the current shopping cart.
type CartService struct{}

// NewCartService constructs a CartService.
func NewCartService() *CartService {
	return &CartService{}
}

// Current returns the caller's cart. Contents are fixed; there is no
// cart state anywhere in the system, so repeated calls are identical.
func (s *CartService) Current() Cart {
	return Cart{
		Items:              []string{"shampoo", "chocolates", "soap"},
		TotalPrice:         1500,
		PromotionsAttached: false,
	}
}
