package transport

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProductRequest struct {
	URL         string  `json:"url"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Seller      string  `json:"seller"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	OrderID    string            `json:"orderId"`
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	Contact    string            `json:"contact"`
	Items      []CreateOrderItem `json:"items"`
	GrandTotal float64           `json:"grandTotal"`
}
