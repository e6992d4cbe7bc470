package httpserver

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"wheelmart/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	OrderHandler   *OrderHTTP
	JWTSecret      []byte
	StaticDir      string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMw := middleware.NewBearerAuth(d.JWTSecret)

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)
	e.GET("/user/details", d.AuthHandler.UserDetails, authMw.RequireAuth)

	e.GET("/products", d.CatalogHandler.GetProducts)
	e.GET("/products/:id", d.CatalogHandler.GetProduct)
	e.POST("/products", d.CatalogHandler.CreateProduct, authMw.RequireAuth)
	e.PUT("/products/:id", d.CatalogHandler.UpdateProduct, authMw.RequireAuth)
	e.DELETE("/products/:id", d.CatalogHandler.DeleteProduct, authMw.RequireAuth)

	e.POST("/orders", d.OrderHandler.PlaceOrder, authMw.RequireAuth)
	e.GET("/orders", d.OrderHandler.GetOrders)
	e.GET("/orders/user", d.OrderHandler.GetUserOrders, authMw.RequireAuth)
	e.DELETE("/orders/:orderId", d.OrderHandler.CancelOrder)

	// Only GETs no route above claims reach the SPA bundle; a registered
	// handler's 404 stays a 404.
	if d.StaticDir != "" {
		e.GET("/*", spaHandler(d.StaticDir))
	}
}

// spaHandler serves bundle files and hands every other path to index.html,
// where the client-side router takes over.
func spaHandler(root string) echo.HandlerFunc {
	index := filepath.Join(root, "index.html")
	return func(c echo.Context) error {
		p, err := url.PathUnescape(c.Request().URL.Path)
		if err != nil {
			return echo.ErrNotFound
		}
		name := filepath.Join(root, filepath.Clean("/"+p))
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			return c.File(name)
		}
		return c.File(index)
	}
}
