package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Username     string    `gorm:"not null"              json:"username"`
	Email        string    `gorm:"uniqueIndex;not null"  json:"email"`
	PasswordHash string    `gorm:"not null"              json:"-"`
	Role         int       `gorm:"not null;default:0"    json:"role"`
	Address      string    `gorm:"not null"              json:"address"`
	CreatedAt    time.Time `json:"date"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

const (
	CategoryCar  = "car"
	CategoryBike = "bike"
)

func ValidCategory(c string) bool {
	return c == CategoryCar || c == CategoryBike
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL         string    `json:"url"`
	Name        string    `gorm:"not null"             json:"name"`
	Category    string    `gorm:"not null"             json:"category"`
	Seller      string    `json:"seller"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"             json:"price"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Order carries a client-assigned business identifier (OrderID) next to the
// surrogate primary key. OrderID is unique at the store level.
type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"     json:"id"`
	OrderID    string      `gorm:"uniqueIndex;not null"     json:"orderId"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Contact    string      `json:"contact"`
	Items      []OrderItem `gorm:"foreignKey:OrderUUID"     json:"items"`
	GrandTotal float64     `json:"grandTotal"`
	OrderDate  time.Time   `gorm:"not null"                 json:"orderDate"`
	UserID     uuid.UUID   `gorm:"type:uuid;index;not null" json:"userId"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	return nil
}

type OrderItem struct {
	ID        uint      `gorm:"primaryKey"           json:"-"`
	OrderUUID uuid.UUID `gorm:"type:uuid;index"      json:"-"`
	ProductID string    `gorm:"not null"             json:"productId"`
	Quantity  int       `gorm:"not null"             json:"quantity"`
}
