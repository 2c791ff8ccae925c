package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Sketch struct {
	ID           int64           `json:"id" db:"id"`
	Title        string          `json:"title" db:"title"`
	Description  string          `json:"description" db:"description"`
	Price        decimal.Decimal `json:"price" db:"price"`
	CategoryID   *int64          `json:"category_id" db:"category_id"`
	ImageURL     string          `json:"image_url" db:"image_url"`
	ThumbnailURL string          `json:"thumbnail_url" db:"thumbnail_url"`
	Medium       string          `json:"medium" db:"medium"`
	Dimensions   string          `json:"dimensions" db:"dimensions"`
	IsOriginal   bool            `json:"is_original" db:"is_original"`
	StockQty     int             `json:"stock_qty" db:"stock_qty"`
	IsFeatured   bool            `json:"is_featured" db:"is_featured"`
	Tags         string          `json:"tags" db:"tags"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`

	// Populated by joined reads, empty otherwise
	CategoryName string `json:"category_name,omitempty" db:"category_name"`
	CategorySlug string `json:"category_slug,omitempty" db:"category_slug"`
}

type Order struct {
	ID              int64           `json:"id" db:"id"`
	OrderNumber     string          `json:"order_number" db:"order_number"`
	CustomerName    string          `json:"customer_name" db:"customer_name"`
	CustomerEmail   string          `json:"customer_email" db:"customer_email"`
	CustomerPhone   string          `json:"customer_phone" db:"customer_phone"`
	ShippingAddress string          `json:"shipping_address" db:"shipping_address"`
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status          string          `json:"status" db:"status"`
	Notes           string          `json:"notes" db:"notes"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`

	// Populated by joined reads for the admin views
	SketchTitles string      `json:"sketch_titles,omitempty" db:"sketch_titles"`
	Items        []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID              int64           `json:"id" db:"id"`
	OrderID         int64           `json:"order_id" db:"order_id"`
	SketchID        int64           `json:"sketch_id" db:"sketch_id"`
	Quantity        int             `json:"quantity" db:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" db:"price_at_purchase"`

	// Populated by joined reads, empty otherwise
	Title    string `json:"title,omitempty" db:"title"`
	ImageURL string `json:"image_url,omitempty" db:"image_url"`
}

type Inquiry struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	SketchID  *int64    `json:"sketch_id" db:"sketch_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	SketchTitle string `json:"sketch_title,omitempty" db:"sketch_title"`
}

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Stats struct {
	TotalSketches  int64           `json:"total_sketches"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalInquiries int64           `json:"total_inquiries"`
}
