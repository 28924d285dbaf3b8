package domain

import "time"

// UserID identifies one of the two managed smart-display recipients.
type UserID string

const (
	UserMother UserID = "mother"
	UserGibo   UserID = "gibo"
)

func (u UserID) Valid() bool { return u == UserMother || u == UserGibo }

// Label is the honorific shown to admins and spoken by the display.
func (u UserID) Label() string {
	if u == UserMother {
		return "お母様（指宿）"
	}
	return "義母様（旭川）"
}

type Deal struct {
	ID                  int64     `json:"id"`
	UserID              UserID    `json:"user_id"`
	StoreName           string    `json:"store_name"`
	ProductName         string    `json:"product_name"`
	RegularPrice        int       `json:"regular_price"`
	SalePrice           int       `json:"sale_price"`
	DiscountAmount      int       `json:"discount_amount"`
	Distance            *string   `json:"distance,omitempty"`
	SaleStartDate       string    `json:"sale_start_date"` // YYYY-MM-DD
	SaleEndDate         string    `json:"sale_end_date"`   // YYYY-MM-DD
	StockStatus         string    `json:"stock_status"`
	RecommendationPoint *string   `json:"recommendation_point,omitempty"`
	ImageURL            *string   `json:"image_url,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewDeal is an insert payload. discount_amount is derived at insert time
// (regular - sale); the store assigns id and timestamps.
type NewDeal struct {
	UserID              UserID  `json:"user_id"`
	StoreName           string  `json:"store_name"`
	ProductName         string  `json:"product_name"`
	RegularPrice        int     `json:"regular_price"`
	SalePrice           int     `json:"sale_price"`
	Distance            *string `json:"distance,omitempty"`
	SaleStartDate       string  `json:"sale_start_date"`
	SaleEndDate         string  `json:"sale_end_date"`
	StockStatus         string  `json:"stock_status"`
	RecommendationPoint *string `json:"recommendation_point,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
	IsActive            bool    `json:"is_active"`
}

// DealUpdate is a full-record update. DiscountAmount is only written when the
// client supplies it; the server never recomputes it from the new prices.
type DealUpdate struct {
	UserID              UserID  `json:"user_id"`
	StoreName           string  `json:"store_name"`
	ProductName         string  `json:"product_name"`
	RegularPrice        int     `json:"regular_price"`
	SalePrice           int     `json:"sale_price"`
	DiscountAmount      *int    `json:"discount_amount,omitempty"`
	Distance            *string `json:"distance,omitempty"`
	SaleStartDate       string  `json:"sale_start_date"`
	SaleEndDate         string  `json:"sale_end_date"`
	StockStatus         string  `json:"stock_status"`
	RecommendationPoint *string `json:"recommendation_point,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
	IsActive            bool    `json:"is_active"`
}
