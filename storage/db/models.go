package db

import (
	"database/sql"
	"time"
)

type User struct {
	ID        string
	Email     string
	FullName  string
	CreatedAt time.Time
}

type Product struct {
	ID            string
	Name          string
	CoverImageUrl sql.NullString
	PriceKurus    int64
	CreatedAt     time.Time
}

type Cart struct {
	ID          int64
	UserID      sql.NullString
	GuestUserID sql.NullString
	Status      string
	TotalKurus  sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CartItem struct {
	ID            string
	CartID        int64
	ProductID     sql.NullString
	Quantity      int64
	WidthCm       sql.NullFloat64
	HeightCm      sql.NullFloat64
	PleatType     sql.NullString
	SubtotalKurus sql.NullInt64
	CreatedAt     time.Time
}

type AuditLog struct {
	ID          string
	EventType   string
	EntityType  string
	EntityID    string
	Message     string
	ErrorDetail sql.NullString
	Metadata    sql.NullString
	Success     int64
	CreatedAt   time.Time
}
