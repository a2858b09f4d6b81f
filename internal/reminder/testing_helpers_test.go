package reminder

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yusufakin/eticaret/storage"
	"github.com/yusufakin/eticaret/storage/db"
)

func newTestQueries(t *testing.T) *db.Queries {
	t.Helper()
	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return queries
}

func seedUser(t *testing.T, queries *db.Queries, email string) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, queries.CreateUser(context.Background(), db.CreateUserParams{
		ID:       id,
		Email:    email,
		FullName: "Test User",
	}))
	return id
}

func seedProduct(t *testing.T, queries *db.Queries, name, coverURL string) string {
	t.Helper()
	id := uuid.New().String()
	cover := sql.NullString{}
	if coverURL != "" {
		cover = sql.NullString{String: coverURL, Valid: true}
	}
	require.NoError(t, queries.CreateProduct(context.Background(), db.CreateProductParams{
		ID:            id,
		Name:          name,
		CoverImageUrl: cover,
		PriceKurus:    10000,
	}))
	return id
}

type cartSeed struct {
	userID      string
	guestUserID string
	idleFor     time.Duration
	totalKurus  int64
	hasTotal    bool
}

func seedCart(t *testing.T, queries *db.Queries, seed cartSeed) db.Cart {
	t.Helper()

	var userID, guestID sql.NullString
	if seed.userID != "" {
		userID = sql.NullString{String: seed.userID, Valid: true}
	}
	if seed.guestUserID != "" {
		guestID = sql.NullString{String: seed.guestUserID, Valid: true}
	}

	var total sql.NullInt64
	if seed.hasTotal {
		total = sql.NullInt64{Int64: seed.totalKurus, Valid: true}
	}

	touched := time.Now().UTC().Add(-seed.idleFor)
	id, err := queries.CreateCart(context.Background(), db.CreateCartParams{
		UserID:      userID,
		GuestUserID: guestID,
		Status:      "active",
		TotalKurus:  total,
		CreatedAt:   touched.Add(-time.Hour),
		UpdatedAt:   touched,
	})
	require.NoError(t, err)

	cart, err := queries.GetCart(context.Background(), id)
	require.NoError(t, err)
	return cart
}

type itemSeed struct {
	productID     string
	quantity      int64
	widthCm       float64
	heightCm      float64
	pleatType     string
	subtotalKurus int64
}

func seedItem(t *testing.T, queries *db.Queries, cartID int64, seed itemSeed) {
	t.Helper()

	item := db.AddCartItemParams{
		ID:       uuid.New().String(),
		CartID:   cartID,
		Quantity: seed.quantity,
	}
	if seed.productID != "" {
		item.ProductID = sql.NullString{String: seed.productID, Valid: true}
	}
	if seed.widthCm > 0 {
		item.WidthCm = sql.NullFloat64{Float64: seed.widthCm, Valid: true}
		item.HeightCm = sql.NullFloat64{Float64: seed.heightCm, Valid: true}
	}
	if seed.pleatType != "" {
		item.PleatType = sql.NullString{String: seed.pleatType, Valid: true}
	}
	if seed.subtotalKurus > 0 {
		item.SubtotalKurus = sql.NullInt64{Int64: seed.subtotalKurus, Valid: true}
	}
	require.NoError(t, queries.AddCartItem(context.Background(), item))
}
