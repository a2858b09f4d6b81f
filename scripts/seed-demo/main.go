// Seeds the database with demo users, products and idle carts so the
// reminder job and the admin preview endpoint have something to work with.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/yusufakin/eticaret/internal/reminder"
	"github.com/yusufakin/eticaret/storage"
	"github.com/yusufakin/eticaret/storage/db"
)

const (
	numUsers    = 10
	numProducts = 20
	numCarts    = 15
)

var pleatTypes = []string{"Single Pleat", "Double Pleat", "Flat", ""}

func main() {
	store, err := storage.New("./db/eticaret.db")
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	queries := store.Queries

	userIDs := make([]string, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		id := uuid.New().String()
		if err := queries.CreateUser(ctx, db.CreateUserParams{
			ID:       id,
			Email:    gofakeit.Email(),
			FullName: gofakeit.Name(),
		}); err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		userIDs = append(userIDs, id)
	}

	productIDs := make([]string, 0, numProducts)
	for i := 0; i < numProducts; i++ {
		id := uuid.New().String()
		coverURL := sql.NullString{}
		if gofakeit.Bool() {
			coverURL = sql.NullString{String: gofakeit.ImageURL(400, 300), Valid: true}
		}
		if err := queries.CreateProduct(ctx, db.CreateProductParams{
			ID:            id,
			Name:          gofakeit.ProductName(),
			CoverImageUrl: coverURL,
			PriceKurus:    reminder.KurusFromLira(gofakeit.Price(50, 2500)),
		}); err != nil {
			log.Fatalf("failed to create product: %v", err)
		}
		productIDs = append(productIDs, id)
	}

	for i := 0; i < numCarts; i++ {
		// Mix of user carts, guest carts and carts idle long enough to
		// be picked up by the next reminder run.
		var userID, guestID sql.NullString
		if i%4 == 3 {
			guestID = sql.NullString{String: uuid.New().String(), Valid: true}
		} else {
			userID = sql.NullString{String: userIDs[rand.Intn(len(userIDs))], Valid: true}
		}

		idle := time.Duration(rand.Intn(6)+1) * time.Hour
		touched := time.Now().UTC().Add(-idle)

		itemCount := rand.Intn(3) + 1
		total := int64(0)

		cartID, err := queries.CreateCart(ctx, db.CreateCartParams{
			UserID:      userID,
			GuestUserID: guestID,
			Status:      "active",
			CreatedAt:   touched.Add(-30 * time.Minute),
			UpdatedAt:   touched,
		})
		if err != nil {
			log.Fatalf("failed to create cart: %v", err)
		}

		for j := 0; j < itemCount; j++ {
			qty := int64(rand.Intn(3) + 1)
			productID := productIDs[rand.Intn(len(productIDs))]
			product, err := queries.GetProduct(ctx, productID)
			if err != nil {
				log.Fatalf("failed to load product: %v", err)
			}
			subtotal := product.PriceKurus * qty
			total += subtotal

			item := db.AddCartItemParams{
				ID:            uuid.New().String(),
				CartID:        cartID,
				ProductID:     sql.NullString{String: productID, Valid: true},
				Quantity:      qty,
				SubtotalKurus: sql.NullInt64{Int64: subtotal, Valid: true},
			}
			if gofakeit.Bool() {
				item.WidthCm = sql.NullFloat64{Float64: float64(rand.Intn(200) + 50), Valid: true}
				item.HeightCm = sql.NullFloat64{Float64: float64(rand.Intn(150) + 50), Valid: true}
			}
			if pleat := pleatTypes[rand.Intn(len(pleatTypes))]; pleat != "" {
				item.PleatType = sql.NullString{String: pleat, Valid: true}
			}
			if err := queries.AddCartItem(ctx, item); err != nil {
				log.Fatalf("failed to add cart item: %v", err)
			}
		}

		if _, err := store.DB().ExecContext(ctx, "UPDATE carts SET total_kurus = ? WHERE id = ?", total, cartID); err != nil {
			log.Fatalf("failed to set cart total: %v", err)
		}
	}

	fmt.Printf("seeded %d users, %d products, %d carts\n", numUsers, numProducts, numCarts)
}
