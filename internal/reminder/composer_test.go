package reminder

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufakin/eticaret/internal/email"
)

const testCartURL = "https://yusufakin.online/cart"

func TestCompose_GuestCartIsSkipped(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)

	cart := seedCart(t, queries, cartSeed{guestUserID: "g1", idleFor: 3 * time.Hour})

	rem, reason, err := composer.Compose(context.Background(), cart)
	assert.NoError(t, err)
	assert.Equal(t, SkipGuest, reason)
	assert.Nil(t, rem)
}

func TestCompose_BlankUserEmailIsSkipped(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)

	userID := seedUser(t, queries, "")
	cart := seedCart(t, queries, cartSeed{userID: userID, idleFor: 3 * time.Hour})

	rem, reason, err := composer.Compose(context.Background(), cart)
	assert.NoError(t, err)
	assert.Equal(t, SkipNoEmail, reason)
	assert.Nil(t, rem)
}

func TestCompose_MissingUserRowIsSkipped(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)

	userID := seedUser(t, queries, "ayse@example.com")
	cart := seedCart(t, queries, cartSeed{userID: userID, idleFor: 3 * time.Hour})
	// Point the cart at a user that no longer exists.
	cart.UserID.String = "gone"

	rem, reason, err := composer.Compose(context.Background(), cart)
	assert.NoError(t, err)
	assert.Equal(t, SkipNoEmail, reason)
	assert.Nil(t, rem)
}

func TestCompose_BuildsModelFromCart(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)

	userID := seedUser(t, queries, "ayse@example.com")
	cart := seedCart(t, queries, cartSeed{userID: userID, idleFor: 3 * time.Hour, totalKurus: 15000, hasTotal: true})
	productID := seedProduct(t, queries, "Linen Curtain", "https://cdn.example.com/curtain.jpg")
	seedItem(t, queries, cart.ID, itemSeed{
		productID:     productID,
		quantity:      2,
		widthCm:       120,
		heightCm:      250,
		pleatType:     "Double Pleat",
		subtotalKurus: 15000,
	})

	rem, reason, err := composer.Compose(context.Background(), cart)
	require.NoError(t, err)
	require.Equal(t, SkipNone, reason)
	require.NotNil(t, rem)

	assert.Equal(t, "ayse@example.com", rem.To)
	assert.Equal(t, rem.Subject, rem.Model.Title)

	model := rem.Model
	assert.Equal(t, "Hello ayse,", model.Greeting)
	assert.Contains(t, model.Paragraphs[0], "1 item(s)")
	assert.Contains(t, model.Highlight, "150.00 ₺")

	require.Len(t, model.Details, 3)
	assert.Equal(t, "Cart No", model.Details[0].Label)
	assert.Equal(t, strconv.FormatInt(cart.ID, 10), model.Details[0].Value)
	assert.Equal(t, "Item Count", model.Details[1].Label)
	assert.Equal(t, "1", model.Details[1].Value)
	assert.Equal(t, "Total Amount", model.Details[2].Label)
	assert.Equal(t, "150.00 ₺", model.Details[2].Value)

	assert.Equal(t, "View my cart", model.ActionText)
	assert.Equal(t, testCartURL, model.ActionURL)
	assert.Contains(t, model.FooterNote, "2 hours")

	assert.Contains(t, model.CustomSection, "Linen Curtain")
	assert.Contains(t, model.CustomSection, "https://cdn.example.com/curtain.jpg")
	assert.Contains(t, model.CustomSection, "Quantity: <strong>2</strong>")
	assert.Contains(t, model.CustomSection, "Size: 120 x 250 cm")
	assert.Contains(t, model.CustomSection, "Pleat: Double Pleat")
	assert.Contains(t, model.CustomSection, "Price: 150.00 ₺")
}

func TestCompose_NullProductOmittedFromCardsButCounted(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)

	userID := seedUser(t, queries, "demir@example.com")
	cart := seedCart(t, queries, cartSeed{userID: userID, idleFor: 3 * time.Hour, totalKurus: 15000, hasTotal: true})
	productID := seedProduct(t, queries, "<b>Vase</b>", "")
	seedItem(t, queries, cart.ID, itemSeed{quantity: 2})
	seedItem(t, queries, cart.ID, itemSeed{productID: productID, quantity: 1, subtotalKurus: 15000})

	rem, reason, err := composer.Compose(context.Background(), cart)
	require.NoError(t, err)
	require.Equal(t, SkipNone, reason)

	model := rem.Model
	// Both items count, only the resolvable one gets a card.
	assert.Contains(t, model.Paragraphs[0], "2 item(s)")
	assert.Equal(t, "2", model.Details[1].Value)
	assert.Equal(t, 1, strings.Count(model.CustomSection, "word-wrap:break-word"))

	// The product name is escaped exactly once, never rendered as markup.
	assert.Contains(t, model.CustomSection, "&lt;b&gt;Vase&lt;/b&gt;")
	assert.NotContains(t, model.CustomSection, "<b>Vase</b>")

	// No cover image means no img tag for the card.
	assert.NotContains(t, model.CustomSection, "object-fit: cover")
}

func TestCompose_NoResolvableProductsMeansNoCards(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)

	userID := seedUser(t, queries, "ece@example.com")
	cart := seedCart(t, queries, cartSeed{userID: userID, idleFor: 3 * time.Hour})
	seedItem(t, queries, cart.ID, itemSeed{quantity: 1})

	rem, reason, err := composer.Compose(context.Background(), cart)
	require.NoError(t, err)
	require.Equal(t, SkipNone, reason)

	// Custom section still carries the QR block, but no item cards.
	assert.NotContains(t, rem.Model.CustomSection, "word-wrap:break-word")
}

func TestCompose_AbsentTotalRendersZero(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)

	userID := seedUser(t, queries, "kaan@example.com")
	cart := seedCart(t, queries, cartSeed{userID: userID, idleFor: 3 * time.Hour})

	rem, reason, err := composer.Compose(context.Background(), cart)
	require.NoError(t, err)
	require.Equal(t, SkipNone, reason)
	assert.Contains(t, rem.Model.Highlight, "0.00 ₺")
}

func TestCompose_ModelRendersEndToEnd(t *testing.T) {
	queries := newTestQueries(t)
	composer := NewComposer(queries, testCartURL)
	renderer := email.NewRenderer(email.DefaultStyles(), nil)

	userID := seedUser(t, queries, "ayse@example.com")
	cart := seedCart(t, queries, cartSeed{userID: userID, idleFor: 3 * time.Hour, totalKurus: 15000, hasTotal: true})
	productID := seedProduct(t, queries, "<b>Vase</b>", "")
	seedItem(t, queries, cart.ID, itemSeed{productID: productID, quantity: 1, subtotalKurus: 15000})

	rem, reason, err := composer.Compose(context.Background(), cart)
	require.NoError(t, err)
	require.Equal(t, SkipNone, reason)

	html, err := renderer.Render(rem.Model)
	require.NoError(t, err)

	assert.Contains(t, html, "&lt;b&gt;Vase&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Vase</b>")
	assert.Contains(t, html, "150.00 ₺")
	assert.Contains(t, html, `href="https://yusufakin.online/cart"`)
}
