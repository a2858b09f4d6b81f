package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/yusufakin/eticaret/internal/email"
	"github.com/yusufakin/eticaret/storage/db"
)

// SkipReason explains why a candidate cart produced no email. A skip is not
// an error and writes no audit record.
type SkipReason int

const (
	SkipNone SkipReason = iota
	// SkipGuest marks a guest cart, which has no email address by construction.
	SkipGuest
	// SkipNoEmail marks a cart whose resolved address turned out blank.
	SkipNoEmail
	// SkipAlreadySent marks a dedup hit inside the cooldown window.
	SkipAlreadySent
)

func (r SkipReason) String() string {
	switch r {
	case SkipGuest:
		return "guest_cart"
	case SkipNoEmail:
		return "no_email"
	case SkipAlreadySent:
		return "already_sent"
	default:
		return "none"
	}
}

const (
	reminderSubject   = "Don't Forget to Confirm Your Cart!"
	reminderPreheader = "There are items waiting in your cart."
	cartActionText    = "View my cart"
	reminderFooter    = "This email was sent automatically 2 hours after items were added to your cart."
)

// Reminder is one composed email, ready to render and dispatch.
type Reminder struct {
	To      string
	Subject string
	Model   *email.EmailTemplateModel
}

// Composer builds the reminder email model for a cart.
type Composer struct {
	queries *db.Queries
	cartURL string
}

func NewComposer(queries *db.Queries, cartURL string) *Composer {
	return &Composer{queries: queries, cartURL: cartURL}
}

// Compose resolves the recipient and builds the template model for the cart.
// Guest carts and carts with a blank address are skipped, not failed.
func (c *Composer) Compose(ctx context.Context, cart db.Cart) (*Reminder, SkipReason, error) {
	address := ""
	if cart.UserID.Valid {
		user, err := c.queries.GetUser(ctx, cart.UserID.String)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, SkipNone, fmt.Errorf("failed to load cart user: %w", err)
		}
		if err == nil {
			address = user.Email
		}
	} else if cart.GuestUserID.Valid {
		slog.Debug("guest cart has no email address, skipping reminder", "cart_id", cart.ID)
		return nil, SkipGuest, nil
	}

	if strings.TrimSpace(address) == "" {
		slog.Warn("no email address found for cart", "cart_id", cart.ID)
		return nil, SkipNoEmail, nil
	}

	// Display name is the local part of the address.
	displayName := address
	if at := strings.Index(address, "@"); at > 0 {
		displayName = address[:at]
	}

	items, err := c.queries.GetCartItems(ctx, cart.ID)
	if err != nil {
		return nil, SkipNone, fmt.Errorf("failed to load cart items: %w", err)
	}
	itemCount := len(items)
	itemsHTML := buildItemCards(items)

	paragraphs := []string{
		fmt.Sprintf("You have %d item(s) in your cart that you have not confirmed yet.", itemCount),
		"You can review your items and complete your payment to finish your order.",
	}

	details := []email.DetailRow{
		{Label: "Cart No", Value: strconv.FormatInt(cart.ID, 10)},
		{Label: "Item Count", Value: strconv.Itoa(itemCount)},
		{Label: "Total Amount", Value: FormatAmount(cart.TotalKurus)},
	}

	custom := itemsHTML + email.ActionQRSection(c.cartURL, "Scan to open your cart")

	model := &email.EmailTemplateModel{
		Title:         reminderSubject,
		Preheader:     reminderPreheader,
		Greeting:      "Hello " + displayName + ",",
		Paragraphs:    paragraphs,
		Details:       details,
		Highlight:     "Total Amount: " + FormatAmount(cart.TotalKurus),
		ActionText:    cartActionText,
		ActionURL:     c.cartURL,
		CustomSection: custom,
		FooterNote:    reminderFooter,
	}

	return &Reminder{To: address, Subject: reminderSubject, Model: model}, SkipNone, nil
}

// buildItemCards renders one visual card per item whose product still
// resolves. Items without a product are left out of the fragment but still
// count toward the item-count display. Every interpolated text field passes
// through the sanitizer.
func buildItemCards(items []db.GetCartItemsRow) string {
	var b strings.Builder
	wrote := false

	for _, item := range items {
		if !item.ProductID.Valid || !item.ProductName.Valid {
			continue
		}
		if !wrote {
			b.WriteString(`<div style="margin: 20px 0;">`)
			wrote = true
		}

		b.WriteString(`<div style="background:#ffffff;padding:16px;margin:12px 0;border-radius:8px;border:1px solid #e0e0e0;box-shadow:0 2px 4px rgba(0,0,0,0.05);">`)

		if item.ProductImageUrl.Valid && item.ProductImageUrl.String != "" {
			b.WriteString(`<div style="text-align: center; margin-bottom: 12px;">`)
			b.WriteString(`<img src="` + email.EscapeText(item.ProductImageUrl.String) + `" alt="` + email.EscapeText(item.ProductName.String) + `" style="max-width: 200px; width: 100%; height: auto; border-radius: 8px; object-fit: cover;">`)
			b.WriteString(`</div>`)
		}

		b.WriteString(`<div style="font-weight:600;color:#333333;font-size:16px;margin-bottom:8px;word-wrap:break-word;">`)
		b.WriteString(email.EscapeText(item.ProductName.String))
		b.WriteString(`</div>`)

		b.WriteString(`<div style="color:#555555;font-size:14px;line-height:1.6;">`)
		b.WriteString(`<div style="margin-bottom:4px;">Quantity: <strong>` + strconv.FormatInt(item.Quantity, 10) + `</strong></div>`)

		if item.WidthCm.Valid && item.HeightCm.Valid {
			b.WriteString(`<div style="margin-bottom:4px;">Size: ` + formatDim(item.WidthCm.Float64) + ` x ` + formatDim(item.HeightCm.Float64) + ` cm</div>`)
		}
		if item.PleatType.Valid && item.PleatType.String != "" {
			b.WriteString(`<div style="margin-bottom:4px;">Pleat: ` + email.EscapeText(item.PleatType.String) + `</div>`)
		}

		b.WriteString(`<div style="margin-top:12px;padding-top:12px;border-top:1px solid #e0e0e0;color:#333333;font-weight:600;font-size:15px;">`)
		b.WriteString(`Price: ` + FormatAmount(item.SubtotalKurus))
		b.WriteString(`</div>`)

		b.WriteString(`</div>`)
		b.WriteString(`</div>`)
	}

	if !wrote {
		return ""
	}
	b.WriteString(`</div>`)
	return b.String()
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
