package email

import (
	"encoding/base64"
	"log/slog"

	qrcode "github.com/skip2/go-qrcode"
)

// ActionQRSection renders a scannable QR code for the given URL as a
// self-contained HTML block, suitable for a model's CustomSection. Returns
// the empty string if encoding fails; the email is still usable without it.
func ActionQRSection(url, caption string) string {
	if url == "" {
		return ""
	}
	png, err := qrcode.Encode(url, qrcode.Medium, 160)
	if err != nil {
		slog.Warn("failed to encode action QR code", "error", err)
		return ""
	}
	encoded := base64.StdEncoding.EncodeToString(png)

	captionHTML := ""
	if caption != "" {
		captionHTML = `<p style="margin:8px 0 0 0;font-size:12px;color:#888888;">` + EscapeText(caption) + `</p>`
	}
	return `<div style="text-align:center;margin:24px 0;">` +
		`<img src="data:image/png;base64,` + encoded + `" alt="QR" style="width:120px;height:120px;">` +
		captionHTML + `</div>`
}
