package email

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
)

// ErrNilModel is returned when Render is called without a model.
var ErrNilModel = errors.New("email template model is nil")

// DetailRow is one label/value line in the details box. Rows render in
// slice order, so insertion order is display order.
type DetailRow struct {
	Label string
	Value string
}

// EmailTemplateModel describes the content of one email. Every field is
// optional; an omitted section renders as the empty string, never as
// malformed markup.
type EmailTemplateModel struct {
	Title      string
	Preheader  string
	Greeting   string
	Paragraphs []string
	Details    []DetailRow
	Highlight  string

	ActionText string
	ActionURL  string
	ActionNote string

	SecondaryActionText string
	SecondaryActionURL  string

	// CustomSection is inserted verbatim, without escaping. Callers are
	// solely responsible for its safety; assembling it from external or
	// user-controlled input reintroduces injection risk.
	CustomSection string

	FooterNote string
}

// Styles holds the document-level styling knobs. It is built once at
// startup and passed to the renderer; rendering never mutates it.
type Styles struct {
	BodyBackground string
	CardBackground string
	TextColor      string
	BodyTextColor  string
	MutedColor     string
	BorderColor    string
	PanelColor     string
	FontFamily     string
}

// DefaultStyles returns the stock look of the transactional emails.
func DefaultStyles() Styles {
	return Styles{
		BodyBackground: "#f5f5f5",
		CardBackground: "#ffffff",
		TextColor:      "#333333",
		BodyTextColor:  "#555555",
		MutedColor:     "#888888",
		BorderColor:    "#e0e0e0",
		PanelColor:     "#f9f9f9",
		FontFamily:     "-apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif",
	}
}

const documentTemplate = `<!DOCTYPE html>
<html lang="tr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: {{.FontFamily}};
            background-color: {{.BodyBackground}};
            color: {{.TextColor}};
            line-height: 1.6;
        }
        .preheader {
            display: none !important;
            visibility: hidden;
            opacity: 0;
            color: transparent;
            height: 0;
            width: 0;
            overflow: hidden;
        }
        .wrapper {
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .card {
            background: {{.CardBackground}};
            border-radius: 8px;
            padding: 32px 24px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
        }
        h1 {
            font-size: 24px;
            margin: 0 0 20px 0;
            color: {{.TextColor}};
            font-weight: 600;
        }
        p {
            margin: 0 0 16px 0;
            color: {{.BodyTextColor}};
            font-size: 15px;
            line-height: 1.6;
        }
        .details {
            background: {{.PanelColor}};
            border-radius: 6px;
            padding: 16px;
            margin: 20px 0;
        }
        .details-row {
            display: flex;
            justify-content: space-between;
            margin-bottom: 10px;
        }
        .details-row:last-child {
            margin-bottom: 0;
        }
        .details-label {
            font-weight: 600;
            color: {{.TextColor}};
        }
        .details-value {
            color: {{.BodyTextColor}};
        }
        .cta {
            margin: 24px 0;
            text-align: center;
        }
        .button {
            display: inline-block;
            padding: 12px 24px;
            border-radius: 6px;
            text-decoration: none;
            font-weight: 600;
            font-size: 15px;
        }
        .button-primary {
            background: {{.TextColor}};
            color: #ffffff !important;
        }
        .button-secondary {
            background: transparent;
            color: {{.TextColor}};
            border: 1px solid {{.TextColor}};
            margin-left: 12px;
        }
        .highlight {
            padding: 16px;
            background: {{.PanelColor}};
            border-radius: 6px;
            margin: 20px 0;
            font-weight: 600;
            color: {{.TextColor}};
            font-size: 16px;
            text-align: center;
        }
        .footer {
            text-align: center;
            margin-top: 32px;
            padding-top: 20px;
            border-top: 1px solid {{.BorderColor}};
            color: {{.MutedColor}};
            font-size: 12px;
        }
        @media (max-width: 600px) {
            .card {
                padding: 24px 16px;
            }
            .details-row {
                flex-direction: column;
                gap: 4px;
            }
            .button-secondary {
                margin-left: 0;
                margin-top: 12px;
                display: block;
            }
        }
    </style>
</head>
<body>
    <span class="preheader">{{.Preheader}}</span>
    <div class="wrapper">
        <div class="card">
            {{.Logo}}
            <h1>{{.Title}}</h1>
            {{.Greeting}}
            {{.Paragraphs}}
            {{.Details}}
            {{.Highlight}}
            {{.Actions}}
            {{.CustomSection}}
            {{.FooterNote}}
        </div>
    </div>
</body>
</html>
`

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

type documentData struct {
	Title      template.HTML
	Preheader  template.HTML
	Logo       template.HTML
	Greeting   template.HTML
	Paragraphs template.HTML
	Details    template.HTML
	Highlight  template.HTML
	Actions    template.HTML
	// CustomSection is the caller-trusted raw block.
	CustomSection template.HTML
	FooterNote    template.HTML

	FontFamily     template.CSS
	BodyBackground template.CSS
	CardBackground template.CSS
	TextColor      template.CSS
	BodyTextColor  template.CSS
	MutedColor     template.CSS
	BorderColor    template.CSS
	PanelColor     template.CSS
}

// Renderer turns an EmailTemplateModel into a complete HTML document. It is
// pure after construction: the logo asset is read once and cached, and
// identical models render to identical output.
type Renderer struct {
	styles   Styles
	logoHTML string
}

// NewRenderer builds a renderer with the given styles and logo source. A
// missing or unreadable logo is not an error; the document simply renders
// without one.
func NewRenderer(styles Styles, logo LogoProvider) *Renderer {
	r := &Renderer{styles: styles}
	if logo == nil {
		return r
	}
	raw, err := logo.LogoBytes()
	if err != nil || len(raw) == 0 {
		if err != nil {
			slog.Debug("logo asset unavailable, rendering emails without logo", "error", err)
		}
		return r
	}
	encoded := base64.StdEncoding.EncodeToString(raw)
	r.logoHTML = `<div style="text-align: center; margin-bottom: 24px;">` +
		`<img src="data:image/png;base64,` + encoded + `" alt="Logo" style="max-width: 120px; height: auto;">` +
		`</div>`
	return r
}

// Render produces the full HTML document for the model. Only a nil model is
// an error; a model with every optional field empty still renders a complete
// document with the optional sections as empty strings.
func (r *Renderer) Render(model *EmailTemplateModel) (string, error) {
	if model == nil {
		return "", ErrNilModel
	}

	data := documentData{
		Title:         template.HTML(EscapeText(model.Title)),
		Preheader:     template.HTML(EscapeText(model.Preheader)),
		Logo:          template.HTML(r.logoHTML),
		Greeting:      template.HTML(buildGreeting(model.Greeting)),
		Paragraphs:    template.HTML(buildParagraphs(model.Paragraphs)),
		Details:       template.HTML(buildDetails(model.Details)),
		Highlight:     template.HTML(buildHighlight(model.Highlight)),
		Actions:       template.HTML(buildPrimaryAction(model) + buildSecondaryAction(model)),
		CustomSection: template.HTML(model.CustomSection),
		FooterNote:    template.HTML(buildFooter(model.FooterNote)),

		FontFamily:     template.CSS(r.styles.FontFamily),
		BodyBackground: template.CSS(r.styles.BodyBackground),
		CardBackground: template.CSS(r.styles.CardBackground),
		TextColor:      template.CSS(r.styles.TextColor),
		BodyTextColor:  template.CSS(r.styles.BodyTextColor),
		MutedColor:     template.CSS(r.styles.MutedColor),
		BorderColor:    template.CSS(r.styles.BorderColor),
		PanelColor:     template.CSS(r.styles.PanelColor),
	}

	var out bytes.Buffer
	if err := documentTmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render email document: %w", err)
	}
	return out.String(), nil
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func buildGreeting(text string) string {
	if !hasText(text) {
		return ""
	}
	return `<p style="color:#000000;font-weight:600;font-size:16px;">` + EscapeText(text) + `</p>`
}

func buildParagraphs(paragraphs []string) string {
	var b strings.Builder
	for _, text := range paragraphs {
		if !hasText(text) {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(EscapeText(text), "\n", "<br/>"))
		b.WriteString("</p>")
	}
	return b.String()
}

func buildDetails(details []DetailRow) string {
	if len(details) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="details">`)
	for _, row := range details {
		b.WriteString(`<div class="details-row">`)
		b.WriteString(`<span class="details-label">` + EscapeText(row.Label) + `</span>`)
		b.WriteString(`<span class="details-value">` + EscapeText(row.Value) + `</span>`)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func buildHighlight(text string) string {
	if !hasText(text) {
		return ""
	}
	return `<div class="highlight">` + EscapeText(text) + `</div>`
}

func buildPrimaryAction(model *EmailTemplateModel) string {
	if !hasText(model.ActionText) || !hasText(model.ActionURL) {
		return ""
	}
	note := ""
	if hasText(model.ActionNote) {
		note = `<p style="margin:8px 0 0 0;font-size:13px;color:#000000;opacity:0.8;">` + EscapeText(model.ActionNote) + `</p>`
	}
	return `<div class="cta">` +
		`<a href="` + EscapeURL(model.ActionURL) + `" class="button button-primary" target="_blank" rel="noopener noreferrer">` +
		EscapeText(model.ActionText) + `</a>` + note + `</div>`
}

func buildSecondaryAction(model *EmailTemplateModel) string {
	if !hasText(model.SecondaryActionText) || !hasText(model.SecondaryActionURL) {
		return ""
	}
	return `<div class="cta">` +
		`<a href="` + EscapeURL(model.SecondaryActionURL) + `" class="button button-secondary" target="_blank" rel="noopener noreferrer">` +
		EscapeText(model.SecondaryActionText) + `</a></div>`
}

func buildFooter(text string) string {
	if !hasText(text) {
		return ""
	}
	return `<p class="footer">` + EscapeText(text) + `</p>`
}
