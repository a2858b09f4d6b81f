package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeText_SpecialCharacters(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Vase&lt;/b&gt;", EscapeText("<b>Vase</b>"))
	assert.Equal(t, "Tom &amp; Jerry", EscapeText("Tom & Jerry"))
	assert.Equal(t, "&quot;quoted&quot;", EscapeText(`"quoted"`))
	assert.Equal(t, "it&#39;s", EscapeText("it's"))
}

func TestEscapeText_MultiByteTextPreserved(t *testing.T) {
	assert.Equal(t, "Müşteri Şükrü 🛒", EscapeText("Müşteri Şükrü 🛒"))
	assert.Equal(t, "Çift &lt;Pile&gt;", EscapeText("Çift <Pile>"))
}

func TestEscapeText_Empty(t *testing.T) {
	assert.Equal(t, "", EscapeText(""))
}

func TestEscapeURL_BlankGetsPlaceholder(t *testing.T) {
	assert.Equal(t, "#", EscapeURL(""))
	assert.Equal(t, "#", EscapeURL("   "))
}

func TestEscapeURL_PassesThroughNonBlank(t *testing.T) {
	assert.Equal(t, "https://yusufakin.online/cart", EscapeURL("https://yusufakin.online/cart"))
}
