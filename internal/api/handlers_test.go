package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/deckcode"
)

const exampleCode = "ADCJWkTZX05uwGDCRV4XQGy3QGLmqUBg4GQJgGLGgO7AaABR3JlZW4vQmxhY2sgRXhhbXBsZQ__"

func init() {
	gin.SetMode(gin.TestMode)
}

// smallCatalog covers the deck encoded by smallCode.
func smallCatalog(artURL string) *cards.Catalog {
	set := &cards.CardSet{Code: "00", Name: "Test"}
	for id := uint32(1); id <= 5; id++ {
		set.Cards = append(set.Cards, cards.Card{CardID: id, Name: "Hero", Type: cards.TypeHero, LargeImage: artURL})
	}
	set.Cards = append(set.Cards,
		cards.Card{CardID: 10, Name: "Creep", Type: "Creep", Colour: "green", ManaCost: 2},
		cards.Card{CardID: 300, Name: "Sword", Type: cards.TypeItem, GoldCost: 5},
	)
	return cards.NewCatalog(set)
}

// smallCode is heroes 1..5 with card 10 x4 and card 300 x200.
const smallCode = "ADCJUcAAQEBQYHKBOIJyAE_"

func newRouter(catalog *cards.Catalog) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, NewHandler(catalog, http.DefaultClient, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return r
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newRouter(smallCatalog("")), http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","cards":7}`, w.Body.String())
}

func TestEncodeDecode(t *testing.T) {
	r := newRouter(nil)
	d := deckcode.Deck{
		Heroes: []deckcode.Hero{{CardID: 1, Turn: 1}, {CardID: 2, Turn: 1}, {CardID: 3, Turn: 1}, {CardID: 4, Turn: 2}, {CardID: 5, Turn: 3}},
		Cards:  []deckcode.Card{{CardID: 10, Count: 4}, {CardID: 300, Count: 200}},
	}
	w := do(r, http.MethodPost, "/api/deck/encode", d)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"code":"`+smallCode+`"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/deck/decode?code="+url.QueryEscape(smallCode), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got deckcode.Deck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, d.Heroes, got.Heroes)
	assert.Equal(t, d.Cards, got.Cards)
}

func TestDecodeEmptyCards(t *testing.T) {
	code, err := deckcode.Encode(deckcode.Deck{
		Heroes: []deckcode.Hero{{CardID: 1, Turn: 1}, {CardID: 2, Turn: 1}, {CardID: 3, Turn: 1}, {CardID: 4, Turn: 2}, {CardID: 5, Turn: 3}},
	})
	require.NoError(t, err)
	w := do(newRouter(nil), http.MethodGet, "/api/deck/decode?code="+url.QueryEscape(code), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cards":[]`)
	assert.NotContains(t, w.Body.String(), "null")
}

func TestEncodeErrors(t *testing.T) {
	r := newRouter(nil)
	w := do(r, http.MethodPost, "/api/deck/encode", deckcode.Deck{Name: "no heroes"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid deck")

	req := httptest.NewRequest(http.MethodPost, "/api/deck/encode", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeErrors(t *testing.T) {
	r := newRouter(nil)
	for _, code := range []string{"", "XYZ", "ADC!!", "ADC" + exampleCode[4:]} {
		w := do(r, http.MethodGet, "/api/deck/decode?code="+url.QueryEscape(code), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, code)
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestQR(t *testing.T) {
	r := newRouter(nil)
	w := do(r, http.MethodGet, "/api/deck/qr?size=200&code="+url.QueryEscape(exampleCode), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	w = do(r, http.MethodGet, "/api/deck/qr?code=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogEndpointsWithoutCatalog(t *testing.T) {
	r := newRouter(nil)
	for _, target := range []string{"/api/deck/text?code=" + smallCode, "/api/cards/10"} {
		w := do(r, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, target)
	}
}

func TestText(t *testing.T) {
	r := newRouter(smallCatalog(""))
	w := do(r, http.MethodGet, "/api/deck/text?code="+url.QueryEscape(smallCode), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "4x Creep")
	assert.Contains(t, w.Body.String(), "200x Sword")

	w = do(r, http.MethodGet, "/api/deck/text?code="+url.QueryEscape(exampleCode), nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "the example uses cards outside the catalog")
}

func TestDeckImage(t *testing.T) {
	art := httptest.NewServer(http.NotFoundHandler())
	defer art.Close()

	r := newRouter(smallCatalog(art.URL + "/hero.png"))
	w := do(r, http.MethodGet, "/api/deck/image?code="+url.QueryEscape(smallCode), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	_, err := png.Decode(w.Body)
	require.NoError(t, err, "missing art still yields an image")
}

func TestCards(t *testing.T) {
	r := newRouter(smallCatalog(""))

	w := do(r, http.MethodGet, "/api/cards/10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var card cards.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "Creep", card.Name)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/cards/11", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/cards/abc", nil).Code)

	w = do(r, http.MethodPost, "/api/cards/filter", cards.FilterOptions{Types: []string{"item"}})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Count int          `json:"count"`
		Cards []cards.Card `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "Sword", res.Cards[0].Name)
}
