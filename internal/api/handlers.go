package api

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/deck"
	"github.com/youruser/deckcode/internal/deckcode"
	imagepkg "github.com/youruser/deckcode/internal/image"
)

var errNoCatalog = errors.New("card catalog is not loaded")

// Handler serves the deck code API. The catalog may be nil, in which case
// only the endpoints that work on raw deck codes are available.
type Handler struct {
	catalog *cards.Catalog
	client  *http.Client
	log     *slog.Logger
}

func NewHandler(catalog *cards.Catalog, client *http.Client, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{catalog: catalog, client: client, log: logger}
}

// statusFor maps codec and catalog errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, deckcode.ErrInvalidDeck):
		return http.StatusUnprocessableEntity
	case errors.Is(err, deckcode.ErrPrefixMismatch),
		errors.Is(err, deckcode.ErrVersionMismatch),
		errors.Is(err, deckcode.ErrChecksumMismatch),
		errors.Is(err, deckcode.ErrMalformedEncoding),
		errors.Is(err, deckcode.ErrTruncatedData):
		return http.StatusBadRequest
	case errors.Is(err, cards.ErrUnknownCard):
		return http.StatusNotFound
	case errors.Is(err, errNoCatalog):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func (h *Handler) withCatalog(c *gin.Context) (*cards.Catalog, bool) {
	if h.catalog == nil {
		fail(c, errNoCatalog)
		return nil, false
	}
	return h.catalog, true
}

func (h *Handler) health(c *gin.Context) {
	n := 0
	if h.catalog != nil {
		n = h.catalog.Len()
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cards": n})
}

func (h *Handler) encode(c *gin.Context) {
	var d deckcode.Deck
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	code, err := deckcode.Encode(d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

func (h *Handler) decode(c *gin.Context) {
	d, err := deckcode.Decode(c.Query("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// qr returns a PNG of the QR for a valid deck code.
func (h *Handler) qr(c *gin.Context) {
	code := c.Query("code")
	if _, err := deckcode.Decode(code); err != nil {
		fail(c, err)
		return
	}
	size := imagepkg.DefaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(code, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) text(c *gin.Context) {
	catalog, ok := h.withCatalog(c)
	if !ok {
		return
	}
	d, err := deck.Decode(c.Query("code"), catalog)
	if err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, deck.ExportText(d))
}

// deckImage renders the heroes' art next to the deck code's QR. Art that
// cannot be downloaded leaves an empty slot.
func (h *Handler) deckImage(c *gin.Context) {
	catalog, ok := h.withCatalog(c)
	if !ok {
		return
	}
	code := c.Query("code")
	d, err := deck.Decode(code, catalog)
	if err != nil {
		fail(c, err)
		return
	}

	heroes := make([]image.Image, len(d.Heroes))
	for i, hero := range d.Heroes {
		if hero.LargeImage == "" {
			continue
		}
		img, err := imagepkg.DownloadImage(c.Request.Context(), h.client, hero.LargeImage)
		if err != nil {
			h.log.Warn("hero art download failed", "card_id", hero.CardID, "err", err)
			continue
		}
		heroes[i] = img
	}
	qr, err := imagepkg.GenerateQRImage(code, imagepkg.DefaultQRSize)
	if err != nil {
		fail(c, err)
		return
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, imagepkg.ComposeDeckImage(heroes, qr)); err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) filter(c *gin.Context) {
	catalog, ok := h.withCatalog(c)
	if !ok {
		return
	}
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(catalog.Cards(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (h *Handler) card(c *gin.Context) {
	catalog, ok := h.withCatalog(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card id"})
		return
	}
	card, err := catalog.Find(uint32(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
