package cards

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/youruser/deckcode/internal/util"
)

// DefaultCatalogURL serves card set locations as <url><code>/.
const DefaultCatalogURL = "https://playartifact.com/cardset/"

// Client fetches card sets from the remote catalog, keeping a copy of every
// set it downloads in a cache directory. Sets are only fetched once; after
// that they are read from the cache.
type Client struct {
	baseURL  string
	cacheDir string
	http     *http.Client
	sets     *xsync.MapOf[string, *CardSet]
}

// NewClient returns a client for the catalog at baseURL. A nil httpClient
// uses util.DefaultTimeout.
func NewClient(baseURL, cacheDir string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultCatalogURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:  baseURL,
		cacheDir: cacheDir,
		http:     httpClient,
		sets:     xsync.NewMapOf[string, *CardSet](),
	}
}

// LoadCardSet returns the set with the given code, e.g. "00" or "01".
func (c *Client) LoadCardSet(ctx context.Context, code string) (*CardSet, error) {
	if set, ok := c.sets.Load(code); ok {
		return set, nil
	}
	data, err := c.cached(code)
	if err != nil {
		return nil, err
	}
	if data == nil {
		if data, err = c.fetch(ctx, code); err != nil {
			return nil, err
		}
		if err = util.WriteFile(c.cachePath(code), data); err != nil {
			return nil, errors.Wrapf(err, "cache card set %s", code)
		}
	}
	set, err := parseCardSet(code, data)
	if err != nil {
		return nil, err
	}
	set, _ = c.sets.LoadOrStore(code, set)
	return set, nil
}

func (c *Client) cachePath(code string) string {
	return filepath.Join(c.cacheDir, code+".json")
}

// cached returns the cached set, or nil if there is none.
func (c *Client) cached(code string) ([]byte, error) {
	data, err := os.ReadFile(c.cachePath(code))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, errors.Wrapf(err, "read cached card set %s", code)
}

func (c *Client) fetch(ctx context.Context, code string) ([]byte, error) {
	body, err := util.GetBytes(ctx, c.http, c.baseURL+code+"/")
	if err != nil {
		return nil, errors.Wrapf(err, "locate card set %s", code)
	}
	var loc setLocation
	if err = json.Unmarshal(body, &loc); err != nil {
		return nil, errors.Wrapf(err, "locate card set %s", code)
	}
	if loc.CDNRoot == "" && loc.URL == "" {
		return nil, errors.Errorf("locate card set %s: catalog returned no url", code)
	}
	body, err = util.GetBytes(ctx, c.http, loc.CDNRoot+loc.URL)
	return body, errors.Wrapf(err, "download card set %s", code)
}

func parseCardSet(code string, data []byte) (*CardSet, error) {
	var raw rawCardSet
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parse card set %s", code)
	}
	set := &CardSet{
		Code:    code,
		SetID:   raw.CardSet.SetInfo.SetID,
		Name:    raw.CardSet.SetInfo.Name.English,
		Version: raw.CardSet.Version,
		Cards:   make([]Card, 0, len(raw.CardSet.CardList)),
	}
	for _, rc := range raw.CardSet.CardList {
		set.Cards = append(set.Cards, rc.card())
	}
	return set, nil
}
