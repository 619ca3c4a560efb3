// Command deckcode encodes and decodes deck codes from the terminal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/config"
	"github.com/youruser/deckcode/internal/deck"
	"github.com/youruser/deckcode/internal/deckcode"
)

type encodeCmd struct {
	File string `arg:"positional,required" help:"deck file in YAML or JSON, - for stdin"`
}

type decodeCmd struct {
	Code   string `arg:"positional,required" help:"deck code"`
	Format string `arg:"-f,--format" default:"yaml" help:"output format: yaml or json"`
	Cards  bool   `arg:"-c,--cards" help:"resolve cards through the catalog and print a deck list"`
}

type cardCmd struct {
	ID    uint32 `arg:"positional,required" help:"card id"`
	Width int    `arg:"-w,--width" default:"60" help:"output width"`
}

type args struct {
	Encode *encodeCmd `arg:"subcommand:encode" help:"encode a deck file"`
	Decode *decodeCmd `arg:"subcommand:decode" help:"decode a deck code"`
	Card   *cardCmd   `arg:"subcommand:card" help:"show a card from the catalog"`
}

func (args) Description() string {
	return "deckcode converts decks to and from ADC deck codes.\n" +
		"Catalog settings are read from the environment, see CATALOG_URL, CACHE_DIR and CARD_SETS.\n"
}

func main() {
	var a args
	p := arg.MustParse(&a)
	if p.Subcommand() == nil {
		p.Fail("missing subcommand")
	}
	if err := run(context.Background(), a, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "deckcode:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, a args, stdin io.Reader, stdout io.Writer) error {
	switch {
	case a.Encode != nil:
		return encode(a.Encode, stdin, stdout)
	case a.Decode != nil:
		return decode(ctx, a.Decode, stdout)
	case a.Card != nil:
		return card(ctx, a.Card, stdout)
	}
	return errors.New("missing subcommand")
}

func encode(cmd *encodeCmd, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	if cmd.File == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(cmd.File)
	}
	if err != nil {
		return errors.Wrap(err, "read deck")
	}
	// JSON is a subset of YAML, so one decoder covers both.
	var d deckcode.Deck
	if err = yaml.Unmarshal(data, &d); err != nil {
		return errors.Wrap(err, "parse deck")
	}
	code, err := deckcode.Encode(d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, code)
	return err
}

func decode(ctx context.Context, cmd *decodeCmd, stdout io.Writer) error {
	raw, err := deckcode.Decode(cmd.Code)
	if err != nil {
		return err
	}
	if cmd.Cards {
		catalog, err := loadCatalog(ctx)
		if err != nil {
			return err
		}
		d, err := deck.FromCode(raw, catalog)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, deck.ExportText(d))
		return err
	}
	switch strings.ToLower(cmd.Format) {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(raw)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.Errorf("unknown format %q", cmd.Format)
}

func card(ctx context.Context, cmd *cardCmd, stdout io.Writer) error {
	catalog, err := loadCatalog(ctx)
	if err != nil {
		return err
	}
	c, err := catalog.Find(cmd.ID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, cards.Format(c, cmd.Width))
	return err
}

func loadCatalog(ctx context.Context) (*cards.Catalog, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	client := cards.NewClient(cfg.CatalogURL, cfg.CacheDir, &http.Client{Timeout: cfg.HTTPTimeout})
	return cards.LoadCatalog(ctx, client, cfg.CardSets...)
}
