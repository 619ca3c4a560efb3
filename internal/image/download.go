package imagepkg

import (
	"bytes"
	"context"
	"image"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/youruser/deckcode/internal/util"
)

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func DownloadImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, client, url)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", url)
	}
	return img, nil
}
