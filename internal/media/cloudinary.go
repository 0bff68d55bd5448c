package media

import (
	"context"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader is the remote media host. Product images live there; the
// database stores only their URLs.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (url string, err error)
	DestroyByURL(ctx context.Context, url string) error
}

type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudURL string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, file io.Reader) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

func (c *Cloudinary) DestroyByURL(ctx context.Context, url string) error {
	publicID := PublicIDFromURL(url)
	if publicID == "" {
		return nil
	}
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// PublicIDFromURL recovers the Cloudinary public id from a delivery URL:
// .../upload/v1730123456/folder/image123.jpg -> folder/image123
func PublicIDFromURL(url string) string {
	parts := strings.SplitN(url, "/upload/", 2)
	if len(parts) != 2 {
		return ""
	}

	id := parts[1]
	if i := strings.LastIndex(id, "."); i >= 0 {
		id = id[:i]
	}

	// strip the version segment (v12345/)
	if strings.HasPrefix(id, "v") {
		if slash := strings.Index(id, "/"); slash > 1 {
			digits := id[1:slash]
			if strings.Trim(digits, "0123456789") == "" {
				id = id[slash+1:]
			}
		}
	}

	return id
}
