package upload

import (
	"fmt"
	"image"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	errx "github.com/giftgenie-teelab/server/internal/core/error"
	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

const jpegQuality = 90

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Store keeps uploaded design images on local disk.
type Store struct {
	dir          string
	publicPrefix string
	maxDimension int
	maxBytes     int64
}

func NewStore(cfg model.UploadConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("upload dir is empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	prefix := cfg.PublicPrefix
	if prefix == "" {
		prefix = "/uploads"
	}
	return &Store{
		dir:          cfg.Dir,
		publicPrefix: "/" + strings.Trim(prefix, "/"),
		maxDimension: cfg.MaxDimension,
		maxBytes:     cfg.MaxBytes,
	}, nil
}

// Dir is the on-disk directory served under PublicPrefix.
func (s *Store) Dir() string { return s.dir }

// PublicPrefix is the URL path uploads are served from.
func (s *Store) PublicPrefix() string { return s.publicPrefix }

// Save decodes the uploaded image, shrinks it to the configured bound and
// writes it under a generated name. It returns the public path.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", errx.Validation("missing required fields: design")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", errx.Validationf("unsupported image format %q", ext)
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return "", errx.Validationf("design is larger than %d bytes", s.maxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return "", errx.WrapStorage(fmt.Errorf("open upload: %w", err))
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		logx.Warn().Err(err).Str("filename", fh.Filename).Msg("rejected undecodable upload")
		return "", errx.Validation("design must be a valid image")
	}
	img = s.fit(img)

	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)
	if err := imaging.Save(img, dst, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", errx.WrapStorage(fmt.Errorf("save upload: %w", err))
	}

	logx.Debug().Str("file", dst).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("design image stored")
	return path.Join(s.publicPrefix, name), nil
}

// Remove deletes a previously saved upload by its public path.
func (s *Store) Remove(publicPath string) error {
	name := path.Base(publicPath)
	if name == "." || name == "/" || !strings.HasPrefix(publicPath, s.publicPrefix+"/") {
		return fmt.Errorf("not an upload path: %q", publicPath)
	}
	return os.Remove(filepath.Join(s.dir, name))
}

func (s *Store) fit(img image.Image) image.Image {
	if s.maxDimension <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= s.maxDimension && b.Dy() <= s.maxDimension {
		return img
	}
	return imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)
}
