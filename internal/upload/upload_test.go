package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	errx "github.com/giftgenie-teelab/server/internal/core/error"
	"github.com/giftgenie-teelab/server/internal/model"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// fileHeader builds a real multipart.FileHeader by parsing a form.
func fileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("design", filename)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(data)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(10 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["design"][0]
}

func newStore(t *testing.T, maxDim int) *Store {
	t.Helper()
	s, err := NewStore(model.UploadConfig{Dir: t.TempDir(), PublicPrefix: "/uploads/", MaxDimension: maxDim, MaxBytes: 1 << 20})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}

func TestStore_Save(t *testing.T) {
	s := newStore(t, 100)

	public, err := s.Save(fileHeader(t, "Shirt.PNG", pngBytes(t, 400, 200)))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasPrefix(public, "/uploads/") || !strings.HasSuffix(public, ".png") {
		t.Errorf("public path = %q", public)
	}

	img, err := imaging.Open(filepath.Join(s.Dir(), filepath.Base(public)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("stored size = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}

func TestStore_SaveKeepsSmallImages(t *testing.T) {
	s := newStore(t, 1000)
	public, err := s.Save(fileHeader(t, "tiny.png", pngBytes(t, 20, 10)))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	img, err := imaging.Open(filepath.Join(s.Dir(), filepath.Base(public)))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("stored size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestStore_SaveRejects(t *testing.T) {
	s := newStore(t, 100)

	tests := []struct {
		name string
		fh   func() *multipart.FileHeader
	}{
		{name: "nil", fh: func() *multipart.FileHeader { return nil }},
		{name: "extension", fh: func() *multipart.FileHeader { return fileHeader(t, "design.exe", pngBytes(t, 2, 2)) }},
		{name: "not an image", fh: func() *multipart.FileHeader { return fileHeader(t, "design.png", []byte("hello")) }},
		{name: "too large", fh: func() *multipart.FileHeader {
			fh := fileHeader(t, "big.png", pngBytes(t, 2, 2))
			fh.Size = 2 << 20
			return fh
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Save(tt.fh()); !errx.IsKind(err, errx.KindValidation) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}

	entries, _ := os.ReadDir(s.Dir())
	if len(entries) != 0 {
		t.Errorf("rejected uploads left %d files behind", len(entries))
	}
}

func TestStore_Remove(t *testing.T) {
	s := newStore(t, 0)
	public, err := s.Save(fileHeader(t, "a.png", pngBytes(t, 4, 4)))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(public); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), filepath.Base(public))); !os.IsNotExist(err) {
		t.Errorf("file still present: %v", err)
	}
	if err := s.Remove("/etc/passwd"); err == nil {
		t.Error("Remove outside the upload prefix should fail")
	}
}
