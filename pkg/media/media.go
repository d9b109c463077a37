package media

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

var ErrUnsupportedType = errors.New("unsupported file type")

var allowedMIMEs = map[string]Kind{
	"image/jpeg":      KindImage,
	"image/png":       KindImage,
	"image/gif":       KindImage,
	"image/webp":      KindImage,
	"video/mp4":       KindVideo,
	"video/quicktime": KindVideo,
	"video/webm":      KindVideo,
}

var extensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
}

// File is an upload after detection and normalization.
type File struct {
	Kind        Kind
	ContentType string
	Ext         string
	Data        []byte
}

// Prepare sniffs the content type, rejects anything that is not an allowed
// image or video, and downscales images wider than maxWidth.
func Prepare(r io.Reader, filename string, maxWidth int) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	mt := mimetype.Detect(data)
	contentType := strings.Split(mt.String(), ";")[0]
	kind, ok := allowedMIMEs[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, contentType, filepath.Ext(filename))
	}

	file := &File{
		Kind:        kind,
		ContentType: contentType,
		Ext:         extensions[contentType],
		Data:        data,
	}
	if kind == KindImage && contentType != "image/gif" {
		if err := normalizeImage(file, maxWidth); err != nil {
			return nil, err
		}
	}
	return file, nil
}

// normalizeImage re-encodes as JPEG, or PNG when the source is PNG, after
// downscaling to maxWidth. EXIF orientation is applied during decode.
func normalizeImage(f *File, maxWidth int) error {
	img, err := imaging.Decode(bytes.NewReader(f.Data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if f.ContentType == "image/png" {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
		f.ContentType = "image/jpeg"
		f.Ext = ".jpg"
	}
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	f.Data = buf.Bytes()
	return nil
}
