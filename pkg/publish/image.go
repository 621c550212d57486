package publish

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/xerrors"
)

// SaveImage writes img to path, choosing the encoder from the file extension
// (.png, .jpg, .gif, .tif, .bmp). Missing parent directories are created.
func SaveImage(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return xerrors.Errorf("while creating output directory %q: %w", dir, err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return xerrors.Errorf("while saving image %q: %w", path, err)
	}
	return nil
}

// Thumbnail scales img so its longer side is at most maxSize pixels, keeping the aspect ratio.
// Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	bounds := img.Bounds()
	if maxSize == 0 || (uint(bounds.Dx()) <= maxSize && uint(bounds.Dy()) <= maxSize) {
		return img
	}
	return resize.Thumbnail(maxSize, maxSize, img, resize.Bilinear)
}

// ThumbnailPath returns the path a thumbnail of path is written to
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_thumb" + ext
}
