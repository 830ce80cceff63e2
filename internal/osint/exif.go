package osint

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ExifDump extracts every EXIF tag from an image file on disk. args[0] is
// the local path of a cached upload, not user input.
type ExifDump struct{}

type exifCollector struct {
	b     strings.Builder
	count int
}

func (c *exifCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	c.count++
	c.b.WriteString(fmt.Sprintf("• *%s*: `%s`\n", name, strings.Trim(tag.String(), `"`)))
	return nil
}

func (e *ExifDump) Execute(ctx context.Context, args []string) (string, error) {
	f, err := os.Open(args[0])
	if err != nil {
		return "", fmt.Errorf("cached image unreadable: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "📊 *EXIF Data Analysis*\n\nNo EXIF data found in this image.\nChat uploads are often stripped of metadata by the platform.", nil
	}

	c := &exifCollector{}
	c.b.WriteString("📊 *EXIF Data Analysis*\n\n")
	if err := x.Walk(c); err != nil {
		return "", fmt.Errorf("EXIF walk failed: %w", err)
	}
	if c.count == 0 {
		return "📊 *EXIF Data Analysis*\n\nNo EXIF data found in this image.", nil
	}
	return c.b.String(), nil
}

// ExifGeo extracts GPS coordinates from an image's EXIF block and points at
// them on a map.
type ExifGeo struct{}

func (e *ExifGeo) Execute(ctx context.Context, args []string) (string, error) {
	f, err := os.Open(args[0])
	if err != nil {
		return "", fmt.Errorf("cached image unreadable: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", fmt.Errorf("no EXIF data in this image")
	}
	lat, lon, err := x.LatLong()
	if err != nil {
		return "🗺 *Image Geolocation*\n\nNo GPS coordinates embedded in this image.\nMost chat platforms strip location data on upload.", nil
	}

	var b strings.Builder
	b.WriteString("🗺 *Image Geolocation*\n\n")
	b.WriteString(fmt.Sprintf("📍 Latitude: `%.6f`\n", lat))
	b.WriteString(fmt.Sprintf("📍 Longitude: `%.6f`\n\n", lon))
	b.WriteString(fmt.Sprintf("🔗 https://www.google.com/maps?q=%.6f,%.6f", lat, lon))
	return b.String(), nil
}
