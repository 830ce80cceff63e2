package osint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DocumentMeta inspects a cached uploaded document: size, timestamps and
// detected content type. args[0] is the local path of the cached upload.
type DocumentMeta struct{}

func (d *DocumentMeta) Execute(ctx context.Context, args []string) (string, error) {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cached document unreadable: %w", err)
	}

	head := make([]byte, 512)
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cached document unreadable: %w", err)
	}
	n, _ := f.Read(head)
	f.Close()
	contentType := http.DetectContentType(head[:n])

	var b strings.Builder
	b.WriteString("📄 *Document Metadata*\n\n")
	b.WriteString(fmt.Sprintf("📦 Size: `%d bytes`\n", info.Size()))
	b.WriteString(fmt.Sprintf("🧾 Extension: `%s`\n", orUnknown(strings.TrimPrefix(filepath.Ext(path), "."))))
	b.WriteString(fmt.Sprintf("🔬 Detected type: `%s`\n", contentType))
	b.WriteString(fmt.Sprintf("🕐 Received: `%s`\n", info.ModTime().UTC().Format(time.RFC3339)))
	b.WriteString("\n💡 _For deep metadata (author, edit history) run exiftool locally —\nembedded document properties are format-specific._")
	return b.String(), nil
}

// ReverseImageSearch lists the engines that accept image uploads. The chat
// platform strips uploads of public URLs, so the user re-uploads there.
func ReverseImageSearch() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		var b strings.Builder
		b.WriteString("🖼 *Reverse Image Search*\n\n")
		b.WriteString("Your image is cached. Upload it to any of these engines:\n\n")
		b.WriteString("  • Google Lens: https://lens.google.com/\n")
		b.WriteString("  • TinEye: https://tineye.com/\n")
		b.WriteString("  • Yandex Images: https://yandex.com/images/\n")
		b.WriteString("  • Bing Visual Search: https://www.bing.com/visualsearch\n")
		return b.String(), nil
	}
}

// VideoMetadata points at frame-level analysis tools for a video URL.
func VideoMetadata() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		target := strings.TrimSpace(args[0])
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🎬 *Video Metadata for: %s*\n\n", target))
		b.WriteString("🔍 *Analysis tools:*\n")
		b.WriteString("  • InVID verification plugin: https://www.invid-project.eu/tools-and-services/invid-verification-plugin/\n")
		b.WriteString("  • Amnesty YouTube DataViewer: https://citizenevidence.amnestyusa.org/\n")
		b.WriteString("\n💡 _Download the video and run ffprobe/exiftool for container metadata_")
		return b.String(), nil
	}
}
