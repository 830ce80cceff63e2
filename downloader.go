package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MediaDownloader fetches a Telegram file id to local disk and returns the
// path. Tests substitute a fake; production uses telegramDownloader.
type MediaDownloader interface {
	Download(ctx context.Context, fileID string) (string, error)
}

// telegramDownloader resolves the file through getFile and streams it into
// the configured download directory.
type telegramDownloader struct {
	api    *tgbotapi.BotAPI
	client *http.Client
	dir    string
}

func newTelegramDownloader(api *tgbotapi.BotAPI, cfg *Config) *telegramDownloader {
	return &telegramDownloader{
		api:    api,
		client: &http.Client{Timeout: cfg.downloadTimeout()},
		dir:    cfg.Media.DownloadDir,
	}
}

func (d *telegramDownloader) Download(ctx context.Context, fileID string) (string, error) {
	file, err := d.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("resolving file: %w", err)
	}

	url := file.Link(d.api.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading file: unexpected status %s", resp.Status)
	}

	dst := filepath.Join(d.dir, localArtifactName(file.FileUniqueID, file.FilePath))

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating local file: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("writing local file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

var downloadSeq atomic.Uint64

// localArtifactName builds the on-disk name for a downloaded file. The
// unique file id alone is not enough: two users uploading byte-identical
// files get the same id, and sharing a path would let one user's eviction
// delete the other's copy. A process-wide sequence number keeps every
// download on its own path; the original extension survives for type
// sniffing.
func localArtifactName(uniqueID, remotePath string) string {
	return fmt.Sprintf("%s_%d%s", uniqueID, downloadSeq.Add(1), filepath.Ext(remotePath))
}
