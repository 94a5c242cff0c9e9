package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type Downloader interface {
	Download(ctx context.Context, url, dest string) error
}

// HTTPDownloader fetches files with retries on transient failures.
type HTTPDownloader struct {
	client *retryablehttp.Client
}

func NewHTTPDownloader() *HTTPDownloader {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 5 * time.Minute
	client.Logger = nil

	return &HTTPDownloader{client: client}
}

func (d *HTTPDownloader) Download(ctx context.Context, url, dest string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", url)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to download %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: %s", url, resp.Status)
	}

	tmp := dest + ".download"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", tmp)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "failed to write %s", dest)
	}

	if err := os.Rename(tmp, dest); err != nil {
		return errors.Wrapf(err, "failed to move %s into place", dest)
	}

	klog.Infof("Downloaded %s to %s (%d bytes)", url, dest, n)

	return nil
}
