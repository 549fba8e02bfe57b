package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"survey-cruncher-go/internal/logger"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Fetch downloads a dataset file to dest, retrying transient failures
// with exponential backoff. Used at startup when DATASET_URL is set.
func Fetch(url, dest string) error {
	log := logger.New().WithComponent("dataset.fetch").WithField("url", url)
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 60 * time.Second
	var lastErr error
	op := func() error {
		resp, err := httpClient.Get(url)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %s", resp.Status)
			return lastErr
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status: %s", resp.Status)
			return backoff.Permanent(lastErr)
		}
		out, err := os.Create(dest)
		if err != nil {
			lastErr = err
			return backoff.Permanent(err)
		}
		defer out.Close()
		if _, err := io.Copy(out, resp.Body); err != nil {
			lastErr = err
			return err
		}
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		log.WithError(lastErr).Error("dataset download failed")
		return lastErr
	}
	log.WithField("dest", dest).Info("dataset downloaded")
	return nil
}
