package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// The invoice service, stock service and end-of-plan processor are sibling
// microservices reached over plain JSON/HTTP. Calls are fire-and-forget from
// the reconciler's perspective; their idempotency is their own concern.

const defaultCallTimeout = 5 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultCallTimeout}
}

func postJSON(ctx context.Context, client *http.Client, url string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("POST %s: unexpected status %d", url, resp.StatusCode)
	}
	return nil
}

func baseURLFromEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return strings.TrimRight(v, "/")
	}
	return def
}
