// file: internals/features/assessments/evaluation/service/fetcher.go
package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"kelasku_backend/internals/apperr"
)

// FetchFunc supaya evaluator bisa di-test tanpa network.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// FetchDocument mengunduh dokumen submission (PDF) ke file temporer lalu
// membacanya kembali; file temporer dihapus di semua path, sukses maupun
// gagal. Satu dokumen dimaterialisasi pada satu waktu (loop batch sekuensial).
// Non-200 dianggap FetchError; redirect mengikuti default http.Client.
func FetchDocument(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.Upstream(apperr.ErrFetch, err)
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream(apperr.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(apperr.ErrFetch, fmt.Errorf("failed to download PDF: %d", resp.StatusCode))
	}

	tmp, err := os.CreateTemp("", "submission-*.pdf")
	if err != nil {
		return nil, apperr.Upstream(apperr.ErrFetch, err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return nil, apperr.Upstream(apperr.ErrFetch, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, apperr.Upstream(apperr.ErrFetch, err)
	}

	data, err := io.ReadAll(tmp)
	if err != nil {
		return nil, apperr.Upstream(apperr.ErrFetch, err)
	}
	return data, nil
}
