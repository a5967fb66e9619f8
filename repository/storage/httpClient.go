package storagerepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/KasunInd27/CampQuest-sub000/util/httpx"
)

type httpRepo struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTP(baseURL, apiKey string) Repo {
	return &httpRepo{baseURL: baseURL, apiKey: apiKey, client: httpx.Client()}
}

func (r *httpRepo) Store(ctx context.Context, req UploadReq) (*UploadResp, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL, req.Content)
	if err != nil {
		return nil, err
	}
	httpReq.ContentLength = req.Size
	httpReq.Header.Set("Content-Type", req.ContentType)
	httpReq.Header.Set("X-Filename", req.Filename)
	if r.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("storage upload failed: %s", resp.Status)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.URL == "" {
		return nil, errors.New("storage: empty url in response")
	}
	return &UploadResp{URL: out.URL}, nil
}
