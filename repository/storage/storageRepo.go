package storagerepo

import (
	"context"
	"io"
)

type UploadReq struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type UploadResp struct {
	URL string
}

// Repo is the artifact-storage boundary: binary in, retrievable URL out.
type Repo interface {
	Store(ctx context.Context, req UploadReq) (*UploadResp, error)
}
