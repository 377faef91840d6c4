package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/utils/safe"
	"google.golang.org/api/option"
)

// Client stores roster snapshots in a Cloud Storage bucket. Object names
// are joined to prefix as is, so prefix should end with "/".
type Client struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.StorageClient = &Client{}

func New(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client",
			goerr.V("bucket", bucket),
			goerr.T(errs.TagExternal))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (x *Client) PutObject(ctx context.Context, object string) io.WriteCloser {
	w := x.client.Bucket(x.bucket).Object(x.prefix + object).NewWriter(ctx)
	w.ContentType = contentTypeOf(object)
	return w
}

func (x *Client) GetObject(ctx context.Context, object string) (io.ReadCloser, error) {
	rc, err := x.client.Bucket(x.bucket).Object(x.prefix + object).NewReader(ctx)
	if err != nil {
		opts := []goerr.Option{
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.prefix+object),
		}
		if errors.Is(err, storage.ErrObjectNotExist) {
			opts = append(opts, goerr.T(errs.TagNotFound))
		} else {
			opts = append(opts, goerr.T(errs.TagExternal))
		}
		return nil, goerr.Wrap(err, "failed to create reader", opts...)
	}

	return rc, nil
}

func (x *Client) Close(ctx context.Context) {
	safe.Close(ctx, x.client)
}

func contentTypeOf(object string) string {
	if strings.HasSuffix(object, ".jsonl") {
		return "application/x-ndjson"
	}
	return "application/octet-stream"
}
