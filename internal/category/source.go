package category

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/service"
)

const gcsScheme = "gs://"

// FileSource loads a keyword map from a local file.
type FileSource struct {
	Path string
}

// LoadKeywordMap implements service.KeywordMapSource.
func (s FileSource) LoadKeywordMap(_ context.Context) (model.KeywordMap, error) {
	data, err := os.ReadFile(s.Path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %s: %v", common.ErrKeywordMap, s.Path, err)
	}
	return Parse(data, FormatFor(s.Path))
}

// GCSSource loads a keyword map from a Cloud Storage object.
type GCSSource struct {
	Bucket string
	Object string
}

// LoadKeywordMap implements service.KeywordMapSource.
func (s GCSSource) LoadKeywordMap(ctx context.Context) (model.KeywordMap, error) {
	data, err := downloadObject(ctx, s.Bucket, s.Object)
	if err != nil {
		return nil, fmt.Errorf("%w: %s%s/%s: %v", common.ErrKeywordMap, gcsScheme, s.Bucket, s.Object, err)
	}
	return Parse(data, FormatFor(s.Object))
}

func downloadObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	defer func() { _ = client.Close() }()

	r, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object reader: %w", err)
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return data, nil
}

// ParseGCSURI splits gs://bucket/path/to/object into bucket and object.
func ParseGCSURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, gcsScheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %q is not a gs:// URI", common.ErrInvalidConfig, uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("%w: %q must name a bucket and an object", common.ErrInvalidConfig, uri)
	}
	return bucket, object, nil
}

// NewSource returns a GCSSource for gs:// locations and a FileSource otherwise.
func NewSource(location string) (service.KeywordMapSource, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: keyword map location", common.ErrMissingConfig)
	}
	if strings.HasPrefix(location, gcsScheme) {
		bucket, object, err := ParseGCSURI(location)
		if err != nil {
			return nil, err
		}
		return GCSSource{Bucket: bucket, Object: object}, nil
	}
	return FileSource{Path: location}, nil
}
