// Package storage keeps meal photos in a gocloud.dev bucket (local directory, memory or GCS).
package storage

import (
	"context"
	"log/slog"

	"nutriledger/config"
	"nutriledger/internal/domain/lifecycle"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Params defines the dependencies of the blob image store.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

type blobImageStore struct {
	bucket *blob.Bucket
}

// New opens the bucket named by storage.bucketUrl and closes it when the app stops.
func New(params Params) (service.ImageStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket) service.ImageStore {
	return &blobImageStore{bucket: bucket}
}

// Put writes the image under key, replacing any previous object.
func (s *blobImageStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write image %s", key)
	}

	return nil
}

// Get returns the image bytes and their content type.
func (s *blobImageStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, "", translate(err, key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", translate(err, key)
	}

	return data, attrs.ContentType, nil
}

// Delete removes the image. Deleting a missing image reports ErrImageNotFound.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return translate(err, key)
	}

	return nil
}

func translate(err error, key string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrapf(service.ErrImageNotFound, "key %s", key)
	}

	return errors.Wrapf(err, "image store failure for %s", key)
}
