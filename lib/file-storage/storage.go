package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"recruitment-backend/config"
)

// Provider is the object-storage facade for CV files and dossier photos.
// Keys are opaque; callers persist them in the metadata stores.
type Provider interface {
	Upload(ctx context.Context, prefix, fileName, contentType string, body io.Reader, size int64) (objectKey string, err error)
	Get(ctx context.Context, objectKey string) ([]byte, error)
	Delete(ctx context.Context, objectKey string) error
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) Upload(ctx context.Context, prefix, fileName, contentType string, body io.Reader, size int64) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := fmt.Sprintf("%s/%s-%s", prefix, uuid.NewString(), fileName)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey, body, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "upload of %s failed", fileName)
	}
	return objectKey, nil
}

func (i impl) Get(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "download of %s failed", objectKey)
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, obj); err != nil {
		return nil, errors.Wrapf(err, "read of %s failed", objectKey)
	}
	return buf.Bytes(), nil
}

func (i impl) Delete(ctx context.Context, objectKey string) error {
	err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrapf(err, "removal of %s failed", objectKey)
	}
	return nil
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
