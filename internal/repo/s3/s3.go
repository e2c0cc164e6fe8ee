// Package s3 stores exported reports in an S3 compatible bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/tab-audit/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

var ErrDisabled = errors.New("object storage is disabled")

type UploadFileRequest struct {
	Key         string
	ContentType string
	Body        []byte
}

type S3 struct {
	cli    *minio.Client
	bucket string
	base   string
}

func New(conf config.S3Config) *S3 {
	cli, err := minio.New(
		conf.Addr, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
			Secure: conf.UseSSL,
		},
	)
	if err != nil {
		zap.L().Fatal("Failed to create minio client", zap.Error(err))
	}

	ctx := context.Background()
	exists, err := cli.BucketExists(ctx, conf.Bucket)
	if err != nil {
		zap.L().Fatal("Failed to check bucket", zap.String("bucket", conf.Bucket), zap.Error(err))
	}

	if !exists {
		if err = cli.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			zap.L().Fatal("Failed to create bucket", zap.String("bucket", conf.Bucket), zap.Error(err))
		}
		zap.L().Info("Bucket created", zap.String("bucket", conf.Bucket))
	}

	scheme := "http"
	if conf.UseSSL {
		scheme = "https"
	}

	return &S3{
		cli:    cli,
		bucket: conf.Bucket,
		base:   fmt.Sprintf("%s://%s/%s", scheme, conf.Addr, conf.Bucket),
	}
}

// UploadFile puts req.Body under req.Key and returns the object URL.
func (s *S3) UploadFile(ctx context.Context, req *UploadFileRequest) (string, error) {
	const op = "s3.UploadFile.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := s.cli.PutObject(
		ctx,
		s.bucket,
		req.Key,
		bytes.NewReader(req.Body),
		int64(len(req.Body)),
		minio.PutObjectOptions{ContentType: req.ContentType},
	)
	if err != nil {
		zap.L().Error(
			"Failed to upload file",
			zap.String("op", op),
			zap.String("key", req.Key),
			zap.Error(err),
		)
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.base, req.Key), nil
}
