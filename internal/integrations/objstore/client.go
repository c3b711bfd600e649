package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/m04kA/SMC-CoworkingService/internal/config"
)

// Client клиент объектного хранилища (S3-совместимого)
// Хранит иконки типов предметов и документы верификации
type Client struct {
	s3     *s3.Client
	bucket string
}

// NewClient создает новый экземпляр клиента объектного хранилища
// Endpoint указывает на S3-совместимое хранилище (MinIO и т.п.),
// path-style обязателен для таких хранилищ
func NewClient(ctx context.Context, cfg config.S3Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load aws config: %v", ErrInternal, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}
		o.UsePathStyle = true
	})

	return &Client{s3: client, bucket: cfg.Bucket}, nil
}

// Put загружает объект в бакет под указанным ключом
func (c *Client) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &c.bucket,
		Key:         &key,
		ContentType: &contentType,
		Body:        bytes.NewReader(body),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to put object %s: %v", ErrInternal, key, err)
	}

	return nil
}

// Get скачивает объект из бакета
// Возвращает содержимое и content type
func (c *Client) Get(ctx context.Context, key string) ([]byte, string, error) {
	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", ErrObjectNotFound
		}
		return nil, "", fmt.Errorf("%w: failed to get object %s: %v", ErrInternal, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read object %s: %v", ErrInternal, key, err)
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}

	return body, contentType, nil
}

// Delete удаляет объект из бакета
// Отсутствующий объект не считается ошибкой
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to delete object %s: %v", ErrInternal, key, err)
	}

	return nil
}
