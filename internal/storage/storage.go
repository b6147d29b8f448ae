package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SafidyRH/test-technique-nexta/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxFileSize 图片大小上限
const MaxFileSize = 5 * 1024 * 1024 // 5MB

// allowedTypes 允许的图片类型及其扩展名
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Uploader 项目图片上传器（S3兼容存储）
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// New 创建上传器，使用默认凭证链
func New(ctx context.Context, cfg config.StorageConfig) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage credentials: %w", err)
	}

	var opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		// 自定义端点（MinIO等）需要path style
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &Uploader{
		client:  s3.NewFromConfig(awsCfg, opts...),
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// ValidateImage 校验图片类型和大小
func ValidateImage(contentType string, size int64) error {
	if _, ok := allowedTypes[contentType]; !ok {
		return fmt.Errorf("不支持的图片格式: %s，请使用JPG、PNG或WebP", contentType)
	}
	if size > MaxFileSize {
		return fmt.Errorf("图片大小超过限制，最大%dMB", MaxFileSize/1024/1024)
	}
	return nil
}

// UploadProjectImage 上传项目图片并返回公开URL
func (u *Uploader) UploadProjectImage(ctx context.Context, body io.Reader, contentType string, size int64) (string, error) {
	if err := ValidateImage(contentType, size); err != nil {
		return "", err
	}

	key := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.NewString(), allowedTypes[contentType])

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("上传图片失败: %w", err)
	}

	return u.baseURL + "/" + key, nil
}

// DeleteProjectImage 根据公开URL删除图片
func (u *Uploader) DeleteProjectImage(ctx context.Context, imageURL string) error {
	idx := strings.LastIndex(imageURL, "/")
	if idx < 0 || idx == len(imageURL)-1 {
		return fmt.Errorf("无效的图片URL: %s", imageURL)
	}
	key := imageURL[idx+1:]

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("删除图片失败: %w", err)
	}
	return nil
}
