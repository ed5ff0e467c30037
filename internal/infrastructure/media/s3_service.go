package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// S3ServiceImpl implements domain.MediaService against any S3-compatible
// store (MinIO included). Avatars land under a fixed folder; the target
// display width travels as object metadata for a downstream resizer.
type S3ServiceImpl struct {
	client   *s3.Client
	endpoint string
	bucket   string
	folder   string
	width    int
}

// Config holds the S3 media store settings.
type Config struct {
	Region    string
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Folder    string
	Width     int
}

// NewS3Service creates a new S3-backed media service.
func NewS3Service(cfg Config) (domain.MediaService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &S3ServiceImpl{
		client:   client,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		bucket:   cfg.Bucket,
		folder:   cfg.Folder,
		width:    cfg.Width,
	}, nil
}

// Upload implements domain.MediaService. Accepts a base64 data-URI
// payload ("data:image/png;base64,....") or bare base64.
func (s *S3ServiceImpl) Upload(ctx context.Context, data string) (*domain.Avatar, error) {
	contentType, raw, err := decodeDataURI(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMediaStore, err)
	}

	key := fmt.Sprintf("%s/%s", s.folder, uuid.New())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"width": fmt.Sprintf("%d", s.width),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upload %s: %v", domain.ErrMediaStore, key, err)
	}

	return &domain.Avatar{
		PublicID: key,
		URL:      fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key),
	}, nil
}

// Destroy implements domain.MediaService
func (s *S3ServiceImpl) Destroy(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("%w: destroy %s: %v", domain.ErrMediaStore, publicID, err)
	}
	return nil
}

// decodeDataURI splits an optional "data:<type>;base64," prefix and
// decodes the payload.
func decodeDataURI(data string) (contentType string, raw []byte, err error) {
	contentType = "application/octet-stream"
	payload := data

	if strings.HasPrefix(data, "data:") {
		head, rest, found := strings.Cut(data, ",")
		if !found {
			return "", nil, fmt.Errorf("malformed data URI")
		}
		payload = rest
		head = strings.TrimPrefix(head, "data:")
		head = strings.TrimSuffix(head, ";base64")
		if head != "" {
			contentType = head
		}
	}

	raw, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %v", err)
	}
	return contentType, raw, nil
}
