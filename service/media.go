package service

import (
	"Umami/config"
	"Umami/pkg/response"
	"Umami/pkg/snowflake"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	_ "golang.org/x/image/webp"
)

const maxImageSize = 10 << 20 // 10MB

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	// UploadBase64 解码内嵌图片并上传，返回对外 URL
	UploadBase64(ctx context.Context, data string) (string, error)
}

type MediaService struct {
	Client     *oss.Client
	BucketName string
	CdnHost    string
}

func NewMediaService(cfg *config.OssConfig) IMediaService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	client := oss.NewClient(ossCfg)

	return &MediaService{
		Client:     client,
		BucketName: cfg.Bucket,
		CdnHost:    cfg.CdnHost,
	}
}

// UploadBase64 处理 data-URI 形式的内嵌图片
// 解码、识别格式、限制大小，然后传 OSS
func (s *MediaService) UploadBase64(ctx context.Context, data string) (string, error) {
	raw, format, err := decodeBase64Image(data)
	if err != nil {
		return "", err
	}

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("recipes/%s/%d%s",
		time.Now().Format("2006/01/02"),
		snowflake.GenID(),
		ext,
	)

	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   bytes.NewReader(raw),
	}); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s/%s", s.CdnHost, objectKey), nil
}

// decodeBase64Image 解析 "data:image/png;base64,..." 或裸 base64
func decodeBase64Image(data string) ([]byte, string, error) {
	if data == "" {
		return nil, "", response.ErrBadRequest("缺少图片数据")
	}
	if idx := strings.Index(data, ";base64,"); idx != -1 {
		data = data[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", response.ErrBadRequest("图片数据不是合法的 base64")
	}
	if len(raw) == 0 || len(raw) > maxImageSize {
		return nil, "", response.ErrBadRequest("图片大小超出限制")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", response.ErrBadRequest("无法识别的图片格式")
	}
	allowed := map[string]bool{
		"jpeg": true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	if !allowed[strings.ToLower(format)] {
		return nil, "", response.ErrBadRequest("不支持的图片格式: " + format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", response.ErrBadRequest("图片尺寸无效")
	}
	return raw, strings.ToLower(format), nil
}
