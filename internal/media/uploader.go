package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"goodie-catalog/internal/models"
)

const uploadTimeout = 30 * time.Second

// Uploader sube una imagen al host de medios y devuelve el asset
// almacenado. Cualquier fallo remoto debe devolver error: nunca se
// resuelve con campos vacíos
type Uploader interface {
	Upload(ctx context.Context, sourceRef, folder, transformation string) (models.GoodieImage, error)
}

// CloudinaryUploader implementa Uploader contra la API de Cloudinary
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

// Upload hace una llamada de red por invocación; el host remoto es la
// fuente de verdad del resultado transformado, no hay caché local
func (u *CloudinaryUploader) Upload(ctx context.Context, sourceRef, folder, transformation string) (models.GoodieImage, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	result, err := u.client.Upload.Upload(ctx, sourceRef, uploader.UploadParams{
		ResourceType:   "auto",
		Folder:         folder,
		Transformation: transformation,
	})
	if err != nil {
		return models.GoodieImage{}, err
	}
	// La API puede devolver error en el cuerpo con err == nil
	if result.Error.Message != "" {
		return models.GoodieImage{}, errors.New(result.Error.Message)
	}
	if result.PublicID == "" || result.SecureURL == "" {
		return models.GoodieImage{}, errors.New("upload returned empty asset")
	}

	return models.GoodieImage{
		PublicID: result.PublicID,
		URL:      result.SecureURL,
	}, nil
}
