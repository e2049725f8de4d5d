package service

import (
	"context"
	"math/rand"
	"net/http"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"goodie-catalog/internal/apperrors"
	"goodie-catalog/internal/media"
	"goodie-catalog/internal/models"
)

const (
	newLimit   = 4
	hotLimit   = 8
	sampleSize = 4
)

// GoodieStore es el acceso al almacén de goodies que necesita el servicio
type GoodieStore interface {
	Create(ctx context.Context, goodie *models.Goodie) error
	FindBySlug(ctx context.Context, slug string) (*models.Goodie, error)
	FindVisible(ctx context.Context, skip, limit int64, sort bson.D) ([]models.Goodie, error)
	FindAll(ctx context.Context) ([]models.Goodie, error)
	FindVisibleByCollection(ctx context.Context, collectionID, excludeID primitive.ObjectID) ([]models.Goodie, error)
	IncrementCounter(ctx context.Context, slug, field string) (*models.Goodie, error)
}

// CollectionStore resuelve referencias a colecciones
type CollectionStore interface {
	FindByID(ctx context.Context, id string) (*models.Collection, error)
	FindByObjectID(ctx context.Context, id primitive.ObjectID) (*models.Collection, error)
}

// GoodieService reúne la ingesta y las consultas del catálogo en una
// sola implementación
type GoodieService struct {
	goodies     GoodieStore
	collections CollectionStore
	uploader    media.Uploader

	// rng alimenta el muestreo aleatorio; rand.Rand no es seguro
	// para concurrencia, mu lo protege
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGoodieService(goodies GoodieStore, collections CollectionStore, uploader media.Uploader, rng *rand.Rand) *GoodieService {
	return &GoodieService{
		goodies:     goodies,
		collections: collections,
		uploader:    uploader,
		rng:         rng,
	}
}

// CreateGoodie ejecuta la ingesta completa: resuelve la colección,
// compone el slug, sube todas las imágenes con marca de agua y
// persiste el documento. Todo o nada: si una subida falla no se
// persiste ningún goodie parcial
func (s *GoodieService) CreateGoodie(ctx context.Context, draft *models.GoodieDraft) (*models.Goodie, error) {
	collection, err := s.collections.FindByID(ctx, draft.FromCollection)
	if err != nil {
		return nil, err
	}

	// El slug no se finaliza hasta confirmar que la colección existe
	slug := collection.Slug + "-" + draft.Slug

	images := make([]models.GoodieImage, 0, len(draft.Images))
	transformation := media.WatermarkTransformation()
	for _, sourceRef := range draft.Images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		image, err := s.uploader.Upload(ctx, sourceRef, media.GoodiesFolder, transformation)
		if err != nil {
			return nil, apperrors.UploadFailure(err)
		}
		images = append(images, image)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	goodie := &models.Goodie{
		Name:             draft.Name,
		Description:      draft.Description,
		Slug:             slug,
		FromCollection:   collection.ID,
		Price:            draft.Price,
		InPromo:          draft.InPromo,
		PromoPercentage:  draft.PromoPercentage,
		Sizes:            draft.Sizes,
		AvailableColors:  draft.AvailableColors,
		BackgroundColors: draft.BackgroundColors,
		Images:           images,
		Likes:            0,
		Views:            0,
		Show:             draft.Show,
	}
	if len(images) > 0 {
		goodie.MainImage = images[0]
	}

	if err := s.goodies.Create(ctx, goodie); err != nil {
		return nil, err
	}

	return goodie, nil
}

// EditGoodie queda reservado hasta definir las reglas de negocio
func (s *GoodieService) EditGoodie(ctx context.Context, slug string) error {
	return apperrors.NotImplemented("edit goodie")
}

// DeleteGoodie queda reservado: el borrado en cascada de imágenes en
// el host de medios no está definido
func (s *GoodieService) DeleteGoodie(ctx context.Context, slug string) error {
	return apperrors.NotImplemented("delete goodie")
}

// GetBySlug obtiene un goodie y resuelve su colección para el caller
func (s *GoodieService) GetBySlug(ctx context.Context, slug string) (*models.GoodieWithCollection, error) {
	goodie, err := s.goodies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	result := &models.GoodieWithCollection{Goodie: *goodie}
	collection, err := s.collections.FindByObjectID(ctx, goodie.FromCollection)
	if err == nil {
		result.Collection = collection
	} else if !apperrors.IsKind(err, http.StatusNotFound) {
		return nil, err
	}

	return result, nil
}

// ListVisible lista goodies públicos con paginación
func (s *GoodieService) ListVisible(ctx context.Context, skip, limit int64) ([]models.Goodie, error) {
	if skip < 0 {
		skip = 0
	}
	return s.goodies.FindVisible(ctx, skip, limit, bson.D{{Key: "createdAt", Value: -1}})
}

// ListAll lista todo el catálogo, incluidos ocultos (solo admin)
func (s *GoodieService) ListAll(ctx context.Context) ([]models.Goodie, error) {
	return s.goodies.FindAll(ctx)
}

// ListNew devuelve hasta 4 goodies visibles, los más recientes primero
func (s *GoodieService) ListNew(ctx context.Context, skip int64) ([]models.Goodie, error) {
	if skip < 0 {
		skip = 0
	}
	return s.goodies.FindVisible(ctx, skip, newLimit, bson.D{{Key: "createdAt", Value: -1}})
}

// ListHot devuelve hasta 8 goodies visibles ordenados por vistas y, a
// igual vistas, por likes
func (s *GoodieService) ListHot(ctx context.Context, skip int64) ([]models.Goodie, error) {
	if skip < 0 {
		skip = 0
	}
	sort := bson.D{{Key: "views", Value: -1}, {Key: "likes", Value: -1}}
	return s.goodies.FindVisible(ctx, skip, hotLimit, sort)
}

// ListHotInCollection devuelve hasta 4 goodies visibles al azar de la
// misma colección, sin repetir y sin incluir el goodie excluido
func (s *GoodieService) ListHotInCollection(ctx context.Context, collectionID, excludeGoodieID string) ([]models.Goodie, error) {
	colID, err := primitive.ObjectIDFromHex(collectionID)
	if err != nil {
		return nil, apperrors.Validation("invalid collection ID")
	}
	goodieID, err := primitive.ObjectIDFromHex(excludeGoodieID)
	if err != nil {
		return nil, apperrors.Validation("invalid goodie ID")
	}

	candidates, err := s.goodies.FindVisibleByCollection(ctx, colID, goodieID)
	if err != nil {
		return nil, err
	}

	return s.sample(candidates, sampleSize), nil
}

// IncrementLikes suma un like de forma atómica en el almacén
func (s *GoodieService) IncrementLikes(ctx context.Context, slug string) (*models.Goodie, error) {
	return s.goodies.IncrementCounter(ctx, slug, "likes")
}

// IncrementViews suma una vista de forma atómica en el almacén
func (s *GoodieService) IncrementViews(ctx context.Context, slug string) (*models.Goodie, error) {
	return s.goodies.IncrementCounter(ctx, slug, "views")
}

// sample elige hasta n elementos sin reemplazo
func (s *GoodieService) sample(goodies []models.Goodie, n int) []models.Goodie {
	if len(goodies) <= n {
		n = len(goodies)
	}

	s.mu.Lock()
	indexes := s.rng.Perm(len(goodies))
	s.mu.Unlock()

	picked := make([]models.Goodie, 0, n)
	for _, i := range indexes[:n] {
		picked = append(picked, goodies[i])
	}
	return picked
}
