package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goodie-catalog/internal/apperrors"
	"goodie-catalog/internal/models"
)

const (
	findTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	listTimeout  = 10 * time.Second
)

type GoodieRepository struct {
	collection *mongo.Collection
}

func NewGoodieRepository(collection *mongo.Collection) *GoodieRepository {
	return &GoodieRepository{
		collection: collection,
	}
}

// Create inserta un goodie nuevo; la unicidad del slug la impone el
// índice único de la colección
func (r *GoodieRepository) Create(ctx context.Context, goodie *models.Goodie) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	goodie.ID = primitive.NewObjectID()
	now := time.Now()
	goodie.CreatedAt = now
	goodie.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, goodie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("goodie slug")
		}
		return err
	}
	return nil
}

// FindBySlug obtiene un goodie por slug exacto
func (r *GoodieRepository) FindBySlug(ctx context.Context, slug string) (*models.Goodie, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	var goodie models.Goodie
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&goodie)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("goodie")
		}
		return nil, err
	}

	return &goodie, nil
}

// FindVisible lista goodies con show = true, con paginación y orden
func (r *GoodieRepository) FindVisible(ctx context.Context, skip, limit int64, sort bson.D) ([]models.Goodie, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	opts := options.Find().SetSkip(skip).SetSort(sort)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"show": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goodies := make([]models.Goodie, 0)
	if err = cursor.All(ctx, &goodies); err != nil {
		return nil, err
	}

	return goodies, nil
}

// FindAll lista todos los goodies, incluidos los ocultos (solo admin)
func (r *GoodieRepository) FindAll(ctx context.Context) ([]models.Goodie, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goodies := make([]models.Goodie, 0)
	if err = cursor.All(ctx, &goodies); err != nil {
		return nil, err
	}

	return goodies, nil
}

// FindVisibleByCollection devuelve los goodies visibles de una
// colección, excluyendo uno; el muestreo aleatorio lo hace el servicio
func (r *GoodieRepository) FindVisibleByCollection(ctx context.Context, collectionID, excludeID primitive.ObjectID) ([]models.Goodie, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	filter := bson.M{
		"fromCollection": collectionID,
		"show":           true,
		"_id":            bson.M{"$ne": excludeID},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goodies := make([]models.Goodie, 0)
	if err = cursor.All(ctx, &goodies); err != nil {
		return nil, err
	}

	return goodies, nil
}

// IncrementCounter suma 1 al contador indicado de forma atómica en la
// base y devuelve el documento ya incrementado
func (r *GoodieRepository) IncrementCounter(ctx context.Context, slug, field string) (*models.Goodie, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{field: 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var goodie models.Goodie
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"slug": slug}, update, opts).Decode(&goodie)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("goodie")
		}
		return nil, err
	}

	return &goodie, nil
}
