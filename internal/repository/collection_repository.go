package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"goodie-catalog/internal/apperrors"
	"goodie-catalog/internal/models"
)

// CollectionRepository solo lee colecciones: se gestionan desde otro
// servicio
type CollectionRepository struct {
	collection *mongo.Collection
}

func NewCollectionRepository(collection *mongo.Collection) *CollectionRepository {
	return &CollectionRepository{
		collection: collection,
	}
}

// FindByID obtiene una colección por su ObjectID en hexadecimal
func (r *CollectionRepository) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid collection ID")
	}

	var collection models.Collection
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&collection)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("collection")
		}
		return nil, err
	}

	return &collection, nil
}

// FindByObjectID es FindByID para referencias ya resueltas
func (r *CollectionRepository) FindByObjectID(ctx context.Context, id primitive.ObjectID) (*models.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	var collection models.Collection
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&collection)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("collection")
		}
		return nil, err
	}

	return &collection, nil
}
