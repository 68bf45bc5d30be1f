package providers

import (
	"context"

	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"
	"healthfirst-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(client *mongo.Client, dbName string) ProviderRepository {
	return &ProviderMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func (repo *ProviderMongoRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providers, nil
}

func (repo *ProviderMongoRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	var provider models.Provider
	err := repo.Collection.FindOne(ctx, bson.M{"_id": providerID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (repo *ProviderMongoRepository) Create(ctx context.Context, provider *models.Provider) (string, error) {
	if provider.ID == "" {
		provider.ID = utils.GenerateRecordID()
	}
	_, err := repo.Collection.InsertOne(ctx, provider)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return provider.ID, nil
}

func (repo *ProviderMongoRepository) Update(ctx context.Context, provider *models.Provider) error {
	filter := bson.M{"_id": provider.ID}
	update := bson.M{"$set": provider}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ProviderMongoRepository) Delete(ctx context.Context, providerID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": providerID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
