package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type TenantSettingsRepository struct {
	repo *MongoRepository[models.TenantSettings]
}

func NewTenantSettingsRepository() *TenantSettingsRepository {
	collection := db.MDB.Database.Collection(consts.TenantSettingsCollection)
	mrepo := NewMongoRepository[models.TenantSettings](collection)
	return &TenantSettingsRepository{repo: mrepo}
}

// GetSettings returns nil when the tenant has no overrides, callers fall
// back to engine defaults.
func (r *TenantSettingsRepository) GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error) {

	filter := bson.M{"tenantId": tenantID}

	settings, err := r.repo.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}
