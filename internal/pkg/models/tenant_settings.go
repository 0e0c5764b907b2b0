package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TenantSettings carries per-tenant overrides. Zero values fall back to
// the engine defaults.
type TenantSettings struct {
	ID             primitive.ObjectID `bson:"_id"`
	TenantID       string             `bson:"tenantId"`
	BandAThreshold int                `bson:"bandAThreshold"`
	BandBThreshold int                `bson:"bandBThreshold"`
	BandCThreshold int                `bson:"bandCThreshold"`
}
