package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Branch struct {
	ID       primitive.ObjectID `bson:"_id"`
	TenantID string             `bson:"tenantId"`
	Name     string             `bson:"name"`
	District string             `bson:"district"`
	IsActive bool               `bson:"isActive"`
}

// RoutingRule maps a district to a branch. Higher priority wins when
// several active rules match the same district.
type RoutingRule struct {
	ID       primitive.ObjectID `bson:"_id"`
	TenantID string             `bson:"tenantId"`
	District string             `bson:"district"`
	BranchID primitive.ObjectID `bson:"branchId"`
	Priority int                `bson:"priority"`
	IsActive bool               `bson:"isActive"`
}
