package storage

type user struct {
	Username string                 `bson:"_id" validate:"required"`
	Custom   map[string]interface{} `bson:"custom"`
}
