package storage

type project struct {
	ID    string `bson:"_id"`
	Name  string `bson:"name"`
	OrgID string `bson:"org"`
}
