package storage

type element struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	ProjectID string `bson:"project"`
}
