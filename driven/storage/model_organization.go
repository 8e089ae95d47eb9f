package storage

import "time"

type organization struct {
	ID             string                 `bson:"_id"`
	Name           string                 `bson:"name"`
	Permissions    map[string][]string    `bson:"permissions"`
	CreatedBy      string                 `bson:"created_by"`
	LastModifiedBy string                 `bson:"last_modified_by"`
	Custom         map[string]interface{} `bson:"custom"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}
