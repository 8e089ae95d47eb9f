package storage

import (
	"context"
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	db       *mongo.Database
	dbClient *mongo.Client

	users         *collectionWrapper
	organizations *collectionWrapper
	projects      *collectionWrapper
	elements      *collectionWrapper

	logger *logs.Logger
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	users := &collectionWrapper{database: m, coll: db.Collection("users")}
	err = m.applyUsersChecks(users)
	if err != nil {
		return err
	}

	organizations := &collectionWrapper{database: m, coll: db.Collection("organizations")}
	err = m.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	projects := &collectionWrapper{database: m, coll: db.Collection("projects")}
	err = m.applyProjectsChecks(projects)
	if err != nil {
		return err
	}

	elements := &collectionWrapper{database: m, coll: db.Collection("elements")}
	err = m.applyElementsChecks(elements)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.users = users
	m.organizations = organizations
	m.projects = projects
	m.elements = elements

	return nil
}

func (m *database) applyUsersChecks(users *collectionWrapper) error {
	m.logger.Info("apply users checks.....")

	//add custom.sandbox index - the backfill queries for users without one
	err := users.AddIndex(bson.D{primitive.E{Key: "custom.sandbox", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("users checks passed")
	return nil
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add created_by index - the sandbox delete filters on the creator
	err := organizations.AddIndex(bson.D{primitive.E{Key: "created_by", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) applyProjectsChecks(projects *collectionWrapper) error {
	m.logger.Info("apply projects checks.....")

	//add org index - the cascade finds and deletes projects by organization
	err := projects.AddIndex(bson.D{primitive.E{Key: "org", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("projects checks passed")
	return nil
}

func (m *database) applyElementsChecks(elements *collectionWrapper) error {
	m.logger.Info("apply elements checks.....")

	//add project index - the cascade deletes elements by project
	err := elements.AddIndex(bson.D{primitive.E{Key: "project", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("elements checks passed")
	return nil
}
