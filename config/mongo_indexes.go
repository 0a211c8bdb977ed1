package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// certificateId is the public lookup key and must stay unique
	_, err := db.Collection("certificates").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "certificateId", Value: 1}},
		Options: options.Index().SetName("uniq_certificate_id").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("feedbacks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("by_created_desc"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("applications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("by_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "program", Value: 1}},
			Options: options.Index().SetName("by_email_program"),
		},
	})
	return err
}
