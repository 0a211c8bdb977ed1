package mongo

import (
	"context"
	"errors"

	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CertificateRepository interface {
	GetByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error)
	// InsertMany inserts unordered: valid documents are stored even when
	// others fail. It returns the number inserted alongside any error.
	InsertMany(ctx context.Context, certs []models.Certificate) (int, error)
}

type certificateRepo struct {
	col *mongo.Collection
}

func NewCertificateRepo(db *mongo.Database) CertificateRepository {
	return &certificateRepo{col: db.Collection("certificates")}
}

func (r *certificateRepo) GetByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error) {
	var c models.Certificate
	err := r.col.FindOne(ctx, bson.M{"certificateId": certificateID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *certificateRepo) InsertMany(ctx context.Context, certs []models.Certificate) (int, error) {
	if len(certs) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(certs))
	for i := range certs {
		docs = append(docs, certs[i])
	}

	res, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		inserted = len(certs) - len(bwe.WriteErrors)
	}
	return inserted, err
}
