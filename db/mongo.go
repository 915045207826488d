package db

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"meditrack/models"
)

const PatientCollection = "patients"

// Mongo owns the client for the process lifetime. It is constructed once
// in main and injected; connect before serving, close on shutdown.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect dials the store and pings it. A failure here must be treated as
// fatal by the caller: the process must not accept requests against a
// disconnected store.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error from mongo.Connect: ", err)
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("Error from client.Ping: ", err)
		return nil, err
	}
	return &Mongo{Client: client, Database: client.Database(dbName)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// PatientRepo is the Mongo-backed patient store.
type PatientRepo struct {
	col *mongo.Collection
}

func NewPatientRepo(m *Mongo) *PatientRepo {
	return &PatientRepo{col: m.Database.Collection(PatientCollection)}
}

// Find returns the patients matching q, newest admission first.
func (r *PatientRepo) Find(ctx context.Context, q models.ListQuery) ([]models.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "admissionDate", Value: -1}})
	cursor, err := r.col.Find(ctx, BuildFilter(q), opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		log.Println("Error from cursor.All: ", err)
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepo) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored record.
		return nil, models.ErrNotFound
	}
	var patient models.Patient
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		log.Println("Error from FindOne: ", err)
		return nil, err
	}
	return &patient, nil
}

// Insert stores a new patient and fills in its generated id.
func (r *PatientRepo) Insert(ctx context.Context, patient *models.Patient) error {
	result, err := r.col.InsertOne(ctx, patient)
	if err != nil {
		log.Println("Error from InsertOne: ", err)
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		patient.ID = oid
	}
	return nil
}

// Update replaces only the supplied fields of an existing patient.
func (r *PatientRepo) Update(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a patient by id. Deleting an id that is already gone is
// not an error.
func (r *PatientRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		log.Println("Error from DeleteOne: ", err)
		return err
	}
	return nil
}
