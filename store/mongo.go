package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/lizet96/citas-backend/models"
)

// MongoStore implementa CitaStore sobre una colección de MongoDB
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewMongoStore usa la colección dada de la base de datos dada. El cliente
// ya debe estar conectado; Close lo desconecta.
func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection(collection),
	}
}

func (s *MongoStore) Crear(ctx context.Context, req models.CitaRequest) (*models.Cita, error) {
	if err := validar(req, false); err != nil {
		return nil, err
	}
	c := models.NuevaCita(req)
	if _, err := s.col.InsertOne(ctx, c); err != nil {
		return nil, infra("insertar cita", err)
	}
	return &c, nil
}

func (s *MongoStore) Listar(ctx context.Context) ([]models.Cita, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, infra("listar citas", err)
	}
	defer cur.Close(ctx)

	citas := []models.Cita{}
	if err := cur.All(ctx, &citas); err != nil {
		return nil, infra("leer citas", err)
	}
	if citas == nil {
		citas = []models.Cita{}
	}
	return citas, nil
}

func (s *MongoStore) ObtenerPorID(ctx context.Context, id string) (*models.Cita, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var c models.Cita
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, infra("obtener cita", err)
	}
	return &c, nil
}

func (s *MongoStore) Actualizar(ctx context.Context, id string, req models.CitaRequest) (*models.Cita, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := validar(req, true); err != nil {
		return nil, err
	}

	cambios := req.Cambios()
	if len(cambios) == 0 {
		return s.ObtenerPorID(ctx, id)
	}

	var c models.Cita
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": cambios}, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, infra("actualizar cita", err)
	}
	return &c, nil
}

func (s *MongoStore) Eliminar(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return infra("eliminar cita", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return infra("ping mongo", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
