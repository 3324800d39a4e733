package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongo abre el cliente de MongoDB y verifica que el servidor responda.
// timeout limita la selección de servidor y el establecimiento de conexiones.
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration, log *slog.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("probar conexión: %w", err)
	}

	var info struct {
		Version string `bson:"version"`
	}
	if err := client.Database("admin").RunCommand(pingCtx, bson.D{{Key: "buildInfo", Value: 1}}).Decode(&info); err != nil {
		log.Warn("no se pudo leer la versión de MongoDB", slog.Any("error", err))
	}

	log.Info("conectado a MongoDB", slog.String("version", info.Version))
	return client, nil
}
