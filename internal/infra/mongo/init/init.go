package infra_mongo_init

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/cinetalk/backend/internal/config"
)

const (
	connectTimeout         = 10 * time.Second
	serverSelectionTimeout = 5 * time.Second
)

const logtag = "[mongo]"

// Conn is an established connection plus the name of the backend that
// won the probe ("primary" or "local"). The name is carried into request
// logs so it is always obvious which datastore served a request.
type Conn struct {
	Database *mongo.Database
	Backend  string
}

// MustEstablishConn probes the primary URI first and falls back to the
// local one when the primary is unreachable. In production only the
// primary is tried. Any total failure is fatal.
func MustEstablishConn(cfg config.Mongo, production bool) *Conn {
	db, err := connect(cfg.PrimaryURI, cfg.Database)
	if err == nil {
		log.Printf("%s connected to primary", logtag)
		return &Conn{Database: db, Backend: "primary"}
	}
	log.Printf("%s primary unreachable: %v", logtag, err)

	if production || cfg.LocalURI == "" {
		log.Fatalf("%s no usable datastore", logtag)
	}

	db, err = connect(cfg.LocalURI, cfg.Database)
	if err != nil {
		log.Fatalf("%s local fallback unreachable: %v", logtag, err)
	}
	log.Printf("%s connected to local fallback", logtag)
	return &Conn{Database: db, Backend: "local"}
}

func connect(uri, database string) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client.Database(database), nil
}
