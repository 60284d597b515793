// Package store persists project documents between runs.
//
// A Document wraps the raw project JSON together with the metadata shown
// in listings. Backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for shared deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Shared deployment
//	st, err := store.NewMongoStore(ctx, store.MongoOptions{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Persist a loaded project:
//
//	doc, err := store.DocumentFromFile(path)
//	if err != nil {
//	    return err
//	}
//	if err := st.Put(ctx, doc); err != nil {
//	    return err
//	}
package store

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/project"
)

// Document is a stored project with listing metadata. Data holds the
// project JSON exactly as it was loaded.
type Document struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	TrayCount  int       `bson:"tray_count" json:"tray_count"`
	CableCount int       `bson:"cable_count" json:"cable_count"`
	Data       []byte    `bson:"data" json:"data"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Project parses the stored JSON back into a project.
func (d *Document) Project() (*project.Project, error) {
	return project.Read(bytes.NewReader(d.Data))
}

// DocumentFromFile reads a project file and wraps it for storage. The
// JSON is parsed once to validate it and to fill the metadata.
func DocumentFromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read %s", path)
	}

	p, err := project.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &Document{
		ID:         p.ID,
		Name:       p.Name,
		TrayCount:  len(p.Trays),
		CableCount: p.CableCount(),
		Data:       data,
		UpdatedAt:  time.Now().UTC(),
	}, nil
}

// Store is the interface for project storage backends.
type Store interface {
	// Get retrieves a document by project ID.
	// Returns nil, nil if the document doesn't exist.
	Get(ctx context.Context, id string) (*Document, error)

	// Put stores a document, replacing any existing one with the same ID.
	Put(ctx context.Context, doc *Document) error

	// List returns all documents ordered by name.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes a document. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
