package main

import (
	"log"

	"github.com/Playtura-App/playtura/internal/storage"
)

// InitStorage selects and returns the configured storage backend
func InitStorage(env Environment) storage.Storage {
	if env.UseObjectStorage {
		objectStorage, err := storage.NewObjectStorage(
			env.StorageEndpoint,
			env.StorageRegion,
			env.StorageBucket,
			env.StorageCDNURL,
			env.StorageAccessKey,
			env.StorageSecretKey,
		)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		log.Printf("Using object storage with CDN: %s", env.StorageCDNURL)
		return objectStorage
	}

	local := storage.NewLocalStorage("./uploads")
	log.Printf("Using local file storage in ./uploads")
	return local
}
