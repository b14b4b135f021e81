// internal/infrastructure/database/bolt/connection.go
package bolt

import (
	"fmt"
	"log"
	"time"

	"github.com/your-org/storefront/internal/config"
	bolt "go.etcd.io/bbolt"
)

// Client wraps the embedded bbolt database that backs on-device state
type Client struct {
	DB *bolt.DB
}

// NewConnection opens (or creates) the local database file
func NewConnection(cfg *config.Config) (*Client, error) {
	db, err := bolt.Open(cfg.Session.Path, 0o600, &bolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	log.Println("Local database opened successfully")

	return &Client{
		DB: db,
	}, nil
}

// Close closes the database file
func (c *Client) Close() error {
	return c.DB.Close()
}

// GetDB returns the underlying bbolt handle
func (c *Client) GetDB() *bolt.DB {
	return c.DB
}

// Health verifies the database file is still writable
func (c *Client) Health() error {
	return c.DB.Update(func(tx *bolt.Tx) error {
		return nil
	})
}

// Put stores a key-value pair in the given bucket, creating it if needed
func (c *Client) Put(bucket, key string, value []byte) error {
	return c.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// Get retrieves a value by key; a nil result means the key is absent
func (c *Client) Get(bucket, key string) ([]byte, error) {
	var value []byte
	err := c.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	return value, err
}

// Delete removes a key from the given bucket
func (c *Client) Delete(bucket, key string) error {
	return c.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}
