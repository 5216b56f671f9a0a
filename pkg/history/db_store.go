package history

import (
	"encoding/binary"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketHistory = "history"

// DBStore keeps records in a bbolt database. Each command has its own bucket
// nested in the history bucket, keyed by a big-endian sequence number.
type DBStore struct {
	db *bolt.DB
}

// NewDBStore opens or creates the database at path.
func NewDBStore(path string) (*DBStore, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened database", path)
	return &DBStore{db}, nil
}

// Records returns all records of command in the order they were added.
// Entries that can't be decoded are skipped.
func (s *DBStore) Records(command string) ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory)).Bucket([]byte(command))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var args []string
			if err := json.Unmarshal(v, &args); err != nil {
				logger.Printf("skipping malformed record %d of %s: %v",
					unmarshalSeq(k), command, err)
				return nil
			}
			records = append(records, Record{Command: command, Argument: args})
			return nil
		})
	})
	return records, err
}

// Add appends a record to the bucket of its command.
func (s *DBStore) Add(r Record) error {
	v, err := json.Marshal(r.Argument)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketHistory)).CreateBucketIfNotExists([]byte(r.Command))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), v)
	})
}

// Close closes the database.
func (s *DBStore) Close() error {
	return s.db.Close()
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
