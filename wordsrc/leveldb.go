package wordsrc

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const levelDBScheme = "leveldb://"

// wordPrefix namespaces the word records, keys are prefix + big-endian sequence.
var wordPrefix = []byte("w/")

// LevelDB reads words stored by Import. Either DB or Path must be set.
type LevelDB struct {
	Path string
	DB   *leveldb.DB
}

// Words returns the stored words in import order.
func (l *LevelDB) Words(ctx context.Context) ([]string, error) {
	db := l.DB
	if db == nil {
		if _, err := os.Stat(l.Path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
			}
			return nil, err
		}
		var err error
		db, err = leveldb.OpenFile(l.Path, &opt.Options{ReadOnly: true, ErrorIfMissing: true})
		if err != nil {
			return nil, err
		}
		defer db.Close()
	}

	iter := db.NewIterator(util.BytesPrefix(wordPrefix), nil)
	defer iter.Release()

	words := make([]string, 0, 1024)
	for i := 0; iter.Next(); i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		words = append(words, string(iter.Value()))
	}

	return words, iter.Error()
}

// Import appends words to db after the ones already stored and returns how
// many records it wrote.
func Import(db *leveldb.DB, words []string) (int, error) {
	next, err := nextSeq(db)
	if err != nil {
		return 0, err
	}

	batch := new(leveldb.Batch)
	for i, w := range words {
		batch.Put(wordKey(next+uint64(i)), []byte(w))
	}
	if err := db.Write(batch, nil); err != nil {
		return 0, err
	}
	return len(words), nil
}

// nextSeq returns the sequence following the last stored word.
func nextSeq(db *leveldb.DB) (uint64, error) {
	iter := db.NewIterator(util.BytesPrefix(wordPrefix), nil)
	defer iter.Release()

	if !iter.Last() {
		return 0, iter.Error()
	}
	key := iter.Key()
	return binary.BigEndian.Uint64(key[len(wordPrefix):]) + 1, iter.Error()
}

func wordKey(seq uint64) []byte {
	key := make([]byte, len(wordPrefix)+8)
	copy(key, wordPrefix)
	binary.BigEndian.PutUint64(key[len(wordPrefix):], seq)
	return key
}
