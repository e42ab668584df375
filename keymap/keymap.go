// Package keymap maintains an index from identity keys to the paths
// seen with them, for grouping hardlinked duplicates.
package keymap

import (
	"encoding/gob"
	"os"
	"sort"
	"sync"

	"github.com/kei2100/samefile/stat"
)

// KeyMap interface
type KeyMap interface {
	// Close closes this KeyMap
	Close() error
	// Add records that name was seen with the identity key k
	Add(k stat.Key, name string) error
	// Paths returns the paths recorded for k, in insertion order
	Paths(k stat.Key) []string
	// Keys returns all recorded keys, sorted by String()
	Keys() []stat.Key
	// Len returns the number of distinct keys
	Len() int
}

type entries struct {
	Paths map[stat.Key][]string
}

// Open opens the named file-backed KeyMap. The file is created if it
// does not exist; recorded entries accumulate across runs.
func Open(name string) (KeyMap, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_SYNC, 0600)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	ent := entries{Paths: make(map[stat.Key][]string)}
	if fi.Size() > 0 {
		dec := gob.NewDecoder(f)
		if err := dec.Decode(&ent); err != nil {
			f.Close()
			return nil, err
		}
	}
	return &fileKeyMap{f: f, entries: ent}, nil
}

type fileKeyMap struct {
	f *os.File
	entries
	mu sync.RWMutex
}

func (m *fileKeyMap) Close() error {
	return m.f.Close()
}

func (m *fileKeyMap) Add(k stat.Key, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries.add(k, name)

	if _, err := m.f.Seek(0, 0); err != nil {
		return err
	}
	if err := m.f.Truncate(0); err != nil {
		return err
	}
	enc := gob.NewEncoder(m.f)
	if err := enc.Encode(&m.entries); err != nil {
		return err
	}
	return nil
}

func (m *fileKeyMap) Paths(k stat.Key) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries.paths(k)
}

func (m *fileKeyMap) Keys() []stat.Key {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries.keys()
}

func (m *fileKeyMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries.Paths)
}

// InMemory creates an in-memory KeyMap
func InMemory() KeyMap {
	return &inMemory{entries: entries{Paths: make(map[stat.Key][]string)}}
}

type inMemory struct {
	entries
	mu sync.RWMutex
}

func (m *inMemory) Close() error {
	return nil
}

func (m *inMemory) Add(k stat.Key, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries.add(k, name)
	return nil
}

func (m *inMemory) Paths(k stat.Key) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries.paths(k)
}

func (m *inMemory) Keys() []stat.Key {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries.keys()
}

func (m *inMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries.Paths)
}

func (e *entries) add(k stat.Key, name string) {
	for _, p := range e.Paths[k] {
		if p == name {
			return
		}
	}
	e.Paths[k] = append(e.Paths[k], name)
}

func (e *entries) paths(k stat.Key) []string {
	ps := e.Paths[k]
	out := make([]string, len(ps))
	copy(out, ps)
	return out
}

func (e *entries) keys() []stat.Key {
	ks := make([]stat.Key, 0, len(e.Paths))
	for k := range e.Paths {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].String() < ks[j].String() })
	return ks
}
