package store

import (
	"encoding/json"
	"fmt"
	"law_console_go/models"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Collection slot names. Each slot is one JSON file in the data directory
// holding the full serialized collection.
const (
	SlotCases   = "processos"
	SlotClients = "clientes"
	SlotTasks   = "tarefas"
)

var allSlots = []string{SlotCases, SlotClients, SlotTasks}

// Store owns the durable representation of the entity collections. It is the
// sole writer of the slot files: every save replaces the entire prior value
// of a slot in a single atomic write, then bumps a revision sidecar and
// publishes on the bus. There is no partial or merge write.
//
// Multiple processes may share one data directory. They coordinate only
// through last-writer-wins file replacement and the storage-change events
// delivered by Watch; concurrent saves from two processes race and the
// second silently overwrites the first.
type Store struct {
	dir string
	bus *Bus

	mu       sync.Mutex
	lastSeen map[string]int64
	watcher  *fsnotify.Watcher
}

// New creates a store rooted at dir, creating the directory if needed
func New(dir string, bus *Bus) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		dir:      dir,
		bus:      bus,
		lastSeen: make(map[string]int64),
	}, nil
}

// LoadCases reads the full case collection. An absent or malformed slot is
// logged and treated as empty; load never fails from the caller's view.
func (s *Store) LoadCases() []models.Case {
	return loadSlot[models.Case](s, SlotCases)
}

// SaveCases replaces the persisted case collection and notifies the bus
func (s *Store) SaveCases(cases []models.Case) {
	s.saveSlot(SlotCases, cases)
}

// LoadClients reads the full client collection
func (s *Store) LoadClients() []models.Client {
	return loadSlot[models.Client](s, SlotClients)
}

// SaveClients replaces the persisted client collection and notifies the bus
func (s *Store) SaveClients(clients []models.Client) {
	s.saveSlot(SlotClients, clients)
}

// LoadTasks reads the full task collection
func (s *Store) LoadTasks() []models.Task {
	return loadSlot[models.Task](s, SlotTasks)
}

// SaveTasks replaces the persisted task collection and notifies the bus
func (s *Store) SaveTasks(tasks []models.Task) {
	s.saveSlot(SlotTasks, tasks)
}

// Revision returns the monotonic revision counter of a slot. Pollers use it
// to detect "nothing changed" without deserializing the collection.
func (s *Store) Revision(slot string) int64 {
	return s.readRevision(slot)
}

func (s *Store) slotPath(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *Store) revPath(slot string) string {
	return filepath.Join(s.dir, slot+".rev")
}

func loadSlot[T any](s *Store, slot string) []T {
	data, err := os.ReadFile(s.slotPath(slot))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[STORE] Failed to read slot %s: %v", slot, err)
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[STORE] Malformed data in slot %s, treating as empty: %v", slot, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// saveSlot writes the whole collection. Serialization or I/O failures are
// logged and the write is discarded; the caller's in-memory state remains
// authoritative for the rest of the session and the caller must re-invoke
// save to retry.
func (s *Store) saveSlot(slot string, items any) {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Printf("[STORE] Failed to serialize slot %s, write discarded: %v", slot, err)
		return
	}

	s.mu.Lock()
	if err := writeAtomic(s.slotPath(slot), data); err != nil {
		s.mu.Unlock()
		log.Printf("[STORE] Failed to write slot %s, write discarded: %v", slot, err)
		return
	}

	rev := s.readRevision(slot) + 1
	if err := writeAtomic(s.revPath(slot), []byte(strconv.FormatInt(rev, 10))); err != nil {
		log.Printf("[STORE] Failed to write revision for slot %s: %v", slot, err)
	}
	s.lastSeen[slot] = rev
	s.mu.Unlock()

	s.bus.Publish(EventLocalChange)
}

func (s *Store) readRevision(slot string) int64 {
	data, err := os.ReadFile(s.revPath(slot))
	if err != nil {
		return 0
	}
	rev, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		log.Printf("[STORE] Malformed revision for slot %s: %v", slot, err)
		return 0
	}
	return rev
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Watch starts the cross-process channel: an fsnotify watcher on the data
// directory that publishes EventStorageChange whenever another process bumps
// a slot revision. Events caused by this process's own saves are suppressed
// by comparing against the revisions it wrote itself.
func (s *Store) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create storage watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch data directory: %w", err)
	}

	s.mu.Lock()
	s.watcher = watcher
	// Baseline revisions so pre-existing data does not fire a spurious event
	for _, slot := range allSlots {
		if rev := s.readRevision(slot); rev > s.lastSeen[slot] {
			s.lastSeen[slot] = rev
		}
	}
	s.mu.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					s.checkRevisions()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[STORE] Storage watcher error: %v", err)
			}
		}
	}()

	return nil
}

// checkRevisions publishes EventStorageChange if any slot's on-disk revision
// is ahead of the last one this process has seen or written.
func (s *Store) checkRevisions() {
	changed := false
	s.mu.Lock()
	for _, slot := range allSlots {
		if rev := s.readRevision(slot); rev > s.lastSeen[slot] {
			s.lastSeen[slot] = rev
			changed = true
		}
	}
	s.mu.Unlock()

	if changed {
		s.bus.Publish(EventStorageChange)
	}
}

// Close stops the storage watcher if one is running
func (s *Store) Close() {
	s.mu.Lock()
	watcher := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if watcher != nil {
		watcher.Close()
	}
}
