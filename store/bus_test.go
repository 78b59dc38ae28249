package store

import (
	"law_console_go/models"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusPublishIsSynchronous(t *testing.T) {
	bus := NewBus()

	order := []string{}
	bus.Subscribe(EventLocalChange, func() { order = append(order, "first") })
	bus.Subscribe(EventLocalChange, func() { order = append(order, "second") })

	bus.Publish(EventLocalChange)

	// By the time Publish returns, every subscriber has run
	assert.Len(t, order, 2)
	assert.Contains(t, order, "first")
	assert.Contains(t, order, "second")
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	fired := 0
	unsubscribe := bus.Subscribe(EventLocalChange, func() { fired++ })

	bus.Publish(EventLocalChange)
	unsubscribe()
	bus.Publish(EventLocalChange)

	assert.Equal(t, 1, fired)
}

func TestBusChannelsAreIndependent(t *testing.T) {
	bus := NewBus()

	local, cross := 0, 0
	bus.Subscribe(EventLocalChange, func() { local++ })
	bus.Subscribe(EventStorageChange, func() { cross++ })

	bus.Publish(EventLocalChange)

	assert.Equal(t, 1, local)
	assert.Equal(t, 0, cross)
}

func TestBusRetainsNoHistory(t *testing.T) {
	bus := NewBus()

	bus.Publish(EventLocalChange)

	// A subscriber registered after the event fired never sees it
	fired := 0
	bus.Subscribe(EventLocalChange, func() { fired++ })
	assert.Equal(t, 0, fired)
}

func TestCheckRevisionsSuppressesOwnWrites(t *testing.T) {
	dir := t.TempDir()

	busA := NewBus()
	storeA, err := New(dir, busA)
	assert.NoError(t, err)

	crossA := 0
	busA.Subscribe(EventStorageChange, func() { crossA++ })

	// A writes; its own revision is already seen, so no cross event fires
	storeA.SaveCases([]models.Case{{ID: "c1"}})
	storeA.checkRevisions()
	assert.Equal(t, 0, crossA)
}

func TestCheckRevisionsFiresForForeignWrites(t *testing.T) {
	dir := t.TempDir()

	storeA, err := New(dir, NewBus())
	assert.NoError(t, err)

	busB := NewBus()
	storeB, err := New(dir, busB)
	assert.NoError(t, err)

	crossB := 0
	busB.Subscribe(EventStorageChange, func() { crossB++ })

	storeA.SaveCases([]models.Case{{ID: "c1"}})

	// B has not seen revision 1, so its watcher check fires exactly once
	storeB.checkRevisions()
	assert.Equal(t, 1, crossB)

	storeB.checkRevisions()
	assert.Equal(t, 1, crossB)
}

func TestWatchDeliversCrossProcessEvents(t *testing.T) {
	dir := t.TempDir()

	writer, err := New(dir, NewBus())
	assert.NoError(t, err)

	busReader := NewBus()
	reader, err := New(dir, busReader)
	assert.NoError(t, err)
	assert.NoError(t, reader.Watch())
	defer reader.Close()

	var fired atomic.Int32
	busReader.Subscribe(EventStorageChange, func() { fired.Add(1) })

	writer.SaveCases([]models.Case{{ID: "c1"}})

	assert.Eventually(t, func() bool {
		return fired.Load() > 0
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatchIgnoresOwnWrites(t *testing.T) {
	dir := t.TempDir()

	bus := NewBus()
	s, err := New(dir, bus)
	assert.NoError(t, err)
	assert.NoError(t, s.Watch())
	defer s.Close()

	var cross atomic.Int32
	bus.Subscribe(EventStorageChange, func() { cross.Add(1) })

	s.SaveCases([]models.Case{{ID: "c1"}})

	// Give the watcher time to process the filesystem events; none of them
	// may surface as a cross-process signal in the writing process
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), cross.Load())
}
