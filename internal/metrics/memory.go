package metrics

import "runtime"

// MemorySnapshot holds a point-in-time heap reading taken after a run.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by the process
	HeapObjects uint64 // number of allocated heap objects
	NumGC       uint32 // completed GC cycles
}

// ReadMemory returns the current heap statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
	}
}
