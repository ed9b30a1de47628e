package boxflow

import "sync"

// ContainerID is a node's reference to the container it was appended to. It
// indexes the container table of the owning window, so nodes never hold a
// pointer to their parent. The zero ContainerID means unattached.
type ContainerID int

// IsZero returns true for the unattached ID.
func (id ContainerID) IsZero() bool {
	return id == 0
}

// tree is the container table shared by a window and every node beneath it.
// Slot 0 is reserved so the zero ContainerID never resolves.
type tree struct {
	mu         sync.RWMutex
	host       Host
	containers []Handle
}

func newTree(host Host) *tree {
	return &tree{host: host, containers: make([]Handle, 1)}
}

// add registers a new container and returns its ID. Its handle is filled in
// once the container is initialized.
func (t *tree) add() ContainerID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.containers = append(t.containers, 0)
	return ContainerID(len(t.containers) - 1)
}

func (t *tree) setHandle(id ContainerID, h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(id) > 0 && int(id) < len(t.containers) {
		t.containers[id] = h
	}
}

// handle returns the native handle of a container, or false if the container
// is unknown or not yet initialized.
func (t *tree) handle(id ContainerID) (Handle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(id) <= 0 || int(id) >= len(t.containers) {
		return 0, false
	}
	h := t.containers[id]
	return h, h != 0
}
