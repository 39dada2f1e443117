package focus

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// Priority orders queued focus requests. Higher values are served first.
type Priority int

// Priority levels for focus requests
const (
	PriorityLow      Priority = 10
	PriorityNormal   Priority = 50
	PriorityHigh     Priority = 90
	PriorityCritical Priority = 100
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Reason identifies where a focus request originated.
type Reason string

const (
	ReasonKeyboard     Reason = "keyboard"     // User keyboard navigation
	ReasonMouse        Reason = "mouse"        // Pointer click or hover
	ReasonProgrammatic Reason = "programmatic" // API call
	ReasonSplit        Reason = "split"        // Pane split operation
	ReasonClose        Reason = "close"        // Pane close operation
	ReasonRestore      Reason = "restore"      // History restore
	ReasonCycle        Reason = "cycle"        // Group or global cycling
	ReasonContent      Reason = "content"      // Content widget asked for focus
)

// Request represents a request to move focus to a leaf.
type Request struct {
	LeafID    entity.NodeID
	Priority  Priority
	Reason    Reason
	Timestamp time.Time

	seq   uint64
	index int
}

// requestQueue implements heap.Interface. Ties on priority keep insertion order.
type requestQueue []*Request

func (pq requestQueue) Len() int { return len(pq) }

func (pq requestQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority > pq[j].Priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq requestQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *requestQueue) Push(x any) {
	req := x.(*Request)
	req.index = len(*pq)
	*pq = append(*pq, req)
}

func (pq *requestQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

func (pq *requestQueue) remove(req *Request) {
	if req.index >= 0 && req.index < pq.Len() && (*pq)[req.index] == req {
		heap.Remove(pq, req.index)
	}
}

// snapshot returns copies of the queued requests in service order.
func (pq requestQueue) snapshot() []Request {
	tmp := make(requestQueue, len(pq))
	for i, r := range pq {
		c := *r
		c.index = i
		tmp[i] = &c
	}
	out := make([]Request, 0, len(tmp))
	for tmp.Len() > 0 {
		out = append(out, *heap.Pop(&tmp).(*Request))
	}
	return out
}
