package live

import (
	"sync"

	"github.com/bnema/simsync/internal/domain"
	"github.com/bnema/simsync/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	_ ports.EntitySink       = (*Bridge)(nil)
	_ ports.ProgressReporter = (*Bridge)(nil)
)

type sceneClearedMsg struct{}

type objectPlacedMsg struct {
	index  int
	object domain.ObjectSpec
}

type entityPlacedMsg struct {
	id       domain.AgentID
	position domain.Position
}

type entityMovedMsg struct {
	id       domain.AgentID
	position domain.Position
}

type progressMsg struct {
	current int
	total   int
}

type completedMsg struct {
	current int
	total   int
}

type engineDoneMsg struct {
	err error
}

// Bridge forwards engine callbacks into a bubbletea program as messages.
// Events raised before Attach are dropped.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewBridge() *Bridge {
	return &Bridge{}
}

func (b *Bridge) Attach(p *tea.Program) {
	b.attach(p.Send)
}

func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) dispatch(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

func (b *Bridge) OnSceneCleared() {
	b.dispatch(sceneClearedMsg{})
}

func (b *Bridge) OnObjectPlaced(index int, object domain.ObjectSpec) {
	b.dispatch(objectPlacedMsg{index: index, object: object})
}

func (b *Bridge) OnEntityPlaced(id domain.AgentID, position domain.Position) {
	b.dispatch(entityPlacedMsg{id: id, position: position})
}

func (b *Bridge) OnEntityMoved(id domain.AgentID, position domain.Position) {
	b.dispatch(entityMovedMsg{id: id, position: position})
}

func (b *Bridge) OnProgress(current, total int) {
	b.dispatch(progressMsg{current: current, total: total})
}

func (b *Bridge) OnCompleted(current, total int) {
	b.dispatch(completedMsg{current: current, total: total})
}
