package ports

import "github.com/bnema/simsync/internal/domain"

type EntitySink interface {
	OnSceneCleared()
	OnObjectPlaced(index int, object domain.ObjectSpec)
	OnEntityPlaced(id domain.AgentID, position domain.Position)
	OnEntityMoved(id domain.AgentID, position domain.Position)
}

type ProgressReporter interface {
	OnProgress(current, total int)
	OnCompleted(current, total int)
}
