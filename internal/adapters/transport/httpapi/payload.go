package httpapi

import (
	"errors"
	"fmt"

	"github.com/bnema/simsync/internal/domain"
)

type sessionPayload struct {
	GridX      *int               `json:"gridX"`
	GridY      *int               `json:"gridY"`
	TotalSteps *int               `json:"totalSteps"`
	Trucks     []truckPayload     `json:"trucks"`
	Containers []containerPayload `json:"containers"`
}

type truckPayload struct {
	ID   *int  `json:"id"`
	Pos  []int `json:"pos"`
	Load int   `json:"load"`
}

type containerPayload struct {
	Pos  []int `json:"pos"`
	Fill int   `json:"fill"`
}

type stepPayload struct {
	T        *int   `json:"t"`
	X        *int   `json:"x"`
	Y        *int   `json:"y"`
	Carrying int    `json:"carrying"`
	Action   string `json:"action"`
	Done     bool   `json:"done"`
}

func (p sessionPayload) toDomain() (domain.SessionDescriptor, error) {
	if p.GridX == nil || p.GridY == nil {
		return domain.SessionDescriptor{}, errors.New("session missing grid size")
	}
	if p.TotalSteps == nil {
		return domain.SessionDescriptor{}, errors.New("session missing totalSteps")
	}

	descriptor := domain.SessionDescriptor{
		GridWidth:  *p.GridX,
		GridHeight: *p.GridY,
		TotalSteps: *p.TotalSteps,
		Agents:     make([]domain.AgentSpec, 0, len(p.Trucks)),
		Objects:    make([]domain.ObjectSpec, 0, len(p.Containers)),
	}

	for i, truck := range p.Trucks {
		if truck.ID == nil {
			return domain.SessionDescriptor{}, fmt.Errorf("truck %d missing id", i)
		}
		pos, err := toPosition(truck.Pos)
		if err != nil {
			return domain.SessionDescriptor{}, fmt.Errorf("truck %d: %w", *truck.ID, err)
		}
		descriptor.Agents = append(descriptor.Agents, domain.AgentSpec{
			ID:              domain.AgentID(*truck.ID),
			InitialPosition: pos,
			InitialLoad:     truck.Load,
		})
	}

	for i, container := range p.Containers {
		pos, err := toPosition(container.Pos)
		if err != nil {
			return domain.SessionDescriptor{}, fmt.Errorf("container %d: %w", i, err)
		}
		descriptor.Objects = append(descriptor.Objects, domain.ObjectSpec{
			Position:  pos,
			FillLevel: container.Fill,
		})
	}

	if err := descriptor.Validate(); err != nil {
		return domain.SessionDescriptor{}, err
	}

	return descriptor, nil
}

func (p stepPayload) toDomain() (domain.StepRecord, error) {
	if p.T == nil {
		return domain.StepRecord{}, errors.New("step missing t")
	}
	if p.X == nil || p.Y == nil {
		return domain.StepRecord{}, errors.New("step missing position")
	}
	if *p.T < 0 {
		return domain.StepRecord{}, fmt.Errorf("step timestep %d is negative", *p.T)
	}

	return domain.StepRecord{
		Timestep:       *p.T,
		Position:       domain.Position{X: *p.X, Y: *p.Y},
		CarryingAmount: p.Carrying,
		Action:         p.Action,
		Done:           p.Done,
	}, nil
}

func toPosition(pos []int) (domain.Position, error) {
	if len(pos) != 2 {
		return domain.Position{}, fmt.Errorf("position must have 2 coordinates, got %d", len(pos))
	}
	return domain.Position{X: pos[0], Y: pos[1]}, nil
}
