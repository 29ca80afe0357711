package domain

import (
	"fmt"
	"sort"
)

type AgentID int

type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type AgentSpec struct {
	ID              AgentID
	InitialPosition Position
	InitialLoad     int
}

// ObjectSpec is a placed item (a container) that this client never mutates.
type ObjectSpec struct {
	Position  Position
	FillLevel int
}

type SessionDescriptor struct {
	GridWidth  int
	GridHeight int
	TotalSteps int
	Agents     []AgentSpec
	Objects    []ObjectSpec
}

func (d SessionDescriptor) Validate() error {
	if d.GridWidth < 0 || d.GridHeight < 0 {
		return fmt.Errorf("grid size %dx%d is negative", d.GridWidth, d.GridHeight)
	}
	if d.TotalSteps < 0 {
		return fmt.Errorf("total steps %d is negative", d.TotalSteps)
	}

	seen := make(map[AgentID]struct{}, len(d.Agents))
	for _, agent := range d.Agents {
		if _, ok := seen[agent.ID]; ok {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		seen[agent.ID] = struct{}{}
	}

	return nil
}

// AgentIDs returns the roster in ascending id order, the order every round polls in.
func (d SessionDescriptor) AgentIDs() []AgentID {
	ids := make([]AgentID, 0, len(d.Agents))
	for _, agent := range d.Agents {
		ids = append(ids, agent.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (d SessionDescriptor) HasAgent(id AgentID) bool {
	for _, agent := range d.Agents {
		if agent.ID == id {
			return true
		}
	}
	return false
}

func (d SessionDescriptor) InBounds(p Position) bool {
	if d.GridWidth == 0 && d.GridHeight == 0 {
		return true
	}
	return p.X >= 0 && p.Y >= 0 && p.X < d.GridWidth && p.Y < d.GridHeight
}
