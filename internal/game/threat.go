package game

import (
	"fmt"
	"math"
	"slices"
)

// AgentID is the host's stable identifier for an agent.
type AgentID int

// Label returns the short log label, e.g. "A3".
func (id AgentID) Label() string { return fmt.Sprintf("A%d", int(id)) }

// AgentKind names which animatronic an agent is. It is what a jumpscare shows.
type AgentKind uint8

const (
	KindNone AgentKind = iota
	KindBear
	KindRabbit
	KindChicken
	KindFox
)

func (k AgentKind) String() string {
	switch k {
	case KindBear:
		return "bear"
	case KindRabbit:
		return "rabbit"
	case KindChicken:
		return "chicken"
	case KindFox:
		return "fox"
	default:
		return "none"
	}
}

// AgentTask is the region an agent is oriented toward.
type AgentTask uint8

const (
	TaskNone AgentTask = iota
	TaskCameras
	TaskLeftDoor
	TaskRightDoor
)

func (t AgentTask) String() string {
	switch t {
	case TaskCameras:
		return "cameras"
	case TaskLeftDoor:
		return "left door"
	case TaskRightDoor:
		return "right door"
	default:
		return "none"
	}
}

// IsDoor reports whether t is one of the door tasks.
func (t AgentTask) IsDoor() bool { return t == TaskLeftDoor || t == TaskRightDoor }

// AidKind is the family of signaling aid attached to an agent.
type AidKind uint8

const (
	AidNone AidKind = iota
	AidCameras
	AidDoor
)

func (k AidKind) String() string {
	switch k {
	case AidCameras:
		return "cameras"
	case AidDoor:
		return "door"
	default:
		return "none"
	}
}

// aidFor returns the aid family that matches a task.
func aidFor(t AgentTask) AidKind {
	switch t {
	case TaskCameras:
		return AidCameras
	case TaskLeftDoor, TaskRightDoor:
		return AidDoor
	default:
		return AidNone
	}
}

// Tile is a room tile coordinate.
type Tile struct {
	X, Y int
}

// Room is the host's geometry for the encounter room.
type Room interface {
	TileWidth() int
	TileHeight() int
	Solid(t Tile) bool
	TerrainProximity(t Tile) int
}

// Aid is a signaling aid the host attached to an agent.
type Aid interface {
	Kind() AidKind
	InfluenceHoverScore(t Tile, base float64) float64
}

// AidSpawner creates aids on request. It may return nil, in which case
// nothing is attached and the request is repeated on a later tick.
type AidSpawner interface {
	SpawnAid(agent AgentID, kind AidKind) Aid
}

// Guidance is the part of an agent's default steering the director overrides.
type Guidance struct {
	PursuePlayer   bool
	PersistCounter int
}

// ImpassableScore is the hover score of a tile an agent must never pick.
const ImpassableScore = math.MaxFloat64

// pursuitPersistence is what the pursuit counter is pinned to each tick.
const pursuitPersistence = 1000

// proximityPerSize scales the terrain-proximity cutoff by agent size.
const proximityPerSize = 6.0

type agentRecord struct {
	kind AgentKind
	size float64
	task AgentTask
	aid  Aid
}

// ThreatDirector holds per-agent tasks and aids and applies their effects.
type ThreatDirector struct {
	agents map[AgentID]*agentRecord
	power  *PowerBudget
	log    *SimLog
	tick   *int
}

// NewThreatDirector returns an empty director.
func NewThreatDirector(power *PowerBudget, log *SimLog, tick *int) *ThreatDirector {
	return &ThreatDirector{
		agents: make(map[AgentID]*agentRecord),
		power:  power,
		log:    log,
		tick:   tick,
	}
}

// AgentCreated registers an agent. Registering an existing id resets it.
func (td *ThreatDirector) AgentCreated(id AgentID, kind AgentKind, size float64) {
	td.agents[id] = &agentRecord{kind: kind, size: size}
}

// AgentDestroyed drops every side-table entry for id.
func (td *ThreatDirector) AgentDestroyed(id AgentID) {
	delete(td.agents, id)
}

// Agents returns registered ids in ascending order.
func (td *ThreatDirector) Agents() []AgentID {
	ids := make([]AgentID, 0, len(td.agents))
	for id := range td.agents {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Kind returns an agent's kind, KindNone when unknown.
func (td *ThreatDirector) Kind(id AgentID) AgentKind {
	if a, ok := td.agents[id]; ok {
		return a.kind
	}
	return KindNone
}

// AssignTask sets an agent's task. Unknown agents are ignored.
func (td *ThreatDirector) AssignTask(id AgentID, task AgentTask) bool {
	a, ok := td.agents[id]
	if !ok {
		return false
	}
	if a.task != task {
		td.log.Add(*td.tick, id.Label(), CatTask, "assign", fmt.Sprintf("%s -> %s", a.task, task), float64(task))
	}
	a.task = task
	return true
}

// TaskOf returns an agent's task; TaskNone for unknown agents.
func (td *ThreatDirector) TaskOf(id AgentID) AgentTask {
	if a, ok := td.agents[id]; ok {
		return a.task
	}
	return TaskNone
}

// Aid returns the aid attached to an agent, or nil.
func (td *ThreatDirector) Aid(id AgentID) Aid {
	if a, ok := td.agents[id]; ok {
		return a.aid
	}
	return nil
}

// DetachAid forgets an agent's aid, e.g. after the host destroyed it.
func (td *ThreatDirector) DetachAid(id AgentID) {
	if a, ok := td.agents[id]; ok {
		a.aid = nil
	}
}

// ApplyTaskEffects attaches an aid matching the agent's task when it has a
// task and no aid yet. It returns whether an aid was attached.
func (td *ThreatDirector) ApplyTaskEffects(id AgentID, spawner AidSpawner) bool {
	a, ok := td.agents[id]
	if !ok || a.aid != nil || spawner == nil {
		return false
	}
	kind := aidFor(a.task)
	if kind == AidNone {
		return false
	}
	aid := spawner.SpawnAid(id, kind)
	if aid == nil {
		return false
	}
	a.aid = aid
	td.log.Add(*td.tick, id.Label(), CatAid, "attach", kind.String(), float64(kind))
	return true
}

// HoverBias scores a candidate hover tile for an agent. Door-tasked agents
// with an aid are steered by the aid and kept off out-of-bounds, solid and
// far-from-terrain tiles. Every other agent gets fallback's score.
func (td *ThreatDirector) HoverBias(id AgentID, t Tile, room Room, fallback func(Tile) float64) float64 {
	a, ok := td.agents[id]
	if !ok || !a.task.IsDoor() || a.aid == nil || room == nil {
		if fallback == nil {
			return 0
		}
		return fallback(t)
	}
	if t.X < 0 || t.Y < 0 || t.X >= room.TileWidth() || t.Y >= room.TileHeight() {
		return ImpassableScore
	}
	if room.Solid(t) {
		return ImpassableScore
	}
	if room.TerrainProximity(t) > int(proximityPerSize*a.size) {
		return ImpassableScore
	}
	return a.aid.InfluenceHoverScore(t, 0)
}

// ForcePlayerPursuit runs after the agent's default guidance and, while the
// power is on, pins it to chasing the player. It returns whether it applied.
func (td *ThreatDirector) ForcePlayerPursuit(g *Guidance) bool {
	if g == nil || td.power.OutOfPower {
		return false
	}
	g.PursuePlayer = true
	g.PersistCounter = pursuitPersistence
	return true
}

// Tick applies task effects to every agent. The pursuit override is not
// part of it: guidance belongs to the agent and is overridden through
// Hooks.PlayerGuideUpdate after the agent's own routine runs.
func (td *ThreatDirector) Tick(spawner AidSpawner) {
	for _, id := range td.Agents() {
		td.ApplyTaskEffects(id, spawner)
	}
}
