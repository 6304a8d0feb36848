package proc

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

var ErrNoSuchProcess = errors.New("no such process")

type Status string

const (
	StatusRunning    Status = "running"
	StatusStopped    Status = "stopped"
	StatusTerminated Status = "terminated"
)

// Process is one row of the table. CPU is cosmetic.
type Process struct {
	ID     int
	Name   string
	Status Status
	CPU    float64
}

func (p Process) String() string {
	return fmt.Sprintf("%d\t%s\t%s\t%s%% CPU", p.ID, p.Name, p.Status, strconv.FormatFloat(p.CPU, 'f', -1, 64))
}

// Table holds every process ever spawned. Rows are never removed.
type Table struct {
	procs []*Process
	rng   *rand.Rand
}

// NewTable returns a table seeded with init and bash. rng drives the CPU
// value of spawned processes; nil uses the global source.
func NewTable(rng *rand.Rand) *Table {
	return &Table{
		procs: []*Process{
			{ID: 1, Name: "init", Status: StatusRunning, CPU: 1},
			{ID: 2, Name: "bash", Status: StatusRunning, CPU: 3},
		},
		rng: rng,
	}
}

// List returns copies of all processes in table order.
func (t *Table) List() []Process {
	out := make([]Process, len(t.procs))
	for i, p := range t.procs {
		out[i] = *p
	}
	return out
}

// Spawn appends a running process with id = count+1.
func (t *Table) Spawn(name string) Process {
	p := &Process{
		ID:     len(t.procs) + 1,
		Name:   name,
		Status: StatusRunning,
		CPU:    t.cpu(),
	}
	t.procs = append(t.procs, p)
	return *p
}

func (t *Table) Terminate(id int) (Process, error) {
	return t.setStatus(id, StatusTerminated)
}

func (t *Table) Stop(id int) (Process, error) {
	return t.setStatus(id, StatusStopped)
}

func (t *Table) setStatus(id int, status Status) (Process, error) {
	for _, p := range t.procs {
		if p.ID == id {
			p.Status = status
			return *p, nil
		}
	}
	return Process{}, fmt.Errorf("%w with ID %d", ErrNoSuchProcess, id)
}

func (t *Table) cpu() float64 {
	if t.rng != nil {
		return t.rng.Float64() * 10
	}
	return rand.Float64() * 10
}
