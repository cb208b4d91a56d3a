package game

import "github.com/pthm-cable/asteroids/telemetry"

// Stage is one named step of the simulation tick.
type Stage struct {
	Name string
	Run  func()
}

// Pipeline runs its stages in registration order, timing each as a perf phase.
type Pipeline struct {
	stages []Stage
	perf   *telemetry.PerfCollector
}

// NewPipeline creates an empty pipeline. perf may be nil.
func NewPipeline(perf *telemetry.PerfCollector) *Pipeline {
	return &Pipeline{perf: perf}
}

// Add appends a stage.
func (p *Pipeline) Add(name string, run func()) {
	p.stages = append(p.stages, Stage{Name: name, Run: run})
}

// Names returns the stage names in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run executes every stage once.
func (p *Pipeline) Run() {
	if p.perf == nil {
		for _, s := range p.stages {
			s.Run()
		}
		return
	}

	p.perf.StartTick()
	for _, s := range p.stages {
		p.perf.StartPhase(s.Name)
		s.Run()
	}
	p.perf.EndTick()
}
