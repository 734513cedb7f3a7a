// Package game wires the bug widget together: ECS world, systems,
// input, rendering, and telemetry.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/wasibhussain/ladybug-chase/arena"
	"github.com/wasibhussain/ladybug-chase/components"
	"github.com/wasibhussain/ladybug-chase/config"
	"github.com/wasibhussain/ladybug-chase/systems"
	"github.com/wasibhussain/ladybug-chase/telemetry"
	"github.com/wasibhussain/ladybug-chase/ui"
)

// Options holds game initialization options.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete widget state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// The single bug entity
	bug ecs.Entity
	bugMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Wander,
		components.Drag,
	]

	// Individual component mappers for lookups
	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	rotMap  *ecs.Map1[components.Rotation]
	wandMap *ecs.Map1[components.Wander]
	dragMap *ecs.Map1[components.Drag]

	arena *arena.Arena

	// Systems
	wander *systems.WanderSystem
	motion *systems.MotionSystem
	drag   *systems.DragSystem

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	// UI (nil in headless mode)
	panel *ui.TuningPanel
	hud   *ui.HUD

	// State
	tick           int32
	simTime        float64 // simulation seconds since start
	paused         bool
	debugMode      bool
	headless       bool
	stepsPerUpdate int

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a new game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: stepsPerUpdate,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
		bugMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Wander,
			components.Drag,
		](world),
		posMap:  ecs.NewMap1[components.Position](world),
		velMap:  ecs.NewMap1[components.Velocity](world),
		rotMap:  ecs.NewMap1[components.Rotation](world),
		wandMap: ecs.NewMap1[components.Wander](world),
		dragMap: ecs.NewMap1[components.Drag](world),
	}

	g.arena = arena.New(g.screenWidth, g.screenHeight, cfg.Derived.Padding32)

	g.wander = systems.NewWanderSystem(world, g.rng, &cfg.Motion)
	g.motion = systems.NewMotionSystem(world, g.arena)
	g.drag = systems.NewDragSystem(world, g.arena, g.rng, &cfg.Motion, &cfg.Entity)

	g.collector = telemetry.NewCollector(statsWindow, cfg.Derived.DT32)
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to initialize output directory", "error", err)
	} else if om != nil {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.panel = ui.NewTuningPanel(10, 40)
		g.hud = ui.NewHUD()
	}

	g.spawnBug()

	return g
}

// spawnBug creates the bug at the arena center. The zero-value wander
// deadline is already expired, so the first tick picks a direction.
func (g *Game) spawnBug() {
	cx, cy := g.arena.Center()

	pos := components.Position{X: cx, Y: cy}
	vel := components.Velocity{}
	rot := components.Rotation{Heading: g.rng.Float32() * 2 * 3.14159265}
	wander := components.Wander{}
	drag := components.Drag{}

	g.bug = g.bugMapper.NewEntity(&pos, &vel, &rot, &wander, &drag)
}

// Update runs input handling and simulation steps for one frame.
func (g *Game) Update() {
	g.perf.RecordFrame()
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs a single fixed-dt tick of the motion controller.
func (g *Game) step() {
	cfg := config.Cfg()
	dt := cfg.Physics.DT

	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseWander)
	changes := g.wander.Update(g.simTime)
	for i := 0; i < changes; i++ {
		g.collector.RecordDirectionChange(g.simTime)
	}

	g.perf.StartPhase(telemetry.PhaseMotion)
	res := g.motion.Update(dt)
	g.collector.RecordReflections(res.ReflectionsX, res.ReflectionsY)
	g.collector.RecordDistance(res.Distance)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.simTime += dt
	g.tick++
	if g.collector.ShouldFlush(g.tick) {
		g.flushTelemetry()
	}

	g.perf.EndTick()
}

// flushTelemetry emits the finished stats window.
func (g *Game) flushTelemetry() {
	stats := g.collector.Flush(g.tick)

	if g.logStats {
		stats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Warn("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(g.perf.Stats(), g.tick); err != nil {
		slog.Warn("failed to write perf stats", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// SimTime returns the simulation time in seconds.
func (g *Game) SimTime() float64 {
	return g.simTime
}

// Unload releases resources and closes output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close output files", "error", err)
	}
}
