package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sandgrid/ecs"
)

// StatsWindow shows storage counts, a frame time graph and per-system
// timings. Extra, if set, renders additional rows at the top.
type StatsWindow struct {
	Title     string
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Extra     func()

	history []float32
	index   int
	filled  int
}

// NewStatsWindow creates a window that keeps historyFrames frame times.
func NewStatsWindow(title string, storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) *StatsWindow {
	return &StatsWindow{
		Title:     title,
		Storage:   storage,
		Scheduler: scheduler,
		history:   make([]float32, max(historyFrames, 1)),
	}
}

// Item wraps the window as an ImguiItem.
func (w *StatsWindow) Item() ImguiItem {
	return ImguiItem{Render: w.Render}
}

// Record adds a frame time to the history ring.
func (w *StatsWindow) Record(frameTime time.Duration) {
	w.history[w.index] = float32(frameTime.Seconds() * 1000)
	w.index = (w.index + 1) % len(w.history)
	w.filled = min(w.filled+1, len(w.history))
}

// AverageFrameTime averages the recorded frame times.
func (w *StatsWindow) AverageFrameTime() time.Duration {
	if w.filled == 0 {
		return 0
	}
	var total float64
	for _, ms := range w.history[:w.filled] {
		total += float64(ms)
	}
	return time.Duration(total / float64(w.filled) * float64(time.Millisecond))
}

func (w *StatsWindow) Render() {
	if !imgui.BeginV(w.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if w.Extra != nil {
		w.Extra()
		imgui.Separator()
	}

	stats := w.Storage.CollectStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	if avg := w.AverageFrameTime(); avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)",
			float64(avg)/float64(time.Millisecond), float64(time.Second)/float64(avg)))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.history[0], int32(len(w.history)))

	if w.Scheduler != nil && imgui.TreeNodeStr("Systems") {
		w.renderSystems(w.Scheduler.GetStats())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetypes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%v", arch.ComponentTypes))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (w *StatsWindow) renderSystems(stats *ecs.SchedulerStats) {
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, system := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(system.Name)
		imgui.TableNextColumn()
		imgui.Text(system.LastDuration.String())
		imgui.TableNextColumn()
		imgui.Text(system.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(system.MaxDuration.String())
	}

	imgui.EndTable()
}
