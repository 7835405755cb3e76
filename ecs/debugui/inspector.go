package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sandgrid/ecs"
)

// Inspector lists the newest entities of every archetype with their
// component fields. It is read-only.
type Inspector struct {
	Storage *ecs.Storage
	Recent  int32
}

// NewInspector shows up to recent entities per archetype.
func NewInspector(storage *ecs.Storage, recent int) *Inspector {
	return &Inspector{Storage: storage, Recent: int32(recent)}
}

// Item wraps the inspector as an ImguiItem.
func (in *Inspector) Item() ImguiItem {
	return ImguiItem{Render: in.Render}
}

// RecentEntities returns the ids of the last n entities of archetype, newest
// first.
func RecentEntities(archetype *ecs.Archetype, n int) []ecs.EntityId {
	total := archetype.Len()
	n = min(max(n, 0), total)

	ids := make([]ecs.EntityId, 0, n)
	for i := total - 1; i >= total-n; i-- {
		ids = append(ids, ecs.NewEntityId(archetype.ID(), uint32(i)))
	}
	return ids
}

func (in *Inspector) Render() {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.SetNextItemWidth(150)
	if imgui.InputInt("Recent", &in.Recent) {
		in.Recent = min(max(in.Recent, 1), 100)
	}
	imgui.Separator()

	for archetype := range in.Storage.Archetypes() {
		label := fmt.Sprintf("Archetype 0x%X (%d entities)", archetype.ID(), archetype.Len())
		if !imgui.TreeNodeStr(label) {
			continue
		}

		for _, id := range RecentEntities(archetype, int(in.Recent)) {
			if !imgui.TreeNodeStr(fmt.Sprintf("Entity %d", id.Index())) {
				continue
			}
			for _, compType := range archetype.Types() {
				component := in.Storage.GetComponent(id, compType)
				if component == nil {
					continue
				}
				imgui.Text(compType.String())
				for _, line := range FormatFields(component) {
					imgui.BulletText(fmt.Sprintf("%s: %s", line.Name, line.Value))
				}
			}
			imgui.TreePop()
		}

		imgui.TreePop()
	}

	imgui.End()
}
