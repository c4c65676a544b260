package light

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/glade/engine/renderer/shader"
)

// SlotCount is the fixed number of light slots the shader exposes.
const SlotCount = 4

// ErrSlotOutOfRange is returned when a slot index falls outside [0, SlotCount).
var ErrSlotOutOfRange = errors.New("light slot index out of range")

// Table is the fixed-capacity table of light sources. Storage and shader state
// are decoupled: Set only records a light in its slot, and SyncToShader pushes a
// slot's six uniforms, so unchanged lights cost no uniform writes between frames.
type Table interface {
	// Set overwrites the light in the given slot and marks it active. The slot's
	// previous content is fully replaced, never merged.
	//
	// Parameters:
	//   - index: the slot index in [0, SlotCount)
	//   - l: the light to store
	//
	// Returns:
	//   - error: ErrSlotOutOfRange if index is invalid; no slot is modified
	Set(index int, l Light) error

	// At returns a copy of the light in the given slot.
	//
	// Parameters:
	//   - index: the slot index in [0, SlotCount)
	//
	// Returns:
	//   - Light: the stored light, or the zero value for an invalid index
	//   - bool: true when the slot is valid and active
	At(index int) (Light, bool)

	// ActiveCount returns the number of slots that have been set.
	//
	// Returns:
	//   - int: the active slot count
	ActiveCount() int

	// SyncToShader pushes the six lightSources[index].* uniforms for one slot to
	// the given shader. The shader must already be in use.
	//
	// Parameters:
	//   - sh: the shader to push uniforms to
	//   - index: the slot index in [0, SlotCount)
	//
	// Returns:
	//   - error: ErrSlotOutOfRange if index is invalid
	SyncToShader(sh shader.Shader, index int) error

	// SyncAll pushes every active slot's uniforms to the given shader in slot
	// order.
	//
	// Parameters:
	//   - sh: the shader to push uniforms to
	SyncAll(sh shader.Shader)
}

type table struct {
	slots  [SlotCount]Light
	active [SlotCount]bool
}

var _ Table = &table{}

func (t *table) Set(index int, l Light) error {
	if index < 0 || index >= SlotCount {
		return fmt.Errorf("cannot set light slot %d: %w", index, ErrSlotOutOfRange)
	}
	t.slots[index] = l
	t.active[index] = true
	return nil
}

func (t *table) At(index int) (Light, bool) {
	if index < 0 || index >= SlotCount {
		return Light{}, false
	}
	return t.slots[index], t.active[index]
}

func (t *table) ActiveCount() int {
	count := 0
	for _, active := range t.active {
		if active {
			count++
		}
	}
	return count
}

func (t *table) SyncToShader(sh shader.Shader, index int) error {
	if index < 0 || index >= SlotCount {
		return fmt.Errorf("cannot sync light slot %d: %w", index, ErrSlotOutOfRange)
	}

	l := t.slots[index]
	prefix := fmt.Sprintf("lightSources[%d]", index)
	sh.SetVec3(prefix+".position", l.Position)
	sh.SetVec3(prefix+".ambientColor", l.AmbientColor)
	sh.SetVec3(prefix+".diffuseColor", l.DiffuseColor)
	sh.SetVec3(prefix+".specularColor", l.SpecularColor)
	sh.SetFloat(prefix+".focalStrength", l.FocalStrength)
	sh.SetFloat(prefix+".specularIntensity", l.SpecularIntensity)
	return nil
}

func (t *table) SyncAll(sh shader.Shader) {
	for i := range t.slots {
		if t.active[i] {
			// Index is always valid here.
			_ = t.SyncToShader(sh, i)
		}
	}
}
