package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cardOrigin() Origin {
	return Origin{
		{Zone: ZoneDeleteIcon, Attrs: map[string]string{AttrID: "7"}},
		{Zone: ZoneCard, Attrs: map[string]string{AttrID: "3", AttrColor: "red"}},
		{Zone: ZoneNotes},
	}
}

func TestOrigin_MatchesInnermostOnly(t *testing.T) {
	o := cardOrigin()

	assert.True(t, o.Matches(ZoneDeleteIcon))
	assert.False(t, o.Matches(ZoneCard))
	assert.False(t, Origin(nil).Matches(ZoneCard))
}

func TestOrigin_Within(t *testing.T) {
	o := cardOrigin()

	assert.True(t, o.Within(ZoneDeleteIcon))
	assert.True(t, o.Within(ZoneCard))
	assert.True(t, o.Within(ZoneNotes))
	assert.False(t, o.Within(ZoneForm))
	assert.False(t, Origin(nil).Within(ZoneForm))
}

func TestOrigin_AttrNearestWins(t *testing.T) {
	o := cardOrigin()

	id, ok := o.IntAttr(AttrID)
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	color, ok := o.Attr(AttrColor)
	assert.True(t, ok)
	assert.Equal(t, "red", color)

	_, ok = o.Attr("missing")
	assert.False(t, ok)
}

func TestOrigin_IntAttrRejectsGarbage(t *testing.T) {
	o := Origin{{Zone: ZoneCard, Attrs: map[string]string{AttrID: "abc"}}}
	_, ok := o.IntAttr(AttrID)
	assert.False(t, ok)
}

func TestOrigin_Closest(t *testing.T) {
	n, ok := cardOrigin().Closest(ZoneCard)
	assert.True(t, ok)
	assert.Equal(t, "3", n.Attrs[AttrID])
}

func TestOrigin_Zones(t *testing.T) {
	assert.Equal(t, []string{ZoneDeleteIcon, ZoneCard, ZoneNotes}, cardOrigin().Zones())
}

func TestDispatcher_RoutesByCategory(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.OnEvent(Click, func(Event) { got = append(got, "click-1") })
	d.OnEvent(Click, func(Event) { got = append(got, "click-2") })
	d.OnEvent(HoverStart, func(Event) { got = append(got, "hover") })

	assert.True(t, d.Emit(Event{Category: Click}))
	assert.Equal(t, []string{"click-1", "click-2"}, got)

	assert.False(t, d.Emit(Event{Category: Submit}), "no submit subscribers")
	assert.Equal(t, []string{"click-1", "click-2"}, got)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "click", Click.String())
	assert.Equal(t, "hoverStart", HoverStart.String())
	assert.Equal(t, "hoverEnd", HoverEnd.String())
	assert.Equal(t, "submit", Submit.String())
	assert.Equal(t, "unknown", Category(42).String())
}
