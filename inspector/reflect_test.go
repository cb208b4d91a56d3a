package inspector

import (
	"testing"

	"github.com/pthm-cable/asteroids/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		widget  Widget
		options map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"bar,max:10", WidgetBar, map[string]string{"max": "10"}},
		{"label, fmt:%.1f", WidgetLabel, map[string]string{"fmt": "%.1f"}},
		{"angle", WidgetAngle, map[string]string{}},
		{"skip", WidgetSkip, map[string]string{}},
		{"mystery", WidgetAuto, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			w, opts := ParseTag(tt.tag)
			assert.Equal(t, tt.widget, w)
			assert.Equal(t, tt.options, opts)
		})
	}
}

func TestExtractFields(t *testing.T) {
	type sample struct {
		Shown   float64 `inspect:"bar,max:2"`
		Hidden  int     `inspect:"skip"`
		Flag    bool
		private int
	}

	fields := ExtractFields(&sample{Shown: 1.5, Flag: true})
	require.Len(t, fields, 2)

	assert.Equal(t, "Shown", fields[0].Name)
	assert.Equal(t, WidgetBar, fields[0].Widget)
	assert.Equal(t, float32(2), GetMax(fields[0].Options))

	assert.Equal(t, "Flag", fields[1].Name)
	assert.Equal(t, WidgetBool, fields[1].Widget)

	assert.Nil(t, ExtractFields(42))
	assert.Nil(t, ExtractFields((*sample)(nil)))
}

func TestCollectSkipsMissingComponents(t *testing.T) {
	pos := &components.Position{X: 3, Y: -4}
	var dir *components.Direction

	sections := Collect(pos, dir, &components.Human{}, &components.Lifetime{Duration: 0.5})
	require.Len(t, sections, 3)

	assert.Equal(t, "Position", sections[0].Title)
	assert.Len(t, sections[0].Fields, 2)
	assert.Equal(t, "Human", sections[1].Title)
	assert.Empty(t, sections[1].Fields)
	assert.Equal(t, "Lifetime", sections[2].Title)
	assert.Len(t, sections[2].Fields, 3)
}

func TestPanelHeightGrowsWithFields(t *testing.T) {
	small := PanelHeight(Collect(&components.Health{Value: 10}))
	large := PanelHeight(Collect(&components.Health{Value: 10}, &components.Direction{Angle: 1}))
	assert.Equal(t, int32(SectionHeight+rowAngle+4), large-small)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.50", FormatValue(1.5, ""))
	assert.Equal(t, "7", FormatValue(7, ""))
	assert.Equal(t, "0.250s", FormatValue(0.25, "%.3fs"))
	assert.Equal(t, "laser", FormatValue(components.KindLaser, ""))
}

func TestGetFloatValue(t *testing.T) {
	v, ok := GetFloatValue(10)
	assert.True(t, ok)
	assert.Equal(t, float32(10), v)

	_, ok = GetFloatValue("ten")
	assert.False(t, ok)
}
