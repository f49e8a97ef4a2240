package sliceutil

import (
	"testing"

	"github.com/hueshift-cloud/hueshift/pkg/model"
	"github.com/hueshift-cloud/hueshift/pkg/model/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveReplicaCountFromTraffic(t *testing.T) {
	tests := []struct {
		maxReplicas int32
		percentage  uint32
		expected    int32
	}{
		{10, 100, 10},
		{10, 50, 5},
		{10, 25, 3},
		{4, 25, 1},
		{4, 30, 2},
		{3, 1, 1},
		{5, 0, 1},
		{1, 100, 1},
	}

	for _, test := range tests {
		actual := DeriveReplicaCountFromTraffic(test.maxReplicas, test.percentage)
		assert.Equal(t, test.expected, actual, "%d replicas at %d%%", test.maxReplicas, test.percentage)
	}
}

func TestSliceName(t *testing.T) {
	assert.Equal(t, "sentiment-blue", SliceName("sentiment", model.ColorBlue))
	assert.Equal(t, "sentiment-green", SliceName("sentiment", model.ColorGreen))
}

func TestGenSliceLabels(t *testing.T) {
	labels := GenSliceLabels("sentiment", model.ColorBlue)

	assert.Equal(t, consts.Domain, labels[consts.LabelKeyDomain])
	assert.Equal(t, consts.LabelValueResourceSlice, labels[consts.LabelKeyResource])
	assert.Equal(t, "sentiment", labels[consts.LabelKeyFor])
	assert.Equal(t, "blue", labels[consts.LabelKeyColor])

	name, err := ServiceNameFromLabels(labels)
	require.NoError(t, err)
	assert.Equal(t, "sentiment", name)

	color, err := ColorFromLabels(labels)
	require.NoError(t, err)
	assert.Equal(t, model.ColorBlue, color)
}

func TestLabelLookupsFailOnForeignLabels(t *testing.T) {
	_, err := ServiceNameFromLabels(map[string]string{"app": "sentiment"})
	require.Error(t, err)

	_, err = ColorFromLabels(map[string]string{"app": "sentiment"})
	require.Error(t, err)
}
