package meta

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type AnnosTestSuite struct {
	suite.Suite
}

func (a *AnnosTestSuite) TestToMap() {
	// -- Given
	//
	given := &Slice{
		SliceId: "8e2b6f0a",
		SourceObj: ObjRef{
			Name:      "sentiment",
			Kind:      "Deployment",
			Namespace: "reviews",
		},
		Color:             "blue",
		TrafficPercentage: 25,
	}

	expected := map[string]string{
		"slice.hueshift.cloud/slice_id":             "8e2b6f0a",
		"slice.hueshift.cloud/source_obj.name":      "sentiment",
		"slice.hueshift.cloud/source_obj.kind":      "Deployment",
		"slice.hueshift.cloud/source_obj.namespace": "reviews",
		"slice.hueshift.cloud/color":                "blue",
		"slice.hueshift.cloud/traffic_percentage":   "25",
	}

	// -- When
	//
	actual := ToMap(given)

	// -- Then
	//
	a.Equal(expected, actual)
}

func (a *AnnosTestSuite) TestFromMap() {
	// -- Given
	//
	given := map[string]string{
		"slice.hueshift.cloud/slice_id":             "8e2b6f0a",
		"slice.hueshift.cloud/source_obj.name":      "sentiment",
		"slice.hueshift.cloud/source_obj.kind":      "Deployment",
		"slice.hueshift.cloud/source_obj.namespace": "reviews",
		"slice.hueshift.cloud/color":                "green",
		"slice.hueshift.cloud/traffic_percentage":   "40",
		"other.domain/ignored":                      "true",
	}

	expected := &Slice{
		SliceId: "8e2b6f0a",
		SourceObj: ObjRef{
			Name:      "sentiment",
			Kind:      "Deployment",
			Namespace: "reviews",
		},
		Color:             "green",
		TrafficPercentage: 40,
	}

	// -- When
	//
	actual := new(Slice)
	err := FromMap(given, actual)

	// -- Then
	//
	a.NoError(err)
	a.Equal(expected, actual)
}

func (a *AnnosTestSuite) TestFromMapIgnoresUnknownKeys() {
	given := map[string]string{
		"slice.hueshift.cloud/not_a_field": "x",
		"slice.hueshift.cloud/color":       "blue",
	}

	actual := new(Slice)
	a.NoError(FromMap(given, actual))
	a.Equal("blue", actual.Color)
}

func (a *AnnosTestSuite) TestMerge() {
	existing := map[string]string{
		"app.kubernetes.io/name": "sentiment",
	}

	merged := Merge(existing, &Slice{Color: "blue"})

	a.Equal("sentiment", merged["app.kubernetes.io/name"])
	a.Equal("blue", merged["slice.hueshift.cloud/color"])
	// the input map is not mutated
	a.Len(existing, 1)
}

func (a *AnnosTestSuite) TestFromMapRejectsNonPtr() {
	a.Error(FromMap(map[string]string{}, nil))
}

func TestAnnosTestSuite(t *testing.T) {
	suite.Run(t, new(AnnosTestSuite))
}
