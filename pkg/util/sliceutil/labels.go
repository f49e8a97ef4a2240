package sliceutil

import (
	"fmt"

	"github.com/hueshift-cloud/hueshift/core/except"
	"github.com/hueshift-cloud/hueshift/pkg/model"
	"github.com/hueshift-cloud/hueshift/pkg/model/consts"
)

func SliceName(serviceName string, color model.Color) string {
	return fmt.Sprintf("%s-%s", serviceName, color)
}

func AppendSliceLabels(serviceName string, color model.Color, labels map[string]string) {
	if labels == nil {
		labels = map[string]string{}
	}

	labels[consts.LabelKeyDomain] = consts.Domain
	labels[consts.LabelKeyResource] = consts.LabelValueResourceSlice
	labels[consts.LabelKeyFor] = serviceName
	labels[consts.LabelKeyColor] = string(color)
}

func GenSliceLabels(serviceName string, color model.Color) map[string]string {
	m := map[string]string{}
	AppendSliceLabels(serviceName, color, m)
	return m
}

func ServiceNameFromLabels(l map[string]string) (string, error) {
	if v, ok := l[consts.LabelKeyFor]; ok {
		return v, nil
	}
	return "", except.NewError("Missing the %s label", except.ErrInvalid, consts.LabelKeyFor)
}

func ColorFromLabels(l map[string]string) (model.Color, error) {
	if v, ok := l[consts.LabelKeyColor]; ok {
		return model.Color(v), nil
	}
	return "", except.NewError("Missing the %s label", except.ErrInvalid, consts.LabelKeyColor)
}
