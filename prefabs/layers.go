package prefabs

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/raycontroller/controller"
)

var ErrUnknownLayer = errors.New("prefabs: unknown layer")

var layerNames = map[string]controller.Layer{
	"default": controller.LayerDefault,
	"ground":  controller.LayerGround,
	"one_way": controller.LayerOneWay,
}

// ParseLayer accepts a layer name or a number in [0, 31].
func ParseLayer(s string) (controller.Layer, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if l, ok := layerNames[key]; ok {
		return l, nil
	}
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 || n > int(controller.MaxLayer) {
		return 0, fmt.Errorf("%w: %q (want a number or one of %s)", ErrUnknownLayer, s, strings.Join(LayerNames(), ", "))
	}
	return controller.Layer(n), nil
}

// LayerName returns the registered name of l, or its number.
func LayerName(l controller.Layer) string {
	for name, v := range layerNames {
		if v == l {
			return name
		}
	}
	return strconv.Itoa(int(l))
}

// MaskNames lists the layers in m in ascending order.
func MaskNames(m controller.LayerMask) []string {
	var out []string
	for l := controller.Layer(0); l <= controller.MaxLayer; l++ {
		if m.Has(l) {
			out = append(out, LayerName(l))
		}
	}
	return out
}

// LayerNames returns every registered layer name, sorted.
func LayerNames() []string {
	names := make([]string, 0, len(layerNames))
	for name := range layerNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
