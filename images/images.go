// Package images lists the raster images embedded in a page's
// resource dictionary. It walks the XObject entries, recursing into
// nested resource dictionaries (form XObjects carry their own), and
// suppresses images that appear more than once because resources are
// shared.
package images

import (
	"reflect"

	"github.com/tsawler/verso/engine"
	"github.com/tsawler/verso/model"
)

// Image is one embedded image found in a page's resources. Position
// only reflects the image's intrinsic size, anchored at the origin.
// Dict is the image's XObject dictionary for callers that need more.
//
// TODO: derive real placement from the content stream; resource
// dictionaries only carry intrinsic width and height.
type Image struct {
	Position model.Rect
	Width    int
	Height   int
	Dict     engine.Dict
}

// Collect walks a page's resource dictionary and returns every image
// XObject it references, without duplicates. A nil resources
// dictionary yields an empty list.
func Collect(resources engine.Dict) []Image {
	list := make([]Image, 0)
	collectResources(resources, &list)
	return list
}

func collectResources(resources engine.Dict, list *[]Image) {
	if resources == nil {
		return
	}

	xobjects, ok := resources.GetDict("XObject")
	if !ok {
		return
	}

	collectImages(xobjects, list)

	// Form XObjects can carry their own resources; recurse into them
	// unless they point back at the dictionary we came from.
	for _, key := range xobjects.Keys() {
		obj, ok := xobjects.GetDict(key)
		if !ok {
			continue
		}
		sub, ok := obj.GetDict("Resources")
		if !ok || sameDict(resources, sub) {
			continue
		}
		collectResources(sub, list)
	}
}

func collectImages(xobjects engine.Dict, list *[]Image) {
	for _, key := range xobjects.Keys() {
		dict, ok := xobjects.GetDict(key)
		if !ok {
			continue
		}

		subtype, ok := dict.GetName("Subtype")
		if !ok || subtype != "Image" {
			continue
		}

		duplicate := false
		for _, seen := range *list {
			if sameDict(seen.Dict, dict) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		width, _ := dict.GetInt("Width")
		height, _ := dict.GetInt("Height")

		*list = append(*list, Image{
			Position: model.NewRect(0, 0, float64(width), float64(height)),
			Width:    int(width),
			Height:   int(height),
			Dict:     dict,
		})
	}
}

// sameDict reports whether two dictionaries are the same underlying
// map. Engines share resource dictionaries between pages and nested
// XObjects, so identity, not deep equality, is what dedup needs.
func sameDict(a, b engine.Dict) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
