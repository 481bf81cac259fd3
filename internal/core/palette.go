package core

import "fmt"

// animals is the emoji palette for project images. Order and duplicates are
// part of the persisted output: changing either reassigns every image.
var animals = []string{
	"🦁", "🐯", "🐻", "🐼", "🐨", "🐵", "🐶", "🐺", "🦊", "🦝",
	"🐱", "🦁", "🐴", "🦄", "🦓", "🦌", "🐮", "🐷", "🐗", "🐭",
	"🐹", "🐰", "🐇", "🐿️", "🦔", "🦇", "🐻‍❄️", "🐨", "🐼", "🦥",
	"🦦", "🦨", "🦘", "🦡", "🐾", "🦃", "🐔", "🐓", "🐣", "🐤",
	"🐥", "🐦", "🐧", "🕊️", "🦅", "🦆", "🦢", "🦉", "🦤", "🪶",
	"🦩", "🦚", "🦜", "🐸", "🐊", "🐢", "🦎", "🐍", "🐲", "🐉",
	"🦕", "🦖", "🐳", "🐋", "🐬", "🦭", "🐟", "🐠", "🐡", "🦈",
	"🐙", "🐚", "🪸", "🐌", "🦋", "🐛", "🐝", "🪲", "🐞", "🦗",
	"🕷️", "🦂", "🦟", "🪰", "🪱", "🦠",
}

// nameHash is the 32-bit rolling hash h = (h << 5) - h + code point.
func nameHash(name string) uint32 {
	var h uint32
	for _, r := range name {
		h = (h << 5) - h + uint32(r)
	}

	return h
}

// Pick returns the palette element assigned to name. The same name always
// yields the same element. An empty name yields palette[0]; an empty palette
// yields the zero value.
func Pick[T any](name string, palette []T) T {
	var zero T
	if len(palette) == 0 {
		return zero
	}

	return palette[nameHash(name)%uint32(len(palette))]
}

// AnimalFor returns the emoji image for a project name.
func AnimalFor(name string) string {
	return Pick(name, animals)
}

// HueFor returns a hue in degrees (0..359) for name using
// h = (h*31 + code point) mod 2^32.
func HueFor(name string) int {
	var h uint32
	for _, r := range name {
		h = h*31 + uint32(r)
	}

	return int(h % 360)
}

// ColorFor returns the logo fill color for a project name.
func ColorFor(name string) string {
	return fmt.Sprintf("hsl(%d 80%% 50%%)", HueFor(name))
}
