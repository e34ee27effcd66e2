package artist

import (
	"fmt"
	"strings"
)

// Describe renders a full multi-line description of an artist and its
// paintings. Rendering is deliberately a free function over the entity so
// the persisted shape stays independent of any display concern.
func Describe(a *Artist) string {
	if a == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s  %s - %s [%s] [%s]\n", a.ID, a.Name, a.Born, a.Died, a.Nationality, a.Genre)
	fmt.Fprintf(&b, "wikipedia: %s\n", a.Wikipedia)
	fmt.Fprintf(&b, "%s\n", a.Bio)
	for _, p := range a.Paintings {
		fmt.Fprintf(&b, "  p %s\n", DescribePainting(p))
	}
	return b.String()
}

// DescribePainting renders one painting with the dimensions of each variant.
func DescribePainting(p Painting) string {
	return fmt.Sprintf("%s ->  full %s  cropped %s  thumbnail %s",
		p.ID, describeImage(p.Full), describeImage(p.Cropped), describeImage(p.Thumbnail))
}

func describeImage(img Image) string {
	return fmt.Sprintf("(w %4d  h %4d)", img.Width, img.Height)
}

// Summary renders the single-line form used by list output on non-terminal
// writers.
func Summary(a *Artist) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s  %s  %s - %s  [%s] [%s]  paintings=%d",
		a.ID, a.Name, a.Born, a.Died, a.Nationality, a.Genre, len(a.Paintings))
}
