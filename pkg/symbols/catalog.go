package symbols

import "strings"

// NamedSet pairs a Set with its catalog name.
type NamedSet struct {
	Name string
	Set  Set
}

// Catalog lists every built-in set in display order.
var Catalog = []NamedSet{
	{"ASCII", ASCII},
	{"BOX_DRAWING", BoxDrawing},
	{"ARROW", Arrow},
	{"DOUBLE_ARROW", DoubleArrow},
	{"VERTICAL_BLOCK", VerticalBlock},
	{"HORIZONTAL_BLOCK", HorizontalBlock},
	{"QUADRANT_BLOCK", QuadrantBlock},
	{"QUADRANT_BLOCK_CRACK", QuadrantBlockCrack},
	{"WHITE_SQUARE", WhiteSquare},
	{"WHITE_CIRCLE", WhiteCircle},
	{"BLACK_CIRCLE", BlackCircle},
	{"CLOCK", Clock},
	{"BRAILLE_ONE", BrailleOne},
	{"BRAILLE_SIX", BrailleSix},
	{"BRAILLE_EIGHT", BrailleEight},
	{"BRAILLE_DOUBLE", BrailleDouble},
	{"BRAILLE_SIX_DOUBLE", BrailleSixDouble},
	{"BRAILLE_EIGHT_DOUBLE", BrailleEightDouble},
	{"OGHAM_A", OghamA},
	{"OGHAM_B", OghamB},
	{"OGHAM_C", OghamC},
	{"PARENTHESIS", Parenthesis},
	{"CANADIAN", Canadian},
	{"BLINKING_CURSOR", BlinkingCursor},
}

// Names returns the catalog names in display order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for _, ns := range Catalog {
		names = append(names, ns.Name)
	}
	return names
}

// Lookup finds a set by name. Case, dashes and underscores are ignored, so
// "BRAILLE_SIX", "braille-six" and "BrailleSix" all resolve to BrailleSix.
func Lookup(name string) (Set, bool) {
	want := normalizeName(name)
	if want == "" {
		return Set{}, false
	}
	for _, ns := range Catalog {
		if normalizeName(ns.Name) == want {
			return ns.Set, true
		}
	}
	return Set{}, false
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}
