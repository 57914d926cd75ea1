package maze

// DefaultLayout is the built-in maze. Row 0 is the bottom wall; the
// overlay draws rows bottom-up so the printed maze matches this text.
var DefaultLayout = []string{
	"+++++++++++++++++++++",
	"+                   +",
	"+              ++++ +",
	"+      +++++     ++ +",
	"+      +++++     +  +",
	"+      +++++   +++ ++",
	"+      +++++   +    +",
	"+      +++++   + ++++",
	"+              + ++++",
	"+                   +",
	"+                   +",
	"+++++ ++++++ ++++++ +",
	"+++++ ++++++ ++++++ +",
	"+                   +",
	"+               +   +",
	"+     +             +",
	"+  +           +    +",
	"+      +   +        +",
	"+                +  +",
	"+++++++++++++++++++++",
}

// Default parses DefaultLayout. The layout is fixed so a parse failure
// is a build defect, not a runtime condition.
func Default() *Grid {
	g, err := Parse(DefaultLayout)
	if err != nil {
		panic(err)
	}
	return g
}
